package handler

const (
	// invite lifetime in minutes
	msgWelcome = "✨━━━━━━━━━━━━━━━✨\n" +
		"👋 أهلاً بك في بوابة الانضمام الرسمية\n\n" +
		"⚠️ تنبيه هام جداً:\n" +
		"• يمنح الرابط مرة واحدة فقط\n" +
		"• صالح لمدة %d دقيقة\n" +
		"• يتوقف فور دخولك\n\n" +
		"🔑 للحصول على روابط الانضمام:\n" +
		"/link\n" +
		"✨━━━━━━━━━━━━━━━✨"

	msgLinkAlreadyUsed = "❌ لقد حصلت على رابط سابقًا."

	// group link, channel link, minutes
	msgLinks = "✨━━━━━━━━━━━━━━━✨\n" +
		"🔗 روابطك الخاصة:\n\n" +
		"👥 القروب:\n%s\n\n" +
		"📢 القناة:\n%s\n\n" +
		"⏳ صالحة %d دقيقة\n" +
		"👤 لشخص واحد فقط\n" +
		"⚠️ لا تشارك الروابط\n" +
		"✨━━━━━━━━━━━━━━━✨"

	msgLinkFailed   = "⚠️ تعذر إنشاء الروابط الآن، حاول مرة أخرى لاحقاً."
	msgGenericError = "⚠️ حدث خطأ، حاول لاحقاً."

	msgAdminPanel = "👑 لوحة التحكم"

	// total users, users with link
	msgStats = "📊 الإحصائيات:\n\n" +
		"👤 عدد المستخدمين: %d\n" +
		"🔗 أخذوا رابط: %d"

	msgBroadcastPrompt = "✍️ أرسل الرسالة الآن."
	// delivered count
	msgBroadcastDone = "✅ تم الإرسال إلى %d مستخدم."

	msgAddAdminPrompt = "✍️ أرسل ID أو @username للأدمن الجديد."
	msgAdminNotFound  = "❌ لم يتم العثور عليه.\n" +
		"تأكد أنه داخل القروب.\n" +
		"اضغط ➕ إضافة أدمن للمحاولة مجدداً."
	msgAdminInvalidInput = "❌ أرسل ID أو @username فقط.\n" +
		"اضغط ➕ إضافة أدمن للمحاولة مجدداً."
	// new admin id
	msgAdminAdded = "✅ تم إضافة الأدمن:\nID: %d"
)
