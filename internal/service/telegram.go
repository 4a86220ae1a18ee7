package service

import (
	tele "gopkg.in/telebot.v3"
)

// The interfaces below are the slices of *tele.Bot the services depend on.

// InviteLinker creates and revokes chat invite links
type InviteLinker interface {
	CreateInviteLink(chat tele.Recipient, link *tele.ChatInviteLink) (*tele.ChatInviteLink, error)
	RevokeInviteLink(chat tele.Recipient, link string) (*tele.ChatInviteLink, error)
}

// MemberLookup resolves chat members
type MemberLookup interface {
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// MessageSender delivers messages to arbitrary chats
type MessageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// username addresses a user by @handle in API calls that accept one
type username string

func (u username) Recipient() string {
	return "@" + string(u)
}
