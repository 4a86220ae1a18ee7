package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"invitegate/internal/domain"
	"invitegate/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

// BroadcastService fans a text message out to every registered user
type BroadcastService struct {
	userRepo repository.UserRepository
	sender   MessageSender
	limiter  *rate.Limiter
	workers  int
	logger   *zap.Logger
}

// NewBroadcastService creates a broadcast service with a bounded worker pool.
// perSecond caps the combined send rate of all workers.
func NewBroadcastService(
	userRepo repository.UserRepository,
	sender MessageSender,
	workers int,
	perSecond float64,
	logger *zap.Logger,
) *BroadcastService {
	if workers <= 0 {
		workers = 1
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &BroadcastService{
		userRepo: userRepo,
		sender:   sender,
		limiter:  rate.NewLimiter(limit, 1),
		workers:  workers,
		logger:   logger,
	}
}

// Broadcast delivers text to all known users and reports per-recipient outcomes.
// Failed recipients are not retried, except once after a flood-wait.
func (s *BroadcastService) Broadcast(ctx context.Context, adminID int64, text string) (*domain.BroadcastReport, error) {
	ids, err := s.userRepo.ListUserIDs()
	if err != nil {
		return nil, err
	}

	report := &domain.BroadcastReport{
		ID:    uuid.NewString(),
		Total: len(ids),
	}

	logger := s.logger.With(
		zap.String("broadcast_id", report.ID),
		zap.Int64("admin_id", adminID),
	)
	logger.Info("Broadcast started", zap.Int("recipients", len(ids)))

	jobs := make(chan int64)
	results := make(chan domain.DeliveryOutcome)

	var wg sync.WaitGroup
	workers := s.workers
	if workers > len(ids) {
		workers = len(ids)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for userID := range jobs {
				results <- s.deliver(ctx, userID, text)
			}
		}()
	}

	go func() {
		for _, id := range ids {
			jobs <- id
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for outcome := range results {
		if outcome.Status != domain.DeliveryDelivered {
			logger.Debug("Broadcast delivery failed",
				zap.Int64("user_id", outcome.UserID),
				zap.String("status", string(outcome.Status)),
				zap.Error(outcome.Err),
			)
		}
		report.Add(outcome)
	}

	sort.Slice(report.Outcomes, func(i, j int) bool {
		return report.Outcomes[i].UserID < report.Outcomes[j].UserID
	})

	logger.Info("Broadcast finished",
		zap.Int("delivered", report.Delivered),
		zap.Int("failed", report.Failed),
		zap.Int("blocked", report.Count(domain.DeliveryBlocked)),
	)

	return report, nil
}

func (s *BroadcastService) deliver(ctx context.Context, userID int64, text string) domain.DeliveryOutcome {
	for attempt := 1; ; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return domain.DeliveryOutcome{UserID: userID, Status: domain.DeliveryCancelled, Err: err}
		}

		_, err := s.sender.Send(tele.ChatID(userID), text)
		if err == nil {
			return domain.DeliveryOutcome{UserID: userID, Status: domain.DeliveryDelivered}
		}

		var flood tele.FloodError
		if errors.As(err, &flood) && attempt == 1 {
			timer := time.NewTimer(time.Duration(flood.RetryAfter) * time.Second)
			select {
			case <-ctx.Done():
				timer.Stop()
				return domain.DeliveryOutcome{UserID: userID, Status: domain.DeliveryCancelled, Err: ctx.Err()}
			case <-timer.C:
			}
			continue
		}

		return domain.DeliveryOutcome{UserID: userID, Status: classifyDeliveryError(err), Err: err}
	}
}

func classifyDeliveryError(err error) domain.DeliveryStatus {
	switch {
	case errors.Is(err, tele.ErrBlockedByUser), errors.Is(err, tele.ErrUserIsDeactivated):
		return domain.DeliveryBlocked
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.DeliveryCancelled
	default:
		return domain.DeliveryFailed
	}
}
