package impl

import (
	"context"
	"log/slog"
	"strconv"

	"breadmap/internal/domain/entity"
	"breadmap/internal/domain/repository"
	"breadmap/internal/domain/service"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type badgeService struct {
	badgeRepo    repository.BadgeRepository
	reviewRepo   repository.ReviewRepository
	deviceRepo   repository.DeviceRepository
	notification service.NotificationService
	logger       *slog.Logger
}

// BadgeServiceParams holds dependencies for BadgeService, injected by Fx.
type BadgeServiceParams struct {
	fx.In

	BadgeRepo    repository.BadgeRepository
	ReviewRepo   repository.ReviewRepository
	DeviceRepo   repository.DeviceRepository
	Notification service.NotificationService `optional:"true"`
	Logger       *slog.Logger
}

// NewBadgeService creates a new badge service instance
func NewBadgeService(params BadgeServiceParams) usecase.BadgeUsecase {
	return &badgeService{
		badgeRepo:    params.BadgeRepo,
		reviewRepo:   params.ReviewRepo,
		deviceRepo:   params.DeviceRepo,
		notification: params.Notification,
		logger:       params.Logger,
	}
}

// ListCatalog retrieves the full badge catalog
func (s *badgeService) ListCatalog(ctx context.Context) ([]*entity.Badge, error) {
	badges, err := s.badgeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load badge catalog")
	}

	return badges, nil
}

// ListEarned retrieves the user's earned badges
func (s *badgeService) ListEarned(ctx context.Context, userID uuid.UUID) ([]*entity.UserBadge, error) {
	earned, err := s.badgeRepo.FindEarnedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load earned badges")
	}

	return earned, nil
}

// Recheck re-evaluates every badge condition against the user's current
// activity and awards any newly satisfied badges. A stats read failure aborts
// the whole run so a badge is never awarded against stale numbers.
func (s *badgeService) Recheck(ctx context.Context, userID uuid.UUID) (*usecase.RecheckResult, error) {
	stats, err := s.reviewRepo.ActivityStatsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute activity stats")
	}

	catalog, err := s.badgeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load badge catalog")
	}

	earned, err := s.badgeRepo.FindEarnedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load earned badges")
	}

	earnedSet := make(map[uuid.UUID]struct{}, len(earned))
	for _, userBadge := range earned {
		earnedSet[userBadge.BadgeID] = struct{}{}
	}

	awarded := make([]*entity.Badge, 0)
	for _, badge := range catalog {
		if _, already := earnedSet[badge.ID]; already {
			continue
		}
		if !badge.Satisfied(*stats) {
			continue
		}

		if err := s.badgeRepo.Award(ctx, userID, badge.ID); err != nil {
			// A concurrent recheck may have awarded the same badge first;
			// the unique constraint makes the second insert a benign no-op.
			if errors.Is(err, repository.ErrDuplicateUserBadge) {
				continue
			}

			return nil, errors.Wrapf(err, "failed to award badge %s", badge.Name)
		}

		awarded = append(awarded, badge)

		s.logger.Info("Badge awarded",
			slog.String("user_id", userID.String()),
			slog.String("badge", badge.Name),
		)
	}

	if len(awarded) > 0 {
		s.notifyAwards(ctx, userID, awarded)
	}

	return &usecase.RecheckResult{
		Success:            true,
		AwardedBadgesCount: len(awarded),
	}, nil
}

// notifyAwards pushes a badge-award notification to the user's devices.
// Delivery is best effort and never fails the recheck.
func (s *badgeService) notifyAwards(ctx context.Context, userID uuid.UUID, awarded []*entity.Badge) {
	if s.notification == nil {
		return
	}

	devices, err := s.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to load devices for badge notification",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	first := awarded[0]
	title := "새로운 배지를 획득했어요!"
	body := first.Icon + " " + first.Name
	if len(awarded) > 1 {
		body += " 외 " + strconv.Itoa(len(awarded)-1) + "개"
	}

	successCount, failureCount, invalidTokens, err := s.notification.SendBatchNotification(ctx, tokens, title, body, map[string]string{
		"type":     "badge_awarded",
		"badge_id": first.ID.String(),
	})
	if err != nil {
		s.logger.Warn("Failed to send badge notification",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)

		return
	}

	// Invalid tokens belong to uninstalled apps, purge their registrations.
	if len(invalidTokens) > 0 {
		s.purgeInvalidTokens(ctx, devices, invalidTokens)
	}

	s.logger.Debug("Badge notification sent",
		slog.String("user_id", userID.String()),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)
}

func (s *badgeService) purgeInvalidTokens(ctx context.Context, devices []*entity.UserDevice, invalidTokens []string) {
	invalid := make(map[string]struct{}, len(invalidTokens))
	for _, token := range invalidTokens {
		invalid[token] = struct{}{}
	}

	for _, device := range devices {
		if _, ok := invalid[device.FCMToken]; !ok {
			continue
		}
		if err := s.deviceRepo.Delete(ctx, device.ID); err != nil {
			s.logger.Warn("Failed to purge invalid device token",
				slog.String("device_id", device.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}
