package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"breadmap/internal/domain/entity"
	domainerrors "breadmap/internal/domain/errors"
	"breadmap/internal/domain/repository"
	"breadmap/internal/domain/service"
	"breadmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type challengeService struct {
	txManager     repository.TransactionManager
	challengeRepo repository.ChallengeRepository
	bakeryRepo    repository.BakeryRepository
	qrcode        service.QRCodeService
	logger        *slog.Logger
}

// ChallengeServiceParams holds dependencies for ChallengeService, injected by Fx.
type ChallengeServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ChallengeRepo repository.ChallengeRepository
	BakeryRepo    repository.BakeryRepository
	QRCode        service.QRCodeService
	Logger        *slog.Logger
}

// NewChallengeService creates a new challenge service instance
func NewChallengeService(params ChallengeServiceParams) usecase.ChallengeUsecase {
	return &challengeService{
		txManager:     params.TxManager,
		challengeRepo: params.ChallengeRepo,
		bakeryRepo:    params.BakeryRepo,
		qrcode:        params.QRCode,
		logger:        params.Logger,
	}
}

// ListChallenges retrieves the user's challenges with progress computed
func (s *challengeService) ListChallenges(ctx context.Context, userID uuid.UUID) ([]usecase.ChallengeWithProgress, error) {
	challenges, err := s.challengeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list challenges")
	}

	result := make([]usecase.ChallengeWithProgress, 0, len(challenges))
	for _, challenge := range challenges {
		result = append(result, usecase.ChallengeWithProgress{
			Challenge: challenge,
			Progress:  challenge.Progress(),
		})
	}

	return result, nil
}

// GetChallenge retrieves a challenge with items and progress. Private
// challenges are reported as not found to anyone but their owner.
func (s *challengeService) GetChallenge(ctx context.Context, requesterID, challengeID uuid.UUID) (*usecase.ChallengeWithProgress, error) {
	challenge, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge")
	}

	if !challenge.IsPublic && challenge.UserID != requesterID {
		return nil, domainerrors.ErrChallengeNotFound
	}

	return &usecase.ChallengeWithProgress{
		Challenge: challenge,
		Progress:  challenge.Progress(),
	}, nil
}

// GetSharedChallenge retrieves a public challenge by its share token
func (s *challengeService) GetSharedChallenge(ctx context.Context, shareToken string) (*usecase.ChallengeWithProgress, error) {
	challenge, err := s.challengeRepo.FindByShareToken(ctx, shareToken)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find shared challenge")
	}

	return &usecase.ChallengeWithProgress{
		Challenge: challenge,
		Progress:  challenge.Progress(),
	}, nil
}

// CreateChallenge creates a challenge and its items atomically
func (s *challengeService) CreateChallenge(ctx context.Context, input usecase.CreateChallengeInput) (*usecase.ChallengeWithProgress, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("challenge name is required")
	}

	challenge := &entity.Challenge{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Name:        input.Name,
		Description: input.Description,
		IsPublic:    input.IsPublic,
		IsActive:    true,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		challengeRepo := repoFactory.NewChallengeRepository()

		if err := challengeRepo.Create(ctx, challenge); err != nil {
			return errors.Wrap(err, "failed to create challenge")
		}

		if len(input.BakeryIDs) == 0 {
			return nil
		}

		items := make([]entity.ChallengeItem, 0, len(input.BakeryIDs))
		for i, bakeryID := range input.BakeryIDs {
			items = append(items, entity.ChallengeItem{
				ID:          uuid.New(),
				ChallengeID: challenge.ID,
				BakeryID:    bakeryID,
				OrderNum:    i + 1,
			})
		}

		if err := challengeRepo.CreateItems(ctx, items); err != nil {
			if errors.Is(err, repository.ErrDuplicateChallengeItem) {
				return domainerrors.ErrDuplicateChallengeItem
			}

			return errors.Wrap(err, "failed to create challenge items")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.challengeRepo.FindByID(ctx, challenge.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created challenge")
	}

	return &usecase.ChallengeWithProgress{
		Challenge: created,
		Progress:  created.Progress(),
	}, nil
}

// UpdateChallenge updates a challenge owned by the user
func (s *challengeService) UpdateChallenge(ctx context.Context, userID, challengeID uuid.UUID, input usecase.UpdateChallengeInput) (*usecase.ChallengeWithProgress, error) {
	challenge, err := s.findOwnedChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		challenge.Name = input.Name
	}
	challenge.Description = input.Description
	challenge.IsPublic = input.IsPublic
	challenge.IsActive = input.IsActive

	if err := s.challengeRepo.Update(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to update challenge")
	}

	return &usecase.ChallengeWithProgress{
		Challenge: challenge,
		Progress:  challenge.Progress(),
	}, nil
}

// DeleteChallenge removes a challenge owned by the user
func (s *challengeService) DeleteChallenge(ctx context.Context, userID, challengeID uuid.UUID) error {
	if _, err := s.findOwnedChallenge(ctx, userID, challengeID); err != nil {
		return err
	}

	if err := s.challengeRepo.Delete(ctx, challengeID); err != nil {
		return errors.Wrap(err, "failed to delete challenge")
	}

	return nil
}

// AddBakeries appends bakeries to a challenge owned by the user. Bakeries
// already on the challenge are skipped so a repeated submit is harmless.
func (s *challengeService) AddBakeries(ctx context.Context, userID, challengeID uuid.UUID, bakeryIDs []uuid.UUID) (*usecase.ChallengeWithProgress, error) {
	challenge, err := s.findOwnedChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}

	existing := make(map[uuid.UUID]struct{}, len(challenge.Items))
	for i := range challenge.Items {
		existing[challenge.Items[i].BakeryID] = struct{}{}
	}

	items := make([]entity.ChallengeItem, 0, len(bakeryIDs))
	orderNum := len(challenge.Items)
	for _, bakeryID := range bakeryIDs {
		if _, ok := existing[bakeryID]; ok {
			continue
		}

		if _, err := s.bakeryRepo.FindByID(ctx, bakeryID); err != nil {
			if errors.Is(err, repository.ErrBakeryNotFound) {
				return nil, domainerrors.ErrBakeryNotFound
			}

			return nil, errors.Wrap(err, "failed to verify bakery")
		}

		orderNum++
		items = append(items, entity.ChallengeItem{
			ID:          uuid.New(),
			ChallengeID: challengeID,
			BakeryID:    bakeryID,
			OrderNum:    orderNum,
		})
		existing[bakeryID] = struct{}{}
	}

	if len(items) > 0 {
		if err := s.challengeRepo.CreateItems(ctx, items); err != nil {
			if errors.Is(err, repository.ErrDuplicateChallengeItem) {
				return nil, domainerrors.ErrDuplicateChallengeItem
			}

			return nil, errors.Wrap(err, "failed to add challenge items")
		}
	}

	updated, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload challenge")
	}

	return &usecase.ChallengeWithProgress{
		Challenge: updated,
		Progress:  updated.Progress(),
	}, nil
}

// RemoveBakery removes a bakery slot from a challenge owned by the user
func (s *challengeService) RemoveBakery(ctx context.Context, userID, challengeID, itemID uuid.UUID) (*usecase.ChallengeWithProgress, error) {
	if _, err := s.findOwnedChallenge(ctx, userID, challengeID); err != nil {
		return nil, err
	}

	item, err := s.challengeRepo.FindItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeItemNotFound) {
			return nil, domainerrors.ErrChallengeItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge item")
	}

	if item.ChallengeID != challengeID {
		return nil, domainerrors.ErrChallengeItemNotFound
	}

	if err := s.challengeRepo.DeleteItem(ctx, itemID); err != nil {
		return nil, errors.Wrap(err, "failed to remove challenge item")
	}

	updated, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload challenge")
	}

	return &usecase.ChallengeWithProgress{
		Challenge: updated,
		Progress:  updated.Progress(),
	}, nil
}

// ToggleVisit flips the visited state of a challenge item and returns the
// refreshed challenge with progress. A visit memo may be attached.
func (s *challengeService) ToggleVisit(ctx context.Context, userID, challengeID, itemID uuid.UUID, memo string) (*usecase.ChallengeWithProgress, error) {
	if _, err := s.findOwnedChallenge(ctx, userID, challengeID); err != nil {
		return nil, err
	}

	item, err := s.challengeRepo.FindItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeItemNotFound) {
			return nil, domainerrors.ErrChallengeItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge item")
	}

	if item.ChallengeID != challengeID {
		return nil, domainerrors.ErrChallengeItemNotFound
	}

	if item.Visited() {
		item.VisitedAt = nil
		item.Memo = ""
	} else {
		now := time.Now()
		item.VisitedAt = &now
		item.Memo = memo
	}

	if err := s.challengeRepo.UpdateItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update challenge item")
	}

	challenge, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload challenge")
	}

	return &usecase.ChallengeWithProgress{
		Challenge: challenge,
		Progress:  challenge.Progress(),
	}, nil
}

// ShareQR returns a PNG QR code pointing at the challenge's share URL. The
// first call on a challenge mints a share token and makes it public.
func (s *challengeService) ShareQR(ctx context.Context, userID, challengeID uuid.UUID) ([]byte, string, error) {
	challenge, err := s.findOwnedChallenge(ctx, userID, challengeID)
	if err != nil {
		return nil, "", err
	}

	if challenge.ShareToken == "" {
		token, err := newShareToken()
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to generate share token")
		}

		challenge.ShareToken = token
		challenge.IsPublic = true

		if err := s.challengeRepo.Update(ctx, challenge); err != nil {
			return nil, "", errors.Wrap(err, "failed to save share token")
		}

		s.logger.Info("Challenge share token minted",
			slog.String("challenge_id", challengeID.String()),
		)
	}

	png, err := s.qrcode.GenerateShareQR(challenge.ShareToken)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to generate share QR code")
	}

	return png, s.qrcode.ShareURL(challenge.ShareToken), nil
}

// findOwnedChallenge loads a challenge and verifies the requester owns it.
func (s *challengeService) findOwnedChallenge(ctx context.Context, userID, challengeID uuid.UUID) (*entity.Challenge, error) {
	challenge, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge")
	}

	if challenge.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return challenge, nil
}

// newShareToken returns a 32-character hex token for share links.
func newShareToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
