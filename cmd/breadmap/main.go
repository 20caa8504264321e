package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"breadmap/config"
	"breadmap/internal/delivery"
	"breadmap/internal/delivery/http"
	"breadmap/internal/delivery/http/middleware"
	"breadmap/internal/delivery/http/router/handler"
	"breadmap/internal/domain/service"
	"breadmap/internal/infra/auth"
	logs "breadmap/internal/infra/log"
	"breadmap/internal/infra/notification"
	"breadmap/internal/infra/persistence/postgres"
	"breadmap/internal/infra/pubsub"
	"breadmap/internal/infra/qrcode"
	"breadmap/internal/infra/storage"
	"breadmap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBakeryRepository,
			postgres.NewThemeRepository,
			postgres.NewReviewRepository,
			postgres.NewFavoriteRepository,
			postgres.NewBadgeRepository,
			postgres.NewChallengeRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newFirebaseService,
			newQRCodeService,
			newStorageService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://breadmap.app")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// newStorageService opens the review photo bucket when one is configured
func newStorageService(params storage.Params) (service.StorageService, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, nil // Photo uploads are optional
	}

	return storage.New(params)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBakeryService,
			impl.NewReviewService,
			impl.NewFavoriteService,
			impl.NewChallengeService,
			impl.NewRecommendationService,
			impl.NewBadgeService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewBakeryHandler,
			handler.NewReviewHandler,
			handler.NewFavoriteHandler,
			handler.NewChallengeHandler,
			handler.NewBadgeHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
