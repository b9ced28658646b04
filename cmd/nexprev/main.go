package main

import (
	"context"
	"log/slog"
	"os"

	"nexprev/config"
	"nexprev/internal/delivery"
	"nexprev/internal/delivery/http"
	"nexprev/internal/delivery/http/middleware"
	"nexprev/internal/delivery/http/router/handler"
	"nexprev/internal/domain/entity"
	"nexprev/internal/domain/service"
	"nexprev/internal/infra/directory"
	logs "nexprev/internal/infra/log"
	"nexprev/internal/infra/persistence/memory"
	"nexprev/internal/infra/persistence/postgres"
	"nexprev/internal/infra/qrcode"
	"nexprev/internal/infra/storage"
	"nexprev/internal/session"
	"nexprev/internal/usecase/impl"

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
		injectSession(),
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
		newSessionKV,
	)
}

type sessionKVParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// newSessionKV picks the session storage backend: PostgreSQL when configured,
// otherwise the in-process map.
func newSessionKV(params sessionKVParams) (session.KV, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("Session storage: in-memory")

		return storage.NewMemory(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Session storage: PostgreSQL")

	return postgres.NewSessionKV(db), nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewPartnerRepository,
			memory.NewOfferRepository,
			memory.NewTransactionRepository,
			memory.NewProductRepository,
			memory.NewMerchantOfferRepository,
			memory.NewMerchantDirectoryRepository,
			memory.NewCustomerDirectoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectSession() fx.Option {
	return fx.Options(
		fx.Provide(
			newCustomerSessionManager,
			newMerchantSessionManager,
			newAdminSessionManager,
		),
	)
}

// Session key prefixes match the role cookie names, so each role's entries
// are partitioned in storage.
func newCustomerSessionManager(cfg *config.Config, kv session.KV, logger *slog.Logger) (*session.Manager[entity.CustomerIdentity], error) {
	return session.NewManager(session.Config[entity.CustomerIdentity]{
		Role:      entity.RoleCustomer,
		KeyPrefix: cfg.Session.CustomerCookie,
		Verifier:  directory.NewCustomerVerifier(),
		Factory:   directory.NewCustomerFactory(nil),
	}, kv, logger)
}

func newMerchantSessionManager(cfg *config.Config, kv session.KV, logger *slog.Logger) (*session.Manager[entity.MerchantIdentity], error) {
	return session.NewManager(session.Config[entity.MerchantIdentity]{
		Role:      entity.RoleMerchant,
		KeyPrefix: cfg.Session.MerchantCookie,
		Verifier:  directory.NewMerchantVerifier(),
		Factory:   directory.NewMerchantFactory(nil),
	}, kv, logger)
}

func newAdminSessionManager(cfg *config.Config, kv session.KV, logger *slog.Logger) (*session.Manager[entity.AdminIdentity], error) {
	// Admin accounts have no self-service registration.
	return session.NewManager(session.Config[entity.AdminIdentity]{
		Role:      entity.RoleAdmin,
		KeyPrefix: cfg.Session.AdminCookie,
		Verifier:  directory.NewAdminVerifier(),
	}, kv, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewMerchantService,
			impl.NewAdminService,
			impl.NewReferralService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewGuardMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCustomerHandler,
			handler.NewMerchantHandler,
			handler.NewAdminHandler,
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
