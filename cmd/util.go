package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"profitcalc/api"
	"profitcalc/internal/logger"
	"profitcalc/internal/repository"
	"profitcalc/internal/service"
	"profitcalc/internal/util"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	if rl, ok := handler.RateLimiter.(*api.MemoryRateLimiter); ok {
		rl.Stop()
	}
	if handler.Db != nil {
		if err := handler.Db.Close(); err != nil {
			logger.New().Errorw("failed to close db", "error", err)
		}
	}
}

// loadSecrets reads the secrets file. Local sqlite setups may run without
// one; postgres always needs it.
func loadSecrets(cfg *util.Config) (*util.Secrets, error) {
	path := util.SecretsFile(cfg.Env, cfg.SecretsFile)
	secrets, err := util.LoadSecrets(path)
	if err == nil {
		return secrets, nil
	}
	if errors.Is(err, fs.ErrNotExist) && cfg.StorageDriver == util.StorageDriverSqlite {
		logger.New().Warnw("no secrets file, running without email, gpt or admin access", "path", path)
		return &util.Secrets{}, nil
	}
	return nil, fmt.Errorf("failed to load secrets: %w", err)
}

type storage struct {
	db                    *sql.DB
	calculationRepository repository.CalculationRepository
	apiRequestRepository  repository.ApiRequestRepository
}

func openStorage(cfg *util.Config, secrets *util.Secrets) (*storage, error) {
	switch cfg.StorageDriver {
	case util.StorageDriverPostgres:
		dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		return &storage{
			db:                    dbConn,
			calculationRepository: repository.NewCalculationRepository(dbConn),
			apiRequestRepository:  repository.NewApiRequestRepository(dbConn),
		}, nil
	case util.StorageDriverSqlite:
		dbConn, err := repository.OpenSqlite(cfg.SqlitePath)
		if err != nil {
			return nil, err
		}
		return &storage{
			db:                    dbConn,
			calculationRepository: repository.NewSqliteCalculationRepository(dbConn),
			apiRequestRepository:  repository.NewSqliteApiRequestRepository(dbConn),
		}, nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}

func InitializeDependencies(ctx context.Context, cfg *util.Config) (*api.ApiHandler, error) {
	lg := logger.FromContext(ctx)

	secrets, err := loadSecrets(cfg)
	if err != nil {
		return nil, err
	}

	store, err := openStorage(cfg, secrets)
	if err != nil {
		return nil, err
	}

	reportService := service.NewReportService()

	var emailService service.EmailService
	if secrets.SES.Region != "" && secrets.SES.FromEmail != "" {
		emailRepository, err := repository.NewEmailRepository(ctx, secrets.SES.Region, secrets.SES.FromEmail)
		if err != nil {
			_ = store.db.Close()
			return nil, fmt.Errorf("failed to create email repository: %w", err)
		}
		emailService = service.NewEmailService(emailRepository, reportService)
	} else {
		lg.Warn("SES is not configured, emailing reports is disabled")
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			_ = store.db.Close()
			return nil, err
		}
	}

	var rateLimiter api.RateLimiter
	if cfg.UseRedisLimit {
		if secrets.Redis.Addr == "" {
			_ = store.db.Close()
			return nil, errors.New("redis rate limiting requires redis.addr in secrets")
		}
		rateLimiter = api.NewRedisRateLimiter(
			repository.NewRedisRateLimitRepository(secrets.Redis.Addr, secrets.Redis.Password),
			cfg.RateLimit,
			cfg.RateWindow,
		)
	} else {
		rateLimiter = api.NewMemoryRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}

	jwtSecret := secrets.Jwt
	if jwtSecret == "" {
		// export tokens will not survive a restart
		lg.Warn("no jwt secret configured, using a random one")
		jwtSecret = uuid.NewString()
	}

	apiHandler := &api.ApiHandler{
		Db:                   store.db,
		CalculationService:   service.NewCalculationService(store.calculationRepository),
		ReportService:        reportService,
		EmailService:         emailService,
		ExplanationService:   service.NewExplanationService(gptRepository),
		ApiRequestRepository: store.apiRequestRepository,
		RateLimiter:          rateLimiter,
		ExportTokens:         api.NewExportTokenIssuer(jwtSecret, cfg.ExportTokenTTL),
		AdminApiKey:          secrets.AdminApiKey,
		RequestTimeout:       cfg.RequestTimeout,
	}

	return apiHandler, nil
}
