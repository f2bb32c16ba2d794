package cli

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grabgo/vending-cli/internal/application/vending"
	"github.com/grabgo/vending-cli/internal/infrastructure/postgres"
	"github.com/grabgo/vending-cli/pkg/config"
	"github.com/grabgo/vending-cli/pkg/logger"
)

// App agrupa configuración, logger, pool y casos de uso ya cableados.
// Cada comando construye su App al ejecutarse y la cierra al terminar.
type App struct {
	Cfg       *config.Config
	Log       *logger.Logger
	Pool      *pgxpool.Pool
	Reporting *vending.ReportingUseCase
	Dispense  *vending.DispenseUseCase
	Restock   *vending.RestockUseCase
}

// buildApp carga configuración (con overrides de flags globales), crea el
// logger y el pool, y cablea repositorios y casos de uso.
func buildApp(ctx context.Context, opts *RootOptions) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.Env != "" {
		cfg.App.Env = opts.Env
	}
	if opts.LogLevel != "" {
		cfg.App.LogLevel = opts.LogLevel
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	itemRepo := postgres.NewItemRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	return &App{
		Cfg:  cfg,
		Log:  log,
		Pool: pool,
		Reporting: vending.NewReportingUseCase(
			itemRepo, stockRepo,
			cfg.Vending.SearchLimit, cfg.Vending.LowStockThreshold,
		),
		Dispense: vending.NewDispenseUseCase(txRunner, cfg.Vending.PaymentMethod),
		Restock:  vending.NewRestockUseCase(txRunner),
	}, nil
}

// Close libera el pool de conexiones.
func (a *App) Close() {
	a.Pool.Close()
}
