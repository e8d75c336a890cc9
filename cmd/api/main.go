package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"profitcalc/cmd"
	"profitcalc/internal/logger"
	"profitcalc/internal/util"
)

func main() {
	lg := logger.New()
	ctx, stop := signal.NotifyContext(
		logger.NewContext(context.Background(), lg),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	lg.Infow("starting", "commit", os.Getenv("commit_hash"))

	cfg, err := util.LoadConfig()
	if err != nil {
		lg.Fatalw("failed to load config", "error", err)
	}

	apiHandler, err := cmd.InitializeDependencies(ctx, cfg)
	if err != nil {
		lg.Fatalw("failed to initialize dependencies", "error", err)
	}
	defer cmd.CloseDependencies(apiHandler)

	if err := apiHandler.StartApi(ctx, cfg.Port); err != nil {
		lg.Errorw("api stopped", "error", err)
		return
	}
	lg.Info("api shut down")
}
