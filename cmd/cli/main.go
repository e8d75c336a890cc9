package main

import (
	"context"
	"fmt"
	"os"

	"profitcalc/internal/logger"
	"profitcalc/internal/util"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "profitcalc",
	Short:        "Six month profit projections",
	Long:         "Project revenue, profit, ROI and break-even over six months, and inspect archived calculations.",
	SilenceUsage: true,
}

func main() {
	ctx := logger.NewContext(context.Background(), logger.New())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*util.Config, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
