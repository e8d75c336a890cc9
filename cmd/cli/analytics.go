package main

import (
	"fmt"
	"time"

	"profitcalc/cmd"
	"profitcalc/internal/service"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var flagSinceDays int

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Summarize archived calculations",
	RunE:  runAnalytics,
}

func init() {
	analyticsCmd.Flags().IntVarP(&flagSinceDays, "days", "n", 0, "Only include the last n days (0 for all)")
	rootCmd.AddCommand(analyticsCmd)
}

func runAnalytics(c *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	handler, err := cmd.InitializeDependencies(c.Context(), cfg)
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(handler)

	var since *time.Time
	if flagSinceDays > 0 {
		s := time.Now().UTC().AddDate(0, 0, -flagSinceDays)
		since = &s
	}

	out, err := handler.CalculationService.Analytics(c.Context(), since)
	if err != nil {
		return err
	}

	breakEvenMonth := "n/a"
	if out.MeanBreakEvenMonth != nil {
		breakEvenMonth = fmt.Sprintf("%.1f", *out.MeanBreakEvenMonth)
	}
	latest := "never"
	if out.LatestCalculation != nil {
		latest = humanize.Time(*out.LatestCalculation)
	}

	fmt.Fprintln(c.OutOrStdout(), renderTitle("CALCULATION ANALYTICS"))
	fmt.Fprintln(c.OutOrStdout())
	fmt.Fprint(c.OutOrStdout(), renderKeyValues([][2]string{
		{"Calculations", humanize.Comma(int64(out.Count))},
		{"Mean ROI", fmt.Sprintf("%.2f%%", out.MeanRoi)},
		{"Median ROI", fmt.Sprintf("%.2f%%", out.MedianRoi)},
		{"P90 ROI", fmt.Sprintf("%.2f%%", out.P90Roi)},
		{"Mean projected profit", service.FormatMoney(decimal.NewFromFloat(out.MeanProjectedProfit))},
		{"Break-even rate", fmt.Sprintf("%.1f%%", out.BreakEvenRate*100)},
		{"Mean break-even month", breakEvenMonth},
		{"Latest calculation", latest},
	}))

	return nil
}
