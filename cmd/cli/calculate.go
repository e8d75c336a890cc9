package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"profitcalc/internal/calculator"
	"profitcalc/internal/domain"
	"profitcalc/internal/service"

	"github.com/spf13/cobra"
)

var (
	flagInvestment string
	flagRevenue    string
	flagCosts      string
	flagGrowth     string
	flagFormat     string
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Print a projection without storing it",
	RunE:  runCalculate,
}

func init() {
	calculateCmd.Flags().StringVar(&flagInvestment, "investment", "", "Initial investment")
	calculateCmd.Flags().StringVar(&flagRevenue, "revenue", "", "Monthly revenue")
	calculateCmd.Flags().StringVar(&flagCosts, "costs", "", "Monthly costs")
	calculateCmd.Flags().StringVar(&flagGrowth, "growth", "0", "Monthly revenue growth in percent")
	calculateCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table, csv, json or html")
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	inputs, err := service.ValidateInputs(service.CalculationSubmission{
		InitialInvestment: service.FormValue(flagInvestment),
		MonthlyRevenue:    service.FormValue(flagRevenue),
		MonthlyCosts:      service.FormValue(flagCosts),
		GrowthRate:        service.FormValue(flagGrowth),
	})
	if err != nil {
		return err
	}

	summary := calculator.ComputeProjection(*inputs)
	out := cmd.OutOrStdout()
	reportService := service.NewReportService()

	switch flagFormat {
	case "table":
		_, err = fmt.Fprintln(out, renderProjection(summary))
	case "csv":
		var b []byte
		b, err = reportService.RenderCSV(&summary)
		if err == nil {
			_, err = out.Write(b)
		}
	case "html":
		var b []byte
		b, err = reportService.RenderHTML(&summary, "")
		if err == nil {
			_, err = out.Write(b)
		}
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(summary)
	default:
		return fmt.Errorf("unknown format %q", flagFormat)
	}

	return err
}

func renderProjection(summary domain.ProjectionSummary) string {
	rows := make([][]string, 0, len(summary.Projections))
	for _, p := range summary.Projections {
		rows = append(rows, []string{
			strconv.Itoa(p.Month),
			service.FormatMoney(p.Revenue),
			service.FormatMoney(p.Costs),
			service.FormatMoney(p.Profit),
			service.FormatMoney(p.CumulativeProfit),
			service.FormatMoney(p.NetProfit),
		})
	}

	return renderTitle("PROFIT PROJECTION  6 months") + "\n\n" +
		renderTable(table{
			Headers: []string{"Month", "Revenue", "Costs", "Profit", "Cumulative", "Net"},
			Rows:    rows,
		}) + "\n" +
		renderKeyValues([][2]string{
			{"ROI", summary.Roi.StringFixed(2) + "%"},
			{"Total profit", service.FormatMoney(summary.TotalProfit)},
			{"Break-even month", summary.BreakEvenLabel()},
			{"Total revenue", service.FormatMoney(summary.Aggregates.TotalRevenue6m)},
			{"Total costs", service.FormatMoney(summary.Aggregates.TotalCosts6m)},
		})
}
