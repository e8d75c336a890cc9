package service

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"profitcalc/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

var (
	ErrNoCalculationData = errors.New("No calculation data available for export.")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

type ExportFormat string

const (
	// pdf is what the calculator form calls the printable document; it is
	// served as a standalone html page
	ExportFormatPdf ExportFormat = "pdf"
	ExportFormatCsv ExportFormat = "csv"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case ExportFormatPdf:
		return ExportFormatPdf, nil
	case ExportFormatCsv:
		return ExportFormatCsv, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

type Report struct {
	ContentType string
	Filename    string
	Body        []byte
}

// ReportService turns an already computed projection into downloadable
// artifacts. It never recomputes anything.
type ReportService interface {
	Render(format ExportFormat, summary *domain.ProjectionSummary, preparedFor string) (*Report, error)
	RenderCSV(summary *domain.ProjectionSummary) ([]byte, error)
	RenderHTML(summary *domain.ProjectionSummary, preparedFor string) ([]byte, error)
	ParseCSV(b []byte) ([]domain.PeriodProjection, error)
}

type reportServiceHandler struct {
	htmlTemplate *template.Template
}

func NewReportService() ReportService {
	return reportServiceHandler{
		htmlTemplate: template.Must(
			template.New("report").
				Funcs(template.FuncMap{"money": FormatMoney}).
				Parse(reportTemplate),
		),
	}
}

func checkSummary(summary *domain.ProjectionSummary) error {
	if summary == nil || !summary.IsComplete() {
		return ErrNoCalculationData
	}
	return nil
}

func (h reportServiceHandler) Render(format ExportFormat, summary *domain.ProjectionSummary, preparedFor string) (*Report, error) {
	switch format {
	case ExportFormatCsv:
		body, err := h.RenderCSV(summary)
		if err != nil {
			return nil, err
		}
		return &Report{
			ContentType: "text/csv",
			Filename:    "profit-prediction-report.csv",
			Body:        body,
		}, nil
	case ExportFormatPdf:
		body, err := h.RenderHTML(summary, preparedFor)
		if err != nil {
			return nil, err
		}
		return &Report{
			ContentType: "text/html; charset=utf-8",
			Filename:    "profit-prediction-report.html",
			Body:        body,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// csvAmount writes amounts with exactly two decimals
type csvAmount decimal.Decimal

func (a csvAmount) MarshalCSV() (string, error) {
	return decimal.Decimal(a).StringFixed(2), nil
}

func (a *csvAmount) UnmarshalCSV(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = csvAmount(d)
	return nil
}

type projectionCsvRow struct {
	Month            int       `csv:"Month"`
	Revenue          csvAmount `csv:"Revenue"`
	Costs            csvAmount `csv:"Costs"`
	Profit           csvAmount `csv:"Profit"`
	CumulativeProfit csvAmount `csv:"Cumulative Profit"`
	NetProfit        csvAmount `csv:"Net Profit"`
}

func (h reportServiceHandler) RenderCSV(summary *domain.ProjectionSummary) ([]byte, error) {
	if err := checkSummary(summary); err != nil {
		return nil, err
	}

	rows := make([]projectionCsvRow, 0, len(summary.Projections))
	for _, p := range summary.Projections {
		rows = append(rows, projectionCsvRow{
			Month:            p.Month,
			Revenue:          csvAmount(p.Revenue),
			Costs:            csvAmount(p.Costs),
			Profit:           csvAmount(p.Profit),
			CumulativeProfit: csvAmount(p.CumulativeProfit),
			NetProfit:        csvAmount(p.NetProfit),
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to write csv report: %w", err)
	}

	return out, nil
}

// ParseCSV reads back a report produced by RenderCSV
func (h reportServiceHandler) ParseCSV(b []byte) ([]domain.PeriodProjection, error) {
	rows := []projectionCsvRow{}
	if err := gocsv.UnmarshalBytes(b, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse csv report: %w", err)
	}

	out := make([]domain.PeriodProjection, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.PeriodProjection{
			Month:            r.Month,
			Revenue:          decimal.Decimal(r.Revenue),
			Costs:            decimal.Decimal(r.Costs),
			Profit:           decimal.Decimal(r.Profit),
			CumulativeProfit: decimal.Decimal(r.CumulativeProfit),
			NetProfit:        decimal.Decimal(r.NetProfit),
		})
	}

	return out, nil
}

type reportTemplateData struct {
	PreparedFor    string
	Roi            string
	TotalProfit    decimal.Decimal
	BreakEvenLabel string
	Projections    []domain.PeriodProjection
	Aggregates     domain.ProjectionAggregates
}

func (h reportServiceHandler) RenderHTML(summary *domain.ProjectionSummary, preparedFor string) ([]byte, error) {
	if err := checkSummary(summary); err != nil {
		return nil, err
	}

	data := reportTemplateData{
		PreparedFor:    strings.TrimSpace(preparedFor),
		Roi:            summary.Roi.StringFixed(2),
		TotalProfit:    summary.TotalProfit,
		BreakEvenLabel: summary.BreakEvenLabel(),
		Projections:    summary.Projections,
		Aggregates:     summary.Aggregates,
	}

	buf := &bytes.Buffer{}
	if err := h.htmlTemplate.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("failed to render html report: %w", err)
	}

	return buf.Bytes(), nil
}

// FormatMoney renders an amount as dollars with thousands separators,
// eg -1594.26 -> -$1,594.26
func FormatMoney(d decimal.Decimal) string {
	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	abs := rounded.Abs()
	cents := abs.StringFixed(2)
	return sign + "$" + humanize.BigComma(abs.Truncate(0).BigInt()) + cents[strings.LastIndex(cents, "."):]
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Profit Prediction Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
        .summary { background-color: #f9f9f9; padding: 15px; margin: 20px 0; }
    </style>
</head>
<body>
    <h1>Profit Prediction Report</h1>
    {{- if .PreparedFor}}
    <p>Prepared for {{.PreparedFor}}</p>
    {{- end}}

    <div class="summary">
        <h2>Summary</h2>
        <p><strong>ROI:</strong> {{.Roi}}%</p>
        <p><strong>Total Profit (6 months):</strong> {{money .TotalProfit}}</p>
        <p><strong>Break-even Month:</strong> {{.BreakEvenLabel}}</p>
        <p><strong>Initial Investment:</strong> {{money .Aggregates.InitialInvestment}}</p>
        <p><strong>Total Revenue (6 months):</strong> {{money .Aggregates.TotalRevenue6m}}</p>
        <p><strong>Total Costs (6 months):</strong> {{money .Aggregates.TotalCosts6m}}</p>
        <p><strong>Monthly Growth Rate:</strong> {{.Aggregates.GrowthRatePercent}}%</p>
    </div>

    <table>
        <tr>
            <th>Month</th>
            <th>Revenue</th>
            <th>Costs</th>
            <th>Profit</th>
            <th>Cumulative Profit</th>
            <th>Net Profit</th>
        </tr>
        {{- range .Projections}}
        <tr>
            <td>{{.Month}}</td>
            <td>{{money .Revenue}}</td>
            <td>{{money .Costs}}</td>
            <td>{{money .Profit}}</td>
            <td>{{money .CumulativeProfit}}</td>
            <td>{{money .NetProfit}}</td>
        </tr>
        {{- end}}
    </table>
</body>
</html>
`
