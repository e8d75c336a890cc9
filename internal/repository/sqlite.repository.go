package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"profitcalc/internal/db/models/postgres/public/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver
)

const (
	sqliteMemory = ":memory:"
	// fixed width so text ordering matches time ordering
	sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// OpenSqlite opens or creates the sqlite database used when no postgres
// is configured. Decimals are stored as text so nothing is lost to
// float conversion.
func OpenSqlite(dbPath string) (*sql.DB, error) {
	dsn := sqliteMemory
	if dbPath != sqliteMemory {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create db dir: %w", err)
		}
		dsn = dbPath + "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// one connection keeps :memory: databases shared and serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

type sqliteCalculationRepositoryHandler struct {
	Db *sql.DB
}

func NewSqliteCalculationRepository(db *sql.DB) CalculationRepository {
	return sqliteCalculationRepositoryHandler{
		Db: db,
	}
}

func (h sqliteCalculationRepositoryHandler) Add(ctx context.Context, c model.ProfitCalculation) (*model.ProfitCalculation, error) {
	if c.CalculationID == uuid.Nil {
		c.CalculationID = uuid.New()
	}
	if c.CalculationDate.IsZero() {
		c.CalculationDate = time.Now().UTC()
	}

	_, err := h.Db.ExecContext(ctx, `INSERT INTO profit_calculation
		(calculation_id, user_name, user_email, company_name, initial_investment,
		 monthly_revenue, monthly_costs, growth_rate, calculated_roi, projected_profit,
		 break_even_month, calculation_date, user_ip)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.CalculationID.String(), c.UserName, c.UserEmail, c.CompanyName,
		c.InitialInvestment.String(), c.MonthlyRevenue.String(), c.MonthlyCosts.String(),
		c.GrowthRate.String(), c.CalculatedRoi.String(), c.ProjectedProfit.String(),
		c.BreakEvenMonth, c.CalculationDate.UTC().Format(sqliteTimeLayout), c.UserIP,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert profit calculation: %w", err)
	}

	return &c, nil
}

func (h sqliteCalculationRepositoryHandler) List(ctx context.Context, filter CalculationListFilter) ([]model.ProfitCalculation, error) {
	query := `SELECT calculation_id, user_name, user_email, company_name, initial_investment,
		monthly_revenue, monthly_costs, growth_rate, calculated_roi, projected_profit,
		break_even_month, calculation_date, user_ip
		FROM profit_calculation`
	conditions := []string{}
	args := []any{}
	if filter.Since != nil {
		conditions = append(conditions, "calculation_date >= ?")
		args = append(args, filter.Since.UTC().Format(sqliteTimeLayout))
	}
	if filter.Until != nil {
		conditions = append(conditions, "calculation_date <= ?")
		args = append(args, filter.Until.UTC().Format(sqliteTimeLayout))
	}
	offset := filter.Offset
	if filter.After != nil {
		afterDate := filter.After.CalculationDate.UTC().Format(sqliteTimeLayout)
		conditions = append(conditions, "(calculation_date < ? OR (calculation_date = ? AND calculation_id < ?))")
		args = append(args, afterDate, afterDate, filter.After.CalculationID.String())
		offset = 0
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY calculation_date DESC, calculation_id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.limit(), offset)

	rows, err := h.Db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list profit calculations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []model.ProfitCalculation{}
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}

	return out, rows.Err()
}

func scanCalculation(rows *sql.Rows) (*model.ProfitCalculation, error) {
	var (
		c                                       model.ProfitCalculation
		id, date                                string
		investment, revenue, costs, growth, roi string
		profit                                  string
	)
	err := rows.Scan(
		&id, &c.UserName, &c.UserEmail, &c.CompanyName, &investment,
		&revenue, &costs, &growth, &roi, &profit,
		&c.BreakEvenMonth, &date, &c.UserIP,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profit calculation: %w", err)
	}

	c.CalculationID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calculation id %s: %w", id, err)
	}
	c.CalculationDate, err = time.Parse(sqliteTimeLayout, date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calculation date %s: %w", date, err)
	}

	fields := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{investment, &c.InitialInvestment},
		{revenue, &c.MonthlyRevenue},
		{costs, &c.MonthlyCosts},
		{growth, &c.GrowthRate},
		{roi, &c.CalculatedRoi},
		{profit, &c.ProjectedProfit},
	}
	for _, f := range fields {
		*f.dst, err = decimal.NewFromString(f.raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse decimal %q: %w", f.raw, err)
		}
	}

	return &c, nil
}

type sqliteApiRequestRepositoryHandler struct {
	Db *sql.DB
}

func NewSqliteApiRequestRepository(db *sql.DB) ApiRequestRepository {
	return sqliteApiRequestRepositoryHandler{
		Db: db,
	}
}

func (h sqliteApiRequestRepositoryHandler) Add(ctx context.Context, ar model.APIRequest) (*model.APIRequest, error) {
	if ar.RequestID == uuid.Nil {
		ar.RequestID = uuid.New()
	}

	_, err := h.Db.ExecContext(ctx, `INSERT INTO api_request
		(request_id, ip_address, method, route, request_body, start_ts)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ar.RequestID.String(), ar.IPAddress, ar.Method, ar.Route, ar.RequestBody,
		ar.StartTs.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert API request: %w", err)
	}

	return &ar, nil
}

func (h sqliteApiRequestRepositoryHandler) Update(ctx context.Context, ar model.APIRequest) error {
	_, err := h.Db.ExecContext(ctx, `UPDATE api_request
		SET duration_ms = ?, status_code = ?, response_body = ?
		WHERE request_id = ?`,
		ar.DurationMs, ar.StatusCode, ar.ResponseBody, ar.RequestID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update API request: %w", err)
	}

	return nil
}
