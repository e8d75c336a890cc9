package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"profitcalc/internal/db/models/postgres/public/model"
	"profitcalc/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

const defaultListLimit = 50

// CalculationCursor is the last row of a page in newest first order
type CalculationCursor struct {
	CalculationDate time.Time
	CalculationID   uuid.UUID
}

type CalculationListFilter struct {
	Limit  int
	Offset int
	Since  *time.Time
	// Until skips rows stored after a scan started
	Until *time.Time
	// After continues a scan from the previous page instead of Offset
	After *CalculationCursor
}

func (f CalculationListFilter) limit() int {
	if f.Limit <= 0 {
		return defaultListLimit
	}
	return f.Limit
}

// CalculationRepository archives every projection a user runs. The
// service never reads a projection back through it; List exists for
// the admin views.
type CalculationRepository interface {
	Add(ctx context.Context, c model.ProfitCalculation) (*model.ProfitCalculation, error)
	List(ctx context.Context, filter CalculationListFilter) ([]model.ProfitCalculation, error)
}

type calculationRepositoryHandler struct {
	Db *sql.DB
}

func NewCalculationRepository(db *sql.DB) CalculationRepository {
	return calculationRepositoryHandler{
		Db: db,
	}
}

func (h calculationRepositoryHandler) Add(ctx context.Context, c model.ProfitCalculation) (*model.ProfitCalculation, error) {
	query := addCalculationQuery(c)

	out := model.ProfitCalculation{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert profit calculation: %w", err)
	}

	return &out, nil
}

func (h calculationRepositoryHandler) List(ctx context.Context, filter CalculationListFilter) ([]model.ProfitCalculation, error) {
	query := listCalculationsQuery(filter)

	out := []model.ProfitCalculation{}
	err := query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list profit calculations: %w", err)
	}

	return out, nil
}

func addCalculationQuery(c model.ProfitCalculation) postgres.InsertStatement {
	t := table.ProfitCalculation
	return t.INSERT(t.MutableColumns).
		MODEL(c).
		RETURNING(t.AllColumns)
}

func listCalculationsQuery(filter CalculationListFilter) postgres.SelectStatement {
	t := table.ProfitCalculation
	query := t.SELECT(t.AllColumns).
		ORDER_BY(t.CalculationDate.DESC(), t.CalculationID.DESC()).
		LIMIT(int64(filter.limit()))

	conditions := []postgres.BoolExpression{}
	if filter.Since != nil {
		conditions = append(conditions, t.CalculationDate.GT_EQ(postgres.TimestampzT(*filter.Since)))
	}
	if filter.Until != nil {
		conditions = append(conditions, t.CalculationDate.LT_EQ(postgres.TimestampzT(*filter.Until)))
	}
	if filter.After != nil {
		afterDate := postgres.TimestampzT(filter.After.CalculationDate)
		conditions = append(conditions, postgres.OR(
			t.CalculationDate.LT(afterDate),
			t.CalculationDate.EQ(afterDate).AND(t.CalculationID.LT(postgres.UUID(filter.After.CalculationID))),
		))
	} else if filter.Offset > 0 {
		query = query.OFFSET(int64(filter.Offset))
	}

	if len(conditions) > 0 {
		query = query.WHERE(postgres.AND(conditions...))
	}

	return query
}
