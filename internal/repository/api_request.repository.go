package repository

import (
	"context"
	"database/sql"
	"fmt"

	"profitcalc/internal/db/models/postgres/public/model"
	"profitcalc/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type ApiRequestRepository interface {
	Add(ctx context.Context, ar model.APIRequest) (*model.APIRequest, error)
	Update(ctx context.Context, ar model.APIRequest) error
}

type apiRequestRepositoryHandler struct {
	Db *sql.DB
}

func NewApiRequestRepository(db *sql.DB) ApiRequestRepository {
	return apiRequestRepositoryHandler{
		Db: db,
	}
}

func (h apiRequestRepositoryHandler) Add(ctx context.Context, ar model.APIRequest) (*model.APIRequest, error) {
	query := table.APIRequest.
		INSERT(table.APIRequest.MutableColumns).
		MODEL(ar).
		RETURNING(table.APIRequest.AllColumns)

	out := &model.APIRequest{}
	err := query.QueryContext(ctx, h.Db, out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert API request: %w", err)
	}

	return out, nil
}

func (h apiRequestRepositoryHandler) Update(ctx context.Context, ar model.APIRequest) error {
	query := updateApiRequestQuery(ar)

	_, err := query.ExecContext(ctx, h.Db)
	if err != nil {
		return fmt.Errorf("failed to update API request: %w", err)
	}

	return nil
}

func updateApiRequestQuery(ar model.APIRequest) postgres.UpdateStatement {
	return table.APIRequest.
		UPDATE(table.APIRequest.DurationMs, table.APIRequest.StatusCode, table.APIRequest.ResponseBody).
		MODEL(ar).
		WHERE(table.APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))
}
