package repository

// PostgresSchemaSQL is the DDL the jet models in internal/db were
// generated from. Inputs are validated to fit numeric(15,2); roi and
// profit compound from them and have no fixed precision.
const PostgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS profit_calculation (
    calculation_id      UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_name           VARCHAR(100) NOT NULL,
    user_email          VARCHAR(100) NOT NULL,
    company_name        VARCHAR(100) NOT NULL DEFAULT '',
    initial_investment  NUMERIC(15,2) NOT NULL,
    monthly_revenue     NUMERIC(15,2) NOT NULL,
    monthly_costs       NUMERIC(15,2) NOT NULL,
    growth_rate         NUMERIC(7,2) NOT NULL,
    calculated_roi      NUMERIC NOT NULL,
    projected_profit    NUMERIC NOT NULL,
    break_even_month    INTEGER NOT NULL,
    calculation_date    TIMESTAMPTZ NOT NULL DEFAULT now(),
    user_ip             VARCHAR(45) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_profit_calculation_date ON profit_calculation(calculation_date);

CREATE TABLE IF NOT EXISTS api_request (
    request_id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    ip_address          TEXT,
    method              TEXT NOT NULL,
    route               TEXT NOT NULL,
    request_body        TEXT,
    start_ts            TIMESTAMP NOT NULL,
    duration_ms         BIGINT,
    status_code         INTEGER,
    response_body       TEXT
);
`

const sqliteSchemaSQL = `
CREATE TABLE IF NOT EXISTS profit_calculation (
    calculation_id      TEXT PRIMARY KEY,
    user_name           TEXT NOT NULL,
    user_email          TEXT NOT NULL,
    company_name        TEXT NOT NULL DEFAULT '',
    initial_investment  TEXT NOT NULL,
    monthly_revenue     TEXT NOT NULL,
    monthly_costs       TEXT NOT NULL,
    growth_rate         TEXT NOT NULL,
    calculated_roi      TEXT NOT NULL,
    projected_profit    TEXT NOT NULL,
    break_even_month    INTEGER NOT NULL,
    calculation_date    TEXT NOT NULL,
    user_ip             TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_profit_calculation_date ON profit_calculation(calculation_date);

CREATE TABLE IF NOT EXISTS api_request (
    request_id          TEXT PRIMARY KEY,
    ip_address          TEXT,
    method              TEXT NOT NULL,
    route               TEXT NOT NULL,
    request_body        TEXT,
    start_ts            TEXT NOT NULL,
    duration_ms         INTEGER,
    status_code         INTEGER,
    response_body       TEXT
);
`
