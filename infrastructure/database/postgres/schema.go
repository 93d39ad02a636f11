package postgres

import (
	"context"
)

// Cada instrução é idempotente para permitir reexecução
var SchemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id         VARCHAR(32)  PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		concept    TEXT         NOT NULL,
		audience   TEXT         NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS experiments (
		id                        VARCHAR(32)    PRIMARY KEY,
		product_id                VARCHAR(32)    NOT NULL REFERENCES products(id),
		total_budget              NUMERIC(14, 2) NOT NULL,
		daily_budget              NUMERIC(14, 2) NOT NULL,
		target_cpl                NUMERIC(14, 2) NOT NULL,
		min_leads                 INTEGER        NOT NULL DEFAULT 0,
		opt_enabled               BOOLEAN        NOT NULL DEFAULT FALSE,
		opt_interval_hours        INTEGER        NOT NULL DEFAULT 24,
		opt_min_impressions       BIGINT         NOT NULL DEFAULT 1000,
		opt_cpl_multiplier        NUMERIC(6, 2)  NOT NULL DEFAULT 1.5,
		opt_min_leads             INTEGER        NOT NULL DEFAULT 3,
		opt_auto_relaunch         BOOLEAN        NOT NULL DEFAULT TRUE,
		opt_max_variants          INTEGER        NOT NULL DEFAULT 10,
		opt_pause_underperforming BOOLEAN        NOT NULL DEFAULT TRUE,
		status                    VARCHAR(16)    NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'running', 'paused', 'completed')),
		last_evaluated_at         TIMESTAMPTZ,
		next_evaluated_at         TIMESTAMPTZ,
		created_at                TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
		updated_at                TIMESTAMPTZ    NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_experiments_due
		ON experiments (next_evaluated_at)
		WHERE status = 'running' AND opt_enabled`,
	`CREATE TABLE IF NOT EXISTS variants (
		id              VARCHAR(32)  PRIMARY KEY,
		experiment_id   VARCHAR(32)  NOT NULL REFERENCES experiments(id),
		product_id      VARCHAR(32)  NOT NULL REFERENCES products(id),
		headline        VARCHAR(255) NOT NULL,
		body            TEXT         NOT NULL,
		call_to_action  VARCHAR(64)  NOT NULL,
		image_url       TEXT         NOT NULL DEFAULT '',
		ext_campaign_id VARCHAR(64)  NOT NULL DEFAULT '',
		ext_adset_id    VARCHAR(64)  NOT NULL DEFAULT '',
		ext_creative_id VARCHAR(64)  NOT NULL DEFAULT '',
		ext_ad_id       VARCHAR(64)  NOT NULL DEFAULT '',
		status          VARCHAR(16)  NOT NULL DEFAULT 'active'
			CHECK (status IN ('draft', 'active', 'paused', 'deleted')),
		paused_by       VARCHAR(16)
			CHECK (paused_by IN ('manual', 'optimizer')),
		paused_at       TIMESTAMPTZ,
		created_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_variants_experiment ON variants (experiment_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_variants_status ON variants (status)`,
	`CREATE TABLE IF NOT EXISTS metrics_snapshots (
		id          BIGSERIAL      PRIMARY KEY,
		variant_id  VARCHAR(32)    NOT NULL REFERENCES variants(id),
		impressions BIGINT         NOT NULL,
		clicks      BIGINT         NOT NULL,
		leads       BIGINT         NOT NULL,
		spend       NUMERIC(14, 2) NOT NULL,
		ctr         DOUBLE PRECISION,
		cpl         DOUBLE PRECISION,
		cpc         DOUBLE PRECISION,
		captured_at TIMESTAMPTZ    NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_metrics_snapshots_variant ON metrics_snapshots (variant_id, id DESC)`,
}

// ApplySchema aplica SchemaStatements em uma única transação
func (c *Connection) ApplySchema(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx Queryer) error {
		for _, stmt := range SchemaStatements {
			if _, err := tx.Exec(stmt); err != nil {
				return err
			}
		}
		return nil
	})
}
