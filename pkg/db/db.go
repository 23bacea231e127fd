package db

import (
	"context"
	"fmt"

	"github.com/finpulse/insights/pkg/db/clickhouse"
	"github.com/finpulse/insights/pkg/utils"
	"go.uber.org/zap"
)

// InsightsDB holds the shared connection to the fact-table database. The fact
// tables are read-only from the analytics engine's perspective; every derived
// table is computed on demand and never written back.
type InsightsDB struct {
	clickhouse.Client
	Name string
}

// New connects to the insights database named by INSIGHTS_DB (default
// "finpulse"). The connection is acquired once and reused across all analyses.
func New(ctx context.Context, logger *zap.Logger) (*InsightsDB, error) {
	dbName := clickhouse.SanitizeName(utils.Env("INSIGHTS_DB", "finpulse"))

	client, err := clickhouse.New(ctx, logger.With(zap.String("db", dbName)), dbName)
	if err != nil {
		return nil, err
	}

	return &InsightsDB{
		Client: client,
		Name:   dbName,
	}, nil
}

// Close terminates the underlying ClickHouse connection.
func (db *InsightsDB) Close() error {
	return db.Db.Close()
}

// DatabaseName returns the ClickHouse database backing the fact tables.
func (db *InsightsDB) DatabaseName() string {
	return db.Name
}

// Ping validates the shared connection is still alive.
func (db *InsightsDB) Ping(ctx context.Context) error {
	if db.Db == nil {
		return ErrNotConnected
	}
	return db.Db.Ping(ctx)
}

// factTables maps table name to column DDL. Grain per table:
//   - aggregated_*: one row per (state, year, quarter, category)
//   - map_*: one row per (state, district, year, quarter)
//   - top_*: one row per (state, pincode, year, quarter)
var factTables = map[string]string{
	"aggregated_transaction": `
		state String,
		year UInt16,
		quarter UInt8,
		transaction_type String,
		transaction_count UInt64,
		transaction_amount Float64`,
	"aggregated_user": `
		state String,
		year UInt16,
		quarter UInt8,
		brand String,
		device_count UInt64,
		market_share_percentage Float64`,
	"aggregated_insurance": `
		state String,
		year UInt16,
		quarter UInt8,
		insurance_type String,
		insurance_count UInt64,
		insurance_amount Float64`,
	"map_transaction": `
		state String,
		district String,
		year UInt16,
		quarter UInt8,
		count UInt64,
		amount Float64`,
	"map_user": `
		state String,
		district String,
		year UInt16,
		quarter UInt8,
		registered_users UInt64,
		app_opens UInt64`,
	"map_insurance": `
		state String,
		district String,
		year UInt16,
		quarter UInt8,
		insurance_count UInt64,
		insurance_amount Float64`,
	"top_transaction": `
		state String,
		pincode String,
		year UInt16,
		quarter UInt8,
		transaction_count UInt64,
		transaction_amount Float64`,
	"top_user": `
		state String,
		pincode String,
		year UInt16,
		quarter UInt8,
		registered_users UInt64`,
	"top_insurance": `
		state String,
		pincode String,
		year UInt16,
		quarter UInt8,
		insurance_count UInt64,
		insurance_amount Float64`,
}

// orderingKeys gives each fact table a sorting key matching its grain.
var orderingKeys = map[string]string{
	"aggregated_transaction": "(state, year, quarter, transaction_type)",
	"aggregated_user":        "(state, year, quarter, brand)",
	"aggregated_insurance":   "(state, year, quarter, insurance_type)",
	"map_transaction":        "(state, district, year, quarter)",
	"map_user":               "(state, district, year, quarter)",
	"map_insurance":          "(state, district, year, quarter)",
	"top_transaction":        "(state, pincode, year, quarter)",
	"top_user":               "(state, pincode, year, quarter)",
	"top_insurance":          "(state, pincode, year, quarter)",
}

// InitializeDB ensures the database and every fact table exist. It is a
// bootstrap convenience, not a migration layer; all statements are idempotent.
func (db *InsightsDB) InitializeDB(ctx context.Context) error {
	if err := db.CreateDbIfNotExists(ctx, db.Name); err != nil {
		return fmt.Errorf("create database %s: %w", db.Name, err)
	}

	for table, columns := range factTables {
		query := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS "%s"."%s" (%s
			) ENGINE = MergeTree
			ORDER BY %s
		`, db.Name, table, columns, orderingKeys[table])

		if err := db.Exec(ctx, query); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
		db.Logger.Debug("Fact table ready", zap.String("table", table))
	}

	return nil
}

// selectRows runs query through the facade, scanning into dest. A missing
// connection surfaces as ErrNotConnected, a failed query as *QueryError;
// zero-row results are valid and leave dest empty.
func (db *InsightsDB) selectRows(ctx context.Context, dest interface{}, op, query string, args ...interface{}) error {
	if db.Db == nil {
		return ErrNotConnected
	}
	if err := db.Select(ctx, dest, query, args...); err != nil {
		return &QueryError{Op: op, Err: err}
	}
	return nil
}

// scanRow runs a single-row aggregate query into dest via ScanStruct.
func (db *InsightsDB) scanRow(ctx context.Context, dest interface{}, op, query string, args ...interface{}) error {
	if db.Db == nil {
		return ErrNotConnected
	}
	if err := db.QueryRow(ctx, query, args...).ScanStruct(dest); err != nil {
		return &QueryError{Op: op, Err: err}
	}
	return nil
}
