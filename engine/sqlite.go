// Copyright 2026 The Optibench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/datagyver/optibench/taxi"
)

// SQLite aggregates by loading the trips into an in-memory SQLite
// database and running a GROUP BY query.
type SQLite struct{}

func (SQLite) Name() string { return "sqlite" }

func (SQLite) Aggregate(ctx context.Context, trips []taxi.Trip) (_ []DailyTotal, err error) {
	db, err := OpenMemory(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()
	if err := db.Insert(ctx, trips); err != nil {
		return nil, err
	}
	return db.Daily(ctx)
}

// A DB is an in-memory SQLite database holding trips.
// It is safe for concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB
}

const createTrips = `CREATE TABLE trips (
	pickup_us INTEGER NOT NULL,
	total_amount REAL NOT NULL
)`

// OpenMemory opens an empty in-memory database with a trips table.
func OpenMemory(ctx context.Context) (*DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, createTrips); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %v", err)
	}
	return &DB{sql: db}, nil
}

// Insert adds trips to the database in a single transaction.
func (db *DB) Insert(ctx context.Context, trips []taxi.Trip) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO trips (pickup_us, total_amount) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, t := range trips {
		if _, err := stmt.ExecContext(ctx, t.PickupAt.UnixMicro(), t.TotalAmount); err != nil {
			return fmt.Errorf("insert: %v", err)
		}
	}
	return tx.Commit()
}

// Count returns the number of trips in the database.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&n)
	return n, err
}

// dailyQuery floors pickup_us to whole days, also for pickups before
// the epoch.
const dailyQuery = `
SELECT
	(pickup_us - ((pickup_us % 86400000000) + 86400000000) % 86400000000) / 86400000000 AS day,
	SUM(total_amount),
	AVG(total_amount),
	COUNT(*)
FROM trips
GROUP BY day
ORDER BY day`

// Daily runs the per-day aggregation query.
func (db *DB) Daily(ctx context.Context) ([]DailyTotal, error) {
	rows, err := db.sql.QueryContext(ctx, dailyQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DailyTotal
	for rows.Next() {
		var d DailyTotal
		if err := rows.Scan(&d.Day, &d.Sum, &d.Mean, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Close closes the database and discards its contents.
func (db *DB) Close() error {
	return db.sql.Close()
}
