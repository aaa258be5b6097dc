// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the service and applies it
// with goose. The schema consists of the users, items, reviews and comments
// tables together with their uniqueness, check and cascade constraints.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration to db.
func Migrate(db *sql.DB) error {
	if err := prepare(db); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Reset rolls back every applied migration. Used by integration tests to
// start from an empty schema.
func Reset(db *sql.DB) error {
	if err := prepare(db); err != nil {
		return err
	}

	if err := goose.Reset(db, "."); err != nil {
		return fmt.Errorf("migration reset error: %w", err)
	}

	return nil
}

func prepare(db *sql.DB) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	return nil
}
