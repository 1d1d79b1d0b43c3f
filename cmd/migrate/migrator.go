package main

import (
	"context"
	"database/sql"

	"tempmon/internal/migrate"
)

type migrator struct {
	conn *sql.DB
}

func (m migrator) Run(ctx context.Context) error {
	return migrate.Run(ctx, m.conn)
}

func (m migrator) Status(ctx context.Context) ([]migrate.Migration, error) {
	return migrate.Status(ctx, m.conn)
}
