package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/stockroomhq/stockroom-api/migrations"
)

// runMigrations applies any pending schema migrations from the embedded
// migration files. Goose tracks applied versions in goose_db_version.
func runMigrations(db *sql.DB, log *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseSlogLogger{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// gooseSlogLogger adapts goose's logger interface onto slog.
type gooseSlogLogger struct {
	log *slog.Logger
}

func (l *gooseSlogLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...), slog.String("source", "goose"))
}

func (l *gooseSlogLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...), slog.String("source", "goose"))
}
