package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/term-timetable/internal/config"
	"github.com/jakechorley/term-timetable/pkg/clients/sheetsclient"
	"github.com/jakechorley/term-timetable/pkg/db"
	"github.com/jakechorley/term-timetable/pkg/postgres"
	"github.com/jakechorley/term-timetable/pkg/sheetssql"
)

// AppContext holds the application dependencies shared across all commands.
// Stores and clients are opened on first use so commands that never touch
// Google or PostgreSQL do not need credentials.
type AppContext struct {
	Env    string
	Cfg    *config.Config
	Logger *zap.Logger
	Ctx    context.Context

	sheetsClient *sheetsclient.Client
	postgresDB   *postgres.DB
	store        db.CurriculumStore
}

// SheetsClient returns the Google Sheets client, running the OAuth flow if needed
func (app *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if app.sheetsClient != nil {
		return app.sheetsClient, nil
	}

	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(app.Ctx, oauthCfg, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	app.Logger.Debug("Sheets client initialized successfully")

	app.sheetsClient = client
	return client, nil
}

// PostgresDB returns the PostgreSQL connection pool for the configured database URL
func (app *AppContext) PostgresDB() (*postgres.DB, error) {
	if app.postgresDB != nil {
		return app.postgresDB, nil
	}
	if app.Cfg.Curriculum.DatabaseURL == "" {
		return nil, fmt.Errorf("curriculum.databaseURL is not configured (or set %s)", config.DatabaseURLEnv)
	}

	app.Logger.Info("Connecting to PostgreSQL")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.Curriculum.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	app.postgresDB = database
	return database, nil
}

// CurriculumStore opens the configured curriculum source
func (app *AppContext) CurriculumStore() (db.CurriculumStore, error) {
	if app.store != nil {
		return app.store, nil
	}

	source := app.Cfg.Curriculum.Source
	app.Logger.Debug("Opening curriculum source", zap.String("source", string(source)))

	switch source {
	case config.SourceFile:
		store, err := db.NewFileStore(app.Cfg.CurriculumPath())
		if err != nil {
			return nil, err
		}
		app.store = store

	case config.SourcePostgres:
		database, err := app.PostgresDB()
		if err != nil {
			return nil, err
		}
		app.store = database

	case config.SourceSheets:
		client, err := app.SheetsClient()
		if err != nil {
			return nil, err
		}

		schema, err := db.CurriculumSchema()
		if err != nil {
			return nil, fmt.Errorf("failed to create database schema: %w", err)
		}
		app.Logger.Debug("Database schema created", zap.Int("tables", len(schema.Tables)))

		app.Logger.Info("Connecting to curriculum spreadsheet", zap.String("spreadsheet_id", app.Cfg.Curriculum.SpreadsheetID))
		ssqlDB, err := sheetssql.NewDB(client, app.Cfg.Curriculum.SpreadsheetID, schema)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		app.store = db.NewDB(ssqlDB)

	default:
		return nil, fmt.Errorf("unknown curriculum source %q", source)
	}

	return app.store, nil
}

// Close releases any open connections
func (app *AppContext) Close() {
	if app.postgresDB != nil {
		app.postgresDB.Close()
		app.postgresDB = nil
	}
}
