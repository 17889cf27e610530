package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"rosterd/adapters/memory"
	"rosterd/adapters/postgres"
	"rosterd/adapters/spreadsheet"
	"rosterd/adapters/transcribe"
	"rosterd/app"
	"rosterd/domain/classify"
	"rosterd/domain/score"
	"rosterd/internal/config"
	"rosterd/internal/wizard"
	"rosterd/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	ClassRepo    ports.ClassRepository
	FileRepo     ports.ImportFileRepository
	OverrideRepo ports.OverrideRepository

	// Adapters
	Reader      ports.SpreadsheetReader
	Transcriber ports.Transcriber

	// Wizard sessions
	Sessions *wizard.Manager

	// Services
	ImportService  *app.ImportService
	RosterService  *app.RosterService
	SummaryService *app.SummaryService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// InitWithDatabase initializes components that require database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}
	c.DB = db

	c.ClassRepo = postgres.NewClassRepository(db)
	c.FileRepo = postgres.NewImportFileRepository(db)
	c.OverrideRepo = memory.NewOverrideRepository()

	c.initShared()
	return nil
}

// InitInMemory wires map-backed repositories. Used by tests and local runs
// without a database.
func (c *Container) InitInMemory() {
	c.ClassRepo = memory.NewClassRepository()
	c.FileRepo = memory.NewImportFileRepository()
	c.OverrideRepo = memory.NewOverrideRepository()
	c.initShared()
}

func (c *Container) initShared() {
	c.Reader = spreadsheet.NewReader()
	c.Transcriber = transcribe.NewClient(transcribe.Config{
		BaseURL: c.Config.Transcribe.BaseURL,
		Timeout: c.Config.Transcribe.Timeout,
	})
	c.Sessions = wizard.NewManager()

	classifier := classify.NewDefault()
	normalizer := score.NewDefaultNormalizer()

	c.ImportService = app.NewImportService(c.Sessions, c.Reader, c.ClassRepo, c.FileRepo, c.Config.Import.PreviewRows)
	c.RosterService = app.NewRosterService(c.FileRepo, c.OverrideRepo, classifier)
	c.SummaryService = app.NewSummaryService(c.FileRepo, classifier, normalizer)
}
