package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielcooke/planscan/internal/cli"
	"github.com/danielcooke/planscan/internal/db"
	"github.com/danielcooke/planscan/internal/repository"
	"github.com/danielcooke/planscan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.planscan/planscan.db
	dbPath := os.Getenv("PLANSCAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".planscan", "planscan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	runRepo := repository.NewSQLiteRunRepo(database)

	app := &cli.App{
		Analysis: service.NewAnalysisService(runRepo),
		Validate: service.NewValidationService(),
		History:  service.NewHistoryService(runRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
