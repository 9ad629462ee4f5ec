package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/nmorrow/spectra/internal/cli"
	"github.com/nmorrow/spectra/internal/db"
	"github.com/nmorrow/spectra/internal/repository"
	"github.com/nmorrow/spectra/internal/service"
)

const defaultBaseURL = "https://spectra.app/profile"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Snapshot store path: env var or default ~/.spectra/spectra.db
	dbPath := os.Getenv("SPECTRA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".spectra", "spectra.db")
	}

	baseURL := os.Getenv("SPECTRA_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Snapshots: service.NewSnapshotService(repository.NewSQLiteSnapshotRepo(database)),
		BaseURL:   baseURL,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
