package cli

import (
	"fmt"

	"github.com/nmorrow/spectra/internal/service"
	"github.com/nmorrow/spectra/internal/share"
	"github.com/spf13/cobra"
)

// App holds the services and environment the CLI commands run against.
type App struct {
	Snapshots service.SnapshotService

	// BaseURL is the origin+path share links are built on.
	BaseURL string

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "spectra" command and registers all
// subcommands against the provided App. Run bare in a terminal it opens the
// interactive editor; run with a share URL it opens the read-only viewer.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "spectra [share-url]",
		Short: "Visualize a neurodiversity profile and evidence-based supports",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				payload := share.DecodeURL(args[0])
				if payload == nil {
					return fmt.Errorf("%q is not a shared profile link", args[0])
				}
				return runViewer(app, payload)
			}
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runEditor(app)
		},
	}

	root.AddCommand(
		newShowCmd(app),
		newViewCmd(app),
		newShareCmd(app),
		newExportCmd(app),
		newSnapshotCmd(app),
	)

	return root
}
