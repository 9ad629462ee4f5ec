package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/nmorrow/spectra/internal/cli/formatter"
	"github.com/nmorrow/spectra/internal/recommend"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage locally saved profiles",
	}
	cmd.AddCommand(
		newSnapshotSaveCmd(app),
		newSnapshotListCmd(app),
		newSnapshotShowCmd(app),
		newSnapshotDeleteCmd(app),
	)
	return cmd
}

func newSnapshotSaveCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the given profile locally",
	}
	pf := addProfileFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		profile, err := pf.resolve(cmd, app)
		if err != nil {
			return err
		}

		if name == "" && app.IsInteractive != nil && app.IsInteractive() {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Snapshot name").Value(&name),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("reading snapshot name: %w", err)
			}
		}

		snap, err := app.Snapshots.Save(cmd.Context(), name, profile)
		if err != nil {
			return err
		}
		fmt.Printf("Saved %q (%s)\n", snap.Name, snap.ID)
		return nil
	}

	cmd.Flags().StringVar(&name, "name", "", "Snapshot name")
	return cmd
}

func newSnapshotListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshots, err := app.Snapshots.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSnapshotList(snapshots))
			return nil
		},
	}
}

func newSnapshotShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-name>",
		Short: "Show a saved snapshot with its strategies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Snapshots.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(formatter.StyleBold.Render(snap.Name))
			fmt.Print(formatter.FormatProfile(snap.Profile))
			fmt.Println()
			fmt.Print(formatter.FormatRecommendations(recommend.Generate(snap.Profile)))
			return nil
		},
	}
}

func newSnapshotDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id-or-name>",
		Short: "Delete a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Snapshots.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
