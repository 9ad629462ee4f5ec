package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/nmorrow/spectra/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, name, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a profile as CSV or plaintext",
	}
	pf := addProfileFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		profile, err := pf.resolve(cmd, app)
		if err != nil {
			return err
		}

		var content string
		switch format {
		case "csv":
			content = export.CSV(profile, name, time.Now())
		case "text":
			content = export.Plaintext(profile) + "\n"
		default:
			return fmt.Errorf("unknown format %q (want csv or text)", format)
		}

		if outPath == "" {
			fmt.Print(content)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Printf("Wrote %s\n", outPath)
		return nil
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or text")
	cmd.Flags().StringVar(&name, "name", "", "Display name for the report title")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
