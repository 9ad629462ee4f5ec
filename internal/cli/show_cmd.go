package cli

import (
	"fmt"

	"github.com/nmorrow/spectra/internal/cli/formatter"
	"github.com/nmorrow/spectra/internal/recommend"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a profile and its support strategies",
	}
	pf := addProfileFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		profile, err := pf.resolve(cmd, app)
		if err != nil {
			return err
		}
		fmt.Print(formatter.FormatProfile(profile))
		fmt.Println()
		fmt.Print(formatter.FormatRecommendations(recommend.Generate(profile)))
		return nil
	}
	return cmd
}
