package cli

import (
	"fmt"

	"github.com/nmorrow/spectra/internal/cli/formatter"
	"github.com/nmorrow/spectra/internal/recommend"
	"github.com/nmorrow/spectra/internal/share"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <share-url>",
		Short: "Open a shared profile read-only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := share.DecodeURL(args[0])
			if payload == nil {
				return fmt.Errorf("%q is not a shared profile link", args[0])
			}
			return runViewer(app, payload)
		},
	}
}

// runViewer presents a decoded share payload: interactively when attached to
// a terminal, as a static report otherwise.
func runViewer(app *App, payload *share.Payload) error {
	if app.IsInteractive != nil && app.IsInteractive() {
		return runProfileTUI(newViewerModel(app, payload))
	}

	profile := payload.Profile.Normalize()
	if name := formatter.DisplayName(payload.Name); name != "" {
		fmt.Println(formatter.StyleBold.Render(name + "'s profile"))
	}
	fmt.Print(formatter.FormatProfile(profile))
	fmt.Println()
	fmt.Print(formatter.FormatRecommendations(recommend.Generate(profile)))
	return nil
}
