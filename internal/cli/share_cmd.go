package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/nmorrow/spectra/internal/share"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

func newShareCmd(app *App) *cobra.Command {
	var name string
	var withQR bool

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Build a shareable profile link",
		Long: `Encode a profile into a stateless share URL. The link carries the six
scores (and an optional display name) as query parameters; nothing is
stored anywhere.`,
	}
	pf := addProfileFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		profile, err := pf.resolve(cmd, app)
		if err != nil {
			return err
		}

		// Offer a name prompt when none was given on an interactive run.
		if !cmd.Flags().Changed("name") && app.IsInteractive != nil && app.IsInteractive() {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Display name (optional)").
					Description("Shown to whoever opens the link. Leave blank to share anonymously.").
					Value(&name),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("reading display name: %w", err)
			}
		}

		link := share.Encode(app.BaseURL, profile, name)
		fmt.Println(link)

		if withQR {
			qr, err := qrcode.New(link, qrcode.Medium)
			if err != nil {
				return fmt.Errorf("rendering QR code: %w", err)
			}
			fmt.Print(qr.ToSmallString(false))
		}
		return nil
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name to embed in the link")
	cmd.Flags().BoolVar(&withQR, "qr", false, "Also print the link as a QR code")
	return cmd
}
