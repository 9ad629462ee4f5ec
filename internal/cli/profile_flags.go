package cli

import (
	"fmt"

	"github.com/nmorrow/spectra/internal/domain"
	"github.com/nmorrow/spectra/internal/share"
	"github.com/spf13/cobra"
)

// profileFlags collects the per-metric score flags plus an optional snapshot
// reference the scores are layered on top of.
type profileFlags struct {
	scores map[domain.Metric]*int
	from   string
}

// addProfileFlags registers one flag per metric, named after its share
// short key (--fc, --so, ...), plus --from to start from a saved snapshot.
func addProfileFlags(cmd *cobra.Command) *profileFlags {
	pf := &profileFlags{scores: make(map[domain.Metric]*int, len(domain.Metrics))}
	for _, m := range domain.Metrics {
		v := new(int)
		*v = domain.DefaultScore
		usage := fmt.Sprintf("%s score (0-%d)", m, domain.MaxScore)
		cmd.Flags().IntVar(v, share.ShortKeys[m], domain.DefaultScore, usage)
		pf.scores[m] = v
	}
	cmd.Flags().StringVar(&pf.from, "from", "", "Start from a saved snapshot (ID or name)")
	return pf
}

// resolve builds the effective profile: snapshot or defaults as the base,
// explicitly set flags layered on top. Unlike share-link decoding, flag
// values are user input to this process and out-of-range scores are errors.
func (pf *profileFlags) resolve(cmd *cobra.Command, app *App) (domain.Profile, error) {
	profile := domain.DefaultProfile()
	if pf.from != "" {
		snap, err := app.Snapshots.Get(cmd.Context(), pf.from)
		if err != nil {
			return nil, fmt.Errorf("loading snapshot %q: %w", pf.from, err)
		}
		profile = snap.Profile.Clone()
	}

	for _, m := range domain.Metrics {
		flagName := share.ShortKeys[m]
		if !cmd.Flags().Changed(flagName) {
			continue
		}
		v := *pf.scores[m]
		if !domain.IsValidScore(v) {
			return nil, fmt.Errorf("--%s: score %d out of range 0-%d", flagName, v, domain.MaxScore)
		}
		profile[m] = v
	}
	return profile, nil
}
