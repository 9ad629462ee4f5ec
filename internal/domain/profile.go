package domain

// Profile maps metrics to scores. A complete profile carries an entry for
// every metric in Metrics; Normalize fills gaps with DefaultScore so partial
// profiles never reach the UI or exporters.
type Profile map[Metric]int

// DefaultProfile returns a fresh profile with every metric at DefaultScore.
func DefaultProfile() Profile {
	p := make(Profile, len(Metrics))
	for _, m := range Metrics {
		p[m] = DefaultScore
	}
	return p
}

// Clone returns an independent copy of the profile.
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for m, s := range p {
		out[m] = s
	}
	return out
}

// Normalize returns a complete copy of the profile: known metrics keep their
// score when valid, everything else falls back to DefaultScore. Unknown keys
// are dropped.
func (p Profile) Normalize() Profile {
	out := DefaultProfile()
	for m, s := range p {
		if IsMetric(string(m)) && IsValidScore(s) {
			out[m] = s
		}
	}
	return out
}
