// Package share converts a profile (plus an optional display name) to and
// from URL query parameters, enabling stateless sharing with no backend.
package share

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/nmorrow/spectra/internal/domain"
)

// ShortKeys is the fixed metric-to-query-key map. The keys are part of the
// wire format and must never change.
var ShortKeys = map[domain.Metric]string{
	domain.MetricFocus:     "fc",
	domain.MetricSocial:    "so",
	domain.MetricSensory:   "se",
	domain.MetricMotor:     "mo",
	domain.MetricRoutine:   "ro",
	domain.MetricEmotional: "em",
}

// nameKey carries the optional display name.
const nameKey = "name"

// Payload is a decoded share URL: the metrics that carried valid scores and
// the display name exactly as transmitted. Callers sanitize Name before
// rendering it.
type Payload struct {
	Profile domain.Profile
	Name    string
}

// Encode builds a share URL on the given base (origin+path) from the profile
// and an optional display name. Metrics are emitted in canonical order; the
// name is appended only when non-blank after trimming.
func Encode(base string, profile domain.Profile, name string) string {
	q := url.Values{}
	for _, m := range domain.Metrics {
		if score, ok := profile[m]; ok {
			q.Set(ShortKeys[m], strconv.Itoa(score))
		}
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		q.Set(nameKey, trimmed)
	}

	u, err := url.Parse(base)
	if err != nil {
		// A bad base still produces a usable relative URL.
		return "?" + q.Encode()
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Decode parses a query string (with or without a leading "?") into a
// payload. Keys with non-integer or out-of-range values are silently
// dropped. Returns nil when no metric key decodes to a valid score: the
// input is not a shared profile.
func Decode(query string) *Payload {
	query = strings.TrimPrefix(query, "?")
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil
	}

	profile := make(domain.Profile)
	for _, m := range domain.Metrics {
		raw := values.Get(ShortKeys[m])
		if raw == "" {
			continue
		}
		score, err := strconv.Atoi(raw)
		if err != nil || !domain.IsValidScore(score) {
			continue
		}
		profile[m] = score
	}
	if len(profile) == 0 {
		return nil
	}

	return &Payload{Profile: profile, Name: values.Get(nameKey)}
}

// DecodeURL extracts the query portion of a full URL (or bare query string)
// and decodes it.
func DecodeURL(raw string) *Payload {
	if u, err := url.Parse(raw); err == nil && u.RawQuery != "" {
		return Decode(u.RawQuery)
	}
	return Decode(raw)
}
