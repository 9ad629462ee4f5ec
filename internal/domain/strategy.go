package domain

// Source is the attribution tag carried by every pre-authored strategy.
type Source string

const (
	SourceCDC        Source = "CDC"
	SourceAAP        Source = "AAP"
	SourceUnderstood Source = "Understood.org"
	SourceNASP       Source = "NASP"
	SourceCHADD      Source = "CHADD"
)

// Audience is who a strategy is written for.
type Audience string

const (
	AudienceCaregiver Audience = "caregiver"
	AudienceEducator  Audience = "educator"
)

// Audiences is the fixed audience order used by the engine and exporters.
var Audiences = []Audience{AudienceCaregiver, AudienceEducator}

// Strategy is an immutable pre-authored support suggestion with attribution.
type Strategy struct {
	Text   string
	Source Source
}

// RecommendationSet holds the per-audience strategy lists derived from a
// profile. Entries within each list are unique by text.
type RecommendationSet struct {
	Caregiver []Strategy
	Educator  []Strategy
}

// ForAudience returns the list for the given audience.
func (r RecommendationSet) ForAudience(a Audience) []Strategy {
	if a == AudienceEducator {
		return r.Educator
	}
	return r.Caregiver
}
