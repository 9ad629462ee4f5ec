package domain

// MaxScore is the top of the inclusive scoring range. This build implements
// the 0-5 scale variant; the 0-10 variant uses different band boundaries and
// is deliberately not supported alongside it.
const MaxScore = 5

// DefaultScore is the mid-scale value a fresh profile starts every metric at.
const DefaultScore = 3

// Band boundaries. Scores 0..highNeedMax classify as high-support,
// highNeedMax+1..moderateMax as moderate, and the rest as independent.
// SupportLevelFor and IntensityFor must partition the range identically.
const (
	highNeedMax = 1
	moderateMax = 3
)

// SupportLevel classifies how much support a score suggests.
type SupportLevel string

const (
	SupportHighNeed    SupportLevel = "highNeed"
	SupportModerate    SupportLevel = "moderate"
	SupportIndependent SupportLevel = "independent"
)

// Label returns the human-readable form of the support level.
func (l SupportLevel) Label() string {
	switch l {
	case SupportHighNeed:
		return "High Support"
	case SupportModerate:
		return "Moderate"
	case SupportIndependent:
		return "Independent"
	default:
		return "Unknown"
	}
}

// IntensityLabel is the coarse strength classification shown on sliders.
type IntensityLabel string

const (
	IntensityLow    IntensityLabel = "Low"
	IntensityMedium IntensityLabel = "Medium"
	IntensityHigh   IntensityLabel = "High"
)

// IsValidScore reports whether v is an integer score within [0, MaxScore].
func IsValidScore(v int) bool {
	return v >= 0 && v <= MaxScore
}

// SupportLevelFor maps a score to its support level. Total over all ints:
// out-of-range values clamp into the nearest band rather than failing.
func SupportLevelFor(score int) SupportLevel {
	switch {
	case score <= highNeedMax:
		return SupportHighNeed
	case score <= moderateMax:
		return SupportModerate
	default:
		return SupportIndependent
	}
}

// IntensityFor maps a score to its intensity label. The bands agree exactly
// with SupportLevelFor: Low <=> highNeed, Medium <=> moderate, High <=> independent.
func IntensityFor(score int) IntensityLabel {
	switch {
	case score <= highNeedMax:
		return IntensityLow
	case score <= moderateMax:
		return IntensityMedium
	default:
		return IntensityHigh
	}
}
