package domain

// Metric identifies one of the six fixed profile dimensions. The set of
// metrics is closed: nothing is added, removed or renamed at runtime.
type Metric string

const (
	MetricFocus     Metric = "Focus"
	MetricSocial    Metric = "Social"
	MetricSensory   Metric = "Sensory"
	MetricMotor     Metric = "Motor"
	MetricRoutine   Metric = "Routine"
	MetricEmotional Metric = "Emotional"
)

// Metrics is the canonical metric order. Rendered output, export rows and
// the tie-break during priority selection all follow this order.
var Metrics = []Metric{
	MetricFocus,
	MetricSocial,
	MetricSensory,
	MetricMotor,
	MetricRoutine,
	MetricEmotional,
}

// MetricEmoji is the display icon shown next to each metric name.
var MetricEmoji = map[Metric]string{
	MetricFocus:     "🎯",
	MetricSocial:    "💬",
	MetricSensory:   "👂",
	MetricMotor:     "✋",
	MetricRoutine:   "📅",
	MetricEmotional: "💛",
}

// MetricColor is the hex color tag associated with each metric.
var MetricColor = map[Metric]string{
	MetricFocus:     "#83a598",
	MetricSocial:    "#d3869b",
	MetricSensory:   "#fabd2f",
	MetricMotor:     "#8ec07c",
	MetricRoutine:   "#fe8019",
	MetricEmotional: "#fb4934",
}

// IsMetric reports whether name is one of the six known metric names.
func IsMetric(name string) bool {
	for _, m := range Metrics {
		if Metric(name) == m {
			return true
		}
	}
	return false
}
