// Package catalog holds the static content tables: per-score metric
// descriptions, the support strategy table and the resource directory.
// Everything here is pre-authored data; nothing is derived at runtime.
package catalog

import "github.com/nmorrow/spectra/internal/domain"

// FallbackDescription is returned when a description lookup lands outside
// the authored table.
const FallbackDescription = "No description available."

// descriptions indexes each metric's text by score, 0 through MaxScore.
var descriptions = map[domain.Metric][domain.MaxScore + 1]string{
	domain.MetricFocus: {
		"Sustaining attention is very difficult; tasks need one-on-one support and very small steps.",
		"Attention holds for short bursts with frequent prompting and breaks.",
		"Focuses on preferred activities but drifts quickly on non-preferred ones.",
		"Holds attention for typical tasks with occasional reminders.",
		"Manages attention well, self-redirecting after most distractions.",
		"Sustains deep focus independently, even on long or low-interest tasks.",
	},
	domain.MetricSocial: {
		"Social interaction is overwhelming; prefers solitary play and needs an adult to mediate contact.",
		"Engages briefly one-on-one with heavy adult scaffolding.",
		"Joins familiar peers in structured activities but struggles with unstructured time.",
		"Comfortable in small groups; reads most social cues with occasional misses.",
		"Initiates and maintains friendships with minor support around conflict.",
		"Navigates varied social settings confidently and independently.",
	},
	domain.MetricSensory: {
		"Everyday sensory input (noise, light, touch) is frequently distressing and can end activities.",
		"Strong sensitivities; needs warning and escape routes for loud or busy environments.",
		"Noticeable sensitivities managed with tools like headphones or fidgets.",
		"Mild sensitivities that rarely interrupt activities.",
		"Comfortable in most environments; self-regulates sensory needs.",
		"No meaningful sensory barriers across settings.",
	},
	domain.MetricMotor: {
		"Fine and gross motor tasks need hand-over-hand help; fatigue comes quickly.",
		"Manages simple motor tasks slowly with adapted tools and support.",
		"Handles daily motor tasks but avoids handwriting or sports requiring coordination.",
		"Typical motor skills with some tasks taking extra time or effort.",
		"Coordinated across most activities; minor difficulty with precision work.",
		"Strong motor skills across fine and gross tasks.",
	},
	domain.MetricRoutine: {
		"Any change to routine causes significant distress; transitions need extensive preparation.",
		"Copes with change only when warned well in advance and walked through it.",
		"Manages small changes with visual supports; large surprises remain hard.",
		"Adapts to most changes after a brief adjustment period.",
		"Flexible with plans changing; prefers but does not require predictability.",
		"Handles novelty and disruption with ease.",
	},
	domain.MetricEmotional: {
		"Big emotions escalate quickly to meltdown or shutdown; co-regulation is essential.",
		"Needs adult help to name feelings and begin calming.",
		"Uses a few calming tools with prompting; recovery takes time.",
		"Identifies feelings and self-calms with occasional support.",
		"Regulates emotions well; bounces back from setbacks quickly.",
		"Strong self-awareness and regulation, even under stress.",
	},
}

// Describe returns the authored description for a metric at a score. Unknown
// metrics and out-of-range scores fall back to FallbackDescription; the
// lookup never fails.
func Describe(m domain.Metric, score int) string {
	table, ok := descriptions[m]
	if !ok || score < 0 || score > domain.MaxScore {
		return FallbackDescription
	}
	return table[score]
}
