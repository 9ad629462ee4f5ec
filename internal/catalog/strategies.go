package catalog

import "github.com/nmorrow/spectra/internal/domain"

// strategyTable maps metric -> audience -> support level -> authored
// strategies, in priority order. Some texts intentionally repeat across
// metrics (e.g. visual schedules help both focus and routine); the engine
// deduplicates by text at selection time.
var strategyTable = map[domain.Metric]map[domain.Audience]map[domain.SupportLevel][]domain.Strategy{
	domain.MetricFocus: {
		domain.AudienceCaregiver: {
			domain.SupportHighNeed: {
				{Text: "Break tasks into steps of five minutes or less, with movement breaks between them.", Source: domain.SourceCHADD},
				{Text: "Use a visual schedule to make the day's flow predictable.", Source: domain.SourceUnderstood},
				{Text: "Remove competing screens and noise before starting homework.", Source: domain.SourceCHADD},
			},
			domain.SupportModerate: {
				{Text: "Use a visual timer so the end of a task is always visible.", Source: domain.SourceCHADD},
				{Text: "Agree on one short daily focus routine and keep it identical every day.", Source: domain.SourceUnderstood},
			},
			domain.SupportIndependent: {
				{Text: "Let them plan their own work blocks and review what worked each week.", Source: domain.SourceCHADD},
				{Text: "Encourage longer independent projects that stretch sustained attention.", Source: domain.SourceAAP},
			},
		},
		domain.AudienceEducator: {
			domain.SupportHighNeed: {
				{Text: "Seat the student away from doors and windows, near the teacher.", Source: domain.SourceCHADD},
				{Text: "Chunk assignments and hand out one part at a time.", Source: domain.SourceUnderstood},
				{Text: "Pair verbal instructions with a written or pictorial copy.", Source: domain.SourceNASP},
			},
			domain.SupportModerate: {
				{Text: "Offer quiet work zones the student can choose during independent work.", Source: domain.SourceNASP},
				{Text: "Use discreet non-verbal cues to redirect attention.", Source: domain.SourceCHADD},
			},
			domain.SupportIndependent: {
				{Text: "Provide extension tasks so finished work doesn't turn into idle time.", Source: domain.SourceNASP},
				{Text: "Invite the student to model planning strategies for peers.", Source: domain.SourceUnderstood},
			},
		},
	},
	domain.MetricSocial: {
		domain.AudienceCaregiver: {
			domain.SupportHighNeed: {
				{Text: "Arrange short one-on-one playdates around a shared interest, with an adult nearby.", Source: domain.SourceAAP},
				{Text: "Rehearse upcoming social situations with simple social stories.", Source: domain.SourceCDC},
			},
			domain.SupportModerate: {
				{Text: "Practice turn-taking games at home before group settings.", Source: domain.SourceAAP},
				{Text: "Debrief social situations afterwards, naming what went well.", Source: domain.SourceUnderstood},
			},
			domain.SupportIndependent: {
				{Text: "Support joining clubs or teams built around their interests.", Source: domain.SourceAAP},
				{Text: "Talk through more nuanced situations like sarcasm and group chat etiquette.", Source: domain.SourceUnderstood},
			},
		},
		domain.AudienceEducator: {
			domain.SupportHighNeed: {
				{Text: "Use structured peer buddy systems rather than free-choice grouping.", Source: domain.SourceNASP},
				{Text: "Pre-teach the social expectations of group work explicitly.", Source: domain.SourceCDC},
			},
			domain.SupportModerate: {
				{Text: "Assign clear roles in group tasks so participation doesn't depend on negotiation.", Source: domain.SourceNASP},
				{Text: "Offer structured activity options at recess and lunch.", Source: domain.SourceCDC},
			},
			domain.SupportIndependent: {
				{Text: "Offer leadership roles in collaborative projects.", Source: domain.SourceNASP},
				{Text: "Keep an eye on subtler dynamics like exclusion from friendship groups.", Source: domain.SourceUnderstood},
			},
		},
	},
	domain.MetricSensory: {
		domain.AudienceCaregiver: {
			domain.SupportHighNeed: {
				{Text: "Build a calm-down space at home with low light and familiar textures.", Source: domain.SourceAAP},
				{Text: "Carry ear defenders or headphones for unavoidable loud environments.", Source: domain.SourceUnderstood},
				{Text: "Preview new places with photos or a short first visit at a quiet time.", Source: domain.SourceCDC},
			},
			domain.SupportModerate: {
				{Text: "Keep a small sensory kit (fidgets, sunglasses, headphones) in the bag.", Source: domain.SourceUnderstood},
				{Text: "Plan demanding outings for the times of day they cope best.", Source: domain.SourceAAP},
			},
			domain.SupportIndependent: {
				{Text: "Let them manage their own sensory tools and say what they need.", Source: domain.SourceAAP},
				{Text: "Check in after intense environments even when things look fine.", Source: domain.SourceUnderstood},
			},
		},
		domain.AudienceEducator: {
			domain.SupportHighNeed: {
				{Text: "Allow noise-cancelling headphones during independent work.", Source: domain.SourceUnderstood},
				{Text: "Provide an agreed exit signal and a quiet room the student can use without explanation.", Source: domain.SourceNASP},
			},
			domain.SupportModerate: {
				{Text: "Warn ahead of fire drills, assemblies and other loud events.", Source: domain.SourceNASP},
				{Text: "Offer alternative seating away from humming lights or radiators.", Source: domain.SourceUnderstood},
			},
			domain.SupportIndependent: {
				{Text: "Honor self-managed sensory breaks without drawing attention to them.", Source: domain.SourceNASP},
				{Text: "Include the student when planning sensory-heavy school events.", Source: domain.SourceCDC},
			},
		},
	},
	domain.MetricMotor: {
		domain.AudienceCaregiver: {
			domain.SupportHighNeed: {
				{Text: "Use adapted tools: chunky pencils, easy-grip cutlery, velcro shoes.", Source: domain.SourceAAP},
				{Text: "Build fine-motor strength through play: clay, beads, construction toys.", Source: domain.SourceUnderstood},
			},
			domain.SupportModerate: {
				{Text: "Practice tricky motor tasks in short, low-pressure sessions at home.", Source: domain.SourceAAP},
				{Text: "Choose physical activities that build coordination without rankings, like swimming or climbing.", Source: domain.SourceCDC},
			},
			domain.SupportIndependent: {
				{Text: "Encourage hobbies that refine precision, like model building or an instrument.", Source: domain.SourceAAP},
				{Text: "Support whatever sports they enjoy; skill upkeep comes free with fun.", Source: domain.SourceCDC},
			},
		},
		domain.AudienceEducator: {
			domain.SupportHighNeed: {
				{Text: "Accept typed or dictated work in place of handwriting.", Source: domain.SourceUnderstood},
				{Text: "Allow extra time for tasks involving writing, cutting or drawing.", Source: domain.SourceNASP},
			},
			domain.SupportModerate: {
				{Text: "Provide pencil grips and slant boards without making them conspicuous.", Source: domain.SourceUnderstood},
				{Text: "Grade written work on content, not presentation.", Source: domain.SourceNASP},
			},
			domain.SupportIndependent: {
				{Text: "No specific accommodation needed; keep usual PE options open.", Source: domain.SourceNASP},
				{Text: "Watch for fatigue on long handwriting days.", Source: domain.SourceUnderstood},
			},
		},
	},
	domain.MetricRoutine: {
		domain.AudienceCaregiver: {
			domain.SupportHighNeed: {
				{Text: "Use a visual schedule to make the day's flow predictable.", Source: domain.SourceUnderstood},
				{Text: "Give countdown warnings before every transition: ten minutes, five, one.", Source: domain.SourceCDC},
				{Text: "Keep anchor points of the day (meals, bedtime) as fixed as possible.", Source: domain.SourceAAP},
			},
			domain.SupportModerate: {
				{Text: "Flag changes to the plan as early as you know about them.", Source: domain.SourceUnderstood},
				{Text: "Practice small planned surprises to build flexibility gently.", Source: domain.SourceAAP},
			},
			domain.SupportIndependent: {
				{Text: "Hand over ownership of their own calendar and routines.", Source: domain.SourceUnderstood},
				{Text: "Treat occasional wobbles around big changes as normal, not regression.", Source: domain.SourceAAP},
			},
		},
		domain.AudienceEducator: {
			domain.SupportHighNeed: {
				{Text: "Post the day's schedule visibly and walk through it each morning.", Source: domain.SourceUnderstood},
				{Text: "Tell the student about substitutes, room changes and drills in advance.", Source: domain.SourceNASP},
			},
			domain.SupportModerate: {
				{Text: "Keep classroom routines consistent and announce deviations early.", Source: domain.SourceNASP},
				{Text: "Pair schedule changes with a written note, not just a verbal mention.", Source: domain.SourceUnderstood},
			},
			domain.SupportIndependent: {
				{Text: "Involve the student in planning class schedule changes.", Source: domain.SourceNASP},
				{Text: "A brief heads-up before major disruptions is still appreciated.", Source: domain.SourceUnderstood},
			},
		},
	},
	domain.MetricEmotional: {
		domain.AudienceCaregiver: {
			domain.SupportHighNeed: {
				{Text: "Co-regulate first: stay calm, lower your voice, reduce demands until the storm passes.", Source: domain.SourceAAP},
				{Text: "Name feelings out loud during calm moments to build an emotion vocabulary.", Source: domain.SourceCDC},
				{Text: "Build a calm-down space at home with low light and familiar textures.", Source: domain.SourceAAP},
			},
			domain.SupportModerate: {
				{Text: "Practice one or two calming tools daily so they're available under stress.", Source: domain.SourceAAP},
				{Text: "Use a feelings thermometer to catch escalation early.", Source: domain.SourceUnderstood},
			},
			domain.SupportIndependent: {
				{Text: "Keep talking about feelings even when regulation looks easy.", Source: domain.SourceAAP},
				{Text: "Model your own coping strategies out loud.", Source: domain.SourceCDC},
			},
		},
		domain.AudienceEducator: {
			domain.SupportHighNeed: {
				{Text: "Agree on a discreet break card the student can use before overload.", Source: domain.SourceNASP},
				{Text: "Avoid public consequences; de-escalate privately and later.", Source: domain.SourceNASP},
			},
			domain.SupportModerate: {
				{Text: "Embed short regulation breaks into the class day for everyone.", Source: domain.SourceNASP},
				{Text: "Check in quietly after frustrating tasks or peer conflict.", Source: domain.SourceUnderstood},
			},
			domain.SupportIndependent: {
				{Text: "Offer roles that use their composure, like peer mediation.", Source: domain.SourceNASP},
				{Text: "Keep communication open; strong regulators can mask stress.", Source: domain.SourceUnderstood},
			},
		},
	},
}

// StrategiesFor returns the authored strategy bucket for the given metric,
// audience and support level, in priority order. Missing buckets yield nil.
func StrategiesFor(m domain.Metric, a domain.Audience, l domain.SupportLevel) []domain.Strategy {
	byAudience, ok := strategyTable[m]
	if !ok {
		return nil
	}
	byLevel, ok := byAudience[a]
	if !ok {
		return nil
	}
	return byLevel[l]
}
