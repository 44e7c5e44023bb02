package screening

// Severity names a band.
type Severity string

const (
	SeverityMinimal          Severity = "Minimal"
	SeverityMild             Severity = "Mild"
	SeverityModerate         Severity = "Moderate"
	SeverityModeratelySevere Severity = "Moderately Severe"
	SeveritySevere           Severity = "Severe"
)

// Tone is the presentation hint for a band.
type Tone string

const (
	ToneSuccess     Tone = "success"
	ToneWarning     Tone = "warning"
	ToneDestructive Tone = "destructive"
)

// Band is an inclusive score range with its guidance.
type Band struct {
	Min      int      `json:"min"`
	Max      int      `json:"max"`
	Severity Severity `json:"severity"`
	Tone     Tone     `json:"tone"`
	Guidance string   `json:"guidance"`
}

// Contains reports whether score falls in the band's inclusive range.
func (b Band) Contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

// DefaultBands returns the five PHQ-9 bands.
func DefaultBands() []Band {
	return []Band{
		{
			Min: 0, Max: 4, Severity: SeverityMinimal, Tone: ToneSuccess,
			Guidance: "Your responses suggest minimal symptoms. Continue practicing self-care and maintaining healthy habits. Remember, it's always okay to seek support if needed.",
		},
		{
			Min: 5, Max: 9, Severity: SeverityMild, Tone: ToneWarning,
			Guidance: "Your responses suggest mild symptoms. Consider implementing stress-reduction techniques, maintaining regular sleep schedules, and staying connected with supportive people. Watchful waiting and follow-up may be helpful.",
		},
		{
			Min: 10, Max: 14, Severity: SeverityModerate, Tone: ToneWarning,
			Guidance: "Your responses suggest moderate symptoms. We recommend speaking with a mental health professional who can provide personalized support and guidance. Consider booking an appointment through our platform.",
		},
		{
			Min: 15, Max: 19, Severity: SeverityModeratelySevere, Tone: ToneDestructive,
			Guidance: "Your responses suggest moderately severe symptoms. We strongly encourage you to seek professional support. A mental health professional can help develop an appropriate treatment plan. Please consider booking an appointment soon.",
		},
		{
			Min: 20, Max: 27, Severity: SeveritySevere, Tone: ToneDestructive,
			Guidance: "Your responses suggest severe symptoms. Please reach out to a mental health professional as soon as possible. If you're having thoughts of self-harm, please contact a crisis helpline immediately or visit your nearest emergency room.",
		},
	}
}

var defaultBands = DefaultBands()

// Interpret maps score onto the default PHQ-9 bands.
func Interpret(score int) Band {
	return interpret(defaultBands, score)
}

// interpret walks the bands as cascading upper thresholds. Scores below the
// first band land in it and scores above the last band land in the last one,
// so every integer maps to exactly one band.
func interpret(bands []Band, score int) Band {
	for i, b := range bands {
		if score <= b.Max || i == len(bands)-1 {
			return b
		}
	}
	return Band{}
}
