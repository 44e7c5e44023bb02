// Package screening implements PHQ-9 scoring: summing ordinal answers and
// mapping the total onto a severity band with guidance.
package screening

import (
	"errors"
	"fmt"
)

// PHQ-9 shape.
const (
	QuestionCount = 9
	OptionCount   = 4
	MaxScore      = QuestionCount * (OptionCount - 1)
)

var (
	ErrInvalidQuestionnaire = errors.New("invalid questionnaire")
	ErrUnknownQuestion      = errors.New("unknown question")
	ErrInvalidValue         = errors.New("invalid answer value")
)

// Option is one selectable answer to a question.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Question is a single screening item.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// Response is a chosen value for a question.
type Response struct {
	QuestionID int `json:"questionId"`
	Value      int `json:"value"`
}

// Questionnaire is an immutable question set plus its severity bands.
type Questionnaire struct {
	questions []Question
	bands     []Band
	byID      map[int]Question
}

// NewQuestionnaire validates questions and bands. Questions must be exactly
// nine with ids 1..9 and four options valued 0..3; bands must cover
// 0..MaxScore contiguously in ascending order.
func NewQuestionnaire(questions []Question, bands []Band) (*Questionnaire, error) {
	if len(questions) != QuestionCount {
		return nil, fmt.Errorf("%w: want %d questions, got %d", ErrInvalidQuestionnaire, QuestionCount, len(questions))
	}

	byID := make(map[int]Question, len(questions))
	for _, q := range questions {
		if q.ID < 1 || q.ID > QuestionCount {
			return nil, fmt.Errorf("%w: question id %d out of range", ErrInvalidQuestionnaire, q.ID)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", ErrInvalidQuestionnaire, q.ID)
		}
		if len(q.Options) != OptionCount {
			return nil, fmt.Errorf("%w: question %d has %d options", ErrInvalidQuestionnaire, q.ID, len(q.Options))
		}
		for i, o := range q.Options {
			if o.Value != i {
				return nil, fmt.Errorf("%w: question %d option %d has value %d", ErrInvalidQuestionnaire, q.ID, i, o.Value)
			}
		}
		byID[q.ID] = q
	}

	if err := validateBands(bands); err != nil {
		return nil, err
	}

	return &Questionnaire{
		questions: append([]Question(nil), questions...),
		bands:     append([]Band(nil), bands...),
		byID:      byID,
	}, nil
}

func validateBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: no bands", ErrInvalidQuestionnaire)
	}
	next := 0
	for _, b := range bands {
		if b.Min != next || b.Max < b.Min {
			return fmt.Errorf("%w: band %q covers %d-%d, expected to start at %d", ErrInvalidQuestionnaire, b.Severity, b.Min, b.Max, next)
		}
		next = b.Max + 1
	}
	if next != MaxScore+1 {
		return fmt.Errorf("%w: bands end at %d, want %d", ErrInvalidQuestionnaire, next-1, MaxScore)
	}
	return nil
}

// PHQ9 returns the standard questionnaire.
func PHQ9() *Questionnaire {
	q, err := NewQuestionnaire(phq9Questions(), DefaultBands())
	if err != nil {
		panic("screening: built-in PHQ-9 is invalid: " + err.Error())
	}
	return q
}

// Questions returns the question list in order.
func (q *Questionnaire) Questions() []Question {
	return append([]Question(nil), q.questions...)
}

// Question returns the question at position i.
func (q *Questionnaire) Question(i int) (Question, bool) {
	if i < 0 || i >= len(q.questions) {
		return Question{}, false
	}
	return q.questions[i], true
}

// Len returns the number of questions.
func (q *Questionnaire) Len() int {
	return len(q.questions)
}

// Bands returns the severity bands in ascending order.
func (q *Questionnaire) Bands() []Band {
	return append([]Band(nil), q.bands...)
}

// Validate checks that r references a known question and one of its values.
func (q *Questionnaire) Validate(r Response) error {
	question, ok := q.byID[r.QuestionID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, r.QuestionID)
	}
	for _, o := range question.Options {
		if o.Value == r.Value {
			return nil
		}
	}
	return fmt.Errorf("%w: %d for question %d", ErrInvalidValue, r.Value, r.QuestionID)
}

// Interpret maps score onto this questionnaire's bands.
func (q *Questionnaire) Interpret(score int) Band {
	return interpret(q.bands, score)
}

// TotalScore sums every response value as given. Duplicate question ids are
// summed, not merged; use a ResponseSet to keep one answer per question.
func TotalScore(responses []Response) int {
	total := 0
	for _, r := range responses {
		total += r.Value
	}
	return total
}

func phq9Questions() []Question {
	prompts := []string{
		"Over the last 2 weeks, how often have you had little interest or pleasure in doing things?",
		"Over the last 2 weeks, how often have you been feeling down, depressed, or hopeless?",
		"Over the last 2 weeks, how often have you had trouble falling or staying asleep, or sleeping too much?",
		"Over the last 2 weeks, how often have you been feeling tired or having little energy?",
		"Over the last 2 weeks, how often have you had poor appetite or been overeating?",
		"Over the last 2 weeks, how often have you been feeling bad about yourself — or that you are a failure or have let yourself or your family down?",
		"Over the last 2 weeks, how often have you had trouble concentrating on things, such as reading the newspaper or watching television?",
		"Over the last 2 weeks, how often have you been moving or speaking so slowly that other people could have noticed? Or the opposite — being so fidgety or restless that you have been moving around a lot more than usual?",
		"Over the last 2 weeks, how often have you had thoughts that you would be better off dead or of hurting yourself in some way?",
	}

	questions := make([]Question, len(prompts))
	for i, p := range prompts {
		questions[i] = Question{
			ID:     i + 1,
			Prompt: p,
			Options: []Option{
				{Value: 0, Label: "Not at all"},
				{Value: 1, Label: "Several days"},
				{Value: 2, Label: "More than half the days"},
				{Value: 3, Label: "Nearly every day"},
			},
		}
	}
	return questions
}
