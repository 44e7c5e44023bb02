package screening

import (
	"fmt"
	"sort"
)

// ResponseSet holds at most one response per question. Answering a question
// again replaces the earlier value.
type ResponseSet struct {
	values map[int]int
}

// NewResponseSet creates an empty set.
func NewResponseSet() *ResponseSet {
	return &ResponseSet{values: make(map[int]int)}
}

// Answer records r, superseding any earlier answer to the same question.
func (s *ResponseSet) Answer(r Response) {
	s.values[r.QuestionID] = r.Value
}

// Get returns the recorded value for a question.
func (s *ResponseSet) Get(questionID int) (int, bool) {
	v, ok := s.values[questionID]
	return v, ok
}

// Len returns the number of answered questions.
func (s *ResponseSet) Len() int {
	return len(s.values)
}

// Responses returns the answers ordered by question id.
func (s *ResponseSet) Responses() []Response {
	out := make([]Response, 0, len(s.values))
	for id, v := range s.values {
		out = append(out, Response{QuestionID: id, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out
}

// Total returns the sum of the recorded answers.
func (s *ResponseSet) Total() int {
	return TotalScore(s.Responses())
}

// Collect validates responses against q and folds them into a set. Later
// duplicates replace earlier ones.
func (q *Questionnaire) Collect(responses []Response) (*ResponseSet, error) {
	set := NewResponseSet()
	for _, r := range responses {
		if err := q.Validate(r); err != nil {
			return nil, err
		}
		set.Answer(r)
	}
	return set, nil
}

// Result is a scored screening.
type Result struct {
	Score    int  `json:"score"`
	Band     Band `json:"band"`
	Answered int  `json:"answered"`
	Complete bool `json:"complete"`
}

// State is a serialisable snapshot of a Flow.
type State struct {
	Index     int        `json:"index"`
	Complete  bool       `json:"complete"`
	Responses []Response `json:"responses,omitempty"`
}

// Flow walks a questionnaire one question at a time. It is either answering
// the question at Index or complete; Complete is terminal until Restart.
type Flow struct {
	q         *Questionnaire
	index     int
	complete  bool
	responses *ResponseSet
}

// NewFlow starts a flow at the first question.
func NewFlow(q *Questionnaire) *Flow {
	return &Flow{q: q, responses: NewResponseSet()}
}

// RestoreFlow rebuilds a flow from a snapshot, rejecting snapshots that do
// not fit q.
func RestoreFlow(q *Questionnaire, st State) (*Flow, error) {
	if st.Index < 0 || st.Index >= q.Len() {
		return nil, fmt.Errorf("screening state index %d out of range", st.Index)
	}
	set, err := q.Collect(st.Responses)
	if err != nil {
		return nil, err
	}
	return &Flow{q: q, index: st.Index, complete: st.Complete, responses: set}, nil
}

// State snapshots the flow.
func (f *Flow) State() State {
	return State{Index: f.index, Complete: f.complete, Responses: f.responses.Responses()}
}

// Index returns the zero-based position of the current question.
func (f *Flow) Index() int { return f.index }

// Complete reports whether every question has been answered going forward.
func (f *Flow) Complete() bool { return f.complete }

// Current returns the question being answered.
func (f *Flow) Current() Question {
	q, _ := f.q.Question(f.index)
	return q
}

// Progress returns the percentage shown for the current question.
func (f *Flow) Progress() int {
	return (f.index + 1) * 100 / f.q.Len()
}

// IsLast reports whether the current question is the final one.
func (f *Flow) IsLast() bool {
	return f.index == f.q.Len()-1
}

// Selected returns the value already recorded for the current question.
func (f *Flow) Selected() (int, bool) {
	return f.responses.Get(f.Current().ID)
}

// Next records value for the current question and advances, completing the
// flow after the last question.
func (f *Flow) Next(value int) error {
	if f.complete {
		return nil
	}
	r := Response{QuestionID: f.Current().ID, Value: value}
	if err := f.q.Validate(r); err != nil {
		return err
	}
	f.responses.Answer(r)
	if f.IsLast() {
		f.complete = true
		return nil
	}
	f.index++
	return nil
}

// Back moves to the previous question. It does nothing on the first
// question or once complete.
func (f *Flow) Back() {
	if f.complete || f.index == 0 {
		return
	}
	f.index--
}

// Restart clears all answers and returns to the first question.
func (f *Flow) Restart() {
	f.index = 0
	f.complete = false
	f.responses = NewResponseSet()
}

// Result scores the flow. ok is false until the flow is complete.
func (f *Flow) Result() (Result, bool) {
	if !f.complete {
		return Result{}, false
	}
	score := f.responses.Total()
	return Result{Score: score, Band: f.q.Interpret(score), Answered: f.responses.Len(), Complete: true}, true
}

// Score validates and scores a response list in one step. Later answers to
// a question replace earlier ones; Complete reports whether every question
// was answered.
func (q *Questionnaire) Score(responses []Response) (Result, error) {
	set, err := q.Collect(responses)
	if err != nil {
		return Result{}, err
	}
	score := set.Total()
	return Result{
		Score:    score,
		Band:     q.Interpret(score),
		Answered: set.Len(),
		Complete: set.Len() == q.Len(),
	}, nil
}
