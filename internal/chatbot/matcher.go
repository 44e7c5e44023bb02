// Package chatbot selects supportive replies for free-text chat input using a
// fixed, ordered table of keyword rules.
package chatbot

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// DefaultRuleName labels replies drawn from the default pool.
const DefaultRuleName = "default"

var (
	ErrInvalidRule   = errors.New("rule must have at least one keyword and one response")
	ErrEmptyDefaults = errors.New("default response pool is empty")
)

// Rule associates trigger substrings with a pool of candidate replies.
type Rule struct {
	Name      string   `yaml:"name" json:"name"`
	Keywords  []string `yaml:"keywords" json:"keywords"`
	Responses []string `yaml:"responses" json:"responses"`
}

// IndexSource draws a uniform random index in [0, n).
type IndexSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Match describes how a message was answered.
type Match struct {
	Rule    string `json:"rule"`
	Default bool   `json:"default"`
	Reply   string `json:"reply"`
}

// Matcher answers messages from an immutable rule table. It is safe for
// concurrent use as long as its IndexSource is.
type Matcher struct {
	rules    []Rule
	defaults []string
	src      IndexSource
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithIndexSource replaces the random source used to pick replies.
func WithIndexSource(src IndexSource) Option {
	return func(m *Matcher) {
		if src != nil {
			m.src = src
		}
	}
}

// NewMatcher validates the rule table and default pool and copies them.
// Keywords are lowered on load so matching only lowers the input.
func NewMatcher(rules []Rule, defaults []string, opts ...Option) (*Matcher, error) {
	m := &Matcher{
		rules: make([]Rule, 0, len(rules)),
		src:   globalRand{},
	}

	for i, r := range rules {
		if len(r.Keywords) == 0 || len(r.Responses) == 0 {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Name, ErrInvalidRule)
		}
		keywords := make([]string, len(r.Keywords))
		for j, k := range r.Keywords {
			if k == "" {
				return nil, fmt.Errorf("rule %d (%s): empty keyword: %w", i, r.Name, ErrInvalidRule)
			}
			keywords[j] = strings.ToLower(k)
		}
		for _, resp := range r.Responses {
			if resp == "" {
				return nil, fmt.Errorf("rule %d (%s): empty response: %w", i, r.Name, ErrInvalidRule)
			}
		}
		name := r.Name
		if name == "" {
			name = keywords[0]
		}
		m.rules = append(m.rules, Rule{
			Name:      name,
			Keywords:  keywords,
			Responses: append([]string(nil), r.Responses...),
		})
	}

	if len(defaults) == 0 {
		return nil, ErrEmptyDefaults
	}
	for _, d := range defaults {
		if d == "" {
			return nil, fmt.Errorf("empty default response: %w", ErrEmptyDefaults)
		}
	}
	m.defaults = append([]string(nil), defaults...)

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Respond returns a reply for message. It never fails: input that matches no
// rule, including the empty string, gets a reply from the default pool.
func (m *Matcher) Respond(message string) string {
	return m.Match(message).Reply
}

// Match runs the rule table against message. The first rule, in declaration
// order, with any keyword contained in the lowered message wins.
func (m *Matcher) Match(message string) Match {
	lower := strings.ToLower(message)

	for _, r := range m.rules {
		for _, k := range r.Keywords {
			if strings.Contains(lower, k) {
				return Match{Rule: r.Name, Reply: m.pick(r.Responses)}
			}
		}
	}

	return Match{Rule: DefaultRuleName, Default: true, Reply: m.pick(m.defaults)}
}

func (m *Matcher) pick(pool []string) string {
	i := m.src.IntN(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}
