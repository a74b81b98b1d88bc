// Package abac implements the attribute-based access control decision
// pipeline: policies, the checker-driven field matching, and the guard
// that composes storage lookup and matching into an allow/deny decision.
package abac

import (
	"fmt"

	"github.com/abacgo/abac/checker"
	"github.com/abacgo/abac/rule"
	"github.com/abacgo/abac/types"
)

// Default regex delimiters, used when a policy doesn't override them.
const (
	DefaultStartTag = "<"
	DefaultEndTag   = ">"
)

type dialect int

const (
	dialectString dialect = iota
	dialectRules
)

// Policy is the aggregate this engine evaluates: an effect, three
// field-matcher lists, a context rule map, and the regex delimiters used
// only when the policy is string-typed and the active checker is a regex
// checker.
type Policy struct {
	UID         string
	Effect      types.Effect
	Subjects    []FieldMatcher
	Actions     []FieldMatcher
	Resources   []FieldMatcher
	Context     map[string]rule.Rule
	Description string
	StartTag    string
	EndTag      string

	dialect dialect
}

// PolicyOption configures an optional Policy construction parameter.
type PolicyOption func(*Policy)

// WithTags overrides the default "<"/">" regex delimiters.
func WithTags(start, end string) PolicyOption {
	return func(p *Policy) {
		p.StartTag = start
		p.EndTag = end
	}
}

// WithDescription sets the policy's free-form description.
func WithDescription(d string) PolicyOption {
	return func(p *Policy) { p.Description = d }
}

// NewPolicy validates and constructs a Policy. It fails with
// types.ErrInvalidArgument on an empty uid, an invalid effect, or field
// lists that, taken together, mix literal strings with rules/mappings.
func NewPolicy(uid string, effect types.Effect, subjects, actions, resources []FieldMatcher, context map[string]rule.Rule, opts ...PolicyOption) (*Policy, error) {
	if uid == "" {
		return nil, fmt.Errorf("%w: uid must not be empty", types.ErrInvalidArgument)
	}
	if !effect.Valid() {
		return nil, fmt.Errorf("%w: invalid effect %q", types.ErrInvalidArgument, effect)
	}

	d, err := detectDialect(subjects, actions, resources)
	if err != nil {
		return nil, err
	}

	p := &Policy{
		UID:       uid,
		Effect:    effect,
		Subjects:  subjects,
		Actions:   actions,
		Resources: resources,
		Context:   context,
		StartTag:  DefaultStartTag,
		EndTag:    DefaultEndTag,
		dialect:   d,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func detectDialect(lists ...[]FieldMatcher) (dialect, error) {
	hasLiteral, hasNonLiteral := false, false
	for _, list := range lists {
		for _, m := range list {
			if m.IsLiteral() {
				hasLiteral = true
			} else {
				hasNonLiteral = true
			}
		}
	}
	if hasLiteral && hasNonLiteral {
		return 0, fmt.Errorf("%w: policy mixes string and rule field matchers", types.ErrInvalidArgument)
	}
	if hasNonLiteral {
		return dialectRules, nil
	}
	return dialectString, nil
}

// Fits reports whether the policy matches inq under the active checker. A
// panic raised during rule or checker evaluation
// (e.g. a malformed regex pattern) is recovered and surfaced as
// types.ErrPolicyEvaluation rather than crashing the caller; the guard
// treats that as "did not fit" for this policy only.
func (p *Policy) Fits(inq types.Inquiry, c checker.Checker) (fits bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			fits = false
			err = fmt.Errorf("%w: %v", types.ErrPolicyEvaluation, r)
		}
	}()

	if !matchesAny(p.Subjects, inq.Subject, inq, c, p.StartTag, p.EndTag) {
		return false, nil
	}
	if !matchesAny(p.Actions, inq.Action, inq, c, p.StartTag, p.EndTag) {
		return false, nil
	}
	if !matchesAny(p.Resources, inq.Resource, inq, c, p.StartTag, p.EndTag) {
		return false, nil
	}
	for key, r := range p.Context {
		v, present := inq.Context[key]
		if !present {
			return false, nil
		}
		if !r.Satisfied(v, inq) {
			return false, nil
		}
	}
	return true, nil
}

// matchesAny implements list-OR matching across a field's matchers. An empty list
// never matches, for either dialect.
func matchesAny(list []FieldMatcher, value any, inq types.Inquiry, c checker.Checker, startTag, endTag string) bool {
	if len(list) == 0 {
		return false
	}
	for _, m := range list {
		if m.Fits(value, inq, c, startTag, endTag) {
			return true
		}
	}
	return false
}
