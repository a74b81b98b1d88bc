package abac

import (
	"bytes"
	"encoding/json"

	"github.com/abacgo/abac/checker"
	"github.com/abacgo/abac/rule"
	"github.com/abacgo/abac/types"
)

type matcherKind int

const (
	matcherLiteral matcherKind = iota
	matcherRule
	matcherMapping
)

// FieldMatcher is one entry of a Policy's subjects, actions, or resources
// list. It holds exactly one of a plain string (string dialect), a Rule, or
// a mapping of attribute name to Rule (both rules dialect).
type FieldMatcher struct {
	kind matcherKind

	Literal string
	Rule    rule.Rule
	Mapping map[string]rule.Rule
}

// NewLiteralMatcher builds a string-dialect field matcher.
func NewLiteralMatcher(s string) FieldMatcher {
	return FieldMatcher{kind: matcherLiteral, Literal: s}
}

// NewRuleMatcher builds a rules-dialect field matcher applying r to the
// inquiry field's scalar or mapping value directly.
func NewRuleMatcher(r rule.Rule) FieldMatcher {
	return FieldMatcher{kind: matcherRule, Rule: r}
}

// NewMappingMatcher builds a rules-dialect field matcher requiring the
// inquiry field to be a mapping containing every key in m, each satisfying
// its paired Rule.
func NewMappingMatcher(m map[string]rule.Rule) FieldMatcher {
	return FieldMatcher{kind: matcherMapping, Mapping: m}
}

// IsLiteral reports whether the matcher is string-dialect.
func (m FieldMatcher) IsLiteral() bool { return m.kind == matcherLiteral }

// Fits evaluates the matcher against an inquiry field's value, per
// the per-field matching semantics for both dialects. startTag/endTag are only
// consulted by the caller's checker for literal matchers.
func (m FieldMatcher) Fits(value any, inq types.Inquiry, c checker.Checker, startTag, endTag string) bool {
	switch m.kind {
	case matcherLiteral:
		s, ok := value.(string)
		if !ok {
			return false
		}
		return c.Fits(m.Literal, s, startTag, endTag)
	case matcherRule:
		return m.Rule.Satisfied(value, inq)
	case matcherMapping:
		values, ok := value.(map[string]any)
		if !ok {
			return false
		}
		for key, r := range m.Mapping {
			v, present := values[key]
			if !present {
				return false
			}
			if !r.Satisfied(v, inq) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (m FieldMatcher) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case matcherLiteral:
		return json.Marshal(m.Literal)
	case matcherRule:
		return json.Marshal(m.Rule)
	case matcherMapping:
		return json.Marshal(m.Mapping)
	default:
		return json.Marshal(nil)
	}
}

func (m *FieldMatcher) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = FieldMatcher{kind: matcherLiteral, Literal: s}
		return nil
	}

	var head struct {
		Rule *string `json:"rule"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Rule != nil {
		r, err := rule.Decode(data)
		if err != nil {
			return err
		}
		*m = FieldMatcher{kind: matcherRule, Rule: r}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	mapping := make(map[string]rule.Rule, len(raw))
	for key, v := range raw {
		r, err := rule.Decode(v)
		if err != nil {
			return err
		}
		mapping[key] = r
	}
	*m = FieldMatcher{kind: matcherMapping, Mapping: mapping}
	return nil
}
