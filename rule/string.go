package rule

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/abacgo/abac/types"
)

// Equal is satisfied when value is a string equal to Value, optionally
// folding case.
type Equal struct {
	Value           string `json:"value"`
	CaseInsensitive bool   `json:"case_insensitive,omitempty"`
}

func NewEqual(value string, caseInsensitive bool) *Equal {
	return &Equal{Value: value, CaseInsensitive: caseInsensitive}
}

func (r *Equal) Discriminator() string { return "string.Equal" }

func (r *Equal) Satisfied(value any, _ types.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if r.CaseInsensitive {
		return strings.EqualFold(s, r.Value)
	}
	return s == r.Value
}

func (r *Equal) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), *r)
}

func init() {
	register("string.Equal", func(data []byte) (Rule, error) {
		var r Equal
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// PairsEqual is satisfied when value is a list of 2-element lists whose
// members are pairwise equal. Any other shape is false, never a panic.
type PairsEqual struct{}

func NewPairsEqual() *PairsEqual { return &PairsEqual{} }

func (PairsEqual) Discriminator() string { return "string.PairsEqual" }

func (PairsEqual) Satisfied(value any, _ types.Inquiry) bool {
	pairs, ok := value.([]any)
	if !ok {
		return false
	}
	for _, p := range pairs {
		pair, ok := p.([]any)
		if !ok || len(pair) != 2 {
			return false
		}
		if !valuesEqual(pair[0], pair[1]) {
			return false
		}
	}
	return true
}

func (r PairsEqual) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct{}{})
}

func init() {
	register("string.PairsEqual", func([]byte) (Rule, error) { return &PairsEqual{}, nil })
}

// RegexMatch is satisfied when value is a string matched by Pattern. The
// pattern is compiled once at construction; a malformed pattern is a
// construction error, not a runtime one.
type RegexMatch struct {
	Pattern  string `json:"pattern"`
	compiled *regexp.Regexp
}

func NewRegexMatch(pattern string) (*RegexMatch, error) {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidArgument, err)
	}
	return &RegexMatch{Pattern: pattern, compiled: compiled}, nil
}

func (r *RegexMatch) Discriminator() string { return "string.RegexMatch" }

func (r *RegexMatch) Satisfied(value any, _ types.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return r.compiled.MatchString(s)
}

func (r *RegexMatch) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Pattern string `json:"pattern"`
	}{r.Pattern})
}

func (r *RegexMatch) UnmarshalJSON(data []byte) error {
	var raw struct {
		Pattern string `json:"pattern"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	compiled, err := regexp.Compile(raw.Pattern)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidArgument, err)
	}
	r.Pattern = raw.Pattern
	r.compiled = compiled
	return nil
}

func init() {
	register("string.RegexMatch", func(data []byte) (Rule, error) {
		var r RegexMatch
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// StartsWith is satisfied when value is a string with Value as a prefix.
type StartsWith struct {
	Value           string `json:"value"`
	CaseInsensitive bool   `json:"case_insensitive,omitempty"`
}

func NewStartsWith(value string, caseInsensitive bool) *StartsWith {
	return &StartsWith{Value: value, CaseInsensitive: caseInsensitive}
}

func (r *StartsWith) Discriminator() string { return "string.StartsWith" }

func (r *StartsWith) Satisfied(value any, _ types.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if r.CaseInsensitive {
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(r.Value))
	}
	return strings.HasPrefix(s, r.Value)
}

func (r *StartsWith) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), *r)
}

func init() {
	register("string.StartsWith", func(data []byte) (Rule, error) {
		var r StartsWith
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// EndsWith is satisfied when value is a string with Value as a suffix.
type EndsWith struct {
	Value           string `json:"value"`
	CaseInsensitive bool   `json:"case_insensitive,omitempty"`
}

func NewEndsWith(value string, caseInsensitive bool) *EndsWith {
	return &EndsWith{Value: value, CaseInsensitive: caseInsensitive}
}

func (r *EndsWith) Discriminator() string { return "string.EndsWith" }

func (r *EndsWith) Satisfied(value any, _ types.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if r.CaseInsensitive {
		return strings.HasSuffix(strings.ToLower(s), strings.ToLower(r.Value))
	}
	return strings.HasSuffix(s, r.Value)
}

func (r *EndsWith) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), *r)
}

func init() {
	register("string.EndsWith", func(data []byte) (Rule, error) {
		var r EndsWith
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// Contains is satisfied when value is a string containing Value.
type Contains struct {
	Value           string `json:"value"`
	CaseInsensitive bool   `json:"case_insensitive,omitempty"`
}

func NewContains(value string, caseInsensitive bool) *Contains {
	return &Contains{Value: value, CaseInsensitive: caseInsensitive}
}

func (r *Contains) Discriminator() string { return "string.Contains" }

func (r *Contains) Satisfied(value any, _ types.Inquiry) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if r.CaseInsensitive {
		return strings.Contains(strings.ToLower(s), strings.ToLower(r.Value))
	}
	return strings.Contains(s, r.Value)
}

func (r *Contains) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), *r)
}

func init() {
	register("string.Contains", func(data []byte) (Rule, error) {
		var r Contains
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}
