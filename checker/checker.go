// Package checker implements the string-typed policy matching strategies
// and the pass-through marker used by rules-typed policies.
package checker

import "strings"

// Kind identifies a Checker's matching strategy so storages can use it as a
// hint for pre-filtering candidates.
type Kind string

const (
	KindStringExact Kind = "string-exact"
	KindStringFuzzy Kind = "string-fuzzy"
	KindRegex       Kind = "regex"
	KindRules       Kind = "rules"
)

// Checker decides whether a policy's literal pattern fits an inquiry's
// scalar value, under some string matching strategy. StartTag/EndTag are
// carried per call because they are a policy-level setting, not a
// checker-level one: the same Checker instance serves every policy.
type Checker interface {
	Fits(pattern, value, startTag, endTag string) bool
	Kind() Kind
}

// StringExact fits on case-sensitive equality.
type StringExact struct{}

func (StringExact) Fits(pattern, value, _, _ string) bool { return pattern == value }
func (StringExact) Kind() Kind                            { return KindStringExact }

// StringFuzzy fits when pattern is a substring of value.
type StringFuzzy struct{}

func (StringFuzzy) Fits(pattern, value, _, _ string) bool { return strings.Contains(value, pattern) }
func (StringFuzzy) Kind() Kind                            { return KindStringFuzzy }
