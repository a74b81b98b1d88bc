// Package rule implements the attribute predicate algebra: a sealed set of
// Rule variants plus the JSON registry used to reconstruct them.
package rule

import (
	"encoding/json"
	"fmt"

	"github.com/abacgo/abac/types"
)

// Rule is a pure predicate over an attribute value and the enclosing
// inquiry. Implementations must not raise for any JSON-typed input and must
// not perform I/O.
type Rule interface {
	// Satisfied reports whether value (and, for inquiry-scoped rules, inq)
	// satisfies the rule.
	Satisfied(value any, inq types.Inquiry) bool

	// Discriminator names the rule's variant for JSON serialization. It is
	// stable and never changes for a given Go type.
	Discriminator() string
}

// DiscriminatorKey is the single JSON object key that names a rule's
// variant. It never collides with a rule's own argument names.
const DiscriminatorKey = "rule"

type constructor func(data []byte) (Rule, error)

var registry = make(map[string]constructor)

// register is called from each file's init() to populate the registry used
// by Decode. Panics on a duplicate name: that can only happen from a
// programming error in this package, never from user input.
func register(name string, c constructor) {
	if _, dup := registry[name]; dup {
		panic("rule: duplicate discriminator " + name)
	}
	registry[name] = c
}

// Decode reconstructs a Rule from its JSON encoding, as produced by a
// rule's MarshalJSON. Returns types.ErrUnknownDiscriminator for an
// unregistered variant name.
func Decode(data []byte) (Rule, error) {
	var head struct {
		Rule string `json:"rule"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("rule: decode discriminator: %w", err)
	}
	ctor, ok := registry[head.Rule]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownDiscriminator, head.Rule)
	}
	return ctor(data)
}

// marshalWithTag marshals v and injects the DiscriminatorKey/disc pair into
// the resulting object. Every concrete rule's MarshalJSON calls this so
// nested rules (And/Or/Not children) keep their discriminator when the
// standard library recurses into them.
func marshalWithTag(disc string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	tag, err := json.Marshal(disc)
	if err != nil {
		return nil, err
	}
	fields[DiscriminatorKey] = tag
	return json.Marshal(fields)
}
