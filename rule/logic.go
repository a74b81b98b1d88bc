package rule

import (
	"encoding/json"

	"github.com/abacgo/abac/types"
)

// IsTrue is satisfied when value is the boolean true.
type IsTrue struct{}

func NewIsTrue() *IsTrue { return &IsTrue{} }

func (IsTrue) Discriminator() string { return "logic.IsTrue" }

func (IsTrue) Satisfied(value any, _ types.Inquiry) bool {
	b, ok := value.(bool)
	return ok && b
}

func (r IsTrue) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct{}{})
}

func init() {
	register("logic.IsTrue", func([]byte) (Rule, error) { return &IsTrue{}, nil })
}

// IsFalse is satisfied when value is the boolean false.
type IsFalse struct{}

func NewIsFalse() *IsFalse { return &IsFalse{} }

func (IsFalse) Discriminator() string { return "logic.IsFalse" }

func (IsFalse) Satisfied(value any, _ types.Inquiry) bool {
	b, ok := value.(bool)
	return ok && !b
}

func (r IsFalse) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct{}{})
}

func init() {
	register("logic.IsFalse", func([]byte) (Rule, error) { return &IsFalse{}, nil })
}

// Any is always satisfied.
type Any struct{}

func NewAny() *Any { return &Any{} }

func (Any) Discriminator() string { return "logic.Any" }

func (Any) Satisfied(any, types.Inquiry) bool { return true }

func (r Any) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct{}{})
}

func init() {
	register("logic.Any", func([]byte) (Rule, error) { return &Any{}, nil })
}

// Neither is never satisfied.
type Neither struct{}

func NewNeither() *Neither { return &Neither{} }

func (Neither) Discriminator() string { return "logic.Neither" }

func (Neither) Satisfied(any, types.Inquiry) bool { return false }

func (r Neither) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct{}{})
}

func init() {
	register("logic.Neither", func([]byte) (Rule, error) { return &Neither{}, nil })
}

// Not inverts its Operand.
type Not struct {
	Operand Rule
}

func NewNot(operand Rule) *Not { return &Not{Operand: operand} }

func (r *Not) Discriminator() string { return "logic.Not" }

func (r *Not) Satisfied(value any, inq types.Inquiry) bool {
	return !r.Operand.Satisfied(value, inq)
}

func (r *Not) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Operand Rule `json:"operand"`
	}{r.Operand})
}

func (r *Not) UnmarshalJSON(data []byte) error {
	var raw struct {
		Operand json.RawMessage `json:"operand"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	operand, err := Decode(raw.Operand)
	if err != nil {
		return err
	}
	r.Operand = operand
	return nil
}

func init() {
	register("logic.Not", func(data []byte) (Rule, error) {
		var r Not
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// And is satisfied when every child rule is satisfied. An empty And is
// satisfied (empty→true) and short-circuits on the first false child.
type And struct {
	Rules []Rule
}

func NewAnd(rules ...Rule) *And { return &And{Rules: rules} }

func (r *And) Discriminator() string { return "logic.And" }

func (r *And) Satisfied(value any, inq types.Inquiry) bool {
	for _, child := range r.Rules {
		if !child.Satisfied(value, inq) {
			return false
		}
	}
	return true
}

func (r *And) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Rules []Rule `json:"rules"`
	}{r.Rules})
}

func (r *And) UnmarshalJSON(data []byte) error {
	children, err := decodeRuleList(data)
	if err != nil {
		return err
	}
	r.Rules = children
	return nil
}

func init() {
	register("logic.And", func(data []byte) (Rule, error) {
		var r And
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// Or is satisfied when at least one child rule is satisfied. An empty Or is
// not satisfied (empty→false) and short-circuits on the first true child.
type Or struct {
	Rules []Rule
}

func NewOr(rules ...Rule) *Or { return &Or{Rules: rules} }

func (r *Or) Discriminator() string { return "logic.Or" }

func (r *Or) Satisfied(value any, inq types.Inquiry) bool {
	for _, child := range r.Rules {
		if child.Satisfied(value, inq) {
			return true
		}
	}
	return false
}

func (r *Or) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Rules []Rule `json:"rules"`
	}{r.Rules})
}

func (r *Or) UnmarshalJSON(data []byte) error {
	children, err := decodeRuleList(data)
	if err != nil {
		return err
	}
	r.Rules = children
	return nil
}

func init() {
	register("logic.Or", func(data []byte) (Rule, error) {
		var r Or
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

func decodeRuleList(data []byte) ([]Rule, error) {
	var raw struct {
		Rules []json.RawMessage `json:"rules"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	rules := make([]Rule, len(raw.Rules))
	for i, r := range raw.Rules {
		child, err := Decode(r)
		if err != nil {
			return nil, err
		}
		rules[i] = child
	}
	return rules, nil
}
