package rule

import (
	"encoding/json"

	"github.com/abacgo/abac/types"
)

// Eq is satisfied when value equals the configured Value. Operands that
// aren't mutually orderable make it false, never a panic.
type Eq struct {
	Value any `json:"value"`
}

// NewEq builds an Eq rule.
func NewEq(value any) *Eq { return &Eq{Value: value} }

func (r *Eq) Discriminator() string { return "comparison.Eq" }

func (r *Eq) Satisfied(value any, _ types.Inquiry) bool {
	ordered, cmp := compare(value, r.Value)
	return ordered && cmp == 0
}

func (r *Eq) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("comparison.Eq", func(data []byte) (Rule, error) {
		var r Eq
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// NotEq is the negation of Eq.
type NotEq struct {
	Value any `json:"value"`
}

func NewNotEq(value any) *NotEq { return &NotEq{Value: value} }

func (r *NotEq) Discriminator() string { return "comparison.NotEq" }

func (r *NotEq) Satisfied(value any, _ types.Inquiry) bool {
	ordered, cmp := compare(value, r.Value)
	return ordered && cmp != 0
}

func (r *NotEq) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("comparison.NotEq", func(data []byte) (Rule, error) {
		var r NotEq
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// Greater is satisfied when value > Value.
type Greater struct {
	Value any `json:"value"`
}

func NewGreater(value any) *Greater { return &Greater{Value: value} }

func (r *Greater) Discriminator() string { return "comparison.Greater" }

func (r *Greater) Satisfied(value any, _ types.Inquiry) bool {
	ordered, cmp := compare(value, r.Value)
	return ordered && cmp > 0
}

func (r *Greater) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("comparison.Greater", func(data []byte) (Rule, error) {
		var r Greater
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// Less is satisfied when value < Value.
type Less struct {
	Value any `json:"value"`
}

func NewLess(value any) *Less { return &Less{Value: value} }

func (r *Less) Discriminator() string { return "comparison.Less" }

func (r *Less) Satisfied(value any, _ types.Inquiry) bool {
	ordered, cmp := compare(value, r.Value)
	return ordered && cmp < 0
}

func (r *Less) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("comparison.Less", func(data []byte) (Rule, error) {
		var r Less
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// GreaterOrEqual is satisfied when value >= Value.
type GreaterOrEqual struct {
	Value any `json:"value"`
}

func NewGreaterOrEqual(value any) *GreaterOrEqual { return &GreaterOrEqual{Value: value} }

func (r *GreaterOrEqual) Discriminator() string { return "comparison.GreaterOrEqual" }

func (r *GreaterOrEqual) Satisfied(value any, _ types.Inquiry) bool {
	ordered, cmp := compare(value, r.Value)
	return ordered && cmp >= 0
}

func (r *GreaterOrEqual) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("comparison.GreaterOrEqual", func(data []byte) (Rule, error) {
		var r GreaterOrEqual
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// LessOrEqual is satisfied when value <= Value.
type LessOrEqual struct {
	Value any `json:"value"`
}

func NewLessOrEqual(value any) *LessOrEqual { return &LessOrEqual{Value: value} }

func (r *LessOrEqual) Discriminator() string { return "comparison.LessOrEqual" }

func (r *LessOrEqual) Satisfied(value any, _ types.Inquiry) bool {
	ordered, cmp := compare(value, r.Value)
	return ordered && cmp <= 0
}

func (r *LessOrEqual) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("comparison.LessOrEqual", func(data []byte) (Rule, error) {
		var r LessOrEqual
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}
