package rule

import (
	"encoding/json"

	"github.com/abacgo/abac/types"
)

// In is satisfied when value equals one of Items.
type In struct {
	Items []any `json:"items"`
}

func NewIn(items ...any) *In { return &In{Items: items} }

func (r *In) Discriminator() string { return "list.In" }

func (r *In) Satisfied(value any, _ types.Inquiry) bool {
	return containsValue(r.Items, value)
}

func (r *In) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Items []any `json:"items"`
	}{r.Items})
}

func init() {
	register("list.In", func(data []byte) (Rule, error) {
		var r In
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// NotIn is satisfied when value equals none of Items.
type NotIn struct {
	Items []any `json:"items"`
}

func NewNotIn(items ...any) *NotIn { return &NotIn{Items: items} }

func (r *NotIn) Discriminator() string { return "list.NotIn" }

func (r *NotIn) Satisfied(value any, _ types.Inquiry) bool {
	return !containsValue(r.Items, value)
}

func (r *NotIn) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Items []any `json:"items"`
	}{r.Items})
}

func init() {
	register("list.NotIn", func(data []byte) (Rule, error) {
		var r NotIn
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// AllIn is satisfied when value is a list and every element of it is a
// member of Items. A non-list value is false.
type AllIn struct {
	Items []any `json:"items"`
}

func NewAllIn(items ...any) *AllIn { return &AllIn{Items: items} }

func (r *AllIn) Discriminator() string { return "list.AllIn" }

func (r *AllIn) Satisfied(value any, _ types.Inquiry) bool {
	elems, ok := value.([]any)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !containsValue(r.Items, e) {
			return false
		}
	}
	return true
}

func (r *AllIn) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Items []any `json:"items"`
	}{r.Items})
}

func init() {
	register("list.AllIn", func(data []byte) (Rule, error) {
		var r AllIn
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// AllNotIn is satisfied when value is a list and none of its elements is a
// member of Items. A non-list value is false.
type AllNotIn struct {
	Items []any `json:"items"`
}

func NewAllNotIn(items ...any) *AllNotIn { return &AllNotIn{Items: items} }

func (r *AllNotIn) Discriminator() string { return "list.AllNotIn" }

func (r *AllNotIn) Satisfied(value any, _ types.Inquiry) bool {
	elems, ok := value.([]any)
	if !ok {
		return false
	}
	for _, e := range elems {
		if containsValue(r.Items, e) {
			return false
		}
	}
	return true
}

func (r *AllNotIn) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Items []any `json:"items"`
	}{r.Items})
}

func init() {
	register("list.AllNotIn", func(data []byte) (Rule, error) {
		var r AllNotIn
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// AnyIn is satisfied when value is a list and at least one of its elements
// is a member of Items. A non-list value is false.
type AnyIn struct {
	Items []any `json:"items"`
}

func NewAnyIn(items ...any) *AnyIn { return &AnyIn{Items: items} }

func (r *AnyIn) Discriminator() string { return "list.AnyIn" }

func (r *AnyIn) Satisfied(value any, _ types.Inquiry) bool {
	elems, ok := value.([]any)
	if !ok {
		return false
	}
	for _, e := range elems {
		if containsValue(r.Items, e) {
			return true
		}
	}
	return false
}

func (r *AnyIn) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Items []any `json:"items"`
	}{r.Items})
}

func init() {
	register("list.AnyIn", func(data []byte) (Rule, error) {
		var r AnyIn
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// AnyNotIn is satisfied when value is a list and at least one of its
// elements is not a member of Items. A non-list value is false.
type AnyNotIn struct {
	Items []any `json:"items"`
}

func NewAnyNotIn(items ...any) *AnyNotIn { return &AnyNotIn{Items: items} }

func (r *AnyNotIn) Discriminator() string { return "list.AnyNotIn" }

func (r *AnyNotIn) Satisfied(value any, _ types.Inquiry) bool {
	elems, ok := value.([]any)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !containsValue(r.Items, e) {
			return true
		}
	}
	return false
}

func (r *AnyNotIn) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Items []any `json:"items"`
	}{r.Items})
}

func init() {
	register("list.AnyNotIn", func(data []byte) (Rule, error) {
		var r AnyNotIn
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

func containsValue(items []any, v any) bool {
	for _, it := range items {
		if valuesEqual(it, v) {
			return true
		}
	}
	return false
}
