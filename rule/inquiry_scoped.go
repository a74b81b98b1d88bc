package rule

import (
	"encoding/json"
	"strings"

	"github.com/abacgo/abac/types"
)

// SubjectEqual ignores value and is satisfied when the inquiry's Subject
// equals Value. It is typically placed under context rather than a
// subjects matcher, but a Policy places no constraint on that placement.
type SubjectEqual struct {
	Value any `json:"value"`
}

func NewSubjectEqual(value any) *SubjectEqual { return &SubjectEqual{Value: value} }

func (r *SubjectEqual) Discriminator() string { return "inquiry.SubjectEqual" }

func (r *SubjectEqual) Satisfied(_ any, inq types.Inquiry) bool {
	return valuesEqual(r.Value, inq.Subject)
}

func (r *SubjectEqual) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("inquiry.SubjectEqual", func(data []byte) (Rule, error) {
		var r SubjectEqual
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// ActionEqual ignores value and is satisfied when the inquiry's Action
// equals Value.
type ActionEqual struct {
	Value any `json:"value"`
}

func NewActionEqual(value any) *ActionEqual { return &ActionEqual{Value: value} }

func (r *ActionEqual) Discriminator() string { return "inquiry.ActionEqual" }

func (r *ActionEqual) Satisfied(_ any, inq types.Inquiry) bool {
	return valuesEqual(r.Value, inq.Action)
}

func (r *ActionEqual) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("inquiry.ActionEqual", func(data []byte) (Rule, error) {
		var r ActionEqual
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}

// ResourceIn ignores value and is satisfied when Value equals, or (for a
// string resource) is a substring of, the inquiry's Resource.
type ResourceIn struct {
	Value any `json:"value"`
}

func NewResourceIn(value any) *ResourceIn { return &ResourceIn{Value: value} }

func (r *ResourceIn) Discriminator() string { return "inquiry.ResourceIn" }

func (r *ResourceIn) Satisfied(_ any, inq types.Inquiry) bool {
	if res, ok := inq.Resource.(string); ok {
		if needle, ok := r.Value.(string); ok {
			return res == needle || strings.Contains(res, needle)
		}
	}
	return valuesEqual(r.Value, inq.Resource)
}

func (r *ResourceIn) MarshalJSON() ([]byte, error) {
	return marshalWithTag(r.Discriminator(), struct {
		Value any `json:"value"`
	}{r.Value})
}

func init() {
	register("inquiry.ResourceIn", func(data []byte) (Rule, error) {
		var r ResourceIn
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return &r, nil
	})
}
