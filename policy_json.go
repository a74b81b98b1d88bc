package abac

import (
	"encoding/json"

	"github.com/abacgo/abac/rule"
	"github.com/abacgo/abac/types"
)

type policyJSON struct {
	UID         string                     `json:"uid"`
	Effect      string                     `json:"effect"`
	Description string                     `json:"description,omitempty"`
	Subjects    []FieldMatcher             `json:"subjects"`
	Actions     []FieldMatcher             `json:"actions"`
	Resources   []FieldMatcher             `json:"resources"`
	Context     map[string]json.RawMessage `json:"context,omitempty"`
	StartTag    string                     `json:"start_tag,omitempty"`
	EndTag      string                     `json:"end_tag,omitempty"`
}

func (p *Policy) MarshalJSON() ([]byte, error) {
	context := make(map[string]json.RawMessage, len(p.Context))
	for key, r := range p.Context {
		data, err := json.Marshal(r)
		if err != nil {
			return nil, err
		}
		context[key] = data
	}
	return json.Marshal(policyJSON{
		UID:         p.UID,
		Effect:      p.Effect.String(),
		Description: p.Description,
		Subjects:    p.Subjects,
		Actions:     p.Actions,
		Resources:   p.Resources,
		Context:     context,
		StartTag:    p.StartTag,
		EndTag:      p.EndTag,
	})
}

func (p *Policy) UnmarshalJSON(data []byte) error {
	var alias policyJSON
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	context := make(map[string]rule.Rule, len(alias.Context))
	for key, raw := range alias.Context {
		r, err := rule.Decode(raw)
		if err != nil {
			return err
		}
		context[key] = r
	}

	startTag, endTag := alias.StartTag, alias.EndTag
	if startTag == "" {
		startTag = DefaultStartTag
	}
	if endTag == "" {
		endTag = DefaultEndTag
	}

	built, err := NewPolicy(alias.UID, types.Effect(alias.Effect), alias.Subjects, alias.Actions, alias.Resources, context,
		WithDescription(alias.Description), WithTags(startTag, endTag))
	if err != nil {
		return err
	}
	*p = *built
	return nil
}
