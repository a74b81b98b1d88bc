// Package config loads policy sets from YAML files, grounded on
// other_examples/ZiweiAxis-diting's LoadRules: read the file, treat a
// missing path or missing file as an empty set, and wrap every failure
// with %w so callers can distinguish "not configured" from "malformed".
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abacgo/abac"
)

// PolicySetFile is the root of a YAML policy set document.
type PolicySetFile struct {
	Policies []yaml.Node `yaml:"policies"`
}

// LoadPolicySet loads a list of policies from a YAML file at path. A path
// that doesn't exist (or is empty) yields an empty, nil-error result: a
// host with no configured policy file simply starts with no policies.
//
// Each YAML node is decoded into a generic value, re-marshaled as JSON,
// and handed to Policy.UnmarshalJSON — this reuses the same discriminator
// registry that serves the native JSON codec, so a rule written once in
// Go is expressible from either format.
func LoadPolicySet(path string) ([]*abac.Policy, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read policy set %q: %w", path, err)
	}

	var file PolicySetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: unmarshal policy set %q: %w", path, err)
	}

	policies := make([]*abac.Policy, 0, len(file.Policies))
	for i, node := range file.Policies {
		var generic any
		if err := node.Decode(&generic); err != nil {
			return nil, fmt.Errorf("config: decode policy %d in %q: %w", i, path, err)
		}

		asJSON, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("config: re-marshal policy %d in %q: %w", i, path, err)
		}

		var p abac.Policy
		if err := p.UnmarshalJSON(asJSON); err != nil {
			return nil, fmt.Errorf("config: decode policy %d in %q: %w", i, path, err)
		}
		policies = append(policies, &p)
	}
	return policies, nil
}
