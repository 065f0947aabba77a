// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bson

// validationPolicy is the resolved per-call UTF-8 validation rule set. It is
// built once at Decode entry and never mutated afterwards, so it can be
// shared freely across the recursive decode calls.
type validationPolicy struct {
	// perKey is nil in uniform mode. In per-key mode it maps top-level field
	// names to their validation flag.
	perKey map[string]bool
	// fallback applies to every key in uniform mode and to unnamed top-level
	// keys in per-key mode, where it holds the opposite of the mapping's
	// common value
	fallback bool
}

// newValidationPolicy resolves the decode configuration into a policy,
// enforcing the mapping invariants before any input byte is read
func newValidationPolicy(cfg *decodeConfig) (*validationPolicy, error) {
	if cfg.utf8ByKeySet {
		if len(cfg.utf8ByKey) == 0 {
			return nil, EmptyValidationOptionError{}
		}
		var common bool
		first := true
		for _, v := range cfg.utf8ByKey {
			if first {
				common = v
				first = false
			} else if v != common {
				return nil, InconsistentValidationOptionError{}
			}
		}
		perKey := make(map[string]bool, len(cfg.utf8ByKey))
		for k, v := range cfg.utf8ByKey {
			perKey[k] = v
		}
		// Unnamed keys take the opposite of the common value: the mapping is
		// an exception set, not a partial specification
		return &validationPolicy{
			perKey:   perKey,
			fallback: !common,
		}, nil
	}
	fallback := true
	if cfg.utf8Uniform != nil {
		fallback = *cfg.utf8Uniform
	}
	return &validationPolicy{fallback: fallback}, nil
}

// isEnabled reports whether strict UTF-8 validation applies to the subtree
// rooted at the given top-level field name. Array members and nested
// documents inherit their top-level ancestor's key.
func (p *validationPolicy) isEnabled(topLevelKey string) bool {
	if p.perKey != nil {
		if v, ok := p.perKey[topLevelKey]; ok {
			return v
		}
	}
	return p.fallback
}
