package model

import (
	"bytes"
	"fmt"

	"github.com/vvka-141/dbconfig/pkg/dbconfig"
)

// ScopedValue is one environment-tagged value.
// Value is empty when the author listed environment names without values.
type ScopedValue struct {
	Environment string `json:"environment"`
	Value       string `json:"value,omitempty"`
}

// EnvironmentTag names an environment an entity is deployed to.
type EnvironmentTag struct {
	Environment string `json:"environment"`
}

// ExclusionTag names an environment an entity is withheld from.
type ExclusionTag struct {
	ExcludeEnvironment string `json:"excludeEnvironment"`
}

// ScopedEntry is the object form of a scoped field as authors write it.
// Environment and ExcludeEnvironment may each be a string or an array.
type ScopedEntry struct {
	Environment        StringList  `json:"environment,omitempty"`
	Value              *FlexString `json:"value,omitempty"`
	ExcludeEnvironment StringList  `json:"excludeEnvironment,omitempty"`
}

type scopedItem struct {
	name  string
	entry *ScopedEntry
}

func (it *scopedItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var e ScopedEntry
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		it.entry = &e
		return nil
	}
	var s FlexString
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	it.name = string(s)
	return nil
}

// Scoped is an optionally environment-scoped field in the file schema.
// It accepts a scalar, an array of environment names, an array of
// ScopedEntry objects (names and objects may be mixed), a single
// ScopedEntry object, or nothing at all.
//
// Use Values, Environments or Exclusions to normalize it.
type Scoped struct {
	set    bool
	scalar *string
	items  []scopedItem
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scoped) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*s = Scoped{}
		return nil
	}
	switch data[0] {
	case '[':
		var items []scopedItem
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("scoped list: %w", err)
		}
		*s = Scoped{set: true, items: items}
	case '{':
		var it scopedItem
		if err := json.Unmarshal(data, &it); err != nil {
			return fmt.Errorf("scoped entry: %w", err)
		}
		*s = Scoped{set: true, items: []scopedItem{it}}
	default:
		var v FlexString
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		str := string(v)
		*s = Scoped{set: true, scalar: &str}
	}
	return nil
}

// ScopedScalar builds a Scoped holding a single unscoped value.
func ScopedScalar(v string) Scoped {
	return Scoped{set: true, scalar: &v}
}

// ScopedNames builds a Scoped holding a list of environment names.
func ScopedNames(names ...string) Scoped {
	items := make([]scopedItem, 0, len(names))
	for _, n := range names {
		items = append(items, scopedItem{name: n})
	}
	return Scoped{set: true, items: items}
}

// ScopedEntries builds a Scoped holding already-scoped entries.
func ScopedEntries(entries ...ScopedEntry) Scoped {
	items := make([]scopedItem, 0, len(entries))
	for i := range entries {
		e := entries[i]
		items = append(items, scopedItem{entry: &e})
	}
	return Scoped{set: true, items: items}
}

// ScopedFromValues turns normalized values back into file form.
func ScopedFromValues(values []ScopedValue) Scoped {
	entries := make([]ScopedEntry, 0, len(values))
	for _, v := range values {
		e := ScopedEntry{Environment: StringList{v.Environment}}
		if v.Value != "" {
			val := FlexString(v.Value)
			e.Value = &val
		}
		entries = append(entries, e)
	}
	return ScopedEntries(entries...)
}

// IsSet reports whether the field was authored.
func (s Scoped) IsSet() bool { return s.set }

// Values normalizes a value-carrying field.
//
//   - absent: one DEFAULT entry holding NullValue
//   - scalar: one DEFAULT entry holding the scalar
//   - array of names: one entry per name, tagged with it, without a value
//   - entry objects: passed through, fanned out once per listed environment
func (s Scoped) Values() []ScopedValue {
	if !s.set {
		return []ScopedValue{{Environment: dbconfig.DefaultEnvironment, Value: dbconfig.NullValue}}
	}
	if s.scalar != nil {
		return []ScopedValue{{Environment: dbconfig.DefaultEnvironment, Value: *s.scalar}}
	}
	out := make([]ScopedValue, 0, len(s.items))
	for _, it := range s.items {
		if it.entry == nil {
			out = append(out, ScopedValue{Environment: it.name})
			continue
		}
		value := ""
		if it.entry.Value != nil {
			value = string(*it.entry.Value)
		}
		for _, env := range it.entry.Environment.OrDefault(dbconfig.DefaultEnvironment) {
			out = append(out, ScopedValue{Environment: env, Value: value})
		}
	}
	if len(out) == 0 {
		return []ScopedValue{{Environment: dbconfig.DefaultEnvironment, Value: dbconfig.NullValue}}
	}
	return out
}

// Environments normalizes an environment-tag field. An absent field
// yields a single DEFAULT tag.
func (s Scoped) Environments() []EnvironmentTag {
	var envs []string
	switch {
	case !s.set:
	case s.scalar != nil:
		envs = append(envs, *s.scalar)
	default:
		for _, it := range s.items {
			if it.entry == nil {
				envs = append(envs, it.name)
				continue
			}
			envs = append(envs, it.entry.Environment...)
		}
	}
	out := make([]EnvironmentTag, 0, len(envs))
	for _, e := range envs {
		if e != "" {
			out = append(out, EnvironmentTag{Environment: e})
		}
	}
	if len(out) == 0 {
		return []EnvironmentTag{{Environment: dbconfig.DefaultEnvironment}}
	}
	return out
}

// Exclusions normalizes an exclusion field. An absent field yields a
// single NONE tag.
func (s Scoped) Exclusions() []ExclusionTag {
	var envs []string
	switch {
	case !s.set:
	case s.scalar != nil:
		envs = append(envs, *s.scalar)
	default:
		for _, it := range s.items {
			switch {
			case it.entry == nil:
				envs = append(envs, it.name)
			case len(it.entry.ExcludeEnvironment) > 0:
				envs = append(envs, it.entry.ExcludeEnvironment...)
			default:
				envs = append(envs, it.entry.Environment...)
			}
		}
	}
	out := make([]ExclusionTag, 0, len(envs))
	for _, e := range envs {
		if e != "" {
			out = append(out, ExclusionTag{ExcludeEnvironment: e})
		}
	}
	if len(out) == 0 {
		return []ExclusionTag{{ExcludeEnvironment: dbconfig.NoExclusion}}
	}
	return out
}
