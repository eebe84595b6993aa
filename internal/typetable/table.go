// Package typetable maps PSBT/PSET record type ids to display names.
package typetable

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/psbt-decoder/internal/psbt"
)

const (
	proprietaryKey = "proprietary"
	unknownName    = "unknown"
)

// ErrTypeTableLoad is returned when a type table cannot be read or parsed.
var ErrTypeTableLoad = errors.New("type table load")

type scopeTable struct {
	names       map[uint64]string
	proprietary map[string]map[uint64]string
}

// Table resolves type names per scope. A zero Table resolves everything to "unknown".
type Table struct {
	scopes map[psbt.ScopeKind]scopeTable
}

// Resolve returns the name of typeID in scope, or "unknown".
func (t *Table) Resolve(scope psbt.ScopeKind, typeID uint64) string {
	if name, ok := t.scopes[scope].names[typeID]; ok {
		return name
	}
	return unknownName
}

// ResolveProprietary returns the name of a proprietary subtype under prefix, or "unknown"
// when either the prefix or the subtype is missing.
func (t *Table) ResolveProprietary(scope psbt.ScopeKind, prefix string, subtype uint64) string {
	if name, ok := t.scopes[scope].proprietary[prefix][subtype]; ok {
		return name
	}
	return unknownName
}

// Prefixes lists the proprietary prefixes known for scope, sorted.
func (t *Table) Prefixes(scope psbt.ScopeKind) []string {
	out := make([]string, 0, len(t.scopes[scope].proprietary))
	for prefix := range t.scopes[scope].proprietary {
		out = append(out, prefix)
	}
	sort.Strings(out)
	return out
}

// build converts a decoded document of the form
// {scope: {typeId: name, "proprietary": {prefix: {subtype: name}}}}.
// Top level keys other than the three scopes are ignored.
func build(doc map[string]map[string]any) (*Table, error) {
	t := &Table{scopes: make(map[psbt.ScopeKind]scopeTable, 3)}
	for _, scope := range []psbt.ScopeKind{psbt.ScopeGlobal, psbt.ScopeInput, psbt.ScopeOutput} {
		entries, ok := doc[string(scope)]
		if !ok {
			continue
		}
		st, err := buildScope(entries)
		if err != nil {
			return nil, fmt.Errorf("scope %s: %w", scope, err)
		}
		t.scopes[scope] = st
	}
	return t, nil
}

func buildScope(entries map[string]any) (scopeTable, error) {
	st := scopeTable{
		names:       make(map[uint64]string, len(entries)),
		proprietary: make(map[string]map[uint64]string),
	}
	for key, value := range entries {
		if key == proprietaryKey {
			prefixes, ok := asObject(value)
			if !ok {
				return scopeTable{}, fmt.Errorf("%s: want object, got %T", proprietaryKey, value)
			}
			for prefix, subtypes := range prefixes {
				names, err := buildNames(subtypes)
				if err != nil {
					return scopeTable{}, fmt.Errorf("%s %q: %w", proprietaryKey, prefix, err)
				}
				st.proprietary[prefix] = names
			}
			continue
		}

		id, err := parseTypeID(key)
		if err != nil {
			return scopeTable{}, err
		}
		name, ok := value.(string)
		if !ok {
			return scopeTable{}, fmt.Errorf("type %q: want string, got %T", key, value)
		}
		st.names[id] = name
	}
	return st, nil
}

func buildNames(value any) (map[uint64]string, error) {
	entries, ok := asObject(value)
	if !ok {
		return nil, fmt.Errorf("want object, got %T", value)
	}
	names := make(map[uint64]string, len(entries))
	for key, v := range entries {
		id, err := parseTypeID(key)
		if err != nil {
			return nil, err
		}
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("subtype %q: want string, got %T", key, v)
		}
		names[id] = name
	}
	return names, nil
}

// parseTypeID accepts decimal ids and 0x-prefixed hex ids.
func parseTypeID(key string) (uint64, error) {
	base := 10
	digits := key
	if rest, ok := strings.CutPrefix(strings.ToLower(key), "0x"); ok {
		base, digits = 16, rest
	}
	id, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("type id %q: %w", key, err)
	}
	return id, nil
}

// asObject accepts both map shapes a generic decoder may produce. YAML mappings with
// unquoted numeric keys decode to map[any]any.
func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = item
		}
		return out, true
	default:
		return nil, false
	}
}
