package psbt

import "strconv"

// ScopeKind names the section of the envelope a map belongs to.
type ScopeKind string

const (
	ScopeGlobal ScopeKind = "global"
	ScopeInput  ScopeKind = "input"
	ScopeOutput ScopeKind = "output"
)

// Scope identifies one map instance: the global map, or input/output number Index.
type Scope struct {
	Kind  ScopeKind
	Index int
}

// IsIndexed reports whether the scope refers to a specific input or output.
func (s Scope) IsIndexed() bool {
	return s.Kind == ScopeInput || s.Kind == ScopeOutput
}

func (s Scope) String() string {
	if !s.IsIndexed() {
		return string(s.Kind)
	}
	return string(s.Kind) + " " + strconv.Itoa(s.Index)
}
