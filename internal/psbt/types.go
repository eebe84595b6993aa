// Package psbt walks the binary PSBT/PSET envelope and reports its key/value records.
package psbt

import (
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TypeResolver maps record type ids to display names. Both methods are total:
	// a miss returns "unknown".
	TypeResolver interface {
		Resolve(scope ScopeKind, typeID uint64) string
		ResolveProprietary(scope ScopeKind, prefix string, subtype uint64) string
	}

	// Metrics observes finished decodes and the size of every decoded map.
	Metrics interface {
		ObserveDecode(err error, inputs, outputs int, started time.Time)
		ObserveMap(scope ScopeKind, records int)
	}
)
