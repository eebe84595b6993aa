package psbt

import (
	"fmt"
	"strings"
)

const (
	txTypeName      = "TX"
	unknownTypeName = "unknown"
)

// Map is the ordered record list of one scope instance. The separator that ends it is
// implied: a Map is only returned once its separator has been read.
type Map struct {
	Scope   Scope
	Offset  int
	Records []Record

	// UnsignedTx and TxCounts are set when the global map carried the unsigned transaction.
	UnsignedTx []byte
	TxCounts   *TxCounts
	// InputCount and OutputCount hold the raw values of the explicit count records
	// (PSBT v2, PSET v2). They are only interpreted by Counts.
	InputCount  []byte
	OutputCount []byte
}

// Counts returns the number of input and output maps that follow this global map.
// The unsigned transaction takes precedence over explicit count records, whose values
// are only validated when they are needed.
func (m Map) Counts() (TxCounts, error) {
	if m.TxCounts != nil {
		return *m.TxCounts, nil
	}
	switch {
	case m.InputCount == nil && m.OutputCount == nil:
		return TxCounts{}, ErrMissingTransaction
	case m.InputCount == nil:
		return TxCounts{}, fmt.Errorf("%w: input count record missing", ErrMissingTransaction)
	case m.OutputCount == nil:
		return TxCounts{}, fmt.Errorf("%w: output count record missing", ErrMissingTransaction)
	}

	inputs, err := readCountValue(m.InputCount)
	if err != nil {
		return TxCounts{}, fmt.Errorf("input count: %w", err)
	}
	outputs, err := readCountValue(m.OutputCount)
	if err != nil {
		return TxCounts{}, fmt.Errorf("output count: %w", err)
	}
	return TxCounts{Inputs: inputs, Outputs: outputs}, nil
}

// MapDecoder reads key/value maps terminated by a zero length key.
type MapDecoder struct {
	resolver TypeResolver
}

func NewMapDecoder(resolver TypeResolver) *MapDecoder {
	return &MapDecoder{resolver: resolver}
}

// Decode reads records for scope until the separator. Any error aborts the whole map.
func (d *MapDecoder) Decode(c *Cursor, scope Scope) (Map, error) {
	m := Map{Scope: scope, Offset: c.Offset()}
	for {
		offset := c.Offset()
		keyLen, keyBytes, err := ReadVector(c)
		if err != nil {
			return Map{}, fmt.Errorf("%s map: key at offset %d: %w", scope, offset, err)
		}
		if keyLen == 0 {
			return m, nil
		}

		key, err := ParseKey(keyBytes)
		if err != nil {
			return Map{}, fmt.Errorf("%s map: record at offset %d: %w", scope, offset, err)
		}
		_, value, err := ReadVector(c)
		if err != nil {
			return Map{}, fmt.Errorf("%s map: value at offset %d: %w", scope, offset, err)
		}

		rec := Record{
			Scope:    scope,
			TypeName: d.typeName(scope, key),
			Offset:   offset,
			Key:      key,
			KeyBytes: keyBytes,
			Value:    value,
		}
		if scope.Kind == ScopeGlobal {
			if err := captureCounts(&m, rec); err != nil {
				return Map{}, fmt.Errorf("%s map: record at offset %d: %w", scope, offset, err)
			}
		}
		m.Records = append(m.Records, rec)
	}
}

func (d *MapDecoder) typeName(scope Scope, key Key) string {
	if scope.Kind == ScopeGlobal && key.Type == GlobalUnsignedTx {
		return txTypeName
	}

	name := strings.ToUpper(d.resolve(scope.Kind, key.Type))
	if key.Proprietary == nil {
		return name
	}
	subtype := d.resolveProprietary(scope.Kind, key.Proprietary)
	return name + " " + key.Proprietary.PrefixText() + " " + strings.ToUpper(subtype)
}

func (d *MapDecoder) resolve(scope ScopeKind, typeID uint64) string {
	if d.resolver == nil {
		return unknownTypeName
	}
	return d.resolver.Resolve(scope, typeID)
}

func (d *MapDecoder) resolveProprietary(scope ScopeKind, key *ProprietaryKey) string {
	if d.resolver == nil {
		return unknownTypeName
	}
	return d.resolver.ResolveProprietary(scope, string(key.Prefix), key.Subtype)
}

// captureCounts records the structural information a global record carries. Count
// records are only recognised with a bare type byte key; anything else is an opaque
// record. When a record is repeated the last occurrence wins.
func captureCounts(m *Map, rec Record) error {
	switch rec.Key.Type {
	case GlobalUnsignedTx:
		counts, err := ScanTransaction(rec.Value)
		if err != nil {
			return err
		}
		m.UnsignedTx = rec.Value
		m.TxCounts = &counts
	case GlobalInputCount:
		if len(rec.KeyBytes) == 1 {
			m.InputCount = rec.Value
		}
	case GlobalOutputCount:
		if len(rec.KeyBytes) == 1 {
			m.OutputCount = rec.Value
		}
	}
	return nil
}

func readCountValue(value []byte) (uint64, error) {
	c := NewCursor(value)
	n, err := ReadVarInt(c)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	if c.Remaining() != 0 {
		return 0, fmt.Errorf("%w: %d unexpected bytes after count", ErrMalformedRecord, c.Remaining())
	}
	return n.Value, nil
}
