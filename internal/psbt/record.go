package psbt

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Record type ids with structural meaning for the decoder.
const (
	GlobalUnsignedTx  uint64 = 0x00
	GlobalInputCount  uint64 = 0x04
	GlobalOutputCount uint64 = 0x05
	ProprietaryType   uint64 = 0xfc
)

// Key is a parsed record key.
type Key struct {
	Type        uint64
	Proprietary *ProprietaryKey
	// Data holds the type specific key payload (pubkey, hash, ...) that follows the type id.
	Data        []byte
}

// ProprietaryKey is the vendor namespace of a proprietary record.
type ProprietaryKey struct {
	Prefix  []byte
	Subtype uint64
}

// PrefixText renders the identifier prefix as text when it is printable, hex otherwise.
func (p ProprietaryKey) PrefixText() string {
	if len(p.Prefix) == 0 {
		return `""`
	}
	if !utf8.Valid(p.Prefix) {
		return hex.EncodeToString(p.Prefix)
	}
	for _, r := range string(p.Prefix) {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return strconv.Quote(string(p.Prefix))
		}
	}
	return string(p.Prefix)
}

// ParseKey splits raw key bytes into type id, optional proprietary namespace and key data.
func ParseKey(raw []byte) (Key, error) {
	c := NewCursor(raw)
	typeID, err := ReadVarInt(c)
	if err != nil {
		return Key{}, fmt.Errorf("%w: type id: %w", ErrMalformedRecord, err)
	}

	key := Key{Type: typeID.Value}
	if key.Type == ProprietaryType {
		_, prefix, err := ReadVector(c)
		if err != nil {
			return Key{}, fmt.Errorf("%w: proprietary prefix: %w", ErrMalformedRecord, err)
		}
		subtype, err := ReadVarInt(c)
		if err != nil {
			return Key{}, fmt.Errorf("%w: proprietary subtype: %w", ErrMalformedRecord, err)
		}
		key.Proprietary = &ProprietaryKey{Prefix: prefix, Subtype: subtype.Value}
	}

	rest, err := c.Read(uint64(c.Remaining()))
	if err != nil {
		return Key{}, fmt.Errorf("%w: key data: %w", ErrMalformedRecord, err)
	}
	if len(rest) > 0 {
		key.Data = rest
	}
	return key, nil
}

// Record is one key/value pair of a map, in on-disk order.
type Record struct {
	Scope    Scope
	TypeName string
	// Offset is the position of the key length in the document.
	Offset   int
	Key      Key
	KeyBytes []byte
	Value    []byte
}

// KeyHex returns the raw key bytes, type id included, as lower-case hex.
func (r Record) KeyHex() string {
	return hex.EncodeToString(r.KeyBytes)
}

// ValueHex returns the value bytes as lower-case hex.
func (r Record) ValueHex() string {
	return hex.EncodeToString(r.Value)
}
