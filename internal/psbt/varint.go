package psbt

import (
	"encoding/binary"
)

// VarInt is a decoded CompactSize integer together with its encoded width.
type VarInt struct {
	Value uint64
	Size  int
}

// ReadVarInt decodes a CompactSize unsigned integer.
//
// Unlike wire.ReadVarInt, non-canonical encodings (a small value written in a
// wider form) are accepted.
func ReadVarInt(c *Cursor) (VarInt, error) {
	discriminant, err := c.Read(1)
	if err != nil {
		return VarInt{}, err
	}

	switch discriminant[0] {
	case 0xfd:
		b, err := c.Read(2)
		if err != nil {
			return VarInt{}, err
		}
		return VarInt{Value: uint64(binary.LittleEndian.Uint16(b)), Size: 3}, nil
	case 0xfe:
		b, err := c.Read(4)
		if err != nil {
			return VarInt{}, err
		}
		return VarInt{Value: uint64(binary.LittleEndian.Uint32(b)), Size: 5}, nil
	case 0xff:
		b, err := c.Read(8)
		if err != nil {
			return VarInt{}, err
		}
		return VarInt{Value: binary.LittleEndian.Uint64(b), Size: 9}, nil
	default:
		return VarInt{Value: uint64(discriminant[0]), Size: 1}, nil
	}
}

// ReadVector reads a CompactSize length followed by that many bytes.
func ReadVector(c *Cursor) (uint64, []byte, error) {
	size, err := ReadVarInt(c)
	if err != nil {
		return 0, nil, err
	}
	data, err := c.Read(size.Value)
	if err != nil {
		return 0, nil, err
	}
	return size.Value, data, nil
}
