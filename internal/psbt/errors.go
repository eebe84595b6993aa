package psbt

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInput is returned when a read runs past the end of its buffer.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedRecord is returned when a record key cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrMalformedTransaction is returned when the embedded transaction cannot be scanned
	// or the counts derived from it are impossible.
	ErrMalformedTransaction = errors.New("malformed transaction")
	// ErrMissingTransaction is returned when the global map carries neither the unsigned
	// transaction nor explicit input/output counts.
	ErrMissingTransaction = fmt.Errorf("%w: global map has no transaction or counts", ErrMalformedTransaction)
)

// TruncatedError describes a read that wanted more bytes than were available.
type TruncatedError struct {
	Offset int
	Want   uint64
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input at offset %d: want %d bytes, have %d", e.Offset, e.Want, e.Have)
}

func (e *TruncatedError) Unwrap() error {
	return ErrTruncatedInput
}
