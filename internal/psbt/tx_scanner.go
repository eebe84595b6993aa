package psbt

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	txVersionSize = 4
	outpointSize  = chainhash.HashSize + 4
	sequenceSize  = 4
	// minTxInSize is an input with an empty signature script.
	minTxInSize = outpointSize + 1 + sequenceSize
)

// TxCounts holds the number of inputs and outputs of the unsigned transaction.
type TxCounts struct {
	Inputs  uint64
	Outputs uint64
}

// ScanTransaction reads just enough of a serialized transaction to learn its input and
// output counts. Output bodies, lock time and any trailing bytes are ignored.
func ScanTransaction(raw []byte) (TxCounts, error) {
	counts, err := scanTransaction(NewCursor(raw))
	if err != nil {
		return TxCounts{}, fmt.Errorf("%w: %w", ErrMalformedTransaction, err)
	}
	return counts, nil
}

func scanTransaction(c *Cursor) (TxCounts, error) {
	if err := c.Skip(txVersionSize); err != nil {
		return TxCounts{}, fmt.Errorf("version: %w", err)
	}

	inputs, err := ReadVarInt(c)
	if err != nil {
		return TxCounts{}, fmt.Errorf("input count: %w", err)
	}
	if limit := uint64(c.Remaining() / minTxInSize); inputs.Value > limit {
		return TxCounts{}, fmt.Errorf("input count %d does not fit in %d remaining bytes", inputs.Value, c.Remaining())
	}

	for i := uint64(0); i < inputs.Value; i++ {
		if err := skipTxIn(c); err != nil {
			return TxCounts{}, fmt.Errorf("input %d: %w", i, err)
		}
	}

	outputs, err := ReadVarInt(c)
	if err != nil {
		return TxCounts{}, fmt.Errorf("output count: %w", err)
	}
	return TxCounts{Inputs: inputs.Value, Outputs: outputs.Value}, nil
}

func skipTxIn(c *Cursor) error {
	if err := c.Skip(outpointSize); err != nil {
		return fmt.Errorf("outpoint: %w", err)
	}
	scriptLen, err := ReadVarInt(c)
	if err != nil {
		return fmt.Errorf("script length: %w", err)
	}
	if err := c.Skip(scriptLen.Value); err != nil {
		return fmt.Errorf("signature script: %w", err)
	}
	if err := c.Skip(sequenceSize); err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	return nil
}
