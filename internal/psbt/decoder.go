package psbt

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"
)

const (
	magicSize = 4

	MagicPSBT = "psbt"
	MagicPSET = "pset"
)

// Envelope is a fully decoded document. It is never mutated after Decode returns.
type Envelope struct {
	Magic     [magicSize]byte
	Separator byte
	Global    Map
	Inputs    []Map
	Outputs   []Map
	// Trailing is the number of bytes left after the last output map.
	Trailing int
}

// Format names the envelope flavour announced by the magic bytes. The magic is not
// validated; unrecognised values report "unknown".
func (e *Envelope) Format() string {
	switch string(e.Magic[:]) {
	case MagicPSBT:
		return "psbt"
	case MagicPSET:
		return "pset"
	default:
		return "unknown"
	}
}

// Decoder drives the map decoder over a whole PSBT/PSET document.
type Decoder struct {
	maps    *MapDecoder
	metrics Metrics
	logger  *zap.Logger
}

// NewDecoder builds a decoder resolving type names with resolver. metrics and logger may be nil.
func NewDecoder(resolver TypeResolver, metrics Metrics, logger *zap.Logger) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{
		maps:    NewMapDecoder(resolver),
		metrics: metrics,
		logger:  logger,
	}
}

// Decode parses buf completely. Either the whole envelope is returned or an error; there
// is no partial result.
func (d *Decoder) Decode(buf []byte) (env *Envelope, err error) {
	started := time.Now()
	defer func() {
		d.observeDecode(env, err, started)
	}()

	c := NewCursor(buf)
	magic, err := c.Read(magicSize)
	if err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	sep, err := c.Read(1)
	if err != nil {
		return nil, fmt.Errorf("read separator: %w", err)
	}

	out := &Envelope{Separator: sep[0]}
	copy(out.Magic[:], magic)
	d.logger.Debug("envelope header",
		zap.String("magic", hex.EncodeToString(magic)),
		zap.String("format", out.Format()),
	)

	out.Global, err = d.decodeMap(c, Scope{Kind: ScopeGlobal})
	if err != nil {
		return nil, err
	}
	counts, err := out.Global.Counts()
	if err != nil {
		return nil, err
	}
	d.describeTransaction(out.Global.UnsignedTx)
	if err := checkCounts(c, counts); err != nil {
		return nil, err
	}

	// checkCounts bounds both counts by the remaining bytes, so they fit in an int.
	out.Inputs = make([]Map, 0, int(counts.Inputs))
	for i := 0; i < int(counts.Inputs); i++ {
		m, err := d.decodeMap(c, Scope{Kind: ScopeInput, Index: i})
		if err != nil {
			return nil, err
		}
		out.Inputs = append(out.Inputs, m)
	}
	out.Outputs = make([]Map, 0, int(counts.Outputs))
	for i := 0; i < int(counts.Outputs); i++ {
		m, err := d.decodeMap(c, Scope{Kind: ScopeOutput, Index: i})
		if err != nil {
			return nil, err
		}
		out.Outputs = append(out.Outputs, m)
	}

	out.Trailing = c.Remaining()
	if out.Trailing > 0 {
		d.logger.Warn("unexamined bytes after last output map",
			zap.Int("offset", c.Offset()),
			zap.Int("bytes", out.Trailing),
		)
	}
	return out, nil
}

func (d *Decoder) decodeMap(c *Cursor, scope Scope) (Map, error) {
	m, err := d.maps.Decode(c, scope)
	if err != nil {
		return Map{}, err
	}
	d.logger.Debug("map decoded",
		zap.Stringer("scope", scope),
		zap.Int("offset", m.Offset),
		zap.Int("records", len(m.Records)),
	)
	if d.metrics != nil {
		d.metrics.ObserveMap(scope.Kind, len(m.Records))
	}
	return m, nil
}

// checkCounts rejects counts that cannot possibly be satisfied: every map needs at least
// its separator byte.
func checkCounts(c *Cursor, counts TxCounts) error {
	remaining := uint64(c.Remaining())
	if counts.Inputs > remaining || counts.Outputs > remaining-counts.Inputs {
		return fmt.Errorf("%d input and %d output maps: %w", counts.Inputs, counts.Outputs, &TruncatedError{
			Offset: c.Offset(),
			Want:   satAdd(counts.Inputs, counts.Outputs),
			Have:   c.Remaining(),
		})
	}
	return nil
}

func satAdd(a, b uint64) uint64 {
	if a+b < a {
		return ^uint64(0)
	}
	return a + b
}

// describeTransaction logs the id and output total of the unsigned transaction when it
// deserializes as a Bitcoin transaction. Elements transactions do not.
func (d *Decoder) describeTransaction(raw []byte) {
	if raw == nil || !d.logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	tx, err := btcutil.NewTxFromBytes(raw)
	if err != nil {
		d.logger.Debug("unsigned transaction is not a bitcoin transaction", zap.Error(err))
		return
	}
	var total btcutil.Amount
	for _, out := range tx.MsgTx().TxOut {
		total += btcutil.Amount(out.Value)
	}
	d.logger.Debug("unsigned transaction",
		zap.Stringer("txid", tx.Hash()),
		zap.Int("inputs", len(tx.MsgTx().TxIn)),
		zap.Int("outputs", len(tx.MsgTx().TxOut)),
		zap.Stringer("total_out", total),
	)
}

func (d *Decoder) observeDecode(env *Envelope, err error, started time.Time) {
	if d.metrics == nil {
		return
	}
	var inputs, outputs int
	if env != nil {
		inputs, outputs = len(env.Inputs), len(env.Outputs)
	}
	d.metrics.ObserveDecode(err, inputs, outputs, started)
}
