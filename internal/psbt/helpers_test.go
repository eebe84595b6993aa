package psbt

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var testMagic = []byte{'p', 's', 'b', 't', 0xff}

func varIntBytes(t *testing.T, v uint64) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := wire.WriteVarInt(&buf, 0, v); err != nil {
		t.Fatalf("WriteVarInt(%d): %v", v, err)
	}
	return buf.Bytes()
}

func vectorBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	return append(varIntBytes(t, uint64(len(data))), data...)
}

func recordBytes(t *testing.T, key, value []byte) []byte {
	t.Helper()

	return append(vectorBytes(t, key), vectorBytes(t, value)...)
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// unsignedTx serializes a transaction with empty signature scripts, as carried by a PSBT.
func unsignedTx(t *testing.T, inputs, outputs int) *wire.MsgTx {
	t.Helper()

	tx := wire.NewMsgTx(2)
	for i := 0; i < inputs; i++ {
		prev := chainhash.Hash{byte(i + 1)}
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prev, uint32(i)), nil, nil))
	}
	for i := 0; i < outputs; i++ {
		pkScript := append([]byte{0x00, 0x14}, bytes.Repeat([]byte{byte(i + 1)}, 20)...)
		tx.AddTxOut(wire.NewTxOut(int64(1000*(i+1)), pkScript))
	}
	tx.LockTime = 840_000
	return tx
}

func serializeTx(t *testing.T, tx *wire.MsgTx) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := tx.SerializeNoWitness(&buf); err != nil {
		t.Fatalf("SerializeNoWitness: %v", err)
	}
	return buf.Bytes()
}

// psbtDocument builds a v0 PSBT with one record per input and output map.
func psbtDocument(t *testing.T, tx *wire.MsgTx) []byte {
	t.Helper()

	doc := join(testMagic, recordBytes(t, []byte{0x00}, serializeTx(t, tx)), []byte{0x00})
	for i := range tx.TxIn {
		doc = join(doc, recordBytes(t, []byte{0x01}, []byte{byte(i)}), []byte{0x00})
	}
	for i := range tx.TxOut {
		doc = join(doc, recordBytes(t, []byte{0x02, 0xaa}, []byte{byte(i)}), []byte{0x00})
	}
	return doc
}

type tableResolver struct {
	names       map[ScopeKind]map[uint64]string
	proprietary map[string]map[uint64]string
}

func (r tableResolver) Resolve(scope ScopeKind, typeID uint64) string {
	if name, ok := r.names[scope][typeID]; ok {
		return name
	}
	return unknownTypeName
}

func (r tableResolver) ResolveProprietary(_ ScopeKind, prefix string, subtype uint64) string {
	if name, ok := r.proprietary[prefix][subtype]; ok {
		return name
	}
	return unknownTypeName
}

var testResolver = tableResolver{
	names: map[ScopeKind]map[uint64]string{
		ScopeGlobal: {0x01: "xpub", 0x04: "input_count", 0x05: "output_count", 0xfc: "proprietary"},
		ScopeInput:  {0x00: "non_witness_utxo", 0x01: "witness_utxo", 0xfc: "proprietary"},
		ScopeOutput: {0x02: "bip32_derivation", 0xfc: "proprietary"},
	},
	proprietary: map[string]map[uint64]string{
		"ab": {5: "custom_field"},
	},
}
