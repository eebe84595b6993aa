// Package dump renders a decoded envelope as the line oriented text report.
package dump

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/psbt-decoder/internal/psbt"
)

// Write renders env to w. The envelope is complete by construction, so a failed decode
// never reaches this point and never produces a partial report.
func Write(w io.Writer, env *psbt.Envelope) error {
	p := &printer{w: bufio.NewWriter(w)}

	p.line("MAGIC:\t%s\t%s", hex.EncodeToString(env.Magic[:]), strconv.Quote(string(env.Magic[:])))
	p.line("SEPARATOR:\t%02x", env.Separator)

	p.line("")
	p.line("BEGIN GLOBAL")
	p.writeMap(env.Global)

	p.line("")
	p.line("BEGIN INPUTS")
	for _, m := range env.Inputs {
		p.writeMap(m)
	}

	p.line("")
	p.line("BEGIN OUTPUTS")
	for _, m := range env.Outputs {
		p.writeMap(m)
	}

	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

// Header returns the section header of a map, e.g. "GLOBAL MAP" or "INPUT 3 MAP".
func Header(scope psbt.Scope) string {
	kind := strings.ToUpper(string(scope.Kind))
	if !scope.IsIndexed() {
		return kind + " MAP"
	}
	return kind + " " + strconv.Itoa(scope.Index) + " MAP"
}

type printer struct {
	w   *bufio.Writer
	err error
}

func (p *printer) writeMap(m psbt.Map) {
	p.line("%s", Header(m.Scope))
	for _, rec := range m.Records {
		p.line("RECORD:\t\t%s\t%d\t%s\t%d\t%s",
			rec.TypeName, len(rec.KeyBytes), rec.KeyHex(), len(rec.Value), rec.ValueHex())
	}
	p.line("SEPARATOR:\t0")
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
