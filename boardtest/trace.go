// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package boardtest

import (
	"bytes"
	"strconv"
	"testing"

	lb "github.com/db47h/logicboard"
	"github.com/sebdah/goldie/v2"
)

// Trace records the values of a set of pins, one row per tick.
//
// The text form has a header line with the pin names followed by one line
// per recorded row: the row number and one 0 or 1 per pin.
type Trace struct {
	pins []*lb.Pin
	buf  bytes.Buffer
	rows int
}

// NewTrace returns a trace of the given pins.
func NewTrace(pins ...*lb.Pin) *Trace {
	tr := &Trace{pins: pins}
	tr.buf.WriteString("tick")
	for _, p := range pins {
		tr.buf.WriteByte(' ')
		tr.buf.WriteString(p.String())
	}
	tr.buf.WriteByte('\n')
	return tr
}

// Record appends the current pin values.
func (tr *Trace) Record() {
	tr.buf.WriteString(strconv.Itoa(tr.rows))
	for _, p := range tr.pins {
		if p.Value() {
			tr.buf.WriteString(" 1")
		} else {
			tr.buf.WriteString(" 0")
		}
	}
	tr.buf.WriteByte('\n')
	tr.rows++
}

// Bytes returns the text form of the trace.
func (tr *Trace) Bytes() []byte { return tr.buf.Bytes() }

// Golden compares data with the golden file testdata/golden/<name>.golden.
// Run the tests with -update to rewrite it.
func Golden(t *testing.T, name string, data []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
