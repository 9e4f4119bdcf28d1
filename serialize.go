// SPDX-License-Identifier: MIT
// File: serialize.go
// Role: Export/Import — the persistence format. One JSON array per
// QuadRecord, one record per line, in insertion order. Each of the four
// elements is either `[ordinal, index]` (a reference) or `null` (unset).
//
// encoding/json is used directly, following gaissmai/bart's serialize.go
// approach to persisting a cyclic, identity-bearing structure as JSON —
// nothing in the retrieved reference pack reaches for a third-party JSON
// library for this, so the pack's own ecosystem choice here is the stdlib.
package quadedge

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// ref is the wire encoding of a single next-pointer: [ordinal, index].
type ref [2]int

// Export writes one line per QuadRecord, in insertion order, to w. Each
// line is a JSON array of exactly four elements, each either a `[r,i]`
// reference (ordinal r, position i) or `null` for a slot with no target
// (which cannot occur for a Manifold built solely from MakeEdge/Splice,
// but can for one Imported from input that contains `null` slots).
//
// The stream is newline-terminated with no trailing separator beyond the
// final newline, matching the worked example in this package's design
// notes byte-for-byte.
func (m *Manifold[V, F]) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, rec := range m.records {
		line, err := encodeRecord(rec)
		if err != nil {
			return ioErrorf("Export", err)
		}
		if _, err := bw.Write(line); err != nil {
			return ioErrorf("Export", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return ioErrorf("Export", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return ioErrorf("Export", err)
	}
	return nil
}

func encodeRecord[V, F any](rec *QuadRecord[V, F]) ([]byte, error) {
	elems := make([]interface{}, 4)
	for i := 0; i < 4; i++ {
		target := rec.next[i]
		if target.rec == nil {
			elems[i] = nil
			continue
		}
		elems[i] = ref{target.rec.ordinal, target.idx}
	}
	return json.Marshal(elems)
}

// Import reads newline-delimited QuadRecord lines from r and rebuilds a
// Manifold from them, replacing m's current contents. It is two-phase: the
// entire input is parsed and validated before any QuadRecord is allocated,
// so a failure never leaves m with partially-constructed records (spec's
// own design notes recommend this over the naive interleaved approach).
//
// Blank lines are skipped. Whitespace around commas and brackets within a
// line's JSON array is tolerated. A malformed line — invalid JSON, an
// element count other than four, a non-integer ordinal or index, an
// out-of-range ordinal, or an index outside {0,1,2,3} — fails the whole
// Import with an error wrapping ErrParse and naming the line number. An
// error from r itself fails with an error wrapping ErrIO.
func (m *Manifold[V, F]) Import(r io.Reader) error {
	parsed, err := parseRecordLines(r)
	if err != nil {
		return err
	}

	records := make([]*QuadRecord[V, F], len(parsed))
	for i := range parsed {
		records[i] = &QuadRecord[V, F]{owner: m, ordinal: i}
	}
	for i, p := range parsed {
		rec := records[i]
		for slot, r := range p {
			if r == nil {
				continue
			}
			rec.next[slot] = nodeAt(records[r.ordinal], r.index)
		}
	}

	m.records = records
	return nil
}

// parsedRef is a validated [ordinal, index] pair, or nil for a `null` slot.
type parsedRef struct {
	ordinal int
	index   int
}

func parseRecordLines(r io.Reader) ([][4]*parsedRef, error) {
	scanner := bufio.NewScanner(r)
	var lines [][4]*parsedRef
	var lineNos []int
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var raw []json.RawMessage
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return nil, parseErrorf(lineNo, "invalid JSON: %s", err)
		}
		if len(raw) != 4 {
			return nil, parseErrorf(lineNo, "expected 4 elements, got %d", len(raw))
		}

		var slots [4]*parsedRef
		for i, elem := range raw {
			trimmed := strings.TrimSpace(string(elem))
			if trimmed == "null" {
				slots[i] = nil
				continue
			}

			var pair [2]int64
			if err := json.Unmarshal(elem, &pair); err != nil {
				return nil, parseErrorf(lineNo, "element %d: expected [ordinal,index] or null: %s", i, err)
			}
			if pair[0] < 0 {
				return nil, parseErrorf(lineNo, "element %d: ordinal %d is negative", i, pair[0])
			}
			if pair[1] < 0 || pair[1] > 3 {
				return nil, parseErrorf(lineNo, "element %d: index %d outside {0,1,2,3}", i, pair[1])
			}
			slots[i] = &parsedRef{ordinal: int(pair[0]), index: int(pair[1])}
		}
		lines = append(lines, slots)
		lineNos = append(lineNos, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, ioErrorf("Import", err)
	}

	for ln, slots := range lines {
		for i, r := range slots {
			if r != nil && r.ordinal >= len(lines) {
				return nil, parseErrorf(lineNos[ln], "element %d: ordinal %d out of range (%d records)", i, r.ordinal, len(lines))
			}
		}
	}

	return lines, nil
}
