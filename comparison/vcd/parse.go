// This file is part of Vregress.
//
// Vregress is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Vregress is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Vregress.  If not, see <https://www.gnu.org/licenses/>.

package vcd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// header sections that carry no semantic content
var metadataSections = map[string]bool{
	"$date":    true,
	"$version": true,
	"$comment": true,
}

// ParseFile is a convenience wrapper around Parse
func ParseFile(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vcd: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	tr, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("vcd: %s: %w", path, err)
	}
	return tr, nil
}

// Parse reads a VCD stream into the canonical Trace model.
//
// Canonicalisation rules: metadata header sections are discarded;
// identifier codes are resolved through the declared hierarchy to full
// signal names; change times are stored as offsets from the first change
// point; vector values lose insignificant leading zeroes; and a re-dump of
// an unchanged value is not an event
func Parse(r io.Reader) (*Trace, error) {
	tr := &Trace{
		Signals: make(map[string]*Signal),
	}

	// identifier codes are file-local. the same code can be shared by more
	// than one declared signal (an alias)
	codes := make(map[string][]*Signal)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	// read tokens until the closing $end of the current section, returning
	// the section body
	section := func() ([]string, error) {
		var body []string
		for {
			tok, ok := next()
			if !ok {
				return nil, fmt.Errorf("unterminated section")
			}
			if tok == "$end" {
				return body, nil
			}
			body = append(body, tok)
		}
	}

	var scopes []string

	// header phase: until $enddefinitions
	for {
		tok, ok := next()
		if !ok {
			// a header-only file is legal, if useless
			return tr, nil
		}

		if metadataSections[tok] {
			if _, err := section(); err != nil {
				return nil, err
			}
			continue
		}

		switch tok {
		case "$timescale":
			body, err := section()
			if err != nil {
				return nil, err
			}
			tr.Timescale = strings.Join(body, " ")

		case "$scope":
			body, err := section()
			if err != nil {
				return nil, err
			}
			if len(body) != 2 {
				return nil, fmt.Errorf("malformed $scope")
			}
			scopes = append(scopes, body[1])

		case "$upscope":
			if _, err := section(); err != nil {
				return nil, err
			}
			if len(scopes) == 0 {
				return nil, fmt.Errorf("$upscope without $scope")
			}
			scopes = scopes[:len(scopes)-1]

		case "$var":
			body, err := section()
			if err != nil {
				return nil, err
			}

			// $var type width code name [range]
			if len(body) < 4 {
				return nil, fmt.Errorf("malformed $var")
			}

			width, err := strconv.Atoi(body[1])
			if err != nil {
				return nil, fmt.Errorf("malformed $var width (%s)", body[1])
			}

			name := strings.Join(append(scopes[:len(scopes):len(scopes)], body[3]), ".")

			sig := &Signal{
				Name:  name,
				Width: width,
			}
			tr.Signals[name] = sig
			codes[body[2]] = append(codes[body[2]], sig)

		case "$enddefinitions":
			if _, err := section(); err != nil {
				return nil, err
			}
			return tr, parseChanges(tr, codes, next)

		default:
			// an unrecognised header section. skip it
			if strings.HasPrefix(tok, "$") {
				if _, err := section(); err != nil {
					return nil, err
				}
				continue
			}
			return nil, fmt.Errorf("unexpected token in header (%s)", tok)
		}
	}
}

func parseChanges(tr *Trace, codes map[string][]*Signal, next func() (string, bool)) error {
	var time uint64
	var base uint64
	var baseSet bool

	record := func(code string, value string) error {
		sigs, ok := codes[code]
		if !ok {
			return fmt.Errorf("value change for undeclared identifier (%s)", code)
		}

		t := time
		if baseSet {
			t -= base
		}

		for _, sig := range sigs {
			// re-dumping an unchanged value (eg. a $dumpall checkpoint) is
			// not a change
			if len(sig.Events) > 0 && sig.Events[len(sig.Events)-1].Value == value {
				continue
			}
			sig.Events = append(sig.Events, Event{Time: t, Value: value})
		}
		return nil
	}

	for {
		tok, ok := next()
		if !ok {
			return nil
		}

		switch {
		case tok == "$end":
			// closes $dumpvars et al. nothing to do

		case tok == "$dumpvars" || tok == "$dumpall" || tok == "$dumpon" || tok == "$dumpoff":
			// the value changes inside these sections are handled by the
			// main loop

		case tok == "$comment":
			for {
				t, ok := next()
				if !ok {
					return fmt.Errorf("unterminated $comment")
				}
				if t == "$end" {
					break
				}
			}

		case strings.HasPrefix(tok, "#"):
			t, err := strconv.ParseUint(tok[1:], 10, 64)
			if err != nil {
				return fmt.Errorf("malformed change time (%s)", tok)
			}
			time = t
			if !baseSet {
				base = t
				baseSet = true
			}

		case tok[0] == 'b' || tok[0] == 'B':
			code, ok := next()
			if !ok {
				return fmt.Errorf("vector change without identifier")
			}
			if err := record(code, canonicalVector(tok[1:])); err != nil {
				return err
			}

		case tok[0] == 'r' || tok[0] == 'R':
			code, ok := next()
			if !ok {
				return fmt.Errorf("real change without identifier")
			}
			if err := record(code, tok[1:]); err != nil {
				return err
			}

		case tok[0] == 's' || tok[0] == 'S':
			code, ok := next()
			if !ok {
				return fmt.Errorf("string change without identifier")
			}
			if err := record(code, tok[1:]); err != nil {
				return err
			}

		default:
			// scalar change: value character followed immediately by the
			// identifier code
			if len(tok) < 2 {
				return fmt.Errorf("malformed value change (%s)", tok)
			}
			if err := record(tok[1:], strings.ToLower(tok[:1])); err != nil {
				return err
			}
		}
	}
}

// insignificant leading zeroes are removed so that b0010 and b10 compare as
// equal. x and z digits prevent trimming because their extension semantics
// differ from zero
func canonicalVector(v string) string {
	v = strings.ToLower(v)
	trimmed := strings.TrimLeft(v, "0")
	if trimmed == "" {
		return "0"
	}
	if strings.ContainsAny(v, "xz") {
		return v
	}
	return trimmed
}
