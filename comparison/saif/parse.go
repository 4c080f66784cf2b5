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

package saif

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// the SAIF format is a tree of parenthesised expressions. parse into a
// generic tree first and walk it afterwards - the format is small enough
// that the intermediate representation costs nothing
type sexpr struct {
	atom string
	list []sexpr
	leaf bool
}

// ParseFile is a convenience wrapper around Parse
func ParseFile(path string) (*Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("saif: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	act, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("saif: %s: %w", path, err)
	}
	return act, nil
}

// Parse reads a SAIF stream into the canonical Activity model
func Parse(r io.Reader) (*Activity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	toks, err := tokenise(string(data))
	if err != nil {
		return nil, err
	}

	root, rest, err := parseSexpr(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("trailing content after SAIFILE")
	}

	if root.leaf || len(root.list) == 0 || !root.list[0].leaf || root.list[0].atom != "SAIFILE" {
		return nil, fmt.Errorf("not a SAIFILE")
	}

	act := &Activity{
		Signals: make(map[string]Counters),
	}

	for _, child := range root.list[1:] {
		if err := walk(act, child, nil); err != nil {
			return nil, err
		}
	}

	return act, nil
}

func walk(act *Activity, node sexpr, path []string) error {
	if node.leaf || len(node.list) == 0 || !node.list[0].leaf {
		return fmt.Errorf("malformed entry")
	}

	switch node.list[0].atom {
	case "DURATION":
		if len(node.list) != 2 || !node.list[1].leaf {
			return fmt.Errorf("malformed DURATION")
		}
		d, err := strconv.ParseUint(node.list[1].atom, 10, 64)
		if err != nil {
			return fmt.Errorf("malformed DURATION (%s)", node.list[1].atom)
		}
		act.Duration = d

	case "INSTANCE":
		if len(node.list) < 2 || !node.list[1].leaf {
			return fmt.Errorf("malformed INSTANCE")
		}
		path = append(path, node.list[1].atom)
		for _, child := range node.list[2:] {
			if err := walk(act, child, path); err != nil {
				return err
			}
		}

	case "NET":
		for _, child := range node.list[1:] {
			if err := net(act, child, path); err != nil {
				return err
			}
		}

	default:
		// SAIFVERSION, DIRECTION, DATE, VENDOR, PROGRAM_NAME, VERSION,
		// DIVIDER, TIMESCALE and anything else we don't recognise is
		// metadata
	}

	return nil
}

func net(act *Activity, node sexpr, path []string) error {
	if node.leaf || len(node.list) < 1 || !node.list[0].leaf {
		return fmt.Errorf("malformed NET entry")
	}

	name := strings.Join(append(path[:len(path):len(path)], node.list[0].atom), ".")

	counters := make(Counters)
	for _, c := range node.list[1:] {
		if c.leaf || len(c.list) != 2 || !c.list[0].leaf || !c.list[1].leaf {
			return fmt.Errorf("malformed counter for %s", name)
		}
		v, err := strconv.ParseUint(c.list[1].atom, 10, 64)
		if err != nil {
			return fmt.Errorf("malformed counter value for %s (%s)", name, c.list[1].atom)
		}
		counters[c.list[0].atom] = v
	}

	act.Signals[name] = counters
	return nil
}

func tokenise(s string) ([]string, error) {
	var toks []string
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '(' || c == ')':
			toks = append(toks, string(c))
			i++

		case unicode.IsSpace(rune(c)):
			i++

		case c == '"':
			j := strings.IndexByte(s[i+1:], '"')
			if j < 0 {
				return nil, fmt.Errorf("unterminated string")
			}
			toks = append(toks, s[i+1:i+1+j])
			i += j + 2

		default:
			j := i
			for j < len(s) && s[j] != '(' && s[j] != ')' && !unicode.IsSpace(rune(s[j])) {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		}
	}
	return toks, nil
}

func parseSexpr(toks []string) (sexpr, []string, error) {
	if len(toks) == 0 {
		return sexpr{}, nil, fmt.Errorf("unexpected end of input")
	}

	if toks[0] == "(" {
		node := sexpr{}
		toks = toks[1:]
		for {
			if len(toks) == 0 {
				return sexpr{}, nil, fmt.Errorf("unbalanced parentheses")
			}
			if toks[0] == ")" {
				return node, toks[1:], nil
			}
			child, rest, err := parseSexpr(toks)
			if err != nil {
				return sexpr{}, nil, err
			}
			node.list = append(node.list, child)
			toks = rest
		}
	}

	if toks[0] == ")" {
		return sexpr{}, nil, fmt.Errorf("unbalanced parentheses")
	}

	return sexpr{atom: toks[0], leaf: true}, toks[1:], nil
}
