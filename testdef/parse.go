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

package testdef

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"vregress/comparison"
	"vregress/scenario"
)

// the yaml shapes are kept separate from the exported types so that
// validation and path resolution happen in exactly one place
type defFile struct {
	Scenarios []string    `yaml:"scenarios"`
	Top       string      `yaml:"top"`
	Flags     []string    `yaml:"flags"`
	Variants  [][]string  `yaml:"variants"`
	Lint      *stageFile  `yaml:"lint"`
	Compile   *stageFile  `yaml:"compile"`
	Execute   *stageFile  `yaml:"execute"`
	Timeout   string      `yaml:"timeout"`
	Golden    string      `yaml:"golden"`
	Asserts   []assertFile `yaml:"asserts"`
}

type stageFile struct {
	Fails bool     `yaml:"fails"`
	Flags []string `yaml:"flags"`
}

type assertFile struct {
	Kind    string `yaml:"kind"`
	File    string `yaml:"file"`
	Pattern string `yaml:"pattern"`
	Group   int    `yaml:"group"`
	Expect  string `yaml:"expect"`
	Golden  string `yaml:"golden"`
}

// Parse one declaration. The name is the identity of the test and declDir
// is the directory the declaration was found in - source and golden paths
// in the declaration are resolved against it
func Parse(r io.Reader, name string, declDir string) (*Def, error) {
	var df defFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&df); err != nil {
		return nil, fmt.Errorf("testdef: %s: %w", name, err)
	}

	def := &Def{
		Name:    name,
		DeclDir: declDir,
		Flags:   df.Flags,
	}

	if df.Top == "" {
		return nil, fmt.Errorf("testdef: %s: no top file declared", name)
	}
	def.Top = filepath.Join(declDir, df.Top)

	if len(df.Scenarios) == 0 {
		return nil, fmt.Errorf("testdef: %s: no scenarios declared", name)
	}

	scs, err := scenario.ParseGroups(df.Scenarios)
	if err != nil {
		return nil, fmt.Errorf("testdef: %s: %w", name, err)
	}
	def.Scenarios = scs

	def.Variants = df.Variants

	if df.Lint != nil {
		def.Lint = &StageDef{Fails: df.Lint.Fails, Flags: df.Lint.Flags}
	}
	if df.Compile != nil {
		def.Compile = &StageDef{Fails: df.Compile.Fails, Flags: df.Compile.Flags}
	}
	if df.Execute != nil {
		def.Execute = &StageDef{Fails: df.Execute.Fails, Flags: df.Execute.Flags}
	}

	if def.Lint != nil && (def.Compile != nil || def.Execute != nil) {
		return nil, fmt.Errorf("testdef: %s: a lint-only test cannot declare compile or execute stages", name)
	}

	// a stage after an expected failure can never run
	if def.Compile != nil && def.Compile.Fails && def.Execute != nil {
		return nil, fmt.Errorf("testdef: %s: execute stage is unreachable after an expected compile failure", name)
	}

	if df.Timeout != "" {
		d, err := time.ParseDuration(df.Timeout)
		if err != nil {
			return nil, fmt.Errorf("testdef: %s: invalid timeout (%s)", name, df.Timeout)
		}
		def.Timeout = d
	}

	def.Golden = df.Golden

	for i, af := range df.Asserts {
		a, err := parseAssert(def, af)
		if err != nil {
			return nil, fmt.Errorf("testdef: %s: assert %d: %w", name, i, err)
		}
		def.Asserts = append(def.Asserts, a)
	}

	return def, nil
}

func parseAssert(def *Def, af assertFile) (Assert, error) {
	kind, err := comparison.ParseKind(af.Kind)
	if err != nil {
		return Assert{}, err
	}

	if af.File == "" {
		return Assert{}, fmt.Errorf("no target artifact declared")
	}

	a := Assert{
		Kind:   kind,
		File:   af.File,
		Group:  af.Group,
		Expect: af.Expect,
	}

	switch kind {
	case comparison.Grep, comparison.GrepNot:
		if af.Pattern == "" {
			return Assert{}, fmt.Errorf("no pattern declared")
		}
		if _, err := regexp.Compile(af.Pattern); err != nil {
			return Assert{}, fmt.Errorf("bad pattern: %w", err)
		}
		a.Pattern = af.Pattern

		if kind == comparison.Grep && af.Expect == "" {
			return Assert{}, fmt.Errorf("no expected value declared")
		}
		if a.Group < 0 {
			return Assert{}, fmt.Errorf("invalid capture group (%d)", a.Group)
		}

	case comparison.TextEqual, comparison.VCDEqual, comparison.SAIFEqual:
		a.Golden = goldenPath(def, af.Golden, kind)
	}

	return a, nil
}

// golden references are located by a deterministic naming convention
// derived from the test identity unless explicitly overridden
func goldenPath(def *Def, explicit string, kind comparison.Kind) string {
	if explicit == "" && def.Golden != "" {
		explicit = def.Golden
	}

	if explicit != "" {
		if filepath.IsAbs(explicit) {
			return explicit
		}
		return filepath.Join(def.DeclDir, explicit)
	}

	var ext string
	switch kind {
	case comparison.VCDEqual:
		ext = "vcd"
	case comparison.SAIFEqual:
		ext = "saif"
	default:
		ext = "out"
	}

	return filepath.Join(def.DeclDir, fmt.Sprintf("%s.%s", filepath.Base(def.Name), ext))
}
