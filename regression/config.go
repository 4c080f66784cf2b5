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

package regression

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"vregress/scenario"
)

// Config is the immutable run configuration. It is passed explicitly to
// everything that needs it - there is no ambient "current run" state
type Config struct {
	// path to the toolchain binary
	Binary string

	// the scenarios selected for this invocation
	Active []scenario.Scenario

	// root directory for per-test working directories
	ObjDir string

	// number of concurrent workers. zero selects the number of CPUs
	Jobs int

	// default per-stage timeout. individual tests can override
	Timeout time.Duration

	// rerun failing tests once, serially, after the parallel phase
	Rerun bool

	// echo per-test results and log entries as they happen
	Verbose bool
}

// the yaml shape of the optional harness configuration file. flags given on
// the command line take precedence over anything read from here
type configFile struct {
	Binary    string   `yaml:"binary"`
	Scenarios []string `yaml:"scenarios"`
	ObjDir    string   `yaml:"objdir"`
	Jobs      int      `yaml:"jobs"`
	Timeout   string   `yaml:"timeout"`
}

// LoadConfigFile reads harness defaults from a configuration file. A
// missing file is not an error - the returned Config is simply empty
func LoadConfigFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}

	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	cfg.Binary = cf.Binary
	cfg.ObjDir = cf.ObjDir
	cfg.Jobs = cf.Jobs

	if len(cf.Scenarios) > 0 {
		scs, err := scenario.ParseGroups(cf.Scenarios)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		cfg.Active = scs
	}

	if cf.Timeout != "" {
		d, err := time.ParseDuration(cf.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: invalid timeout (%s)", path, cf.Timeout)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// normalise fills in defaults for anything the caller left unset
func (cfg Config) normalise() Config {
	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.NumCPU()
	}
	if len(cfg.Active) == 0 {
		cfg.Active = scenario.List
	}
	if cfg.ObjDir == "" {
		cfg.ObjDir = "obj_vregress"
	}
	return cfg
}
