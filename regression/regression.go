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
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"vregress/testdef"
	"vregress/toolchain"
)

// Run executes every discovered test and returns the aggregated report.
//
// Tests run concurrently, bounded by cfg.Jobs, and every outcome flows
// through a single accumulation point. No worker ever writes to shared
// aggregate state. An interrupted run still produces a report - tests that
// never got to run are recorded as errored, tests that completed keep their
// real outcome.
func Run(ctx context.Context, output io.Writer, cfg Config, entries []testdef.Entry) (*Report, error) {
	cfg = cfg.normalise()

	if cfg.Binary == "" {
		return nil, fmt.Errorf("regression: no toolchain binary specified")
	}

	inv := toolchain.NewInvoker(cfg.Binary, cfg.Timeout)

	results := make(chan Outcome)
	accumulated := make(chan []Outcome)

	// the accumulator is the only goroutine that touches the outcome slice
	// and the output writer
	go func() {
		var outcomes []Outcome
		for o := range results {
			if cfg.Verbose {
				fmt.Fprintln(output, o.String())
			}
			outcomes = append(outcomes, o)
		}
		accumulated <- outcomes
	}()

	sem := make(chan struct{}, cfg.Jobs)
	var wg sync.WaitGroup

	for _, e := range entries {
		wg.Add(1)
		go func(e testdef.Entry) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() {
				<-sem
			}()

			// a declaration that failed to parse is that one test's
			// problem. the rest of the run is unaffected
			if e.Err != nil {
				results <- Outcome{
					Name:       e.Name,
					Kind:       Errored,
					Class:      ClassInfrastructure,
					Diagnostic: e.Err.Error(),
				}
				return
			}

			results <- newController(cfg, inv, e.Def).run(ctx)
		}(e)
	}

	wg.Wait()
	close(results)
	outcomes := <-accumulated

	if cfg.Rerun && ctx.Err() == nil {
		rerun(ctx, cfg, inv, entries, outcomes)
	}

	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Name < outcomes[j].Name
	})

	return NewReport(outcomes), nil
}

// rerun gives failing tests a second, serial attempt. a pass on rerun
// replaces the original outcome but is marked so the report can call out
// the flake
func rerun(ctx context.Context, cfg Config, inv *toolchain.Invoker, entries []testdef.Entry, outcomes []Outcome) {
	defs := make(map[string]*testdef.Def, len(entries))
	for _, e := range entries {
		if e.Err == nil {
			defs[e.Name] = e.Def
		}
	}

	for i, o := range outcomes {
		if o.Kind != Failed && o.Kind != Errored {
			continue
		}

		def, ok := defs[o.Name]
		if !ok {
			// a parse failure will not improve on a second attempt
			continue
		}

		if ctx.Err() != nil {
			return
		}

		ro := newController(cfg, inv, def).run(ctx)
		ro.Rerun = true
		outcomes[i] = ro
	}
}
