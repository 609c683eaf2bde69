package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/jdex"
)

// Run executes the status command. It only reads the cache and never
// scrapes.
func (c *StatusCmd) Run(deps *Dependencies) error {
	state, err := deps.Resolver.Resolve(deps.Ctx, deps.Sources)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	for _, si := range state.All {
		printIndexSummary(deps.Stdout, si)

		if deps.Runs == nil {
			continue
		}
		id := si.Source.ID()
		runs, err := deps.Runs.FindRuns(deps.Ctx, jdex.RunFilter{SourceID: &id, Limit: 1})
		if err != nil {
			printError(deps.Stderr, err)
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(deps.Stdout, "  last run: never")
			continue
		}
		run := runs[0]
		if run.Failed() {
			fmt.Fprintf(deps.Stdout, "  last run: %s failed after %s: %s\n",
				run.StartedAt.UTC().Format(time.RFC3339),
				run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond),
				run.Error,
			)
			continue
		}
		fmt.Fprintf(deps.Stdout, "  last run: %s took %s (%d objects, %d members, %s)\n",
			run.StartedAt.UTC().Format(time.RFC3339),
			run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond),
			run.Objects,
			run.Members,
			run.IndexHash,
		)
	}
	return nil
}
