package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/cache"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	loaded, err := deps.Syncer.Sync(deps.Ctx, deps.Sources)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	for _, si := range loaded {
		printIndexSummary(deps.Stdout, si)
	}
	return nil
}

func printIndexSummary(w io.Writer, si cache.SourceIndex) {
	if si.Index == nil {
		fmt.Fprintf(w, "%s  %s  %s\n", si.Source.ID(), si.Status, si.Source.Title)
		return
	}
	fmt.Fprintf(w, "%s  %s  %s  %d objects  %d members  generated %s\n",
		si.Source.ID(),
		si.Status,
		si.Source.Title,
		si.Index.Objects.Len(),
		si.Index.Members.Len(),
		si.Index.Generated().UTC().Format(time.RFC3339),
	)
}

// printError writes err to w. Application errors show their message and
// anything else its full chain.
func printError(w io.Writer, err error) {
	if jdex.ErrorCode(err) == jdex.EINTERNAL {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "error: %s\n", jdex.ErrorMessage(err))
}
