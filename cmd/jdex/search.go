package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/jdex"
	"github.com/fwojciec/jdex/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	catalog, err := loadCatalog(deps, c.Source)
	if err != nil {
		return err
	}

	choices, err := catalog.Search(c.Source, c.Query)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if len(choices) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}
	printChoices(deps.Stdout, choices)
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	catalog, err := loadCatalog(deps, c.Source)
	if err != nil {
		return err
	}

	choices, err := catalog.Search(c.Source, c.Query)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}
	if len(choices) == 0 {
		err := jdex.Errorf(jdex.ENOTFOUND, "no results for %q", c.Query)
		printError(deps.Stderr, err)
		return err
	}

	if err := selectChoice(deps, catalog, c.Source, choices[0]); err != nil {
		printError(deps.Stderr, err)
		return err
	}
	return nil
}

// loadCatalog syncs every source and loads the resulting indexes. Errors
// are reported to stderr.
func loadCatalog(deps *Dependencies, sourceID string) (*search.Catalog, error) {
	if !hasSource(deps.Sources, sourceID) {
		err := jdex.Errorf(jdex.ENOTFOUND, "source %q is not configured. Use 'jdex status' to see available sources", sourceID)
		printError(deps.Stderr, err)
		return nil, err
	}

	loaded, err := deps.Syncer.Sync(deps.Ctx, deps.Sources)
	if err != nil {
		printError(deps.Stderr, err)
		return nil, err
	}

	for _, si := range loaded {
		if si.Index == nil {
			continue
		}
		if err := deps.Catalog.Load(si.Source, si.Index); err != nil {
			printError(deps.Stderr, err)
			return nil, err
		}
	}
	return deps.Catalog, nil
}

// selectChoice prints the documentation behind choice and promotes it to
// the front of the source's recent results.
func selectChoice(deps *Dependencies, catalog *search.Catalog, sourceID string, choice jdex.Choice) error {
	ref, ok := catalog.Resolve(choice.Token)
	if !ok {
		return jdex.Errorf(jdex.ENOTFOUND, "unknown result %q", choice.Label)
	}

	body, err := catalog.Body(sourceID, ref)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, body)

	catalog.Promote(sourceID, choice.Token, ref.Broad())
	return nil
}

func printChoices(w io.Writer, choices []jdex.Choice) {
	for i, c := range choices {
		fmt.Fprintf(w, "%2d. %s\n", i+1, c.Label)
	}
}

func hasSource(sources []*jdex.Source, id string) bool {
	for _, src := range sources {
		if src.ID() == id {
			return true
		}
	}
	return false
}
