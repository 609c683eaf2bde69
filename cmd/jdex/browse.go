package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/jdex"
)

// Run executes the browse command. Every input line is a query; ":N"
// opens the N-th result of the last listing and ":q" quits.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	catalog, err := loadCatalog(deps, c.Source)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, "Type a query, :N to open a result, :q to quit.")

	var last []jdex.Choice
	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		if line == ":q" {
			return nil
		}

		if n, ok := strings.CutPrefix(line, ":"); ok {
			i, err := strconv.Atoi(n)
			if err != nil || i < 1 || i > len(last) {
				fmt.Fprintf(deps.Stderr, "error: no result %s\n", n)
				continue
			}
			if err := selectChoice(deps, catalog, c.Source, last[i-1]); err != nil {
				printError(deps.Stderr, err)
			}
			continue
		}

		last, err = catalog.Search(c.Source, line)
		if err != nil {
			printError(deps.Stderr, err)
			return err
		}
		if len(last) == 0 {
			fmt.Fprintf(deps.Stdout, "No results for %q.\n", line)
			continue
		}
		printChoices(deps.Stdout, last)
	}
	return scanner.Err()
}
