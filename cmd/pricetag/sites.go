package main

import (
	"fmt"
	"sort"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	retailers := deps.Registry.List()
	names := make([]string, 0, len(retailers)+1)
	for _, r := range retailers {
		names = append(names, string(r))
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	fmt.Fprintln(deps.Stdout, "generic (fallback for any other site)")
	return nil
}
