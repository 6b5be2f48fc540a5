package main

import (
	"context"
	"fmt"

	unipalette "github.com/alnah/go-unipalette"
)

// runCategories prints every general category with its number of code
// points, one "Label\tCount" per line. Arguments restrict the listing.
func runCategories(ctx context.Context, args []string, env *Environment) error {
	labels, err := parseNoFlags("categories", args, env.Stderr, printCategoriesUsage)
	if err != nil {
		return err
	}

	counts, err := unipalette.CountCategories(ctx)
	if err != nil {
		return err
	}

	if len(labels) == 0 {
		for _, c := range counts {
			fmt.Fprintf(env.Stdout, "%s\t%d\n", c.Label, c.Count)
		}
		return nil
	}

	byLabel := make(map[string]int, len(counts))
	for _, c := range counts {
		byLabel[c.Label] = c.Count
	}
	for _, label := range labels {
		fmt.Fprintf(env.Stdout, "%s\t%d\n", label, byLabel[label])
	}
	return nil
}
