package main

import (
	"fmt"

	"github.com/fwojciec/pricetag/bloom"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	urls := dedupe(c.URLs)
	if skipped := len(c.URLs) - len(urls); skipped > 0 {
		fmt.Fprintf(deps.Stderr, "skipping %d duplicate url(s)\n", skipped)
	}

	checks, err := deps.Checker.Run(deps.Ctx, urls)
	if err != nil {
		return err
	}

	failed := 0
	for _, chk := range checks {
		if chk.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s  error: %v\n", chk.URL, chk.Err)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", chk.URL, formatPrice(chk.Result.Price), formatStock(chk.Result.InStock))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

// dedupe drops repeated urls, preserving first-occurrence order.
func dedupe(urls []string) []string {
	seen := bloom.NewDedup(uint(len(urls)))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Seen(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func formatPrice(price *float64) string {
	if price == nil {
		return "price unknown"
	}
	return fmt.Sprintf("$%.2f", *price)
}

func formatStock(inStock bool) string {
	if inStock {
		return "in stock"
	}
	return "out of stock"
}
