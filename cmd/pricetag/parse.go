package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pricetag"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := c.readInput()
	if err != nil {
		return err
	}

	extractor := deps.Registry.GetForURL(c.URL)
	result, err := extractor.Extract(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pricetag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "retailer: %s\n", extractor.Name())
	fmt.Fprintf(deps.Stdout, "price: %s\n", formatPrice(result.Price))
	fmt.Fprintf(deps.Stdout, "stock: %s\n", formatStock(result.InStock))
	return nil
}

func (c *ParseCmd) readInput() (string, error) {
	if c.File == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", c.File, err)
	}
	return string(data), nil
}
