package main

import (
	"context"
	"io"

	"github.com/fwojciec/pricetag"
	"github.com/fwojciec/pricetag/check"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Registry pricetag.ExtractorRegistry
	Checker  *check.Checker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log routing and fetch details to stderr"`

	Check CheckCmd `cmd:"" help:"Fetch product pages and extract prices"`
	Parse ParseCmd `cmd:"" help:"Extract a price from a local HTML file"`
	Sites SitesCmd `cmd:"" help:"List supported retailers"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URLs        []string `arg:"" help:"Product page URLs"`
	Static      bool     `short:"s" help:"Use plain HTTP instead of a browser (static sites only)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `default:"1" help:"Max requests per second per retail domain"`
	SaveHTML    string   `name:"save-html" help:"Save fetched HTML under this directory" type:"path"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" optional:"" help:"HTML file to parse (defaults to stdin)"`
	URL  string `short:"u" help:"Source URL, used to pick the retailer rule set"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}
