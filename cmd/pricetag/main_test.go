package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	main "github.com/fwojciec/pricetag/cmd/pricetag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(context.Background(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage should be printed to stdout (not stderr) when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: pricetag")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{}, stdout, stderr)

	// No args should show usage to stdout and return error
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: pricetag")
}

func TestRun_Sites(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"sites"}, stdout, stderr)

	require.NoError(t, err)
	output := stdout.String()
	for _, name := range []string{"amazon", "bestbuy", "ebay", "etsy", "target", "walmart", "generic"} {
		assert.Contains(t, output, name)
	}
}

func TestRun_GlobalFlagBeforeCommand(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div class="product-price"><span class="price">$9.99</span></div></body></html>`))
	}))
	defer server.Close()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// The verbose flag precedes the command name; command wiring must
	// still recognize the check command
	err := m.Run(context.Background(), []string{"-v", "check", "--static", server.URL}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "$9.99")
	assert.Contains(t, stdout.String(), "in stock")
	assert.Contains(t, stderr.String(), "retailer routing", "verbose mode should log routing")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"frobnicate"}, stdout, stderr)

	require.Error(t, err)
}
