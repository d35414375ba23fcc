package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pricetag"
	main "github.com/fwojciec/pricetag/cmd/pricetag"
	"github.com/fwojciec/pricetag/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists retailers sorted with generic fallback last", func(t *testing.T) {
		t.Parallel()

		registry := &mock.ExtractorRegistry{
			ListFn: func() []pricetag.Retailer {
				return []pricetag.Retailer{
					pricetag.RetailerWalmart,
					pricetag.RetailerAmazon,
					pricetag.RetailerTarget,
				}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Registry: registry,
		}

		cmd := &main.SitesCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "amazon")
		assert.Contains(t, output, "target")
		assert.Contains(t, output, "walmart")
		assert.Contains(t, output, "generic")
		// Sorted alphabetically, fallback note at the end
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("amazon")), bytes.Index(stdout.Bytes(), []byte("target")))
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("walmart")), bytes.Index(stdout.Bytes(), []byte("generic")))
	})
}
