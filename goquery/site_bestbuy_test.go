package goquery_test

import (
	"testing"

	"github.com/fwojciec/pricetag/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bestBuyURL = "https://www.bestbuy.com/site/tv/6543210.p"

func TestBestBuyExtractor_Name(t *testing.T) {
	t.Parallel()

	e := goquery.NewBestBuyExtractor()
	assert.Equal(t, "bestbuy", e.Name())
}

func TestBestBuyExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the customer price", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<div class="priceView-customer-price"><span aria-hidden="true">$499.99</span></div>
</body></html>`

		e := goquery.NewBestBuyExtractor()
		result, err := e.Extract(html, bestBuyURL)

		require.NoError(t, err)
		require.NotNil(t, result.Price)
		assert.Equal(t, 499.99, *result.Price)
		assert.True(t, result.InStock)
	})

	t.Run("disabled add-to-cart button flips stock", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<div class="priceView-customer-price"><span aria-hidden="true">$499.99</span></div>
<button class="add-to-cart-button" disabled>Sold Out</button>
</body></html>`

		e := goquery.NewBestBuyExtractor()
		result, err := e.Extract(html, bestBuyURL)

		require.NoError(t, err)
		require.NotNil(t, result.Price)
		assert.Equal(t, 499.99, *result.Price)
		assert.False(t, result.InStock)
	})

	t.Run("fulfillment button reading sold out flips stock", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<div class="priceView-customer-price"><span aria-hidden="true">$499.99</span></div>
<button class="fulfillment-add-to-cart-button">Sold Out</button>
</body></html>`

		e := goquery.NewBestBuyExtractor()
		result, err := e.Extract(html, bestBuyURL)

		require.NoError(t, err)
		assert.False(t, result.InStock)
	})

	t.Run("high-end prices clear the bestbuy ceiling", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<div class="priceView-hero-price"><span aria-hidden="true">$24,999.99</span></div>
</body></html>`

		e := goquery.NewBestBuyExtractor()
		result, err := e.Extract(html, bestBuyURL)

		require.NoError(t, err)
		require.NotNil(t, result.Price)
		assert.Equal(t, 24999.99, *result.Price)
	})
}
