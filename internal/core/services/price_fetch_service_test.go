package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/emjayi/price_converter/internal/apperrors"
	"github.com/emjayi/price_converter/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPrice(t *testing.T) {
	page := `<div><p>Was $19.99</p><p id="final">Now 12.50</p></div>`
	svc := services.NewPriceFetchService(&fakeFetcher{body: page}, time.Second)

	price, err := svc.FetchPrice(context.Background(), "https://shop.example/item", "#final")
	require.NoError(t, err)
	assert.True(t, d("12.50").Equal(price))

	price, err = svc.FetchPrice(context.Background(), "https://shop.example/item", "")
	require.NoError(t, err)
	assert.True(t, d("19.99").Equal(price))
}

func TestFetchPrice_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		fetcher *fakeFetcher
		wantErr error
		wantMsg string
	}{
		{
			name:    "fetch error passes through",
			fetcher: &fakeFetcher{err: fmt.Errorf("%w: connection refused", apperrors.ErrNetwork)},
			wantErr: apperrors.ErrNetwork,
			wantMsg: "Could not fetch the page",
		},
		{
			name:    "no price on page",
			fetcher: &fakeFetcher{body: "<html><body>Sold out</body></html>"},
			wantErr: apperrors.ErrPriceNotFound,
			wantMsg: "No price found on the page",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := services.NewPriceFetchService(tc.fetcher, 0).FetchPrice(context.Background(), "https://shop.example", "")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantMsg, apperrors.UserMessage(err))
		})
	}
}
