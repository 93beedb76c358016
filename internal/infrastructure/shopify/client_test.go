package shopify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"salewatch/internal/config"
	"salewatch/internal/domain"
	"salewatch/internal/infrastructure/shopify"
	"salewatch/pkg/errcodes"
)

func testStoreConfig(baseURL string) config.Store {
	return config.Store{
		BaseURL:        baseURL,
		FeedPath:       "/products.json",
		FeedPageLimit:  250,
		RequestTimeout: 5 * time.Second,
		UserAgent:      "salewatch-test",
	}
}

func TestClientFetchProducts(t *testing.T) {
	rq := require.New(t)

	const feedBody = `{
		"products": [
			{
				"title": "Pre-Workout",
				"handle": "pre-workout",
				"variants": [
					{"id": 1, "price": "40.00", "compare_at_price": "80.00"},
					{"id": 2, "price": 25.5, "compare_at_price": null},
					{"id": 3, "price": "oops", "compare_at_price": "10.00"}
				]
			}
		]
	}`

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/products.json", r.URL.Path)
		rq.Equal("250", r.URL.Query().Get("limit"))
		rq.Equal("salewatch-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(feedBody))
	}))
	defer httpServer.Close()

	client, err := shopify.NewClient(testStoreConfig(httpServer.URL))
	rq.NoError(err)

	products, ok, err := client.FetchProducts(context.Background())
	rq.NoError(err)
	rq.True(ok)
	rq.Len(products, 1)

	p := products[0]
	rq.Equal("Pre-Workout", p.Title)
	rq.Equal("pre-workout", p.Handle)
	rq.Len(p.Variants, 3)

	rq.Equal(int64(1), p.Variants[0].ID)
	rq.NotNil(p.Variants[0].Price)
	rq.InDelta(40.0, *p.Variants[0].Price, 1e-9)
	rq.NotNil(p.Variants[0].CompareAtPrice)
	rq.InDelta(80.0, *p.Variants[0].CompareAtPrice, 1e-9)

	// Число вместо строки — валидно, null — просто nil.
	rq.NotNil(p.Variants[1].Price)
	rq.InDelta(25.5, *p.Variants[1].Price, 1e-9)
	rq.Nil(p.Variants[1].CompareAtPrice)

	// Мусор в цене — nil, не ошибка.
	rq.Nil(p.Variants[2].Price)
	rq.NotNil(p.Variants[2].CompareAtPrice)
}

func TestClientFetchProductsNoData(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		handlerFunc http.HandlerFunc
	}{
		{
			name: "Status 503",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "HTML instead of JSON",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.Write([]byte("<html>bot check</html>"))
			},
		},
		{
			name: "Malformed JSON body",
			handlerFunc: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"products": [`))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			httpServer := httptest.NewServer(tc.handlerFunc)
			defer httpServer.Close()

			client, err := shopify.NewClient(testStoreConfig(httpServer.URL))
			rq.NoError(err)

			products, ok, err := client.FetchProducts(context.Background())
			rq.NoError(err)
			rq.False(ok)
			rq.Nil(products)
		})
	}
}

func TestClientFetchProductsNetworkError(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	httpServer.Close() // сервер уже мёртв

	client, err := shopify.NewClient(testStoreConfig(httpServer.URL))
	rq.NoError(err)

	_, ok, err := client.FetchProducts(context.Background())
	rq.False(ok)
	rq.Error(err)

	code, isApp := domain.GetCode(err)
	rq.True(isApp)
	rq.Equal(errcodes.FeedFetchFailed, code)
}

func TestClientRejectsInvalidBaseURL(t *testing.T) {
	rq := require.New(t)

	_, err := shopify.NewClient(testStoreConfig("://not-a-url"))
	rq.Error(err)

	code, isApp := domain.GetCode(err)
	rq.True(isApp)
	rq.Equal(errcodes.InvalidStoreURL, code)
}
