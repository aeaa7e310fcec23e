package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fortune-dashboard/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"company":"Walmart","ticker":"WMT","sector":"Retailing","employees":"2,100,000","url":"https://www.walmart.com","revenue":648125},
			{"company":"State Farm","ticker":"","sector":"Financials","employees":"60,519","url":"https://www.statefarm.com","revenue":104213}
		]`))
	}))
	defer srv.Close()

	seeds, err := generate(context.Background(), srv.Client(), srv.URL, 1)
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, "WMT", seeds[0].Ticker)
	assert.Equal(t, 2100000, seeds[0].Employees)

	seeds, err = generate(context.Background(), srv.Client(), srv.URL, 100)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, loader.UnknownTicker, seeds[1].Ticker)
}

func TestGenerateFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			w.WriteHeader(http.StatusForbidden)
		case "/empty":
			w.Write([]byte(`[]`))
		default:
			w.Write([]byte(`{not json`))
		}
	}))
	defer srv.Close()

	for _, path := range []string{"/status", "/empty", "/garbage"} {
		_, err := generate(context.Background(), srv.Client(), srv.URL+path, 100)
		assert.Error(t, err, path)
	}
}
