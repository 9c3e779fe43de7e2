package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `[
	{"id":1,"title":"Backpack","price":109.95,"description":"Fits 15 inch laptops","category":"men's clothing","image":"a.jpg","sold":false,"dateOfSale":"2021-11-27T20:29:54+05:30"},
	{"id":2,"title":"T-Shirt","price":22.3,"description":"Slim fit","category":"men's clothing","image":"b.jpg","sold":true,"dateOfSale":"2021-10-27T20:29:54+05:30"}
]`

func TestHTTPProductRepository_FetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDataset))
	}))
	defer srv.Close()

	repo := NewHTTPProductRepository(srv.Client(), srv.URL, time.Second)
	txs, err := repo.FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "Backpack", txs[0].Title)
	assert.True(t, txs[0].DateOfSale.Valid)
	assert.Equal(t, time.November, txs[0].DateOfSale.Time.Month())
	assert.True(t, txs[1].Sold)
}

func TestHTTPProductRepository_Failures(t *testing.T) {
	t.Run("non-success status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		txs, err := NewHTTPProductRepository(srv.Client(), srv.URL, time.Second).FetchAll(context.Background())
		assert.ErrorContains(t, err, "unexpected status 500")
		assert.Nil(t, txs)
	})

	t.Run("invalid json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"}`))
		}))
		defer srv.Close()

		_, err := NewHTTPProductRepository(srv.Client(), srv.URL, time.Second).FetchAll(context.Background())
		assert.ErrorContains(t, err, "decode product data")
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		start := time.Now()
		_, err := NewHTTPProductRepository(srv.Client(), srv.URL, 50*time.Millisecond).FetchAll(context.Background())
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := NewHTTPProductRepository(nil, "http://127.0.0.1:1/data.json", time.Second).FetchAll(context.Background())
		assert.ErrorContains(t, err, "fetch product data")
	})
}
