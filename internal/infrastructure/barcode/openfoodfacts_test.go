package barcode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup_Encontrado(t *testing.T) {
	var gotPath string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":1,"product":{"product_name":"Coca-Cola","brands":"Coca-Cola","generic_name":"Bebida gaseosa","quantity":"600 ml","image_url":"https://img/x.jpg"}}`))
	})
	var results []string
	c := NewOpenFoodFacts(srv.URL+"/", time.Second, nil, WithObserver(func(r string) { results = append(results, r) }))

	p, err := c.Lookup(context.Background(), "7501055363278")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "/api/v0/product/7501055363278.json", gotPath)
	assert.Equal(t, "Coca-Cola", p.Name)
	assert.Equal(t, "600 ml", p.Quantity)
	assert.Equal(t, SourceName, p.Source)
	assert.Equal(t, []string{ResultFound}, results)
}

func TestLookup_StatusDistintoDeUno(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":0,"status_verbose":"product not found"}`))
	})
	c := NewOpenFoodFacts(srv.URL, time.Second, nil)

	p, err := c.Lookup(context.Background(), "12345678")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLookup_HTTP404EsNoEncontrado(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c := NewOpenFoodFacts(srv.URL, time.Second, nil)

	p, err := c.Lookup(context.Background(), "12345678")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLookup_ErrorDelServidor(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	var results []string
	c := NewOpenFoodFacts(srv.URL, time.Second, nil, WithObserver(func(r string) { results = append(results, r) }))

	_, err := c.Lookup(context.Background(), "12345678")
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.Equal(t, []string{ResultError}, results)
}

func TestLookup_Timeout(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c := NewOpenFoodFacts(srv.URL, 50*time.Millisecond, nil)

	_, err := c.Lookup(context.Background(), "12345678")
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestLookup_JSONInvalido(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>mantenimiento</html>`))
	})
	c := NewOpenFoodFacts(srv.URL, time.Second, nil)

	_, err := c.Lookup(context.Background(), "12345678")
	assert.ErrorIs(t, err, domain.ErrExternalService)
}
