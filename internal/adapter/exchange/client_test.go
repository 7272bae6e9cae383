package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Convert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))
		assert.Equal(t, "100", r.URL.Query().Get("amount"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"result":92.0,"date":"2026-09-01"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")

	conv, err := client.Convert(context.Background(), 100, "USD", "EUR")

	assert.NoError(t, err)
	assert.Equal(t, 92.0, conv.Converted)
	assert.InDelta(t, 0.92, conv.Rate, 1e-9)
	assert.Equal(t, "2026-09-01", conv.Date)
	assert.Equal(t, "USD", conv.From)
	assert.Equal(t, "EUR", conv.To)
}

func TestClient_Convert_SendsAccessKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sk-test", r.URL.Query().Get("access_key"))
		w.Write([]byte(`{"success":true,"result":1.0,"date":"2026-09-01"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test")

	_, err := client.Convert(context.Background(), 1, "USD", "GBP")
	assert.NoError(t, err)
}

func TestClient_Convert_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")

	_, err := client.Convert(context.Background(), 100, "USD", "EUR")
	assert.Error(t, err)
}

func TestClient_Convert_APIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")

	_, err := client.Convert(context.Background(), 100, "USD", "XXX")
	assert.Error(t, err)
}

func TestClient_Convert_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")

	_, err := client.Convert(context.Background(), 100, "USD", "EUR")
	assert.Error(t, err)
}
