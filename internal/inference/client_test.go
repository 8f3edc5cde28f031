package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-model", "test-token", WithBaseURL(srv.URL))
}

func TestGenerate_ListWithGeneratedText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-model", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "classify this", req["inputs"])

		_, _ = w.Write([]byte(`[{"generated_text": " Loyal Viewer\n"}]`))
	})

	out, err := c.Generate(context.Background(), "classify this")
	require.NoError(t, err)
	assert.Equal(t, "Loyal Viewer", out)
}

func TestGenerate_ObjectWithGeneratedText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text": "Critical Viewer"}`))
	})

	out, err := c.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "Critical Viewer", out)
}

func TestGenerate_ListWithText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"text": "Passive Viewer"}]`))
	})

	out, err := c.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "Passive Viewer", out)
}

func TestGenerate_UnknownShapeStringified(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`"just a string"`))
	})

	out, err := c.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, `"just a string"`, out)
}

func TestGenerate_ErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "model is loading"}`))
	})

	_, err := c.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "model is loading")
}

func TestGenerate_Non200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Generate(context.Background(), "p")
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestGenerate_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // immediately, so the address refuses connections

	c := NewClient("m", "", WithBaseURL(srv.URL))
	_, err := c.Generate(context.Background(), "p")
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "")
	assert.Equal(t, DefaultModel, c.model)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
