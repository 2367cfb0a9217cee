package embedder

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)

		out := map[string]any{"data": []map[string]any{}}
		data := out["data"].([]map[string]any)
		for i := range req.Input {
			data = append(data, map[string]any{"embedding": []float32{float32(i), 1}})
		}
		out["data"] = data
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "test-model")
	vecs, err := c.Embed([]string{"one", "two"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Equal(t, []float32{0, 1}, vecs[0])
	assert.Equal(t, []float32{1, 1}, vecs[1])
}

func TestEmbed_NoInput(t *testing.T) {
	c := New("http://unused.invalid", "k", "m")
	vecs, err := c.Embed(nil)
	require.NoError(t, err)
	assert.Nil(t, vecs)
}

func TestEmbed_ProviderRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "m")
	_, err := c.Embed([]string{"x"})
	assert.ErrorIs(t, err, ErrProvider)
	assert.Contains(t, err.Error(), "429")
}

func TestEmbed_Unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", "k", "m")
	_, err := c.Embed([]string{"x"})
	assert.ErrorIs(t, err, ErrProvider)
}

func TestEmbed_CountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"embedding":[1,2]}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "m")
	_, err := c.Embed([]string{"a", "b"})
	assert.ErrorIs(t, err, ErrProvider)
}

func TestFloatBytesRoundTrip(t *testing.T) {
	v := []float32{0.25, -1.5, 3.14159, 0}
	assert.Equal(t, v, BytesToFloats(FloatsToBytes(v)))
	assert.Empty(t, BytesToFloats(nil))
}
