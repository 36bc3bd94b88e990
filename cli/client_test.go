package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RejectsBadURLs(t *testing.T) {
	var out, errOut bytes.Buffer

	_, err := NewClient("127.0.0.1:3000", &out, &errOut)
	assert.Error(t, err, "missing scheme")

	_, err = NewClient("http://", &out, &errOut)
	assert.Error(t, err, "missing host")

	_, err = NewClient("http://127.0.0.1:3000", &out, &errOut)
	assert.NoError(t, err)
}

func TestDo_PrettyPrintsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"body":"buy milk","completed":false}`))
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	client, err := NewClient(srv.URL, &out, &errOut)
	require.NoError(t, err)

	require.NoError(t, client.Do(http.MethodGet, "/v1/todos/1", nil))

	assert.Contains(t, errOut.String(), "Status:")
	assert.Contains(t, errOut.String(), "200")
	assert.Contains(t, errOut.String(), "Content-Type:")
	assert.Contains(t, errOut.String(), "application/json")

	// Indented output, not the single-line body the server sent.
	assert.Contains(t, out.String(), "\n  \"body\": \"buy milk\"")
}

func TestDo_RawOutputForNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("plain text body"))
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	client, err := NewClient(srv.URL, &out, &errOut)
	require.NoError(t, err)

	require.NoError(t, client.Do(http.MethodGet, "/v1/todos", nil))
	assert.Equal(t, "plain text body\n", out.String())
}

func TestDo_SendsJSONPayload(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/todos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"body":"buy milk","completed":false}`))
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	client, err := NewClient(srv.URL, &out, &errOut)
	require.NoError(t, err)

	payload := map[string]string{"body": "buy milk"}
	require.NoError(t, client.Do(http.MethodPost, "/v1/todos", payload))
	assert.Equal(t, "buy milk", got["body"])
	assert.Contains(t, errOut.String(), "201")
}

func TestDo_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	client, err := NewClient(srv.URL, &out, &errOut)
	require.NoError(t, err)

	require.NoError(t, client.Do(http.MethodDelete, "/v1/todos/1", nil))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "204")
}

func TestDo_ConnectionRefused(t *testing.T) {
	var out, errOut bytes.Buffer
	client, err := NewClient("http://127.0.0.1:1", &out, &errOut)
	require.NoError(t, err)

	err = client.Do(http.MethodGet, "/v1/todos", nil)
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestDo_NonUTF8Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer srv.Close()

	var out, errOut bytes.Buffer
	client, err := NewClient(srv.URL, &out, &errOut)
	require.NoError(t, err)

	err = client.Do(http.MethodGet, "/v1/todos", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}
