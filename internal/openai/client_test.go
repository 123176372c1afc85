package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		APIKey:       "test-key",
		SystemPrompt: "be nice",
		Timeout:      timeout,
		Options:      []option.RequestOption{option.WithBaseURL(srv.URL + "/")},
	})
}

func completion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	}
}

func TestReplyWithoutKey(t *testing.T) {
	t.Parallel()
	c := New(Config{})

	assert.False(t, c.Enabled())
	_, err := c.Reply(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrClientNotInitialised)
}

func TestReplyRejectsEmptyMessage(t *testing.T) {
	t.Parallel()
	c := New(Config{APIKey: "k"})

	_, err := c.Reply(context.Background(), "   ")
	assert.Error(t, err)
}

func TestReplySendsSystemAndUserMessages(t *testing.T) {
	t.Parallel()
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion("  Hi there!  "))
	}, time.Second)

	reply, err := c.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi there!", reply)

	assert.Equal(t, "gpt-4o-mini", body.Model)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "be nice", body.Messages[0].Content)
	assert.Equal(t, "user", body.Messages[1].Role)
	assert.Equal(t, "hello", body.Messages[1].Content)
}

func TestReplyNon2xx(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}, time.Second)

	_, err := c.Reply(context.Background(), "hello")
	assert.Error(t, err)
}

func TestReplyEmptyChoices(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := completion("")
		resp["choices"] = []any{}
		_ = json.NewEncoder(w).Encode(resp)
	}, time.Second)

	_, err := c.Reply(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestReplyTimeout(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	start := time.Now()
	_, err := c.Reply(context.Background(), "hello")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
