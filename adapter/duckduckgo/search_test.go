package duckduckgo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RichardKnop/answerengine"
	"github.com/RichardKnop/answerengine/adapter/duckduckgo"
)

func TestAdapter_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		response string
		want     answerengine.Snippet
	}{
		{
			name:   "abstract and related topics",
			status: http.StatusOK,
			response: `{
				"AbstractText": "Quantum entanglement is a physical phenomenon.",
				"RelatedTopics": [
					{"Text": "First topic."},
					{"Name": "Category without text", "Topics": []},
					{"Text": "Second topic."}
				]
			}`,
			want: "Quantum entanglement is a physical phenomenon.\nFirst topic.\nSecond topic.",
		},
		{
			name:   "related topics are capped at five",
			status: http.StatusOK,
			response: `{
				"AbstractText": "",
				"RelatedTopics": [
					{"Text": "one"},
					{"Text": "two"},
					{"Text": "three"},
					{"Text": "four"},
					{"Text": "five"},
					{"Text": "six"}
				]
			}`,
			want: "one\ntwo\nthree\nfour\nfive",
		},
		{
			name:     "no results",
			status:   http.StatusOK,
			response: `{"AbstractText": "", "RelatedTopics": []}`,
			want:     "",
		},
		{
			name:     "malformed response body",
			status:   http.StatusOK,
			response: `<html>definitely not json</html>`,
			want:     "",
		},
		{
			name:     "upstream error status",
			status:   http.StatusInternalServerError,
			response: `{"error": "boom"}`,
			want:     "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "json", r.URL.Query().Get("format"))
				assert.Equal(t, "1", r.URL.Query().Get("no_html"))
				assert.Equal(t, "1", r.URL.Query().Get("skip_disambig"))
				assert.NotEmpty(t, r.URL.Query().Get("q"))

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			adapter := duckduckgo.New(
				duckduckgo.WithBaseURL(srv.URL),
				duckduckgo.WithHTTPClient(srv.Client()),
			)

			snippet, err := adapter.Search(context.Background(), "quantum entanglement")
			require.NoError(t, err)
			assert.Equal(t, tt.want, snippet)
		})
	}
}

func TestAdapter_Search_UnreachableBackend(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	adapter := duckduckgo.New(duckduckgo.WithBaseURL(srv.URL))

	snippet, err := adapter.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, snippet.Empty())
}
