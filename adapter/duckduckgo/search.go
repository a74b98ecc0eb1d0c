package duckduckgo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/RichardKnop/answerengine"
)

const maxRelatedTopics = 5

type instantAnswer struct {
	AbstractText  string         `json:"AbstractText"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

// relatedTopic only decodes the Text field. The API mixes plain topics with
// nested category groups that have no Text, those simply decode empty and
// are skipped.
type relatedTopic struct {
	Text string `json:"Text"`
}

// Search queries the instant answer API and assembles a snippet from the
// abstract plus the first few related topics. Every failure is logged and
// swallowed, the answer pipeline continues without web context.
func (a *Adapter) Search(ctx context.Context, query string) (answerengine.Snippet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL, nil)
	if err != nil {
		a.logger.Sugar().With("error", err).Warn("building search request")
		return "", nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("no_html", "1")
	params.Set("skip_disambig", "1")
	req.URL.RawQuery = params.Encode()

	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Sugar().With("error", err).Warn("web search request failed")
		return "", nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Sugar().With("status", resp.StatusCode).Warn("web search returned non-OK status")
		return "", nil
	}

	answer := instantAnswer{}
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		a.logger.Sugar().With("error", err).Warn("decoding web search response")
		return "", nil
	}

	snippets := make([]string, 0, maxRelatedTopics+1)
	if answer.AbstractText != "" {
		snippets = append(snippets, answer.AbstractText)
	}
	topics := answer.RelatedTopics
	if len(topics) > maxRelatedTopics {
		topics = topics[:maxRelatedTopics]
	}
	for _, topic := range topics {
		if topic.Text == "" {
			continue
		}
		snippets = append(snippets, topic.Text)
	}

	return answerengine.Snippet(strings.Join(snippets, "\n")), nil
}
