// Package notifications publishes run summaries to an ntfy topic. A failed
// notification is logged and never affects the run result.
package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bgg_sheet_sync/internal/processing"

	"github.com/rs/zerolog/log"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	topic      string
	enabled    bool
}

func NewClient(baseURL, topic string, enabled bool) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		topic:   topic,
		enabled: enabled,
	}
}

// NotifySummary publishes the finished run's counts and failed titles.
func (c *Client) NotifySummary(ctx context.Context, summary processing.Summary) {
	if !c.enabled {
		log.Debug().Msg("Notifications disabled, skipping")
		return
	}

	message := FormatSummary(summary)
	url := fmt.Sprintf("%s/%s", c.baseURL, c.topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to build notification request")
		return
	}
	req.Header.Set("Title", "Board game sheet sync")
	if summary.Failed > 0 {
		req.Header.Set("Priority", "high")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to send notification")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Msg("Notification rejected")
		return
	}

	log.Debug().Str("topic", c.topic).Msg("Sent run summary notification")
}

// FormatSummary renders the summary as the notification body: the counts on
// the first line, then one line per failed title.
func FormatSummary(summary processing.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sync complete: %d processed, %d skipped, %d failed",
		summary.Processed, summary.Skipped, summary.Failed)
	for _, f := range summary.Failures {
		fmt.Fprintf(&b, "\nrow %d %q: %s", f.RowIndex, f.Title, f.Reason)
	}
	return b.String()
}
