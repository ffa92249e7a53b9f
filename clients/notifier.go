package clients

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

// maxMessageSize mirrors the delivery endpoint's text limit.
const maxMessageSize = 4096

// Notifier delivers composed messages to the external chat endpoint.
// Delivery is best-effort: one attempt, bounded wait, boolean outcome.
type Notifier struct {
	endpoint   string
	token      string
	channel    string
	httpClient *http.Client
}

type messageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
	Format  string `json:"format"`
}

func NewNotifier(endpoint, token, channel string) *Notifier {
	return &Notifier{
		endpoint: endpoint,
		token:    token,
		channel:  channel,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts the message text to the configured channel. It returns false
// without a network call when the text is empty or over the size limit,
// and false on any transport error, timeout or non-2xx status.
func (n *Notifier) Send(text string) bool {
	if text == "" {
		log.Printf("Notification skipped: empty message")
		return false
	}
	if len(text) > maxMessageSize {
		log.Printf("Notification skipped: message size %d exceeds limit %d", len(text), maxMessageSize)
		return false
	}

	body, err := json.Marshal(messageRequest{
		Channel: n.channel,
		Text:    text,
		Format:  "richtext",
	})
	if err != nil {
		log.Printf("Failed to marshal notification: %v", err)
		return false
	}

	req, err := http.NewRequest(http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("Failed to build notification request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.token)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Printf("Failed to deliver notification: %v", err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Notification endpoint returned status %d", resp.StatusCode)
		return false
	}
	return true
}
