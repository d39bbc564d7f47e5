package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eugeneyalansky/slackshare/lib/config"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const defaultBaseURL = "https://slack.com/api/"

// attributionText is the fixed footer attached to every shared snippet.
const attributionText = "Sent via slackshare"

// Client talks to the Slack Web API, keeping the member directory in a
// file-backed cache between runs.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport used for API calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// New builds a Client from cfg. A missing token fails here, before any
// network or cache activity.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		token:      cfg.Token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      NewCache(cfg.CachePath),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetDirectory returns the workspace member directory, preferring the
// cached copy. With force set, or on a cache miss, it fetches a fresh
// listing and rewrites the cache. A cache write failure is logged and does
// not fail the read.
func (c *Client) GetDirectory(force bool) (Directory, error) {
	if !force {
		if dir, ok := c.cache.Load(); ok {
			logrus.WithField("members", len(dir)).Debug("using cached user directory")
			return dir, nil
		}
	}

	dir, err := c.fetchDirectory()
	if err != nil {
		return nil, err
	}

	if err := c.cache.Save(dir); err != nil {
		logrus.WithError(err).WithField("path", c.cache.Path()).Warn("could not save user cache")
	}

	return dir, nil
}

type memberProfile struct {
	RealName string `json:"real_name"`
}

type memberRecord struct {
	ID      string        `json:"id"`
	TeamID  string        `json:"team_id"`
	Deleted bool          `json:"deleted"`
	Profile memberProfile `json:"profile"`
}

type userListResponse struct {
	OK      bool           `json:"ok"`
	Error   string         `json:"error"`
	Members []memberRecord `json:"members"`
}

// fetchDirectory lists workspace members from users.list, dropping members
// the workspace has deactivated. Every surviving record must carry an id
// and a team id; the display name may be blank.
func (c *Client) fetchDirectory() (Directory, error) {
	logrus.Debug("fetching user directory")

	body, _, err := c.apiRequest(http.MethodGet, "users.list", nil)
	if err != nil {
		return nil, err
	}

	var resp userListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if !resp.OK {
		return nil, &APIError{Method: "users.list", Code: resp.Error}
	}

	dir := make(Directory, 0, len(resp.Members))
	for _, m := range resp.Members {
		if m.Deleted {
			continue
		}
		if m.ID == "" || m.TeamID == "" {
			return nil, fmt.Errorf("%w: member record missing id or team_id", ErrMalformedResponse)
		}
		dir = append(dir, Entry{ID: m.ID, Team: m.TeamID, Name: m.Profile.RealName})
	}

	logrus.WithField("members", len(dir)).Debug("fetched user directory")
	return dir, nil
}

type postMessageRequest struct {
	Channel string        `json:"channel"`
	Blocks  []slack.Block `json:"blocks"`
}

// PostMessage shares content with a channel or user ID, wrapped in the
// snippet envelope: a monospace block followed by the attribution footer.
// Delivery is judged by the response status code; the body is not
// inspected.
func (c *Client) PostMessage(content string, recipientID string) error {
	payload := postMessageRequest{
		Channel: recipientID,
		Blocks: []slack.Block{
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("```%s```", content), false, false),
				nil, nil,
			),
			slack.NewContextBlock("",
				slack.NewTextBlockObject(slack.MarkdownType, attributionText, false, false),
			),
		},
	}

	logrus.WithField("channel", recipientID).WithField("bytes", len(content)).Debug("posting message")

	body, status, err := c.apiRequest(http.MethodPost, "chat.postMessage", payload)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		logrus.WithField("status", status).WithField("body", string(body)).Debug("message rejected")
		return fmt.Errorf("%w: status %d", ErrDeliveryFailed, status)
	}

	return nil
}

// apiRequest performs a raw Slack Web API call with the bearer credential
// attached, returning the response body and status code.
func (c *Client) apiRequest(httpMethod string, apiMethod string, payload any) ([]byte, int, error) {
	reqUrl, err := url.JoinPath(c.baseURL, apiMethod)
	if err != nil {
		return nil, -1, err
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, -1, err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(httpMethod, reqUrl, reqBody)
	if err != nil {
		return nil, -1, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, -1, fmt.Errorf("calling %s: %w", apiMethod, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, -1, fmt.Errorf("reading %s response: %w", apiMethod, err)
	}

	return respBody, resp.StatusCode, nil
}
