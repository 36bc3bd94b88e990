package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var metaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

// Client issues requests against a todolite API and renders the responses:
// body to stdout, status line and content-type to stderr. Only the scheme
// and authority of the base URL are used; route paths are fixed.
type Client struct {
	base   *url.URL
	http   *http.Client
	out    io.Writer
	errOut io.Writer
}

// NewClient validates the base URL and builds a client writing to the
// given streams.
func NewClient(baseURL string, out, errOut io.Writer) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must include scheme and host", baseURL)
	}
	return &Client{
		base:   base,
		http:   &http.Client{},
		out:    out,
		errOut: errOut,
	}, nil
}

// Do sends one request and renders the response. A nil payload sends an
// empty body.
func (c *Client) Do(method, path string, payload interface{}) error {
	target := &url.URL{Scheme: c.base.Scheme, Host: c.base.Host, Path: path}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, target.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if !utf8.Valid(raw) {
		return fmt.Errorf("response body is not valid UTF-8")
	}

	fmt.Fprintf(c.errOut, "Status: %s\n", metaStyle.Render(resp.Status))

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" {
		fmt.Fprintf(c.errOut, "Content-Type: %s\n", metaStyle.Render(contentType))
	}

	if len(raw) == 0 {
		return nil
	}

	if strings.HasPrefix(contentType, "application/json") {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, raw, "", "  "); err != nil {
			return fmt.Errorf("malformed JSON response: %w", err)
		}
		fmt.Fprintln(c.out, pretty.String())
		return nil
	}

	fmt.Fprintln(c.out, string(raw))
	return nil
}
