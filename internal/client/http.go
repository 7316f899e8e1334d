package client

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultTimeout = 30 * time.Second
	maxPreviewLen  = 200
)

// CreateProxyHTTPClient creates an HTTP client with proxy support.
// An empty or unparsable proxy URL falls back to a direct client.
func CreateProxyHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	if proxyURL == "" {
		return CreateHTTPClient(timeout)
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return CreateHTTPClient(timeout)
	}

	transport := newTransport()
	transport.Proxy = http.ProxyURL(proxy)

	return &http.Client{
		Transport: transport,
		Timeout:   orDefault(timeout),
	}
}

// CreateHTTPClient creates a standard HTTP client
func CreateHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: newTransport(),
		Timeout:   orDefault(timeout),
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 2,
		ForceAttemptHTTP2:   true,
	}
}

func orDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultTimeout
	}
	return timeout
}

// DefaultHeaders returns the headers sent with every API request.
// hh.ru rejects requests without a User-Agent, and HH-User-Agent is what
// its docs ask for.
func DefaultHeaders(userAgent string) http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", userAgent)
	headers.Set("HH-User-Agent", userAgent)
	headers.Set("Accept", "application/json")
	headers.Set("Accept-Encoding", "gzip")
	return headers
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}

// DescribeBody returns a short, log friendly summary of a response body.
// HTML error pages (captcha, maintenance, proxies) are reduced to their title.
func DescribeBody(contentType string, body []byte) string {
	if strings.Contains(contentType, "text/html") || bytes.HasPrefix(bytes.TrimSpace(body), []byte("<")) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err == nil {
			if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
				return title
			}
			if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
				return h1
			}
		}
	}

	preview := strings.TrimSpace(string(body))
	if utf8.RuneCountInString(preview) > maxPreviewLen {
		// cut on a rune boundary, error bodies are often Cyrillic
		preview = string([]rune(preview)[:maxPreviewLen]) + "..."
	}
	return preview
}
