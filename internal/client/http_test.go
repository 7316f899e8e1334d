package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResponseBody(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		resp := &http.Response{
			Header: http.Header{},
			Body:   io.NopCloser(strings.NewReader(`{"found": 1}`)),
		}
		body, err := ReadResponseBody(resp)
		require.NoError(t, err)
		assert.Equal(t, `{"found": 1}`, string(body))
	})

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(`{"total": 7}`))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		resp := &http.Response{
			Header: http.Header{"Content-Encoding": []string{"gzip"}},
			Body:   io.NopCloser(&buf),
		}
		body, err := ReadResponseBody(resp)
		require.NoError(t, err)
		assert.Equal(t, `{"total": 7}`, string(body))
	})

	t.Run("broken gzip", func(t *testing.T) {
		resp := &http.Response{
			Header: http.Header{"Content-Encoding": []string{"gzip"}},
			Body:   io.NopCloser(strings.NewReader("not gzip")),
		}
		_, err := ReadResponseBody(resp)
		assert.Error(t, err)
	})
}

func TestDescribeBody(t *testing.T) {
	html := `<html><head><title>403 Forbidden</title></head><body><h1>nope</h1></body></html>`
	assert.Equal(t, "403 Forbidden", DescribeBody("text/html; charset=utf-8", []byte(html)))

	noTitle := `<html><body><h1>Service Unavailable</h1></body></html>`
	assert.Equal(t, "Service Unavailable", DescribeBody("", []byte(noTitle)))

	jsonBody := `{"errors":[{"type":"bad_argument"}]}`
	assert.Equal(t, jsonBody, DescribeBody("application/json", []byte(jsonBody)))

	long := strings.Repeat("x", 500)
	assert.Len(t, DescribeBody("text/plain", []byte(long)), maxPreviewLen+3)
}

func TestDescribeBodyKeepsRunesWhole(t *testing.T) {
	// one ASCII byte shifts every two-byte rune off the byte limit
	cyrillic := "{" + strings.Repeat("ошибка ", 100)

	preview := DescribeBody("application/json", []byte(cyrillic))
	assert.True(t, utf8.ValidString(preview))
	assert.True(t, strings.HasSuffix(preview, "..."))
	assert.Equal(t, maxPreviewLen+3, utf8.RuneCountInString(preview))
}

func TestCreateClients(t *testing.T) {
	c := CreateHTTPClient(0)
	assert.Equal(t, defaultTimeout, c.Timeout)

	c = CreateProxyHTTPClient("http://localhost:8080", 5*time.Second)
	assert.Equal(t, 5*time.Second, c.Timeout)
	transport, ok := c.Transport.(*http.Transport)
	require.True(t, ok)

	req, err := http.NewRequest(http.MethodGet, "https://api.hh.ru/vacancies", nil)
	require.NoError(t, err)
	proxy, err := transport.Proxy(req)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", proxy.Host)
}

func TestDefaultHeaders(t *testing.T) {
	h := DefaultHeaders("salarystats-test")
	assert.Equal(t, "salarystats-test", h.Get("User-Agent"))
	assert.Equal(t, "salarystats-test", h.Get("HH-User-Agent"))
}
