// pkg/utils/http_client.go
package utils

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	utls "github.com/refraction-networking/utls"
	proxy "golang.org/x/net/proxy"
)

var clientHelloIDs = []utls.ClientHelloID{
	utls.HelloChrome_Auto,
	utls.HelloFirefox_Auto,
	utls.HelloSafari_Auto,
	utls.HelloEdge_Auto,
}

// ProxyRotator hands out configured proxy URLs round-robin.
type ProxyRotator struct {
	parsedURLs []*url.URL
	currentIdx uint32
}

func NewProxyRotator(proxyURLs []string) (*ProxyRotator, error) {
	rotator := &ProxyRotator{}

	for _, rawURL := range proxyURLs {
		parsedURL, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse proxy URL %s: %w", MaskProxyURL(rawURL), err)
		}
		rotator.parsedURLs = append(rotator.parsedURLs, parsedURL)
	}

	return rotator, nil
}

func (r *ProxyRotator) NextProxy() *url.URL {
	if len(r.parsedURLs) == 0 {
		return nil
	}

	idx := atomic.AddUint32(&r.currentIdx, 1) % uint32(len(r.parsedURLs))
	return r.parsedURLs[idx]
}

// FingerprintingDialer establishes TLS connections with a browser-like
// ClientHello, optionally tunneled through a proxy. Reddit's CDN rejects
// obvious non-browser TLS stacks coming from datacenter ranges, so proxied
// traffic has to look like a browser at the TLS layer.
type FingerprintingDialer struct {
	proxyURL      *url.URL
	clientHelloID utls.ClientHelloID
}

func NewFingerprintingDialer(proxyURL *url.URL) *FingerprintingDialer {
	return &FingerprintingDialer{
		proxyURL:      proxyURL,
		clientHelloID: clientHelloIDs[rand.Intn(len(clientHelloIDs))],
	}
}

func (d *FingerprintingDialer) DialTLSContext(ctx context.Context, network, addr string) (net.Conn, error) {
	var conn net.Conn
	var err error

	if d.proxyURL == nil {
		var dialer net.Dialer
		conn, err = dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("direct dial: %w", err)
		}
	} else {
		conn, err = d.dialThroughProxy(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("proxy dial: %w", err)
		}
	}

	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}

	uconn := utls.UClient(conn, &utls.Config{ServerName: host}, d.clientHelloID)
	if err := uconn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("uTLS handshake: %w", err)
	}

	return uconn, nil
}

func (d *FingerprintingDialer) dialThroughProxy(ctx context.Context, network, addr string) (net.Conn, error) {
	switch d.proxyURL.Scheme {
	case "http", "https":
		transport := &http.Transport{
			Proxy: http.ProxyURL(d.proxyURL),
		}

		conn, err := transport.DialContext(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("dial via HTTP proxy: %w", err)
		}

		return conn, nil

	case "socks5":
		auth := &proxy.Auth{}
		if d.proxyURL.User != nil {
			auth.User = d.proxyURL.User.Username()
			if password, ok := d.proxyURL.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", d.proxyURL.Host, auth, &net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("create SOCKS5 dialer: %w", err)
		}

		connCh := make(chan net.Conn, 1)
		errCh := make(chan error, 1)

		go func() {
			conn, err := dialer.Dial(network, addr)
			if err != nil {
				errCh <- err
				return
			}
			connCh <- conn
		}()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case conn := <-connCh:
			return conn, nil
		case err := <-errCh:
			return nil, fmt.Errorf("dial via SOCKS5 proxy: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s", d.proxyURL.Scheme)
	}
}

// TLSFingerprintingTransport routes each request through the next proxy with
// a freshly picked browser fingerprint. A new transport is built per request
// so concurrent requests never share mutable dialer state.
type TLSFingerprintingTransport struct {
	proxyRotator *ProxyRotator
}

func NewTLSFingerprintingTransport(rotator *ProxyRotator) http.RoundTripper {
	return &TLSFingerprintingTransport{proxyRotator: rotator}
}

func (t *TLSFingerprintingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	proxyURL := t.proxyRotator.NextProxy()

	transport := &http.Transport{
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     false,
	}

	if proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if req.URL.Scheme == "https" {
		dialer := NewFingerprintingDialer(proxyURL)
		transport.DialTLSContext = dialer.DialTLSContext
	}

	return transport.RoundTrip(req)
}

// MaskProxyURL hides credentials embedded in a proxy URL for logging.
func MaskProxyURL(proxyURL string) string {
	if !strings.Contains(proxyURL, "@") {
		return proxyURL
	}

	parsedURL, err := url.Parse(proxyURL)
	if err != nil {
		return "[masked]"
	}

	if parsedURL.User != nil {
		username := parsedURL.User.Username()
		return strings.Replace(proxyURL, parsedURL.User.String(), username+":****", 1)
	}

	return proxyURL
}

// RetryableClient wraps an http.Client with bounded retries, exponential
// backoff, and transparent gzip handling. Transient network failures, 429s
// and 5xx responses are retried here so callers never see them.
type RetryableClient struct {
	client     *http.Client
	maxRetries int
	userAgent  string
}

// NewRetryableClient builds the transport. With no proxy URLs requests go
// out directly over a stock transport; with proxies configured they rotate
// through the proxy pool with browser TLS fingerprints.
func NewRetryableClient(proxyURLs []string, maxRetries int, userAgent string, timeout time.Duration) (*RetryableClient, error) {
	var validProxies []string
	for _, p := range proxyURLs {
		if p != "" {
			validProxies = append(validProxies, p)
		}
	}

	var transport http.RoundTripper
	if len(validProxies) > 0 {
		for i, p := range validProxies {
			slog.Info("using proxy", "index", i+1, "url", MaskProxyURL(p))
		}

		rotator, err := NewProxyRotator(validProxies)
		if err != nil {
			return nil, fmt.Errorf("create proxy rotator: %w", err)
		}
		transport = NewTLSFingerprintingTransport(rotator)
	} else {
		transport = http.DefaultTransport
	}

	if maxRetries < 1 {
		maxRetries = 1
	}

	return &RetryableClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		maxRetries: maxRetries,
		userAgent:  userAgent,
	}, nil
}

func (c *RetryableClient) Do(req *http.Request) (*http.Response, []byte, error) {
	var resp *http.Response
	var bodyBytes []byte
	var err error

	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	var reqBody []byte
	if req.Body != nil {
		reqBody, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("reading request body: %w", err)
		}
		req.Body.Close()
	}

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if reqBody != nil {
			req.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		if attempt > 0 {
			backoffTime := time.Duration(1<<uint(attempt)) * time.Second
			slog.Debug("retrying request", "attempt", attempt+1, "backoff", backoffTime, "url", req.URL.Path)

			select {
			case <-req.Context().Done():
				return nil, nil, req.Context().Err()
			case <-time.After(backoffTime):
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			if req.Context().Err() != nil {
				return nil, nil, req.Context().Err()
			}

			slog.Warn("request failed", "attempt", attempt+1, "error", err)
			if attempt == c.maxRetries-1 {
				return nil, nil, fmt.Errorf("all %d attempts failed: %w", c.maxRetries, err)
			}
			continue
		}

		var reader io.ReadCloser
		switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
		case "gzip":
			reader, err = gzip.NewReader(resp.Body)
			if err != nil {
				resp.Body.Close()
				if attempt == c.maxRetries-1 {
					return nil, nil, fmt.Errorf("decompress gzip response: %w", err)
				}
				continue
			}
		default:
			reader = resp.Body
		}

		bodyBytes, err = io.ReadAll(reader)
		reader.Close()
		resp.Body.Close()

		if err != nil {
			slog.Warn("reading response body failed", "attempt", attempt+1, "error", err)
			if attempt == c.maxRetries-1 {
				return nil, nil, fmt.Errorf("reading response body: %w", err)
			}
			continue
		}

		// Some proxies re-compress already-gzipped payloads.
		if len(bodyBytes) > 1 && bodyBytes[0] == 0x1f && bodyBytes[1] == 0x8b {
			gr, gzErr := gzip.NewReader(bytes.NewReader(bodyBytes))
			if gzErr == nil {
				uncompressed, readErr := io.ReadAll(gr)
				gr.Close()
				if readErr == nil {
					bodyBytes = uncompressed
				}
			}
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			slog.Warn("server rejected request", "status", resp.StatusCode, "attempt", attempt+1)

			if attempt == c.maxRetries-1 {
				return nil, nil, fmt.Errorf("server error: status %d", resp.StatusCode)
			}
			continue
		}

		break
	}

	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	return resp, bodyBytes, nil
}
