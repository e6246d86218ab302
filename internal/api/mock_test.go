package api

import (
	"io"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/bogdanfinn/tls-client/bandwidth"
)

// mockResponseBody is a ReadCloser that simulates reading response data
type mockResponseBody struct {
	data []byte
	pos  int
}

func newMockResponseBody(data []byte) *mockResponseBody {
	return &mockResponseBody{data: data}
}

func (m *mockResponseBody) Read(p []byte) (n int, err error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n = copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

func (m *mockResponseBody) Close() error {
	return nil
}

// mockHTTPClient implements tls_client.HttpClient for testing. DoFunc
// takes precedence when set, so tests can capture the outgoing request.
type mockHTTPClient struct {
	Response *fhttp.Response
	Err      error
	DoFunc   func(req *fhttp.Request) (*fhttp.Response, error)

	// LastRequest records the most recent request passed to Do
	LastRequest *fhttp.Request
}

func (m *mockHTTPClient) GetCookies(u *url.URL) []*fhttp.Cookie { return nil }

func (m *mockHTTPClient) SetCookies(u *url.URL, cookies []*fhttp.Cookie) {}

func (m *mockHTTPClient) SetCookieJar(jar fhttp.CookieJar) {}

func (m *mockHTTPClient) GetCookieJar() fhttp.CookieJar { return nil }

func (m *mockHTTPClient) SetProxy(proxyUrl string) error { return nil }

func (m *mockHTTPClient) GetProxy() string { return "" }

func (m *mockHTTPClient) SetFollowRedirect(followRedirect bool) {}

func (m *mockHTTPClient) GetFollowRedirect() bool { return false }

func (m *mockHTTPClient) CloseIdleConnections() {}

func (m *mockHTTPClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.LastRequest = req
	if m.DoFunc != nil {
		return m.DoFunc(req)
	}
	return m.Response, m.Err
}

func (m *mockHTTPClient) Get(url string) (*fhttp.Response, error) {
	return m.Response, m.Err
}

func (m *mockHTTPClient) Head(url string) (*fhttp.Response, error) {
	return m.Response, m.Err
}

func (m *mockHTTPClient) Post(url, contentType string, body io.Reader) (*fhttp.Response, error) {
	return m.Response, m.Err
}

func (m *mockHTTPClient) GetBandwidthTracker() bandwidth.BandwidthTracker { return nil }

// newMockHTTPClient creates a mock returning the given body and status
func newMockHTTPClient(body []byte, statusCode int) *mockHTTPClient {
	return &mockHTTPClient{
		Response: &fhttp.Response{
			StatusCode: statusCode,
			Body:       newMockResponseBody(body),
			Header:     make(fhttp.Header),
		},
	}
}

// newMockHTTPClientWithError creates a mock whose Do fails with err
func newMockHTTPClientWithError(err error) *mockHTTPClient {
	return &mockHTTPClient{Err: err}
}
