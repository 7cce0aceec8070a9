package api

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

const defaultBackendURL = "http://backend:8005"

// Client issues requests against the maint backend REST API. It owns the base
// URL and the underlying transport; per-request state (the browser's cookies)
// lives on the Caller returned by ForRequest.
type Client struct {
	baseURL string
	http    *resty.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBackendURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    resty.New(),
	}
}

func NewClientFromEnv() *Client {
	return NewClient(os.Getenv("BACKEND_API_URL"))
}

// Caller is a Client bound to one inbound browser request. It forwards the
// browser's cookies to the backend (the session cookie rides along on every
// call) and relays backend Set-Cookie headers back to the browser, so login
// and logout cookies round-trip through the gateway.
type Caller struct {
	client  *Client
	cookies []*http.Cookie

	// relayMu serializes relay calls: handlers may fan calls out across
	// goroutines, and the response header map is not safe for concurrent
	// writes.
	relayMu sync.Mutex
	relay   func(*http.Cookie)
}

func (c *Client) ForRequest(ctx *gin.Context) *Caller {
	return &Caller{
		client:  c,
		cookies: ctx.Request.Cookies(),
		relay: func(cookie *http.Cookie) {
			http.SetCookie(ctx.Writer, cookie)
		},
	}
}

// Anonymous returns a Caller with no browser session attached, for calls the
// gateway makes on its own behalf (settings, public listings).
func (c *Client) Anonymous() *Caller {
	return &Caller{client: c}
}

// UploadFile is one part of a multipart upload forwarded to the backend.
type UploadFile struct {
	Field    string
	Filename string
	Reader   io.Reader
}

func (r *Caller) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return r.client.baseURL + path
}

// do performs a single best-effort request. No retry, no application-level
// timeout; the transport defaults apply.
func (r *Caller) do(method, path string, configure func(*resty.Request)) (*resty.Response, error) {
	req := r.client.http.R()
	if len(r.cookies) > 0 {
		req.SetCookies(r.cookies)
	}
	if configure != nil {
		configure(req)
	}

	resp, err := req.Execute(method, r.resolve(path))
	if err != nil {
		return nil, &Error{Detail: GenericErrorMessage}
	}

	if r.relay != nil {
		r.relayMu.Lock()
		for _, cookie := range resp.Cookies() {
			r.relay(cookie)
		}
		r.relayMu.Unlock()
	}

	if resp.StatusCode() >= 400 {
		detail := GenericErrorMessage
		var errBody struct {
			Detail string `json:"detail"`
		}
		if jsonErr := json.Unmarshal(resp.Body(), &errBody); jsonErr == nil && errBody.Detail != "" {
			detail = errBody.Detail
		}
		return nil, &Error{Status: resp.StatusCode(), Detail: detail}
	}

	return resp, nil
}

// decode parses a successful response into out. A 204 (or any empty body)
// resolves to the zero value rather than a parse attempt.
func decode(resp *resty.Response, out any) error {
	if out == nil || resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{Detail: GenericErrorMessage}
	}
	return nil
}

func (r *Caller) Get(path string, out any) error {
	resp, err := r.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (r *Caller) Post(path string, body, out any) error {
	resp, err := r.do(http.MethodPost, path, func(req *resty.Request) {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (r *Caller) Put(path string, body, out any) error {
	resp, err := r.do(http.MethodPut, path, func(req *resty.Request) {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (r *Caller) Delete(path string, out any) error {
	resp, err := r.do(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// PostForm sends url-encoded form data. The backend's token endpoint expects
// this encoding rather than JSON.
func (r *Caller) PostForm(path string, form map[string]string, out any) error {
	resp, err := r.do(http.MethodPost, path, func(req *resty.Request) {
		req.SetFormData(form)
	})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// PostMultipart forwards files as multipart form data. The multipart content
// type (with its boundary) is set by the transport, never forced to JSON.
func (r *Caller) PostMultipart(path string, fields map[string]string, files []UploadFile, out any) error {
	resp, err := r.do(http.MethodPost, path, func(req *resty.Request) {
		if len(fields) > 0 {
			req.SetFormData(fields)
		}
		for _, file := range files {
			req.SetFileReader(file.Field, file.Filename, file.Reader)
		}
	})
	if err != nil {
		return err
	}
	return decode(resp, out)
}
