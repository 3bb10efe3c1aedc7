package stability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// httpClient handles HTTP communication with the Stability gateway.
type httpClient struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	userAgent string
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client:    cfg.httpClient,
		baseURL:   baseURLForHost(cfg.host),
		apiKey:    cfg.apiKey,
		userAgent: cfg.userAgent,
	}
}

// baseURLForHost turns a gateway host into a request base URL. Hosts with an
// explicit scheme pass through untouched; the conventional ":443" suffix is
// folded into the https scheme.
func baseURLForHost(host string) string {
	if strings.Contains(host, "://") {
		return strings.TrimSuffix(host, "/")
	}
	if h, ok := strings.CutSuffix(host, ":443"); ok {
		return "https://" + h
	}
	return "https://" + host
}

// request makes a single HTTP request to the API and decodes the JSON
// response into result. There is no retry: every call is exactly one attempt.
func (h *httpClient) request(ctx context.Context, method, path string, body any, result any) error {
	var bodyData []byte
	if body != nil {
		var err error
		bodyData, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}

	return h.doRequest(ctx, method, path, bodyData, result)
}

// doRequest performs a single HTTP request.
func (h *httpClient) doRequest(ctx context.Context, method, path string, bodyData []byte, result any) error {
	url := h.baseURL + path

	var bodyReader io.Reader
	if bodyData != nil {
		bodyReader = bytes.NewReader(bodyData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	h.setHeaders(req)
	if bodyData != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	return h.handleResponse(resp, result)
}

// requestStream makes an answer-streaming HTTP request to the API and
// returns the raw response. The caller owns the response body.
func (h *httpClient) requestStream(ctx context.Context, method, path string, body any) (*http.Response, error) {
	url := h.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	h.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/x-ndjson")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	// Check for error response (non-streaming)
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, h.handleErrorResponse(resp)
	}

	return resp, nil
}

// setHeaders sets common headers for API requests.
func (h *httpClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("User-Agent", h.userAgent)
}

// handleResponse handles the API response.
func (h *httpClient) handleResponse(resp *http.Response, result any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return h.parseError(body, resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}

// handleErrorResponse handles an error response.
func (h *httpClient) handleErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error response: %w", err)
	}
	return h.parseError(body, resp.StatusCode)
}

// parseError parses an error response body.
func (h *httpClient) parseError(body []byte, httpStatus int) error {
	var envelope struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return &Error{
			ID:         envelope.ID,
			Name:       envelope.Name,
			Message:    envelope.Message,
			HTTPStatus: httpStatus,
		}
	}

	return &Error{
		Message:    strings.TrimSpace(string(body)),
		HTTPStatus: httpStatus,
	}
}

// answerReader decodes a stream of JSON answers from a response body. The
// gateway emits one object per line, but any concatenation of JSON values
// works: the reader simply decodes until EOF.
type answerReader struct {
	dec  *json.Decoder
	resp *http.Response
}

// newAnswerReader creates a new answer reader.
func newAnswerReader(resp *http.Response) *answerReader {
	return &answerReader{
		dec:  json.NewDecoder(resp.Body),
		resp: resp,
	}
}

// next reads the next answer.
// Returns (answer, isDone, error).
func (r *answerReader) next() (*Answer, bool, error) {
	var answer Answer
	if err := r.dec.Decode(&answer); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("decode answer: %w", err)
	}
	return &answer, false, nil
}

// close closes the answer reader.
func (r *answerReader) close() {
	r.resp.Body.Close()
}
