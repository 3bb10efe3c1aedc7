package stability

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient returns a client pointed at a local fake gateway.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("sk-test-key", WithHost(srv.URL))
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return client
}

func collectAnswers(t *testing.T, client *Client, req *GenerationRequest) []*Answer {
	t.Helper()
	var answers []*Answer
	for answer, err := range client.Generation.Generate(context.Background(), req) {
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		answers = append(answers, answer)
	}
	return answers
}

func TestGenerate_SendsRequest(t *testing.T) {
	var (
		gotPath    string
		gotAuth    string
		gotAccept  string
		gotAgent   string
		gotRequest GenerationRequest
	)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprintln(w, `{"artifacts":[]}`)
	}))

	req := &GenerationRequest{
		TextPrompts: []TextPrompt{
			{Text: "a lighthouse at dusk", Weight: 1},
			{Text: "blurry", Weight: -1},
		},
		Width:    1344,
		Height:   768,
		Steps:    50,
		CfgScale: 7.0,
		Samples:  1,
		Sampler:  SamplerKDPMPP2M,
	}
	collectAnswers(t, client, req)

	if want := "/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
	if gotAuth != "Bearer sk-test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/x-ndjson" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotAgent != "sdxlgen-stability-go/1.0" {
		t.Errorf("User-Agent = %q", gotAgent)
	}

	if len(gotRequest.TextPrompts) != 2 {
		t.Fatalf("text_prompts count = %d, want 2", len(gotRequest.TextPrompts))
	}
	if gotRequest.TextPrompts[0].Weight != 1 || gotRequest.TextPrompts[1].Weight != -1 {
		t.Errorf("weights = %v, %v; want 1, -1",
			gotRequest.TextPrompts[0].Weight, gotRequest.TextPrompts[1].Weight)
	}
	if gotRequest.Sampler != SamplerKDPMPP2M {
		t.Errorf("sampler = %q", gotRequest.Sampler)
	}
}

func TestGenerate_UsesConfiguredEngine(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprintln(w, `{"artifacts":[]}`)
	}))
	defer srv.Close()

	client, err := NewClient("sk-test-key", WithHost(srv.URL), WithEngine("esrgan-v1-x2plus"))
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	collectAnswers(t, client, &GenerationRequest{})

	if want := "/v1/generation/esrgan-v1-x2plus/text-to-image"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
}

func TestGenerate_StreamsAnswers(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"answer_id":"a-1","artifacts":[{"id":1,"type":"ARTIFACT_CLASSIFICATIONS","finish_reason":"NULL"}]}`)
		fmt.Fprintf(w, `{"answer_id":"a-2","artifacts":[{"id":2,"type":"ARTIFACT_IMAGE","mime":"image/png","finish_reason":"NULL","seed":42,"binary":%q}]}`,
			base64.StdEncoding.EncodeToString(payload))
		fmt.Fprintln(w)
	}))

	answers := collectAnswers(t, client, &GenerationRequest{})

	if len(answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(answers))
	}
	if answers[0].AnswerID != "a-1" || answers[1].AnswerID != "a-2" {
		t.Errorf("answer ids = %q, %q", answers[0].AnswerID, answers[1].AnswerID)
	}

	art := answers[1].Artifacts[0]
	if art.Type != ArtifactImage {
		t.Errorf("type = %q, want %q", art.Type, ArtifactImage)
	}
	if art.Seed != 42 {
		t.Errorf("seed = %d, want 42", art.Seed)
	}
	if string(art.Binary) != string(payload) {
		t.Errorf("binary = %v, want %v", []byte(art.Binary), payload)
	}
}

func TestGenerate_SingleObjectBody(t *testing.T) {
	// A degenerate stream: one JSON object, no trailing newline.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"answer_id":"only","artifacts":[{"type":"ARTIFACT_IMAGE","binary":"aGk="}]}`)
	}))

	answers := collectAnswers(t, client, &GenerationRequest{})
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if string(answers[0].Artifacts[0].Binary) != "hi" {
		t.Errorf("binary = %q, want %q", answers[0].Artifacts[0].Binary, "hi")
	}
}

func TestGenerate_APIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"id":"e-1","name":"unauthorized","message":"invalid api key"}`)
	}))

	var got error
	for _, err := range client.Generation.Generate(context.Background(), &GenerationRequest{}) {
		got = err
	}

	if got == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := AsError(got)
	if !ok {
		t.Fatalf("error is %T, want *Error", got)
	}
	if !apiErr.IsInvalidAPIKey() {
		t.Errorf("IsInvalidAPIKey() = false for %v", apiErr)
	}
	if apiErr.HTTPStatus != http.StatusUnauthorized {
		t.Errorf("HTTPStatus = %d", apiErr.HTTPStatus)
	}
}

func TestGenerate_MalformedStream(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"answer_id":"a-1","artifacts":[]}`)
		fmt.Fprintln(w, `this is not json`)
	}))

	var answers int
	var got error
	for answer, err := range client.Generation.Generate(context.Background(), &GenerationRequest{}) {
		if err != nil {
			got = err
			break
		}
		_ = answer
		answers++
	}

	if answers != 1 {
		t.Errorf("answers before failure = %d, want 1", answers)
	}
	if got == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestGenerate_StopsWhenYieldReturnsFalse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 100; i++ {
			fmt.Fprintf(w, `{"answer_id":"a-%d","artifacts":[]}`+"\n", i)
		}
	}))

	var seen int
	for _, err := range client.Generation.Generate(context.Background(), &GenerationRequest{}) {
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		seen++
		if seen == 2 {
			break
		}
	}

	if seen != 2 {
		t.Errorf("seen = %d, want 2", seen)
	}
}
