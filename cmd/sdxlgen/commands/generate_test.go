package commands

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitfold/sdxlgen/pkg/stability"
)

// fakeProvider serves a canned answer for every generation request.
func fakeProvider(t *testing.T, answer *stability.Answer) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(answer)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func imageAnswer(t *testing.T) *stability.Answer {
	t.Helper()
	return &stability.Answer{
		AnswerID: "answer-1",
		Artifacts: []stability.Artifact{{
			Type:   stability.ArtifactImage,
			Mime:   "image/png",
			Seed:   11,
			Binary: testPNG(t),
		}},
	}
}

func TestGenerate_DefaultsReproduceCastleRender(t *testing.T) {
	setupTestEnv(t)
	srv := fakeProvider(t, imageAnswer(t))
	t.Setenv("STABILITY_KEY", "sk-test-key")
	t.Setenv("STABILITY_HOST", srv.URL)
	t.Chdir(t.TempDir())

	stdout, stderr, code := runCmd(t, "generate")
	if code != 0 {
		t.Fatalf("generate exit %d, stderr: %s", code, stderr)
	}
	if _, err := os.Stat("castle_widescreen.png"); err != nil {
		t.Fatalf("default output file not written: %v", err)
	}
	if !strings.Contains(stdout, "castle_widescreen.png") {
		t.Errorf("stdout does not report the file:\n%s", stdout)
	}
	if !strings.Contains(stdout, "outcome: saved") {
		t.Errorf("stdout missing the result summary:\n%s", stdout)
	}
}

func TestGenerate_FlagsOverrideDefaults(t *testing.T) {
	setupTestEnv(t)
	srv := fakeProvider(t, imageAnswer(t))
	t.Setenv("STABILITY_KEY", "sk-test-key")
	t.Setenv("STABILITY_HOST", srv.URL)
	t.Chdir(t.TempDir())

	_, stderr, code := runCmd(t, "generate",
		"--prompt", "a lighthouse at dawn",
		"--ratio", "2:3_portrait",
		"--output-file", "lighthouse.png",
	)
	if code != 0 {
		t.Fatalf("generate exit %d, stderr: %s", code, stderr)
	}
	if _, err := os.Stat("lighthouse.png"); err != nil {
		t.Fatalf("output file not written: %v", err)
	}
}

func TestGenerate_RequestFileWithFlagOverride(t *testing.T) {
	setupTestEnv(t)
	srv := fakeProvider(t, imageAnswer(t))
	t.Setenv("STABILITY_KEY", "sk-test-key")
	t.Setenv("STABILITY_HOST", srv.URL)
	t.Chdir(t.TempDir())

	reqFile := filepath.Join(t.TempDir(), "request.yaml")
	content := "prompt: from the file\naspect_ratio_key: 3:2_landscape\noutput_file: from_file.png\n"
	if err := os.WriteFile(reqFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, stderr, code := runCmd(t, "generate", "-f", reqFile, "--output-file", "override.png")
	if code != 0 {
		t.Fatalf("generate exit %d, stderr: %s", code, stderr)
	}
	if _, err := os.Stat("override.png"); err != nil {
		t.Fatalf("flag override ignored: %v", err)
	}
	if _, err := os.Stat("from_file.png"); !os.IsNotExist(err) {
		t.Error("file name from the request file should have been overridden")
	}
}

func TestGenerate_FilteredExitsNonZero(t *testing.T) {
	setupTestEnv(t)
	srv := fakeProvider(t, &stability.Answer{
		Artifacts: []stability.Artifact{{
			Type:         stability.ArtifactNone,
			FinishReason: stability.FinishFilter,
		}},
	})
	t.Setenv("STABILITY_KEY", "sk-test-key")
	t.Setenv("STABILITY_HOST", srv.URL)
	t.Chdir(t.TempDir())

	_, stderr, code := runCmd(t, "generate")
	if code == 0 {
		t.Fatal("expected non-zero exit for a filtered generation")
	}
	if !strings.Contains(stderr, "safety filter") {
		t.Errorf("stderr = %q", stderr)
	}
	if _, err := os.Stat("castle_widescreen.png"); !os.IsNotExist(err) {
		t.Error("filtered generation must not write a file")
	}
}

func TestGenerate_InvalidRatio(t *testing.T) {
	setupTestEnv(t)
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)
	t.Setenv("STABILITY_KEY", "sk-test-key")
	t.Setenv("STABILITY_HOST", srv.URL)
	t.Chdir(t.TempDir())

	_, stderr, code := runCmd(t, "generate", "--ratio", "4:3_tv")
	if code == 0 {
		t.Fatal("expected non-zero exit for an unknown ratio key")
	}
	if !strings.Contains(stderr, "4:3_tv") {
		t.Errorf("stderr = %q", stderr)
	}
	if called {
		t.Error("provider called despite an invalid ratio key")
	}
}

func TestGenerate_MissingCredential(t *testing.T) {
	setupTestEnv(t)
	t.Chdir(t.TempDir())

	_, stderr, code := runCmd(t, "generate")
	if code == 0 {
		t.Fatal("expected non-zero exit without a credential")
	}
	if !strings.Contains(stderr, "STABILITY_KEY") {
		t.Errorf("error must name the missing variable, stderr: %q", stderr)
	}
}
