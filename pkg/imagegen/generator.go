package imagegen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/bitfold/sdxlgen/pkg/imgutil"
	"github.com/bitfold/sdxlgen/pkg/jsontime"
	"github.com/bitfold/sdxlgen/pkg/stability"
)

// Outcome classifies how a generation ended.
type Outcome string

// Outcomes.
const (
	// OutcomeSaved means an image artifact was produced and written to disk.
	OutcomeSaved Outcome = "saved"

	// OutcomeFiltered means the safety system rejected the request. No
	// file was written.
	OutcomeFiltered Outcome = "filtered"

	// OutcomeEmpty means the stream finished without an image artifact.
	OutcomeEmpty Outcome = "empty"
)

// Result reports a finished generation. Filtered and empty generations are
// results, not errors: the provider answered, it just handed back no image.
type Result struct {
	// Outcome classifies the run.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Filename is the written file, relative to the generator's output
	// directory. Set only when Outcome is OutcomeSaved.
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`

	// Prompt echoes the positive prompt.
	Prompt string `json:"prompt" yaml:"prompt"`

	// NegativePrompt echoes the negative prompt.
	NegativePrompt string `json:"negative_prompt,omitempty" yaml:"negative_prompt,omitempty"`

	// AspectRatioKey echoes the resolved aspect ratio key.
	AspectRatioKey string `json:"aspect_ratio_key" yaml:"aspect_ratio_key"`

	// Width is the requested image width in pixels.
	Width uint32 `json:"width" yaml:"width"`

	// Height is the requested image height in pixels.
	Height uint32 `json:"height" yaml:"height"`

	// Seed is the provider-reported seed of the saved artifact.
	Seed uint32 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Reason explains a filtered outcome.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Diagnostic describes an empty outcome.
	Diagnostic string `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`

	// Elapsed is the wall-clock time the generation took.
	Elapsed jsontime.Duration `json:"elapsed" yaml:"elapsed"`
}

// Generator turns requests into provider calls and saved PNG files.
type Generator struct {
	client   *stability.Client
	dir      string
	filename func() string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithDir sets the directory output files are written to. Default is the
// working directory.
func WithDir(dir string) GeneratorOption {
	return func(g *Generator) {
		g.dir = dir
	}
}

// WithFilenameFunc overrides how unique output filenames are chosen.
func WithFilenameFunc(fn func() string) GeneratorOption {
	return func(g *Generator) {
		g.filename = fn
	}
}

// New creates a Generator on top of a constructed provider client.
func New(client *stability.Client, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client:   client,
		dir:      ".",
		filename: uniqueFilename,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// uniqueFilename names output files so concurrent generations never collide.
func uniqueFilename() string {
	return "generated_image_" + uuid.New().String() + ".png"
}

// Generate runs one text-to-image generation end to end: validate the
// request, call the provider, interpret the artifact stream and, when an
// image came back, persist it as a PNG.
//
// The unknown-ratio check happens before any network traffic. The provider
// call itself is a single attempt with no client-side deadline; see the
// stability package. Errors are always *Error with a Kind.
func (g *Generator) Generate(ctx context.Context, req *Request) (*Result, error) {
	key := req.AspectRatioKey
	if key == "" {
		key = DefaultRatioKey
	}
	ratio, ok := LookupRatio(key)
	if !ok {
		return nil, &Error{
			Kind:      KindInvalidAspectRatio,
			Message:   fmt.Sprintf("invalid aspect ratio key %q", key),
			ValidKeys: RatioKeys(),
		}
	}

	start := time.Now()
	res, err := resolveAnswers(g.client.Generation.Generate(ctx, buildGeneration(req, ratio)))
	if err != nil {
		return nil, wrapError(KindProviderCallFailed, "provider call failed", err)
	}

	result := &Result{
		Outcome:        res.outcome,
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		AspectRatioKey: key,
		Width:          ratio.Width,
		Height:         ratio.Height,
		Reason:         res.reason,
		Diagnostic:     res.diagnostic,
		Elapsed:        jsontime.Duration(time.Since(start)),
	}

	if res.outcome != OutcomeSaved {
		return result, nil
	}

	img, _, err := imgutil.Decode(res.binary)
	if err != nil {
		return nil, wrapError(KindImageDecodeFailed, "artifact payload is not a decodable image", err)
	}

	name := req.OutputFile
	if name == "" {
		name = g.filename()
	}
	if err := imgutil.SavePNG(filepath.Join(g.dir, name), img); err != nil {
		return nil, wrapError(KindFileWriteFailed, "write image file", err)
	}

	result.Filename = name
	result.Seed = res.seed
	return result, nil
}
