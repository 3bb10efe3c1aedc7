package imagegen

import (
	"github.com/bitfold/sdxlgen/pkg/stability"
)

// Fixed generation parameters. The public surface exposes prompt, negative
// prompt and aspect ratio; everything else is pinned here.
const (
	genSteps    = 50
	genCfgScale = 7.0
	genSamples  = 1
	genSampler  = stability.SamplerKDPMPP2M
)

// Request describes one image generation.
type Request struct {
	// Prompt is the positive prompt text.
	Prompt string `json:"prompt" yaml:"prompt"`

	// NegativePrompt describes what to keep out of the image. Empty means
	// no negative guidance is sent at all.
	NegativePrompt string `json:"negative_prompt,omitempty" yaml:"negative_prompt,omitempty"`

	// AspectRatioKey names an entry in the aspect ratio table. Empty
	// selects DefaultRatioKey.
	AspectRatioKey string `json:"aspect_ratio_key,omitempty" yaml:"aspect_ratio_key,omitempty"`

	// OutputFile overrides the output filename. Empty lets the generator
	// pick a unique one.
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
}

// buildGeneration translates a request into the provider call. The positive
// prompt always comes first with weight +1; a non-empty negative prompt is
// appended with weight -1.
func buildGeneration(req *Request, ratio AspectRatio) *stability.GenerationRequest {
	prompts := []stability.TextPrompt{{Text: req.Prompt, Weight: 1.0}}
	if req.NegativePrompt != "" {
		prompts = append(prompts, stability.TextPrompt{Text: req.NegativePrompt, Weight: -1.0})
	}

	return &stability.GenerationRequest{
		TextPrompts: prompts,
		Width:       ratio.Width,
		Height:      ratio.Height,
		Steps:       genSteps,
		CfgScale:    genCfgScale,
		Samples:     genSamples,
		Sampler:     genSampler,
	}
}
