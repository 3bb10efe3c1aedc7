package stability

import (
	"github.com/bitfold/sdxlgen/pkg/encoding"
	"github.com/bitfold/sdxlgen/pkg/jsontime"
)

// ================== Generation Types ==================

// TextPrompt is one weighted component of a generation prompt.
type TextPrompt struct {
	// Text is the prompt text.
	Text string `json:"text" yaml:"text"`

	// Weight is the prompt weight. Positive values pull the image toward
	// the text, negative values push it away.
	Weight float64 `json:"weight" yaml:"weight"`
}

// Sampler selects the diffusion sampler used during generation.
type Sampler string

// Supported samplers.
const (
	SamplerDDIM              Sampler = "DDIM"
	SamplerDDPM              Sampler = "DDPM"
	SamplerKEuler            Sampler = "K_EULER"
	SamplerKEulerAncestral   Sampler = "K_EULER_ANCESTRAL"
	SamplerKHeun             Sampler = "K_HEUN"
	SamplerKDPM2             Sampler = "K_DPM_2"
	SamplerKDPM2Ancestral    Sampler = "K_DPM_2_ANCESTRAL"
	SamplerKLMS              Sampler = "K_LMS"
	SamplerKDPMPP2M          Sampler = "K_DPMPP_2M"
	SamplerKDPMPP2SAncestral Sampler = "K_DPMPP_2S_ANCESTRAL"
	SamplerKDPMPPSDE         Sampler = "K_DPMPP_SDE"
)

// GenerationRequest is a text-to-image generation request.
type GenerationRequest struct {
	// TextPrompts are the weighted prompt components. At least one is
	// required; components are evaluated in order.
	TextPrompts []TextPrompt `json:"text_prompts" yaml:"text_prompts"`

	// Width is the image width in pixels. Must be one of the dimensions
	// the engine accepts; SDXL engines want multiples of 64.
	Width uint32 `json:"width,omitempty" yaml:"width,omitempty"`

	// Height is the image height in pixels.
	Height uint32 `json:"height,omitempty" yaml:"height,omitempty"`

	// CfgScale controls how strictly diffusion follows the prompt. Higher
	// values keep the image closer to the text.
	CfgScale float64 `json:"cfg_scale,omitempty" yaml:"cfg_scale,omitempty"`

	// Samples is the number of images to generate.
	Samples uint32 `json:"samples,omitempty" yaml:"samples,omitempty"`

	// Steps is the number of diffusion steps to run.
	Steps uint32 `json:"steps,omitempty" yaml:"steps,omitempty"`

	// Sampler selects the diffusion sampler.
	Sampler Sampler `json:"sampler,omitempty" yaml:"sampler,omitempty"`

	// Seed fixes the noise seed. Zero lets the provider pick one.
	Seed uint32 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// StylePreset optionally guides the model toward a named style.
	StylePreset string `json:"style_preset,omitempty" yaml:"style_preset,omitempty"`
}

// ================== Artifact Types ==================

// ArtifactType classifies an artifact payload.
type ArtifactType string

// Artifact types.
const (
	ArtifactNone            ArtifactType = "ARTIFACT_NONE"
	ArtifactImage           ArtifactType = "ARTIFACT_IMAGE"
	ArtifactVideo           ArtifactType = "ARTIFACT_VIDEO"
	ArtifactText            ArtifactType = "ARTIFACT_TEXT"
	ArtifactTokens          ArtifactType = "ARTIFACT_TOKENS"
	ArtifactEmbedding       ArtifactType = "ARTIFACT_EMBEDDING"
	ArtifactClassifications ArtifactType = "ARTIFACT_CLASSIFICATIONS"
	ArtifactMask            ArtifactType = "ARTIFACT_MASK"
	ArtifactLatent          ArtifactType = "ARTIFACT_LATENT"
	ArtifactDepth           ArtifactType = "ARTIFACT_DEPTH"
)

// FinishReason reports why the generator stopped producing an artifact.
type FinishReason string

// Finish reasons.
const (
	FinishNull   FinishReason = "NULL"
	FinishLength FinishReason = "LENGTH"
	FinishStop   FinishReason = "STOP"
	FinishError  FinishReason = "ERROR"

	// FinishFilter means the safety system blocked or replaced the
	// artifact content.
	FinishFilter FinishReason = "FILTER"
)

// Artifact is one generated payload within an answer.
type Artifact struct {
	// ID identifies the artifact within its answer.
	ID uint64 `json:"id,omitempty" yaml:"id,omitempty"`

	// Type classifies the payload.
	Type ArtifactType `json:"type" yaml:"type"`

	// Mime is the payload MIME type, e.g. "image/png".
	Mime string `json:"mime,omitempty" yaml:"mime,omitempty"`

	// FinishReason reports why generation of this artifact stopped.
	FinishReason FinishReason `json:"finish_reason,omitempty" yaml:"finish_reason,omitempty"`

	// Seed is the noise seed that produced the artifact.
	Seed uint32 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Binary is the artifact payload, base64-encoded in JSON.
	Binary encoding.StdBase64Data `json:"binary,omitempty" yaml:"binary,omitempty"`
}

// Answer is one chunk of generation results. A request may produce any
// number of answers, each carrying zero or more artifacts.
type Answer struct {
	// AnswerID identifies the answer within the request.
	AnswerID string `json:"answer_id,omitempty" yaml:"answer_id,omitempty"`

	// Created is when the gateway produced this answer.
	Created jsontime.Unix `json:"created,omitempty" yaml:"created,omitempty"`

	// Artifacts are the payloads in this answer, in generation order.
	Artifacts []Artifact `json:"artifacts,omitempty" yaml:"artifacts,omitempty"`
}

// ================== Engine Types ==================

// EngineType classifies what an engine produces.
type EngineType string

// Engine types.
const (
	EngineTypeText    EngineType = "TEXT"
	EngineTypePicture EngineType = "PICTURE"
	EngineTypeAudio   EngineType = "AUDIO"
	EngineTypeVideo   EngineType = "VIDEO"
)

// Engine describes one generation engine offered by the provider.
type Engine struct {
	// ID is the engine identifier used in request paths.
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable engine name.
	Name string `json:"name" yaml:"name"`

	// Description describes the engine.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Type classifies what the engine produces.
	Type EngineType `json:"type,omitempty" yaml:"type,omitempty"`
}

// ================== Account Types ==================

// Balance is the remaining credit on the account.
type Balance struct {
	// Credits is the remaining credit balance.
	Credits float64 `json:"credits" yaml:"credits"`
}
