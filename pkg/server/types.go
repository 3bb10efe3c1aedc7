package server

// errorBody is the JSON envelope for every non-2xx response.
type errorBody struct {
	// Error is the machine-readable error category
	Error string `json:"error"`

	// Message is a short human-readable description
	Message string `json:"message"`

	// Details carries the raw diagnostic string, when one exists
	Details string `json:"details,omitempty"`

	// AvailableKeys lists the valid aspect ratio keys on
	// invalid_aspect_ratio errors
	AvailableKeys []string `json:"available_keys,omitempty"`
}

// generateImageParams carries the generation inputs. Values may arrive in
// the query string or the JSON body; the query string wins.
type generateImageParams struct {
	// Prompt is the positive text prompt (required)
	Prompt string `form:"prompt" json:"prompt"`

	// NegativePrompt steers generation away from its content (optional)
	NegativePrompt string `form:"negative_prompt" json:"negative_prompt"`

	// AspectRatioKey selects output dimensions (optional, default 1:1_square)
	AspectRatioKey string `form:"aspect_ratio_key" json:"aspect_ratio_key"`
}

// generateImageResponse is the success body for POST /generate-image/.
type generateImageResponse struct {
	Message        string `json:"message"`
	Filename       string `json:"filename"`
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt"`
	AspectRatio    string `json:"aspect_ratio"`
}
