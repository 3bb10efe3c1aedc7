package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitfold/sdxlgen/pkg/imagegen"
)

func (h *Handle) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the AI Image Generator API!",
	})
}

func (h *Handle) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"provider_ready": h.Ready(),
	})
}

func (h *Handle) generateImage(c *gin.Context) {
	params := bindGenerateParams(c)

	if strings.TrimSpace(params.Prompt) == "" {
		c.JSON(http.StatusBadRequest, errorBody{
			Error:   "missing_prompt",
			Message: "Prompt is required.",
		})
		return
	}

	if !h.Ready() {
		c.JSON(http.StatusServiceUnavailable, errorBody{
			Error:   "client_not_initialized",
			Message: "Image generation is unavailable.",
			Details: "STABILITY_KEY was not set at startup",
		})
		return
	}

	key := params.AspectRatioKey
	if key == "" {
		key = imagegen.DefaultRatioKey
	}
	if _, ok := imagegen.LookupRatio(key); !ok {
		c.JSON(http.StatusBadRequest, errorBody{
			Error:         "invalid_aspect_ratio",
			Message:       "Unknown aspect ratio key: " + key,
			AvailableKeys: imagegen.RatioKeys(),
		})
		return
	}

	// The provider call ignores the request context: a caller that
	// disconnects must not cancel an in-flight generation.
	result, err := h.gen.Generate(context.Background(), &imagegen.Request{
		Prompt:         params.Prompt,
		NegativePrompt: params.NegativePrompt,
		AspectRatioKey: key,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, errorBody{
			Error:   "provider_call_failed",
			Message: "Failed to generate image.",
			Details: err.Error(),
		})
		return
	}

	switch result.Outcome {
	case imagegen.OutcomeFiltered:
		c.JSON(http.StatusUnprocessableEntity, errorBody{
			Error:   "safety_filter_triggered",
			Message: "Safety filter activated. Please modify prompt.",
			Details: result.Reason,
		})
	case imagegen.OutcomeEmpty:
		c.JSON(http.StatusBadGateway, errorBody{
			Error:   "no_artifact_produced",
			Message: "No image generated.",
			Details: result.Diagnostic,
		})
	default:
		c.JSON(http.StatusOK, generateImageResponse{
			Message:        "Image generated successfully!",
			Filename:       result.Filename,
			Prompt:         result.Prompt,
			NegativePrompt: result.NegativePrompt,
			AspectRatio:    result.AspectRatioKey,
		})
	}
}

// bindGenerateParams reads parameters from the query string first, then
// fills anything still missing from the JSON body.
func bindGenerateParams(c *gin.Context) generateImageParams {
	var params generateImageParams
	_ = c.ShouldBindQuery(&params)

	if c.Request.Body != nil && c.ContentType() == "application/json" {
		var body generateImageParams
		if err := c.ShouldBindJSON(&body); err == nil {
			if params.Prompt == "" {
				params.Prompt = body.Prompt
			}
			if params.NegativePrompt == "" {
				params.NegativePrompt = body.NegativePrompt
			}
			if params.AspectRatioKey == "" {
				params.AspectRatioKey = body.AspectRatioKey
			}
		}
	}

	return params
}
