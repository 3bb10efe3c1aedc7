package stability

import (
	"context"
	"fmt"
	"iter"
)

// GenerationService provides text-to-image generation operations.
type GenerationService struct {
	client *Client
}

// newGenerationService creates a new generation service.
func newGenerationService(client *Client) *GenerationService {
	return &GenerationService{client: client}
}

// Generate runs a text-to-image generation and streams back the resulting
// answers. The request is a single attempt: the client never retries and
// sets no deadline of its own, so the iterator blocks for as long as the
// provider takes to render. Cancel through ctx if a caller needs a way out.
//
// The sequence yields each answer as it arrives. On failure it yields
// exactly one non-nil error and stops.
//
// Example:
//
//	req := &stability.GenerationRequest{
//	    TextPrompts: []stability.TextPrompt{{Text: "a lighthouse at dusk", Weight: 1}},
//	    Width:       1024,
//	    Height:      1024,
//	}
//	for answer, err := range client.Generation.Generate(ctx, req) {
//	    if err != nil {
//	        return err
//	    }
//	    for _, artifact := range answer.Artifacts {
//	        // inspect artifact.Type and artifact.FinishReason
//	    }
//	}
func (s *GenerationService) Generate(ctx context.Context, req *GenerationRequest) iter.Seq2[*Answer, error] {
	return func(yield func(*Answer, error) bool) {
		path := fmt.Sprintf("/v1/generation/%s/text-to-image", s.client.config.engine)

		resp, err := s.client.http.requestStream(ctx, "POST", path, req)
		if err != nil {
			yield(nil, err)
			return
		}

		reader := newAnswerReader(resp)
		defer reader.close()

		for {
			answer, done, err := reader.next()
			if err != nil {
				yield(nil, err)
				return
			}
			if done {
				return
			}

			if !yield(answer, nil) {
				return
			}
		}
	}
}
