// Package stability provides a Go client for the Stability AI generation
// gateway.
//
// The client speaks JSON to the gateway at grpc.stability.ai:443. A
// text-to-image request produces a stream of answers, each carrying zero or
// more artifacts; an artifact is the generated image itself, a safety
// classification, or other metadata, distinguished by its type and finish
// reason.
//
// # Basic Usage
//
//	client, err := stability.NewClient(os.Getenv("STABILITY_KEY"))
//	if err != nil {
//	    return err
//	}
//
//	req := &stability.GenerationRequest{
//	    TextPrompts: []stability.TextPrompt{
//	        {Text: "a lighthouse at dusk, oil painting", Weight: 1},
//	        {Text: "blurry, watermark", Weight: -1},
//	    },
//	    Width:    1344,
//	    Height:   768,
//	    Steps:    50,
//	    CfgScale: 7.0,
//	    Samples:  1,
//	    Sampler:  stability.SamplerKDPMPP2M,
//	}
//
// # Streaming
//
// Generate returns an iter.Seq2 iterator usable with Go 1.23+ range:
//
//	for answer, err := range client.Generation.Generate(ctx, req) {
//	    if err != nil {
//	        return err
//	    }
//	    for _, artifact := range answer.Artifacts {
//	        if artifact.FinishReason == stability.FinishFilter {
//	            // the safety system rejected the request
//	        }
//	        if artifact.Type == stability.ArtifactImage {
//	            // artifact.Binary holds the encoded image
//	        }
//	    }
//	}
//
// Requests are never retried and carry no client-side deadline: a render
// takes as long as the provider takes. Callers that need to bail out early
// cancel the context.
//
// # Error Handling
//
//	if e, ok := stability.AsError(err); ok {
//	    if e.IsInvalidAPIKey() {
//	        // credential problem, not a transient failure
//	    }
//	}
//
// # Configuration
//
//	client, err := stability.NewClient(key,
//	    stability.WithHost("grpc.stability.ai:443"),
//	    stability.WithEngine("stable-diffusion-xl-1024-v1-0"),
//	)
package stability
