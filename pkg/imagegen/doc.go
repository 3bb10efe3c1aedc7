// Package imagegen glues callers to the Stability text-to-image provider.
//
// It owns everything between "a prompt came in" and "a PNG is on disk": the
// aspect ratio table, the fully-parameterized provider request, the
// interpretation of the artifact stream and the file write. The two
// frontends in cmd/ stay thin by delegating here.
//
//	client, err := stability.NewClient(os.Getenv("STABILITY_KEY"))
//	if err != nil {
//	    return err
//	}
//	gen := imagegen.New(client, imagegen.WithDir("/tmp/out"))
//
//	result, err := gen.Generate(ctx, &imagegen.Request{
//	    Prompt:         "a fantasy castle on a floating island",
//	    NegativePrompt: "blurry, watermark",
//	    AspectRatioKey: "16:9_widescreen",
//	})
//
// A generation ends in exactly one of three outcomes: saved (an image was
// written), filtered (the safety system said no) or empty (the provider
// produced nothing usable). Filtered and empty come back as a Result so
// callers can answer with something structured; only credential, validation,
// transport, decode and write problems are errors, each classified by an
// ErrorKind.
package imagegen
