package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bitfold/sdxlgen/pkg/cli"
	"github.com/bitfold/sdxlgen/pkg/imagegen"
)

// Defaults reproduce the classic castle render.
const (
	defaultPrompt         = "A fantasy castle on a floating island, vibrant colors, digital art"
	defaultNegativePrompt = "blurry, ugly, deformed, watermark, signature, text"
	defaultRatioKey       = "16:9_widescreen"
	defaultOutputFile     = "castle_widescreen.png"
)

var (
	genPrompt         string
	genNegativePrompt string
	genRatioKey       string
	genImageFile      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an image from a text prompt",
	Long: `Generate an image from a text prompt and save it as a PNG file
in the current directory.

Without flags this reproduces the classic castle render.

Example request file (request.yaml):
  prompt: A fantasy castle on a floating island, vibrant colors, digital art
  negative_prompt: blurry, ugly, deformed, watermark, signature, text
  aspect_ratio_key: 16:9_widescreen
  output_file: castle_widescreen.png

Examples:
  sdxlgen generate
  sdxlgen generate --prompt "A lighthouse at dawn" --ratio 2:3_portrait --output-file lighthouse.png
  sdxlgen generate -f request.yaml --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fromFile := getInputFile() != ""

		var req imagegen.Request
		if fromFile {
			if err := loadRequest(getInputFile(), &req); err != nil {
				return err
			}
			// Explicitly set flags override the request file.
			if cmd.Flags().Changed("prompt") {
				req.Prompt = genPrompt
			}
			if cmd.Flags().Changed("negative-prompt") {
				req.NegativePrompt = genNegativePrompt
			}
			if cmd.Flags().Changed("ratio") {
				req.AspectRatioKey = genRatioKey
			}
			if cmd.Flags().Changed("output-file") {
				req.OutputFile = genImageFile
			}
		} else {
			req = imagegen.Request{
				Prompt:         genPrompt,
				NegativePrompt: genNegativePrompt,
				AspectRatioKey: genRatioKey,
				OutputFile:     genImageFile,
			}
		}

		cliCtx, err := resolveCredentials()
		if err != nil {
			return err
		}

		printVerbose("Using context: %s", cliCtx.Name)
		printVerbose("Prompt: %s", req.Prompt)
		printVerbose("Negative prompt: %s", req.NegativePrompt)

		client, err := createClient(cliCtx)
		if err != nil {
			return err
		}
		gen := imagegen.New(client)

		key := req.AspectRatioKey
		if key == "" {
			key = imagegen.DefaultRatioKey
		}
		printInfo("Generating image (%s)...", key)

		// One attempt, no deadline: the call takes as long as the
		// provider takes.
		result, err := gen.Generate(context.Background(), &req)
		if err != nil {
			return err
		}

		switch result.Outcome {
		case imagegen.OutcomeFiltered:
			printWarning("%s", result.Reason)
			return fmt.Errorf("generation blocked by the safety filter, no image saved")
		case imagegen.OutcomeEmpty:
			printWarning("No image in the provider response: %s", result.Diagnostic)
			return fmt.Errorf("provider returned no image")
		}

		elapsed := cli.FormatDuration(int(time.Duration(result.Elapsed).Milliseconds()))
		size := "size unknown"
		if info, err := os.Stat(result.Filename); err == nil {
			size = cli.FormatBytes(info.Size())
		}
		printSuccess("Saved %s (%s, %dx%d) in %s", result.Filename, size, result.Width, result.Height, elapsed)

		return outputResult(result, getOutputFile(), isJSONOutput())
	},
}

func init() {
	generateCmd.Flags().StringVar(&genPrompt, "prompt", defaultPrompt, "text prompt")
	generateCmd.Flags().StringVar(&genNegativePrompt, "negative-prompt", defaultNegativePrompt, "content to steer generation away from")
	generateCmd.Flags().StringVar(&genRatioKey, "ratio", defaultRatioKey, "aspect ratio key (see 'sdxlgen ratios')")
	generateCmd.Flags().StringVar(&genImageFile, "output-file", defaultOutputFile, "image filename")
}
