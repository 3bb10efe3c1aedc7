package imagegen

import (
	"sort"

	"github.com/samber/lo"
)

// AspectRatio is a named output shape with its pixel dimensions.
type AspectRatio struct {
	// Width is the image width in pixels.
	Width uint32 `json:"width" yaml:"width"`

	// Height is the image height in pixels.
	Height uint32 `json:"height" yaml:"height"`
}

// DefaultRatioKey is used when a request names no aspect ratio.
const DefaultRatioKey = "1:1_square"

// aspectRatios maps ratio keys to the dimension pairs the SDXL engines
// accept. Both sides are multiples of 64; free-form dimensions are not
// representable on purpose.
var aspectRatios = map[string]AspectRatio{
	"1:1_square":      {Width: 1024, Height: 1024},
	"16:9_widescreen": {Width: 1344, Height: 768},
	"9:16_tall":       {Width: 768, Height: 1344},
	"3:2_landscape":   {Width: 1216, Height: 832},
	"2:3_portrait":    {Width: 832, Height: 1216},
}

// LookupRatio resolves an aspect ratio key.
func LookupRatio(key string) (AspectRatio, bool) {
	ratio, ok := aspectRatios[key]
	return ratio, ok
}

// RatioKeys returns the accepted aspect ratio keys in sorted order.
func RatioKeys() []string {
	keys := lo.Keys(aspectRatios)
	sort.Strings(keys)
	return keys
}
