package imagegen

import (
	"sort"
	"testing"
)

// sdxlDimensions is the resolution set the SDXL 1024 engines accept.
var sdxlDimensions = map[[2]uint32]bool{
	{1024, 1024}: true,
	{1152, 896}:  true,
	{896, 1152}:  true,
	{1216, 832}:  true,
	{832, 1216}:  true,
	{1344, 768}:  true,
	{768, 1344}:  true,
	{1536, 640}:  true,
	{640, 1536}:  true,
}

func TestRatioTable_AllDimensionsAllowed(t *testing.T) {
	for _, key := range RatioKeys() {
		ratio, ok := LookupRatio(key)
		if !ok {
			t.Fatalf("LookupRatio(%q) = false for a listed key", key)
		}
		if ratio.Width%64 != 0 || ratio.Height%64 != 0 {
			t.Errorf("%s: %dx%d not multiples of 64", key, ratio.Width, ratio.Height)
		}
		if !sdxlDimensions[[2]uint32{ratio.Width, ratio.Height}] {
			t.Errorf("%s: %dx%d not an SDXL resolution", key, ratio.Width, ratio.Height)
		}
	}
}

func TestLookupRatio(t *testing.T) {
	tests := []struct {
		key    string
		width  uint32
		height uint32
	}{
		{"1:1_square", 1024, 1024},
		{"16:9_widescreen", 1344, 768},
		{"9:16_tall", 768, 1344},
		{"3:2_landscape", 1216, 832},
		{"2:3_portrait", 832, 1216},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			ratio, ok := LookupRatio(tt.key)
			if !ok {
				t.Fatalf("LookupRatio(%q) = false", tt.key)
			}
			if ratio.Width != tt.width || ratio.Height != tt.height {
				t.Errorf("LookupRatio(%q) = %dx%d, want %dx%d",
					tt.key, ratio.Width, ratio.Height, tt.width, tt.height)
			}
		})
	}
}

func TestLookupRatio_Unknown(t *testing.T) {
	for _, key := range []string{"", "4:3", "square", "1:1_SQUARE"} {
		if _, ok := LookupRatio(key); ok {
			t.Errorf("LookupRatio(%q) = true, want false", key)
		}
	}
}

func TestRatioKeys_Sorted(t *testing.T) {
	keys := RatioKeys()
	if len(keys) != 5 {
		t.Fatalf("len(RatioKeys()) = %d, want 5", len(keys))
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("RatioKeys() not sorted: %v", keys)
	}

	if _, ok := LookupRatio(DefaultRatioKey); !ok {
		t.Errorf("DefaultRatioKey %q missing from table", DefaultRatioKey)
	}
}
