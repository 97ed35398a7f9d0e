package palette

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jmylchreest/tinctheme/internal/colour"
)

func TestLightnessRamp(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		descending bool
		want       []float64
	}{
		{
			name: "nine ascending",
			n:    9,
			want: []float64{0, 15, 30, 40, 50, 62.5, 75, 87.5, 100},
		},
		{
			name:       "nine descending",
			n:          9,
			descending: true,
			want:       []float64{100, 87.5, 75, 62.5, 50, 40, 30, 15, 0},
		},
		{
			name: "control points only",
			n:    5,
			want: []float64{0, 30, 50, 75, 100},
		},
		{
			name: "uneven spacing rounds positions",
			n:    6,
			want: []float64{0, 30, 40, 50, 75, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lightnessRamp(tt.n, tt.descending)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("lightnessRamp(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestBuildLengthAndSeedPresence(t *testing.T) {
	seeds := []string{"#000000", "#ffffff", "#808080", "#0078d4", "#f3f2f1", "#201f1e", "#a4262c"}
	variants := []Options{
		{InvertThreshold: 50},
		{InvertThreshold: 50, AnchorSeed: true},
		{InvertThreshold: 50, TonalOnly: true},
		{InvertThreshold: 50, AnchorSeed: true, TonalOnly: true},
		{Direction: DirectionLightToDark},
		{Direction: DirectionDarkToLight, AnchorSeed: true},
	}

	for _, s := range seeds {
		seed := colour.MustParse(s)
		for _, opts := range variants {
			for count := MinCount; count <= 16; count++ {
				opts.Count = count
				p := Build(seed, opts)
				if len(p) != count {
					t.Fatalf("Build(%s, %+v) len = %d, want %d", s, opts, len(p), count)
				}
				matches := 0
				for _, c := range p {
					if c.Equal(seed) {
						matches++
					}
				}
				if matches != 1 {
					t.Errorf("Build(%s, %+v) contains seed %d times, want 1: %v", s, opts, matches, p.Hex())
				}
				if opts.AnchorSeed && !p[0].Equal(seed) {
					t.Errorf("Build(%s, %+v) anchored palette starts with %s", s, opts, p[0])
				}
			}
		}
	}
}

func TestBuildDirection(t *testing.T) {
	accent := colour.MustParse("#0078d4") // lightness ~41.6, dark for threshold 50
	light := colour.MustParse("#f3f2f1")

	p := Build(accent, Options{Count: 9, InvertThreshold: 50})
	if !p[0].Equal(colour.Black) || !p[8].Equal(colour.White) {
		t.Errorf("dark seed should run dark to light, got %v", p.Hex())
	}
	if p.Index(accent) != 3 {
		t.Errorf("seed index = %d, want 3 (lightness 40 slot)", p.Index(accent))
	}

	p = Build(light, Options{Count: 9, InvertThreshold: 50})
	if !p[0].Equal(light) || !p[8].Equal(colour.Black) {
		t.Errorf("light seed should run light to dark with the seed on the white slot, got %v", p.Hex())
	}

	p = Build(accent, Options{Count: 9, Direction: DirectionLightToDark})
	if !p[0].Equal(colour.White) {
		t.Errorf("forced light-to-dark should start white, got %s", p[0])
	}

	p = Build(accent, Options{Count: 9, InvertThreshold: 30})
	if !p[0].Equal(colour.White) {
		t.Errorf("seed above the invert threshold should start light, got %s", p[0])
	}
}

func TestBuildAnchorRotation(t *testing.T) {
	accent := colour.MustParse("#0078d4")
	plain := Build(accent, Options{Count: 9, InvertThreshold: 50})
	anchored := Build(accent, Options{Count: 9, InvertThreshold: 50, AnchorSeed: true})

	k := plain.Index(accent)
	for i := range plain {
		if !anchored[i].Equal(plain[(i+k)%len(plain)]) {
			t.Fatalf("anchored[%d] = %s, want %s", i, anchored[i], plain[(i+k)%len(plain)])
		}
	}
}

func TestBuildTonalOnly(t *testing.T) {
	accent := colour.MustParse("#0078d4")
	p := Build(accent, Options{Count: 9, InvertThreshold: 50, TonalOnly: true})

	for _, c := range p {
		if c.Equal(colour.White) || c.Equal(colour.Black) {
			t.Errorf("tonal palette contains an extreme: %v", p.Hex())
		}
	}

	// Lightness stays monotonic for a non-anchored tonal palette.
	for i := 1; i < len(p); i++ {
		if p[i].HSL().L < p[i-1].HSL().L-0.5 {
			t.Errorf("lightness decreases at shade %d: %v", i, p.Hex())
		}
	}
}

func TestBuildSmallCountRaised(t *testing.T) {
	p := Build(colour.MustParse("#0078d4"), Options{Count: 2})
	if len(p) != MinCount {
		t.Errorf("len = %d, want %d", len(p), MinCount)
	}
}

func TestBuildKeepsHue(t *testing.T) {
	seed := colour.MustParse("#0078d4")
	p := Build(seed, Options{Count: 9, InvertThreshold: 50})
	for i, c := range p {
		hsl := c.HSL()
		if hsl.S == 0 || hsl.L == 0 || hsl.L == 100 {
			continue
		}
		if colour.HueDistance(hsl.H, seed.HSL().H) > 3 {
			t.Errorf("shade %d hue %v drifted from seed hue %v", i, hsl.H, seed.HSL().H)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		shade, n, want int
	}{
		{0, 9, 0}, {8, 9, 8}, {9, 9, 0}, {11, 9, 2}, {-1, 9, 8}, {-10, 9, 8}, {3, 0, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.shade, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.shade, tt.n, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	if ParseDirection("dark") != DirectionDarkToLight {
		t.Error("dark should parse to dark-to-light")
	}
	if ParseDirection("light-to-dark") != DirectionLightToDark {
		t.Error("light-to-dark should parse")
	}
	if ParseDirection("bogus") != DirectionAuto {
		t.Error("unknown direction should be auto")
	}
	if DirectionAuto.String() != "auto" {
		t.Errorf("DirectionAuto.String() = %q, want %q", DirectionAuto.String(), "auto")
	}
}
