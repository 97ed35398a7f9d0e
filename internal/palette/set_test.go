package palette

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/tinctheme/internal/colour"
)

func TestBuildSet(t *testing.T) {
	seeds := map[string]Seed{
		RoleForeground: {Color: "black"},
		RoleBackground: {Color: "#f3f2f1"},
		RoleAccent:     {Color: "#0078d4", Options: &Options{Count: 5, InvertThreshold: 50}},
		"brand":        {Colors: []string{"#111", "#222", "nope"}},
	}

	set := BuildSet(seeds, DefaultOptions())

	if diff := cmp.Diff([]string{"accent", "bg", "brand", "fg"}, set.Roles()); diff != "" {
		t.Errorf("Roles() mismatch (-want +got):\n%s", diff)
	}
	if len(set[RoleBackground]) != 9 {
		t.Errorf("bg palette len = %d, want 9", len(set[RoleBackground]))
	}
	if len(set[RoleAccent]) != 5 {
		t.Errorf("accent palette len = %d, want 5 (per-seed options)", len(set[RoleAccent]))
	}
	if got := set["brand"].Hex(); !cmp.Equal(got, []string{"#111111", "#222222", "#ffffff"}) {
		t.Errorf("explicit palette = %v", got)
	}
	if !set[RoleBackground][0].Equal(colour.MustParse("#f3f2f1")) {
		t.Errorf("anchored bg palette should start with the seed, got %s", set[RoleBackground][0])
	}
}

func TestSetLookup(t *testing.T) {
	set := Set{"bg": FromColors([]string{"#000", "#111", "#222"})}

	tests := []struct {
		name    string
		palette string
		shade   int
		want    string
		ok      bool
	}{
		{name: "in range", palette: "bg", shade: 1, want: "#111111", ok: true},
		{name: "wraps forward", palette: "bg", shade: 4, want: "#111111", ok: true},
		{name: "wraps backward", palette: "bg", shade: -1, want: "#222222", ok: true},
		{name: "missing palette", palette: "nope", shade: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := set.Lookup(tt.palette, tt.shade)
			if ok != tt.ok {
				t.Fatalf("Lookup() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.String() != tt.want {
				t.Errorf("Lookup() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMergeSeed(t *testing.T) {
	base := Seed{Color: "#fff", Options: &Options{Count: 7}}

	got := MergeSeed(base, Seed{Colors: []string{"#000"}})
	if got.Color != "" || len(got.Colors) != 1 || got.Options.Count != 7 {
		t.Errorf("explicit colours should replace the seed colour and keep options, got %+v", got)
	}

	got = MergeSeed(got, Seed{Color: "red"})
	if got.Color != "red" || got.Colors != nil {
		t.Errorf("seed colour should replace explicit colours, got %+v", got)
	}

	got = MergeSeed(base, Seed{Options: &Options{Count: 11}})
	if got.Color != "#fff" || got.Options.Count != 11 {
		t.Errorf("options override failed, got %+v", got)
	}
	if base.Options.Count != 7 {
		t.Error("MergeSeed mutated its base")
	}
}

func TestSetWith(t *testing.T) {
	base := Set{"bg": FromColors([]string{"#000"})}
	next := base.With(Set{"fg": FromColors([]string{"#fff"})})
	if !next.Has("fg") || !next.Has("bg") {
		t.Errorf("With() = %v", next.Roles())
	}
	if base.Has("fg") {
		t.Error("With() mutated the receiver")
	}
}
