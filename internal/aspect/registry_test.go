package aspect

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubAspect struct {
	name string
	deps []string
}

func (s stubAspect) Name() string                             { return s.name }
func (s stubAspect) DependsOn() []string                      { return s.deps }
func (s stubAspect) Default() any                             { return nil }
func (s stubAspect) Merge(base, over any) any                 { return over }
func (s stubAspect) Resolve(_ *Context, _, _ any) (any, bool) { return s.name, true }

func TestRegistrySpliceOrder(t *testing.T) {
	tests := []struct {
		name     string
		register []stubAspect
		want     []string
	}{
		{
			name: "registration order without dependencies",
			register: []stubAspect{
				{name: "a"}, {name: "b"}, {name: "c"},
			},
			want: []string{"a", "b", "c"},
		},
		{
			name: "dependency spliced before dependent",
			register: []stubAspect{
				{name: "colors", deps: []string{"palettes"}},
				{name: "typography"},
				{name: "palettes", deps: []string{"seeds"}},
				{name: "seeds"},
			},
			want: []string{"seeds", "palettes", "colors", "typography"},
		},
		{
			name: "spliced before the first dependent",
			register: []stubAspect{
				{name: "x"},
				{name: "b", deps: []string{"shared"}},
				{name: "a", deps: []string{"shared"}},
				{name: "shared"},
			},
			want: []string{"x", "shared", "b", "a"},
		},
		{
			name: "re-registering replaces in place",
			register: []stubAspect{
				{name: "a"}, {name: "b"}, {name: "a", deps: []string{"z"}},
			},
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			for _, a := range tt.register {
				if err := r.Register(a); err != nil {
					t.Fatalf("Register(%s) error = %v", a.name, err)
				}
			}
			if diff := cmp.Diff(tt.want, r.Names()); diff != "" {
				t.Errorf("Names() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegisterUnnamed(t *testing.T) {
	r := NewRegistry()

	err := r.Register(stubAspect{})
	if !errors.Is(err, ErrUnnamedAspect) {
		t.Errorf("Register() error = %v, want %v", err, ErrUnnamedAspect)
	}
	if err := r.Register(nil); !errors.Is(err, ErrUnnamedAspect) {
		t.Errorf("Register(nil) error = %v, want %v", err, ErrUnnamedAspect)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() did not panic for an unnamed aspect")
		}
	}()
	r.MustRegister(stubAspect{})
}

func TestRegistryGetAndReset(t *testing.T) {
	r := NewBuiltinRegistry()

	want := []string{SeedColorsName, PalettesName, ColorSetName, TypographyName, ValuesName}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("builtin order mismatch (-want +got):\n%s", diff)
	}

	if _, ok := r.Get(ColorSetName); !ok {
		t.Error("Get(colorSet) not found")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should not be found")
	}

	all := r.All()
	all[0] = stubAspect{name: "mutated"}
	if r.Names()[0] != SeedColorsName {
		t.Error("All() exposed the registry's backing slice")
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", r.Len())
	}
}

func TestMergeMaps(t *testing.T) {
	base := map[string]any{
		"padding": map[string]any{"default": 8, "small": 4},
		"radius":  2,
		"list":    []any{1, 2},
	}
	over := map[string]any{
		"padding": map[string]any{"small": 2},
		"list":    []any{3},
		"width":   1,
	}

	got := MergeMaps(base, over)
	want := map[string]any{
		"padding": map[string]any{"default": 8, "small": 2},
		"radius":  2,
		"list":    []any{3},
		"width":   1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeMaps() mismatch (-want +got):\n%s", diff)
	}
	if base["padding"].(map[string]any)["small"] != 4 {
		t.Error("MergeMaps() mutated base")
	}
}
