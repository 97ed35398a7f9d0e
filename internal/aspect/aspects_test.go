package aspect

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/tinctheme/internal/colourref"
	"github.com/jmylchreest/tinctheme/internal/palette"
)

var testSeeds = Seeds{
	palette.RoleForeground: {Color: "black"},
	palette.RoleBackground: {Color: "#f3f2f1"},
	palette.RoleAccent:     {Color: "#0078d4"},
}

// resolveAll runs every builtin aspect the way the theme engine does.
func resolveAll(t *testing.T, own map[string]any, parent Results, partial bool) Results {
	t.Helper()
	reg := NewBuiltinRegistry()
	out := Results{}
	for _, a := range reg.All() {
		full := a.Merge(a.Default(), own[a.Name()])
		ctx := &Context{
			Name:      a.Name(),
			IsPartial: partial,
			Parent:    parent,
			Resolved:  out,
			Config:    DefaultConfig(),
		}
		if v, ok := a.Resolve(ctx, own[a.Name()], full); ok {
			out[a.Name()] = v
		}
	}
	return out
}

func TestColorSetRelativeBackground(t *testing.T) {
	set := palette.BuildSet(testSeeds, palette.DefaultOptions())

	root := resolveAll(t, map[string]any{SeedColorsName: testSeeds}, nil, false)
	rootColors := root[ColorSetName].(ResolvedColors)
	if rootColors.Background != (colourref.Key{Palette: "bg", Shade: 0}) {
		t.Errorf("root background = %s, want bg:0", rootColors.Background)
	}
	if !rootColors.Colors[SlotBackground].Equal(set["bg"][0]) {
		t.Errorf("root background colour = %s, want %s", rootColors.Colors[SlotBackground], set["bg"][0])
	}

	ctx := &Context{Parent: root, Resolved: Results{}, Config: DefaultConfig()}
	own := Slots{SlotBackground: colourref.Relative(2)}
	full := ColorSet{}.Merge(ColorSet{}.Default(), own)

	got, ok := ColorSet{}.Resolve(ctx, own, full)
	if !ok {
		t.Fatal("Resolve() ok = false")
	}
	child := got.(ResolvedColors)
	if child.Background != (colourref.Key{Palette: "bg", Shade: 2}) {
		t.Errorf("child background = %s, want bg:2", child.Background)
	}
	if !child.Colors[SlotBackground].Equal(set["bg"][2]) {
		t.Errorf("child background colour = %s, want %s", child.Colors[SlotBackground], set["bg"][2])
	}

	// A grandchild without its own background inherits bg:2 rather than
	// applying the offset again.
	gctx := &Context{Parent: Results{ColorSetName: child, PalettesName: root[PalettesName]}, Resolved: Results{}, Config: DefaultConfig()}
	border := Slots{SlotBorder: colourref.Relative(1)}
	got, _ = ColorSet{}.Resolve(gctx, border, ColorSet{}.Merge(full, border))
	grandchild := got.(ResolvedColors)
	if grandchild.Background != child.Background {
		t.Errorf("grandchild background = %s, want inherited %s", grandchild.Background, child.Background)
	}
	if !grandchild.Colors[SlotBorder].Equal(set["bg"][3]) {
		t.Errorf("grandchild border = %s, want bg shade 3", grandchild.Colors[SlotBorder])
	}
}

func TestColorSetLiteralBackground(t *testing.T) {
	root := resolveAll(t, map[string]any{
		SeedColorsName: testSeeds,
		ColorSetName:   Slots{SlotBackground: colourref.Literal("#101010")},
	}, nil, false)

	rc := root[ColorSetName].(ResolvedColors)
	if rc.Keyed {
		t.Error("literal background should not be keyed")
	}
	if got := rc.Colors[SlotBackground].String(); got != "#101010" {
		t.Errorf("background = %s, want #101010", got)
	}
	if !rc.Colors[SlotColor].IsLight() {
		t.Errorf("text on a dark literal background = %s, want a light colour", rc.Colors[SlotColor])
	}
}

func TestColorSetPartialReturnsDiff(t *testing.T) {
	root := resolveAll(t, map[string]any{
		SeedColorsName: testSeeds,
		ColorSetName:   Slots{SlotBorder: colourref.Relative(3)},
	}, nil, false)

	hover := resolveAll(t, map[string]any{
		ColorSetName: Slots{SlotBackground: colourref.Relative(1)},
	}, root, true)

	if _, ok := hover[SeedColorsName]; ok {
		t.Error("unchanged seeds should not appear in a state")
	}
	if _, ok := hover[PalettesName]; ok {
		t.Error("unchanged palettes should not appear in a state")
	}
	rc, ok := hover[ColorSetName].(ResolvedColors)
	if !ok {
		t.Fatal("hover colorSet missing")
	}
	if _, ok := rc.Colors[SlotBackground]; !ok {
		t.Error("hover should change the background")
	}
	if rc.Background != (colourref.Key{Palette: "bg", Shade: 1}) {
		t.Errorf("hover background = %s, want bg:1", rc.Background)
	}

	// Re-stating the base background yields no diff.
	same := resolveAll(t, map[string]any{
		ColorSetName: Slots{SlotBackground: colourref.Shade("bg", 0)},
	}, root, true)
	if _, ok := same[ColorSetName]; ok {
		t.Errorf("identical state produced %v", same[ColorSetName])
	}
}

func TestSeedChangeInState(t *testing.T) {
	root := resolveAll(t, map[string]any{SeedColorsName: testSeeds}, nil, false)

	state := resolveAll(t, map[string]any{
		SeedColorsName: Seeds{palette.RoleBackground: {Color: "#202020"}},
	}, root, true)

	if _, ok := state[PalettesName]; !ok {
		t.Fatal("changed seeds should rebuild palettes")
	}
	rc, ok := state[ColorSetName].(ResolvedColors)
	if !ok {
		t.Fatal("changed palettes should re-resolve colours")
	}
	if got := rc.Colors[SlotBackground].String(); got != "#202020" {
		t.Errorf("state background = %s, want #202020", got)
	}
}

func TestPalettesReuseParentSet(t *testing.T) {
	root := resolveAll(t, map[string]any{SeedColorsName: testSeeds}, nil, false)

	ctx := &Context{
		Parent:   root,
		Resolved: Results{SeedColorsName: root[SeedColorsName]},
		Config:   DefaultConfig(),
	}
	got, _ := Palettes{}.Resolve(ctx, nil, nil)

	parentSet := root[PalettesName].(palette.Set)
	gotSet := got.(palette.Set)
	if &parentSet[palette.RoleBackground][0] != &gotSet[palette.RoleBackground][0] {
		t.Error("unchanged seeds should reuse the parent's palette set")
	}
}

func TestSeedMerge(t *testing.T) {
	base := SeedColors{}.Default()
	got := SeedColors{}.Merge(base, Seeds{"success": {Color: "green"}}).(Seeds)

	if len(got) != 4 || got["success"].Color != "green" {
		t.Errorf("Merge() = %v", got)
	}
	if len(base.(Seeds)) != 3 {
		t.Error("Merge() mutated base")
	}
}

func TestSeedUpdate(t *testing.T) {
	got, ok := SeedColors{}.ApplyUpdate("bg", "red", nil)
	if !ok {
		t.Fatal("ApplyUpdate(bg, red) ok = false")
	}
	if diff := cmp.Diff(Seeds{"bg": {Color: "#ff0000"}}, got); diff != "" {
		t.Errorf("ApplyUpdate() mismatch (-want +got):\n%s", diff)
	}

	if _, ok := (SeedColors{}).ApplyUpdate("bg", "nonsense", nil); ok {
		t.Error("unparseable colour should be ignored")
	}
}

func TestColorSetUpdate(t *testing.T) {
	current := Slots{SlotBackground: colourref.Shade("bg", 1)}

	tests := []struct {
		name    string
		current Slots
		cmd     string
		param   string
		want    string
		ok      bool
	}{
		{name: "deepen", current: current, cmd: "deepen", param: "2", want: "bg:3", ok: true},
		{name: "deepen negative", current: current, cmd: "deepen", param: "-1", want: "bg:0", ok: true},
		{name: "shade", current: current, cmd: "shade", param: "5", want: "bg:5", ok: true},
		{name: "type", current: current, cmd: "type", param: "accent", want: "accent:1", ok: true},
		{name: "type switch", current: current, cmd: "type", param: "switch", want: "accent:1", ok: true},
		{name: "type unswitches", current: Slots{SlotBackground: colourref.SwitchRelative(1)}, cmd: "type", param: "switch", want: ":+1", ok: true},
		{name: "no background yet", current: nil, cmd: "deepen", param: "2", want: "bg:2", ok: true},
		{name: "bad number", current: current, cmd: "deepen", param: "x", ok: false},
		{name: "literal cannot deepen", current: Slots{SlotBackground: colourref.Literal("red")}, cmd: "deepen", param: "1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ColorSet{}.ApplyUpdate(tt.cmd, tt.param, tt.current)
			if ok != tt.ok {
				t.Fatalf("ApplyUpdate() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ref := got.(Slots)[SlotBackground]; ref.String() != tt.want {
				t.Errorf("ApplyUpdate() background = %s, want %s", ref, tt.want)
			}
		})
	}
}

func TestTypography(t *testing.T) {
	typo := Typography{}
	full := typo.Merge(typo.Default(), TypographyDefinition{Size: "large", Weight: "650"})
	ctx := &Context{Config: DefaultConfig()}

	got, ok := typo.Resolve(ctx, nil, full)
	if !ok {
		t.Fatal("Resolve() ok = false")
	}
	rt := got.(ResolvedTypography)
	if rt.Size != 18 || rt.Weight != 650 || rt.Family != "sans-serif" {
		t.Errorf("Resolve() = %+v", rt)
	}

	want := map[string]any{"fontFamily": "sans-serif", "fontSize": 18.0, "fontWeight": 650}
	if diff := cmp.Diff(want, typo.Properties(rt)); diff != "" {
		t.Errorf("Properties() mismatch (-want +got):\n%s", diff)
	}

	if v, ok := typo.Value(rt, "fontSize", "small"); !ok || v != 12.0 {
		t.Errorf("Value(fontSize, small) = %v, %v", v, ok)
	}
	if v, ok := typo.Value(rt, "fontWeight", ""); !ok || v != 650 {
		t.Errorf("Value(fontWeight) = %v, %v", v, ok)
	}
	if _, ok := typo.Value(rt, "fontSize", "huge"); ok {
		t.Error("unknown variant should not resolve")
	}

	// State override returns only the changed weight.
	sctx := &Context{IsPartial: true, Parent: Results{TypographyName: rt}, Config: DefaultConfig()}
	over := TypographyDefinition{Weight: "bold"}
	got, ok = typo.Resolve(sctx, over, typo.Merge(full, over))
	if !ok {
		t.Fatal("partial Resolve() ok = false")
	}
	if diff := cmp.Diff(map[string]any{"fontWeight": 700}, typo.Properties(got)); diff != "" {
		t.Errorf("partial Properties() mismatch (-want +got):\n%s", diff)
	}
}

func TestValues(t *testing.T) {
	v := Values{}
	resolved := map[string]any{
		"borderWidth":   1,
		"padding":       8,
		"padding-small": 4,
		"margin":        map[string]any{"default": 10, "large": 20},
	}

	tests := []struct {
		key, modifier string
		want          any
		ok            bool
	}{
		{key: "padding", want: 8, ok: true},
		{key: "padding", modifier: "small", want: 4, ok: true},
		{key: "padding", modifier: "huge", want: 8, ok: true},
		{key: "margin", want: 10, ok: true},
		{key: "margin", modifier: "large", want: 20, ok: true},
		{key: "missing", ok: false},
	}
	for _, tt := range tests {
		got, ok := v.Value(resolved, tt.key, tt.modifier)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Value(%q, %q) = %v, %v, want %v, %v", tt.key, tt.modifier, got, ok, tt.want, tt.ok)
		}
	}

	props := v.Properties(resolved)
	if props["margin"] != 10 || props["padding-small"] != 4 {
		t.Errorf("Properties() = %v", props)
	}
}
