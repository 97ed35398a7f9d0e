package theme

import (
	"strings"

	"github.com/jmylchreest/tinctheme/internal/aspect"
)

// ThemeFromUpdateString applies a terse update such as
// "theme: dark deepen: 2 bg: red" to baseline.
//
// Tokens are whitespace separated. A command is "name:" followed by a
// parameter token, or "name:param" as one token. "theme:" returns that
// registered theme outright. Other commands go to the aspect that handles
// them. Unrecognised tokens are skipped one at a time, and commands with no
// parameter are skipped. When nothing applies the baseline is returned
// unchanged; otherwise a new theme is built from baseline plus the delta.
func (r *Registry) ThemeFromUpdateString(s string, baseline *Theme) *Theme {
	if baseline == nil {
		baseline = r.GetDefaultTheme()
	}

	handlers := make(map[string]aspect.Aspect)
	for _, a := range r.aspects.All() {
		if uh, ok := a.(aspect.UpdateHandler); ok {
			for _, cmd := range uh.Commands() {
				handlers[cmd] = a
			}
		}
	}

	full := baseline.Default().full
	delta := make(map[string]any)
	applied := false

	tokens := strings.Fields(s)
	for i := 0; i < len(tokens); {
		name, param, ok := strings.Cut(tokens[i], ":")
		i++
		cmd := strings.ToLower(name)
		a, known := handlers[cmd]
		if !ok || (cmd != "theme" && !known) {
			r.logger.Debug("skipping unrecognised update token", "token", tokens[i-1])
			continue
		}

		if param == "" && i < len(tokens) && !strings.Contains(tokens[i], ":") {
			param = tokens[i]
			i++
		}
		if param == "" {
			r.logger.Debug("skipping update command with no parameter", "command", cmd)
			continue
		}

		if cmd == "theme" {
			if r.HasTheme(param) {
				return r.GetTheme(param)
			}
			r.logger.Debug("unknown theme in update string", "theme", param)
			continue
		}

		current := a.Merge(full[a.Name()], delta[a.Name()])
		update, ok := a.(aspect.UpdateHandler).ApplyUpdate(cmd, param, current)
		if !ok {
			r.logger.Debug("update command rejected", "command", cmd, "param", param)
			continue
		}
		delta[a.Name()] = a.Merge(delta[a.Name()], update)
		applied = true
	}

	if !applied {
		return baseline
	}
	return r.CreateTheme(ThemeDefinition{Default: Definition{Aspects: delta}}, baseline)
}
