package theme

import (
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tinctheme/internal/aspect"
)

// Builder provides a fluent interface for constructing a Registry.
type Builder struct {
	logger  hclog.Logger
	aspects *aspect.Registry
	config  aspect.Config
	useEnv  bool
}

// NewBuilder creates a new Registry builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		config: aspect.DefaultConfig(),
	}
}

// WithLogger sets the logger used during resolution.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithAspects sets the aspect registry. The built-in aspects are used when
// none is given.
func (b *Builder) WithAspects(reg *aspect.Registry) *Builder {
	b.aspects = reg
	return b
}

// WithConfig sets the aspect configuration.
func (b *Builder) WithConfig(config aspect.Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig loads configuration from environment variables.
// Reads TINCTHEME_MIN_CONTRAST, TINCTHEME_PALETTE_COUNT and, when no logger
// was given, TINCTHEME_LOG_LEVEL.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// Build constructs the Registry. It holds no themes until Init or
// RegisterTheme is called.
func (b *Builder) Build() *Registry {
	config := b.config
	logger := b.logger

	if b.useEnv {
		if v := os.Getenv("TINCTHEME_MIN_CONTRAST"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 1 {
				config.MinContrast = f
			}
		}
		if v := os.Getenv("TINCTHEME_PALETTE_COUNT"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				config.Palette.Count = n
			}
		}
		if v := os.Getenv("TINCTHEME_LOG_LEVEL"); v != "" && logger == nil {
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "tinctheme",
				Output: os.Stderr,
				Level:  hclog.LevelFromString(v),
			})
		}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	aspects := b.aspects
	if aspects == nil {
		aspects = aspect.NewBuiltinRegistry()
	}

	return &Registry{
		aspects: aspects,
		config:  config,
		logger:  logger,
		defs:    make(map[string]ThemeDefinition),
		themes:  make(map[string]*Theme),
	}
}

// Registry stores theme definitions and caches resolved themes.
//
// Registration is expected to happen before concurrent reads begin.
type Registry struct {
	aspects *aspect.Registry
	config  aspect.Config
	logger  hclog.Logger

	mu     sync.RWMutex
	defs   map[string]ThemeDefinition
	themes map[string]*Theme
}

// NewRegistry returns a registry holding the built-in themes.
func NewRegistry() *Registry {
	r := NewBuilder().Build()
	r.Init()
	return r
}

// Init clears the registry and registers the built-in themes.
func (r *Registry) Init() {
	r.Reset()
	for _, name := range slices.Sorted(maps.Keys(builtinThemes)) {
		r.RegisterTheme(name, builtinThemes[name]())
	}
}

// Reset removes every theme definition and cached theme.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = make(map[string]ThemeDefinition)
	r.themes = make(map[string]*Theme)
}

// Aspects returns the aspect registry themes resolve with.
func (r *Registry) Aspects() *aspect.Registry {
	return r.aspects
}

// Config returns the aspect configuration.
func (r *Registry) Config() aspect.Config {
	return r.config
}

// RegisterTheme stores or overwrites a theme definition. The cached theme
// and every theme descending from it are invalidated.
func (r *Registry) RegisterTheme(name string, def ThemeDefinition) {
	if name == "" {
		r.logger.Warn("ignoring theme with no name")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs[name] = def

	// Breadth-first over parent pointers.
	queue := []string{name}
	seen := map[string]bool{name: true}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, ok := r.themes[current]; ok {
			r.logger.Debug("invalidating theme", "theme", current, "changed", name)
			delete(r.themes, current)
		}
		for child, d := range r.defs {
			if !seen[child] && strings.EqualFold(d.Parent, current) {
				seen[child] = true
				queue = append(queue, child)
			}
		}
	}
}

// Definition returns the registered definition of a theme.
func (r *Registry) Definition(name string) (ThemeDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.lookupName(name)
	if !ok {
		return ThemeDefinition{}, false
	}
	return r.defs[key], true
}

// ThemeNames returns the registered theme names in sorted order.
func (r *Registry) ThemeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.defs))
}

// HasTheme reports whether a theme is registered, ignoring case.
func (r *Registry) HasTheme(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.lookupName(name)
	return ok
}

// GetTheme returns the named theme, resolving it on first access. Names
// match case-insensitively when there is no exact match; unknown names
// return the default theme.
func (r *Registry) GetTheme(name string) *Theme {
	return r.getTheme(name, make(map[string]bool))
}

// GetDefaultTheme returns the theme named "default".
func (r *Registry) GetDefaultTheme() *Theme {
	return r.GetTheme(DefaultTheme)
}

// GetStyle returns the properties of a style in a registered theme.
func (r *Registry) GetStyle(themeName, styleName string) map[string]any {
	return GetStyle(r.GetTheme(themeName), styleName)
}

func (r *Registry) getTheme(name string, resolving map[string]bool) *Theme {
	r.mu.RLock()
	key, ok := r.lookupName(name)
	def, cached := r.defs[key], r.themes[key]
	parentKey, hasParent := "", false
	if ok && def.Parent != "" {
		parentKey, hasParent = r.lookupName(def.Parent)
	}
	r.mu.RUnlock()

	if !ok {
		if !strings.EqualFold(name, DefaultTheme) {
			r.logger.Debug("unknown theme, using default", "theme", name)
			return r.getTheme(DefaultTheme, resolving)
		}
		r.logger.Warn("no default theme registered, using an empty theme")
		return newTheme(DefaultTheme, ThemeDefinition{}, r.aspects, r.config, r.logger)
	}
	if cached != nil {
		return cached
	}

	resolving[key] = true
	effective := def
	switch {
	case def.Parent == "":
	case !hasParent:
		r.logger.Debug("unknown parent theme, resolving as a root theme", "theme", key, "parent", def.Parent)
	case resolving[parentKey]:
		r.logger.Warn("theme parent cycle, resolving as a root theme", "theme", key, "parent", parentKey)
	default:
		parent := r.getTheme(parentKey, resolving)
		effective = mergeThemeDefinition(r.aspects, parent.def, def)
	}

	t := newTheme(key, effective, r.aspects, r.config, r.logger.Named(key))

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.themes[key]; ok {
		return existing
	}
	r.themes[key] = t
	return t
}

// CreateTheme builds an unregistered theme from def on top of parent. With
// a nil parent, def.Parent names a registered parent theme, if any.
func (r *Registry) CreateTheme(def ThemeDefinition, parent *Theme) *Theme {
	if parent == nil && def.Parent != "" {
		parent = r.GetTheme(def.Parent)
	}

	effective := def
	if parent != nil {
		effective = mergeThemeDefinition(r.aspects, parent.def, def)
		effective.Parent = parent.Name()
	}
	return newTheme("", effective, r.aspects, r.config, r.logger)
}

// lookupName finds a registered name, preferring an exact match. The caller
// must hold r.mu.
func (r *Registry) lookupName(name string) (string, bool) {
	if _, ok := r.defs[name]; ok {
		return name, true
	}
	for _, key := range slices.Sorted(maps.Keys(r.defs)) {
		if strings.EqualFold(key, name) {
			return key, true
		}
	}
	return "", false
}
