package style

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var embeddedPresets embed.FS

// PresetRegistry holds named option bundles that a style's options scope
// can reference by tag instead of spelling out an explicit record (§3
// Preset, §4.1 "Presets are expanded at load time").
type PresetRegistry struct {
	presets map[string]Options
}

// NewPresetRegistry creates a registry pre-loaded with the engine's built-in
// presets (apa, vancouver, harvard).
func NewPresetRegistry() (*PresetRegistry, error) {
	r := &PresetRegistry{presets: make(map[string]Options)}
	entries, err := embeddedPresets.ReadDir("presets")
	if err != nil {
		return nil, fmt.Errorf("reading embedded presets: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := embeddedPresets.ReadFile("presets/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded preset %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		var o Options
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parsing embedded preset %s: %w", entry.Name(), err)
		}
		r.presets[name] = o
	}
	return r, nil
}

// Register adds or replaces a preset.
func (r *PresetRegistry) Register(name string, o Options) {
	r.presets[name] = o
}

// Expand resolves a preset tag to its canonical Options record. Unknown
// preset names fail loudly at load time (§4.1 Errors, §7 Unknown-option /
// -preset).
func (r *PresetRegistry) Expand(name string) (Options, error) {
	o, ok := r.presets[name]
	if !ok {
		return Options{}, fmt.Errorf("unknown preset %q", name)
	}
	return o, nil
}

// ExpandStyle walks every option scope in a style (global, citation context,
// bibliography context) and replaces any bare preset tag with its expanded
// canonical record, so render-time resolution operates only on explicit
// records (§4.1).
func (r *PresetRegistry) ExpandStyle(s *Style) error {
	expanded, err := r.expandScope(s.Options, "options")
	if err != nil {
		return err
	}
	s.Options = expanded

	if s.Citation != nil {
		expanded, err := r.expandScope(s.Citation.Options, "citation.options")
		if err != nil {
			return err
		}
		s.Citation.Options = expanded
	}
	if s.Bibliography != nil {
		expanded, err := r.expandScope(s.Bibliography.Options, "bibliography.options")
		if err != nil {
			return err
		}
		s.Bibliography.Options = expanded
	}
	return nil
}

func (r *PresetRegistry) expandScope(o Options, path string) (Options, error) {
	if o.PresetName() == "" {
		return o, nil
	}
	expanded, err := r.Expand(o.PresetName())
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return expanded, nil
}
