package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// knownTopLevelKeys are the style file's required/optional top-level keys
// (§6 Style file). Anything else is either rejected (strict) or captured
// into Style.Extra (permissive).
var knownTopLevelKeys = map[string]bool{
	"version": true, "info": true, "options": true,
	"citation": true, "bibliography": true,
}

// LoadOptions configures style loading.
type LoadOptions struct {
	// Strict rejects unknown top-level fields with a precise diagnostic
	// (§7 Strict-mode unknown field). When false, unknown fields are
	// captured in Style.Extra.
	Strict bool
	// Presets resolves preset tags referenced by any option scope. If nil,
	// a style using a bare preset tag fails to load.
	Presets *PresetRegistry
}

// Load reads and parses a style file from disk.
func Load(path string, opts LoadOptions) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style file: %w", err)
	}
	return Parse(data, opts)
}

// Parse decodes a style from YAML bytes, applying strict/permissive unknown
// field handling and preset expansion.
func Parse(data []byte, opts LoadOptions) (*Style, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing style YAML: %w", err)
	}

	extra := make(map[string]any)
	for key, node := range raw {
		if knownTopLevelKeys[key] {
			continue
		}
		if opts.Strict {
			return nil, fmt.Errorf("unknown field %q in style", key)
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding unknown field %q: %w", key, err)
		}
		extra[key] = v
	}

	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing style YAML: %w", err)
	}
	if len(extra) > 0 {
		s.Extra = extra
	}

	if s.Version == "" {
		return nil, fmt.Errorf("style missing required field \"version\"")
	}
	if s.Info.ID == "" {
		return nil, fmt.Errorf("style missing required field \"info.id\"")
	}

	if opts.Presets != nil {
		if err := opts.Presets.ExpandStyle(&s); err != nil {
			return nil, err
		}
	} else if s.Options.PresetName() != "" {
		return nil, fmt.Errorf("style options reference preset %q but no preset registry was supplied", s.Options.PresetName())
	}

	return &s, nil
}

// Encode serializes a style to its canonical YAML encoding, with any
// preset already expanded to an explicit record (used by the `convert`
// command's round-trip, §12).
func Encode(s *Style) ([]byte, error) {
	return yaml.Marshal(s)
}
