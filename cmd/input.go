package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/scholarly-tools/citeproc-go/citation"
	"github.com/scholarly-tools/citeproc-go/locale"
	"github.com/scholarly-tools/citeproc-go/reference"
	"github.com/scholarly-tools/citeproc-go/style"
)

// configDir resolves the user's citeproc-go config directory
// (~/.config/citeproc-go on Linux), mirroring how the teacher's profile
// package finds its user override directory, but via XDG base directories
// instead of a hardcoded dot-dir.
func configDir() (string, error) {
	return xdg.ConfigFile("citeproc-go")
}

// resolveStylePath expands a bare style name (no path separator, no
// extension) against the user config directory's styles/ subfolder before
// falling back to treating it as a literal path, the way the teacher's
// `profile.Load` resolves a bare profile name under `~/.crosswalk/profiles/`.
func resolveStylePath(name string) string {
	if name == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	dir, err := configDir()
	if err != nil {
		return name
	}
	candidate := filepath.Join(dir, "styles", name+".yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return name
}

func loadStyle(path string) (*style.Style, error) {
	if path == "" {
		return nil, newUsageError("--style is required")
	}
	presets, err := style.NewPresetRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading built-in presets: %w", err)
	}
	s, err := style.Load(resolveStylePath(path), style.LoadOptions{Presets: presets})
	if err != nil {
		return nil, fmt.Errorf("loading style %s: %w", path, err)
	}
	return s, nil
}

func loadLocale(tag, path string) (*locale.Locale, error) {
	store, err := locale.NewDefaultStore()
	if err != nil {
		return nil, fmt.Errorf("loading built-in locales: %w", err)
	}
	if path != "" {
		if err := store.Load(path); err != nil {
			return nil, fmt.Errorf("loading locale %s: %w", path, err)
		}
	}
	if tag == "" {
		tag = store.DefaultTag()
	}
	return store.Get(tag), nil
}

func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", path, err)
	}
	return f, path, nil
}

func loadReferences(path string, strict bool) ([]*reference.Reference, error) {
	if path == "" {
		return nil, newUsageError("--references is required")
	}
	f, name, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	refs, err := reference.Load(f, reference.LoadOptions{Strict: strict})
	if err != nil {
		return nil, fmt.Errorf("loading references from %s: %w", name, err)
	}
	return refs, nil
}

func loadCitations(path string) ([]citation.Cluster, error) {
	if path == "" {
		return nil, nil
	}
	f, name, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	clusters, err := citation.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading citations from %s: %w", name, err)
	}
	return clusters, nil
}
