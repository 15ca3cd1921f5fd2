package locale

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Store holds loaded locales and resolves a BCP-47 tag with fallback: exact
// tag, then its base language subtag, then the store's default locale (§2.1,
// §12 locale fallback chain).
type Store struct {
	locales    map[string]*Locale
	defaultTag string
}

// NewStore creates an empty store. defaultTag must be registered (directly
// or via LoadEmbedded) before Get is called with an unknown tag.
func NewStore(defaultTag string) *Store {
	return &Store{
		locales:    make(map[string]*Locale),
		defaultTag: defaultTag,
	}
}

// NewDefaultStore creates a store pre-loaded with the engine's built-in
// locales (currently en-US and en-GB), defaulting to en-US.
func NewDefaultStore() (*Store, error) {
	s := NewStore("en-US")
	if err := s.LoadEmbedded(); err != nil {
		return nil, err
	}
	return s, nil
}

// Register adds or replaces a locale in the store.
func (s *Store) Register(l *Locale) {
	s.locales[l.Tag] = l
}

// LoadEmbedded loads every locale YAML file baked into the binary.
func (s *Store) LoadEmbedded() error {
	entries, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("reading embedded locales: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := embeddedLocales.ReadFile("locales/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading embedded locale %s: %w", entry.Name(), err)
		}
		l, err := Parse(data)
		if err != nil {
			return fmt.Errorf("parsing embedded locale %s: %w", entry.Name(), err)
		}
		s.Register(l)
	}
	return nil
}

// Load reads a locale YAML file from disk and registers it.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading locale file: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return fmt.Errorf("parsing locale file: %w", err)
	}
	s.Register(l)
	return nil
}

// Parse decodes a locale from YAML bytes.
func Parse(data []byte) (*Locale, error) {
	var l Locale
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing locale YAML: %w", err)
	}
	return &l, nil
}

// Get resolves a BCP-47 tag to a Locale: exact tag, then base language
// (the part before the first "-"), then the store's default. Returns nil
// only if even the default locale is unregistered.
func (s *Store) Get(tag string) *Locale {
	if l, ok := s.locales[tag]; ok {
		return l
	}
	if base, _, found := strings.Cut(tag, "-"); found {
		if l, ok := s.locales[base]; ok {
			return l
		}
	}
	return s.locales[s.defaultTag]
}

// DefaultTag returns the store's fallback locale tag.
func (s *Store) DefaultTag() string {
	return s.defaultTag
}
