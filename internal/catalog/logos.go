package catalog

import "strings"

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'", "`", "'")

// LogoTable maps restaurant names to logo handles.
// It is built once and never modified.
type LogoTable struct {
	exact      map[string]string
	normalized map[string]string
	fallback   string
}

// NewLogoTable copies entries into a new table with fallback as the default logo
func NewLogoTable(entries map[string]string, fallback string) *LogoTable {
	t := &LogoTable{
		exact:      make(map[string]string, len(entries)),
		normalized: make(map[string]string, len(entries)),
		fallback:   fallback,
	}
	for name, ref := range entries {
		t.exact[name] = ref
		t.normalized[apostrophes.Replace(name)] = ref
	}
	return t
}

// Resolve looks up name exactly, then with apostrophes normalized, then falls back to the default
func (t *LogoTable) Resolve(name string) string {
	if t == nil {
		return ""
	}
	if ref, ok := t.exact[name]; ok {
		return ref
	}
	if ref, ok := t.normalized[apostrophes.Replace(name)]; ok {
		return ref
	}
	return t.fallback
}

// Default returns the fallback logo handle
func (t *LogoTable) Default() string {
	if t == nil {
		return ""
	}
	return t.fallback
}
