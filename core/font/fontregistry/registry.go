package fontregistry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/dmdfont/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding information about loaded fonts and the
// typecases derived from them.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet and
// returns the key it is stored under.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(f *font.ScalableFont) string {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return ""
	}
	fr.Lock()
	defer fr.Unlock()
	key := NormalizeFontname(f.Fontname)
	if _, ok := fr.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, key)
		fr.fonts[key] = f
	}
	return key
}

// TypeCase returns a typecase of a stored font at a given point size.
// If a suitable typecase has already been cached, TypeCase will return the cached
// typecase. Otherwise it will be derived from the font stored under `name`.
//
// If no font is stored under `name`, an error of code EMISSING is returned.
func (fr *Registry) TypeCase(name string, size float64) (*font.TypeCase, error) {
	key := NormalizeFontname(name)
	tname := appendSize(key, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		return t, nil
	}
	f, ok := fr.fonts[key]
	if !ok {
		tracer().Infof("registry does not contain font %s", name)
		return nil, core.Error(core.EMISSING, "font %s not found in registry", name)
	}
	t, err := f.PrepareCase(size)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("font registry has font %s, caches at %.2f", key, size)
	fr.typecases[tname] = t
	return t, nil
}

// Close closes all cached typecases and empties the typecase cache.
func (fr *Registry) Close() error {
	fr.Lock()
	defer fr.Unlock()
	var first error
	for k, t := range fr.typecases {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
		delete(fr.typecases, k)
	}
	return first
}

// LogFontList is a helper function to dump the list of known fonts and typecases
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	keys := make([]string, 0, len(fr.typecases))
	for k := range fr.typecases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tracer().Infof("typecase [%s] = %v", k, fr.typecases[k].ScalableFontParent().Fontname)
	}
	tracer().Infof("------------------------")
}

// NormalizeFontname produces a registry key from a font name or font file name.
// Spaces are replaced by underscores, a file extension is dropped and the
// result is lower case, e.g. "Tahoma Bold.ttf" → "tahoma_bold".
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

func appendSize(fname string, size float64) string {
	return fmt.Sprintf("%s-%.2f", fname, size)
}
