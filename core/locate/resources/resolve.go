package resources

import (
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/dmdfont/core"
	"github.com/npillmayer/dmdfont/core/font"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, s)
}

// Locator finds font files from a list of candidates.
// The zero value is ready to use; tests may replace the file system probes.
type Locator struct {
	Stat func(name string) (os.FileInfo, error) // defaults to os.Stat
	Find func(name string) (string, error)      // defaults to findfont.Find
}

func (loc Locator) stat(name string) (os.FileInfo, error) {
	if loc.Stat != nil {
		return loc.Stat(name)
	}
	return os.Stat(name)
}

func (loc Locator) find(name string) (string, error) {
	if loc.Find != nil {
		return loc.Find(name)
	}
	return findfont.Find(name)
}

// Locate returns the path of the first candidate which exists.
// If no candidate can be found, an error of code EMISSING is returned.
func (loc Locator) Locate(candidates []string) (string, error) {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c == "" {
			continue
		}
		if fi, err := loc.stat(c); err == nil && !fi.IsDir() {
			tracer().Debugf("font candidate %s exists", c)
			return c, nil
		}
		if isBareName(c) {
			if fpath, err := loc.find(c); err == nil && fpath != "" {
				tracer().Debugf("%s is a system font at %s", c, fpath)
				return fpath, nil
			}
		}
		tracer().Debugf("font candidate %s not found", c)
	}
	return "", NotFound(strings.Join(candidates, ", "), fontResourceType)
}

// ResolveFont locates the first existing candidate and loads it.
func (loc Locator) ResolveFont(candidates []string) (*font.ScalableFont, error) {
	fpath, err := loc.Locate(candidates)
	if err != nil {
		return nil, err
	}
	tracer().Infof("using font %s", fpath)
	return font.LoadOpenTypeFont(fpath)
}

// ResolveFont locates and loads a font with the default locator.
func ResolveFont(candidates []string) (*font.ScalableFont, error) {
	return Locator{}.ResolveFont(candidates)
}

func isBareName(name string) bool {
	return !strings.ContainsAny(name, `/\`)
}
