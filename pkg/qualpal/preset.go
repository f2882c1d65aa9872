package qualpal

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jolars/qualpal-go/internal/qerrors"
)

// PresetRegistry is a lookup of named color palettes, keyed by a reference
// string of the form "package:name"; Register adds or replaces entries and
// Lookup/Packages read them. The concrete preset
// data (e.g. a port of ColorBrewer or a similar catalog) is outside this
// library's scope; the registry only provides the lookup mechanism and
// whatever presets a host registers.
type PresetRegistry struct {
	mu       sync.RWMutex
	packages map[string]map[string][]string
}

// NewPresetRegistry returns an empty registry.
func NewPresetRegistry() *PresetRegistry {
	return &PresetRegistry{packages: make(map[string]map[string][]string)}
}

// DefaultPresets is seeded with a small illustrative set of palettes so
// WithPreset has something to resolve against out of the box; real
// deployments are expected to register their own catalog.
var DefaultPresets = func() *PresetRegistry {
	r := NewPresetRegistry()
	r.Register("base", "r3", []string{"#e41a1c", "#377eb8", "#4daf4a"})
	r.Register("base", "set1", []string{"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00"})
	r.Register("base", "pastel", []string{"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4"})
	return r
}()

// Register adds or replaces a named palette under pkg.
func (r *PresetRegistry) Register(pkg, name string, hexColors []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.packages[pkg] == nil {
		r.packages[pkg] = make(map[string][]string)
	}
	r.packages[pkg][name] = hexColors
}

// Lookup resolves a "package:name" reference to its hex color list.
func (r *PresetRegistry) Lookup(ref string) ([]string, error) {
	pkg, name, err := splitPresetRef(ref)
	if err != nil {
		return nil, fmt.Errorf("look up preset %q: %w", ref, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	names, ok := r.packages[pkg]
	if !ok {
		return nil, qerrors.Domain("preset", "unknown package %q", pkg)
	}
	hexColors, ok := names[name]
	if !ok {
		return nil, qerrors.Domain("preset", "unknown palette %q in package %q", name, pkg)
	}
	return hexColors, nil
}

// Packages enumerates every registered package and the palette names it
// contains.
func (r *PresetRegistry) Packages() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.packages))
	for pkg, names := range r.packages {
		list := make([]string, 0, len(names))
		for name := range names {
			list = append(list, name)
		}
		sort.Strings(list)
		out[pkg] = list
	}
	return out
}

func splitPresetRef(ref string) (pkg, name string, err error) {
	parts := strings.SplitN(ref, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", qerrors.Domain("preset", `must be of the form "package:name", got %q`, ref)
	}
	return parts[0], parts[1], nil
}
