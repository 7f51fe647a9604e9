package typeface

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Slant is the posture of a face.
type Slant uint8

const (
	SlantNormal Slant = iota
	SlantItalic
	SlantOblique
)

// Weight is the boldness of a face.
type Weight uint8

const (
	WeightNormal Weight = iota
	WeightBold
)

// Built-in family names.
const (
	FamilyGo     = "go"
	FamilyGoMono = "go mono"
)

type key struct {
	family string
	slant  Slant
	weight Weight
}

type entry struct {
	data []byte
	once sync.Once
	face *Face
	err  error
}

func (e *entry) load() (*Face, error) {
	e.once.Do(func() {
		e.face, e.err = Parse(e.data)
	})
	return e.face, e.err
}

// Registry maps family, slant and weight to font data. Faces are parsed on
// first use. A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entries  map[key]*entry
	aliases  map[string]string
	fallback string
}

// NewRegistry returns a registry holding the embedded Go fonts.
func NewRegistry() *Registry {
	r := &Registry{
		entries:  make(map[key]*entry),
		aliases:  make(map[string]string),
		fallback: FamilyGo,
	}
	builtin := []struct {
		family string
		slant  Slant
		weight Weight
		data   []byte
	}{
		{FamilyGo, SlantNormal, WeightNormal, goregular.TTF},
		{FamilyGo, SlantNormal, WeightBold, gobold.TTF},
		{FamilyGo, SlantItalic, WeightNormal, goitalic.TTF},
		{FamilyGo, SlantItalic, WeightBold, gobolditalic.TTF},
		{FamilyGoMono, SlantNormal, WeightNormal, gomono.TTF},
		{FamilyGoMono, SlantNormal, WeightBold, gomonobold.TTF},
		{FamilyGoMono, SlantItalic, WeightNormal, gomonoitalic.TTF},
		{FamilyGoMono, SlantItalic, WeightBold, gomonobolditalic.TTF},
	}
	for _, b := range builtin {
		r.entries[key{b.family, b.slant, b.weight}] = &entry{data: b.data}
	}
	for _, a := range []string{"", "sans-serif", "sans", "serif", "go regular"} {
		r.aliases[a] = FamilyGo
	}
	for _, a := range []string{"monospace", "mono", "gomono"} {
		r.aliases[a] = FamilyGoMono
	}
	return r
}

func normalize(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// Register adds font data under family. The data is validated immediately.
// Registering an existing key replaces it.
func (r *Registry) Register(family string, slant Slant, weight Weight, data []byte) error {
	face, err := Parse(data)
	if err != nil {
		return err
	}
	name := normalize(family)
	if name == "" {
		return fmt.Errorf("typeface: empty family name")
	}
	e := &entry{data: data}
	e.once.Do(func() { e.face = face })

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key{name, slant, weight}] = e
	delete(r.aliases, name)
	return nil
}

// Alias makes name resolve to family.
func (r *Registry) Alias(name, family string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[normalize(name)] = normalize(family)
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for k := range r.entries {
		if !slices.Contains(out, k.family) {
			out = append(out, k.family)
		}
	}
	slices.Sort(out)
	return out
}

// Lookup resolves a face. Oblique falls back to italic, then any slant to
// normal, then bold to normal weight. Unknown families resolve to the
// fallback family and report exact as false.
func (r *Registry) Lookup(family string, slant Slant, weight Weight) (face *Face, exact bool, err error) {
	r.mu.RLock()
	name := normalize(family)
	if alias, ok := r.aliases[name]; ok {
		name = alias
	}
	e, exact := r.find(name, slant, weight)
	if e == nil {
		e, _ = r.find(r.fallback, slant, weight)
		exact = false
	}
	r.mu.RUnlock()

	if e == nil {
		return nil, false, fmt.Errorf("typeface: no face for family %q", family)
	}
	face, err = e.load()
	return face, exact, err
}

// find must be called with r.mu held.
func (r *Registry) find(family string, slant Slant, weight Weight) (*entry, bool) {
	slants := []Slant{slant}
	switch slant {
	case SlantOblique:
		slants = append(slants, SlantItalic, SlantNormal)
	case SlantItalic:
		slants = append(slants, SlantNormal)
	}
	weights := []Weight{weight}
	if weight != WeightNormal {
		weights = append(weights, WeightNormal)
	}

	first := true
	for _, w := range weights {
		for _, s := range slants {
			if e, ok := r.entries[key{family, s, w}]; ok {
				return e, first
			}
			first = false
		}
	}
	return nil, false
}
