package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Kind is the declared value kind of a keyword.
type Kind string

const (
	// KindNumber is a single numeric value.
	KindNumber Kind = "number"

	// KindNumbers is a list of numeric values.
	KindNumbers Kind = "numbers"

	// KindText is a single textual value.
	KindText Kind = "text"

	// KindTexts is a list of textual values.
	KindTexts Kind = "texts"

	// KindNone marks keywords with no declared value kind upstream.
	KindNone Kind = "none"
)

// Status is the inclusion status of a keyword in AFLUX responses.
type Status string

const (
	// StatusMandatory keywords are present in every database entry.
	StatusMandatory Status = "mandatory"

	// StatusOptional keywords are present only when the underlying
	// calculation produced them.
	StatusOptional Status = "optional"

	// StatusConditional keywords depend on other keywords being present.
	StatusConditional Status = "conditional"

	// StatusUnknown marks keywords whose upstream declaration carried no
	// status.
	StatusUnknown Status = "unknown"
)

// Descriptor describes one searchable AFLUX keyword. Immutable after load.
type Descriptor struct {
	// Name is the keyword as it appears on the wire. Unique.
	Name string `yaml:"name" json:"name"`

	// Kind is the declared value kind.
	Kind Kind `yaml:"kind" json:"kind"`

	// Units is the physical unit of the value, empty when dimensionless.
	Units string `yaml:"units,omitempty" json:"units,omitempty"`

	// Status is the inclusion status.
	Status Status `yaml:"status" json:"status"`

	// Title is a short human-readable label.
	Title string `yaml:"title" json:"title"`

	// Description explains what the keyword returns.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type document struct {
	Keywords []Descriptor `yaml:"keywords"`
}

var (
	loadOnce sync.Once
	loaded   []Descriptor
	loadErr  error
)

// Load returns all keyword descriptors, sorted by name. The embedded
// catalog is parsed exactly once; repeated calls return the same slice.
// Callers must not mutate the result.
func Load() ([]Descriptor, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(catalogYAML)
	})
	return loaded, loadErr
}

// Lookup returns the descriptor for the named keyword.
func Lookup(name string) (Descriptor, bool) {
	descs, err := Load()
	if err != nil {
		return Descriptor{}, false
	}
	i := sort.Search(len(descs), func(i int) bool { return descs[i].Name >= name })
	if i < len(descs) && descs[i].Name == name {
		return descs[i], true
	}
	return Descriptor{}, false
}

// Names returns all keyword names, sorted.
func Names() ([]string, error) {
	descs, err := Load()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(descs))
	for i, d := range descs {
		names[i] = d.Name
	}
	return names, nil
}

// parse decodes and checks a catalog document.
func parse(src []byte) ([]Descriptor, error) {
	var doc document
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Keywords) == 0 {
		return nil, fmt.Errorf("catalog has no keywords")
	}

	seen := make(map[string]struct{}, len(doc.Keywords))
	for _, d := range doc.Keywords {
		if d.Name == "" {
			return nil, fmt.Errorf("catalog entry with empty name")
		}
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", d.Name)
		}
		seen[d.Name] = struct{}{}
		if !validKind(d.Kind) {
			return nil, fmt.Errorf("keyword %q: unknown kind %q", d.Name, d.Kind)
		}
		if !validStatus(d.Status) {
			return nil, fmt.Errorf("keyword %q: unknown status %q", d.Name, d.Status)
		}
	}

	sort.Slice(doc.Keywords, func(i, j int) bool {
		return doc.Keywords[i].Name < doc.Keywords[j].Name
	})
	return doc.Keywords, nil
}

func validKind(k Kind) bool {
	switch k {
	case KindNumber, KindNumbers, KindText, KindTexts, KindNone:
		return true
	}
	return false
}

func validStatus(s Status) bool {
	switch s {
	case StatusMandatory, StatusOptional, StatusConditional, StatusUnknown:
		return true
	}
	return false
}
