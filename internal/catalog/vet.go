package catalog

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE []byte

// Vet validates the embedded catalog against the CUE schema. The Go loader
// already enforces the structural basics; Vet applies the full schema
// (name syntax, non-empty titles) and reports every violation with its
// position in the document.
func Vet() error {
	return vet(catalogYAML)
}

// vet validates an arbitrary catalog document against the schema.
func vet(src []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Catalog"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("schema has no #Catalog definition: %w", err)
	}

	file, err := cueyaml.Extract("catalog.yaml", src)
	if err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("build catalog value: %w", err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("catalog does not satisfy schema: %w", err)
	}
	return nil
}
