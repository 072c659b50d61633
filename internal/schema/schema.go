// Package schema validates persisted documents against an embedded CUE
// definition. Validation catches structural drift (missing sections,
// mistyped fields) that a plain JSON parse would let through.
package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaCUE string

// Validate checks raw document bytes against the #Document definition.
// Returns nil when the document conforms.
func Validate(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup document definition: %w", err)
	}

	expr, err := cuejson.Extract("document", data)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	doc := ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("build document value: %w", err)
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}
