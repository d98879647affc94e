package prune

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var documentSchemaCUE []byte

var (
	documentOnce sync.Once
	documentCtx  *cue.Context
	documentDef  cue.Value
	documentErr  error
)

func documentDefinition() (*cue.Context, cue.Value, error) {
	documentOnce.Do(func() {
		documentCtx = cuecontext.New()
		schema := documentCtx.CompileBytes(documentSchemaCUE)
		if schema.Err() != nil {
			documentErr = fmt.Errorf("compiling schema definition: %w", schema.Err())
			return
		}
		documentDef = schema.LookupPath(cue.ParsePath("#Document"))
		if !documentDef.Exists() {
			documentErr = fmt.Errorf("schema definition #Document not found")
		}
	})
	return documentCtx, documentDef, documentErr
}

// ValidateDocument checks a raw schema document against the embedded CUE
// definition before it is decoded.
func ValidateDocument(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedGate, err)
	}
	if doc == nil {
		return nil
	}

	ctx, def, err := documentDefinition()
	if err != nil {
		return err
	}

	v := ctx.Encode(doc)
	if v.Err() != nil {
		return fmt.Errorf("%w: %v", ErrMalformedGate, v.Err())
	}
	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedGate, err)
	}
	return nil
}
