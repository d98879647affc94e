// Package prune removes generated paths that belong to template options the
// user did not select.
package prune

import (
	oerrors "github.com/skelkit/skel/internal/errors"
)

// Errors returned while resolving a schema against a context. All of them
// match oerrors.ErrConfig; their text leaves the category to the caller.
var (
	// ErrMissingKey means the context has no answer for a schema option.
	ErrMissingKey = oerrors.Newf(oerrors.ErrConfig, "option missing from context")

	// ErrMalformedGate means a schema entry is neither a path list nor a
	// choice mapping.
	ErrMalformedGate = oerrors.Newf(oerrors.ErrConfig, "malformed schema entry")

	// ErrInvalidAnswer means an answer cannot be read as the gate requires.
	ErrInvalidAnswer = oerrors.Newf(oerrors.ErrConfig, "invalid answer")

	// ErrUnsafePath means a schema path is absolute or escapes the project root.
	ErrUnsafePath = oerrors.Newf(oerrors.ErrConfig, "path escapes project root")
)
