package tree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is matched by lookups of a name missing from the tree.
	ErrNotFound = errors.New("volume not found")
	// ErrAmbiguous is matched by lookups of a name used by several nodes.
	ErrAmbiguous = errors.New("volume name is not unique")
	// ErrMalformedNode is matched by errors about incomplete or invalid nodes.
	ErrMalformedNode = errors.New("malformed volume node")
)

// LookupError reports a failed lookup of a node by name.
type LookupError struct {
	Name  string
	Count int
}

func (e *LookupError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("[tree] volume %q: %v", e.Name, ErrNotFound)
	}
	return fmt.Sprintf("[tree] volume %q: %v (%d matches)", e.Name, ErrAmbiguous, e.Count)
}

// Unwrap returns ErrNotFound or ErrAmbiguous.
func (e *LookupError) Unwrap() error {
	if e.Count == 0 {
		return ErrNotFound
	}
	return ErrAmbiguous
}

// MalformedNodeError reports a node that cannot be placed.
type MalformedNodeError struct {
	Name    string
	Missing []string
	Reason  string
}

func (e *MalformedNodeError) Error() string {
	msg := fmt.Sprintf("[tree] volume %q: %v", e.Name, ErrMalformedNode)
	if len(e.Missing) > 0 {
		msg += ": missing " + strings.Join(e.Missing, ", ")
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns ErrMalformedNode.
func (e *MalformedNodeError) Unwrap() error {
	return ErrMalformedNode
}
