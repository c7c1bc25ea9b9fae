// Package catalog loads and verifies the static career catalog and overlap
// cluster configuration.
package catalog

import "fmt"

// LoadError represents an error during file I/O or JSON parsing.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error (%s): %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error (%s): %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// IntegrityError represents a cross-reference failure between catalog and
// cluster data, such as a cluster member missing from the catalog.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity error: %s", e.Message)
}
