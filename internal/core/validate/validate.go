// Package validate provides shared validation functions for command input.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Ref validates a revision argument before it is handed to git. Blank refs are
// rejected, as are refs starting with "-" which git would parse as an option.
func Ref(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return fmt.Errorf("ref is required")
	}
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("ref %q must not start with '-'", ref)
	}
	return nil
}

// RefField returns a criterio validator for a named revision argument.
func RefField(field, ref string) error {
	return criterio.Run(field, ref, Ref)
}
