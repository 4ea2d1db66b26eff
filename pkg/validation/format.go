// Package validation provides input validation utilities.
package validation

import (
	"fmt"

	"github.com/KatyGHub/finhealth-app/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q; expected one of pretty, csv, json", format)
	}
}
