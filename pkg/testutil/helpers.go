// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/amortize/pkg/output"
)

// FindReport finds a report by loan name in the reports slice.
// Returns a pointer to the report if found, nil otherwise.
func FindReport(reports []output.Report, name string) *output.Report {
	for i := range reports {
		if reports[i].Name == name {
			return &reports[i]
		}
	}
	return nil
}
