package scanner

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"
	"gopkg.in/yaml.v3"
)

// ExportReport asks the user for a destination via the system save dialog
// and writes the report there as YAML. A cancelled dialog returns an
// empty path and no error.
func ExportReport(r *Report) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export Scan Report"),
		zenity.Filename("phishy-report.yaml"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("failed to pick export path: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
