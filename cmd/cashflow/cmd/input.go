package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"cashflowstory/internal/analytics"
	"cashflowstory/internal/exporter"
)

// periodFile is the document shape accepted by compute. A bare list of
// periods is accepted as well.
type periodFile struct {
	CompanyName string                   `json:"company_name" yaml:"company_name"`
	Periods     []analytics.PeriodRecord `json:"periods" yaml:"periods"`
}

// loadPeriods reads periods from a .json, .yaml/.yml or .xlsx file and
// returns the company name the file declares, if any
func loadPeriods(path string) (string, []analytics.PeriodRecord, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".xlsx" {
		f, err := os.Open(path)
		if err != nil {
			return "", nil, err
		}
		defer f.Close()

		periods, err := exporter.ReadPeriodsXLSX(f)
		if err != nil {
			return "", nil, fmt.Errorf("read %s: %w", path, err)
		}
		return "", periods, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var doc periodFile
	switch ext {
	case ".json":
		err = decodeJSON(data, &doc)
	case ".yaml", ".yml":
		err = decodeYAML(data, &doc)
	default:
		return "", nil, fmt.Errorf("unsupported input file %q: expected .json, .yaml, .yml or .xlsx", path)
	}
	if err != nil {
		return "", nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc.CompanyName, doc.Periods, nil
}

func decodeJSON(data []byte, doc *periodFile) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &doc.Periods)
	}
	return json.Unmarshal(data, doc)
}

func decodeYAML(data []byte, doc *periodFile) error {
	if err := yaml.Unmarshal(data, doc); err == nil {
		return nil
	}
	return yaml.Unmarshal(data, &doc.Periods)
}

// companyName picks the flag value, then the file's, then the first period's
func companyName(flag, declared string, periods []analytics.PeriodRecord) string {
	switch {
	case flag != "":
		return flag
	case declared != "":
		return declared
	case len(periods) > 0:
		return periods[0].CompanyName
	}
	return ""
}
