package enums

import "fmt"

// ReportFormat selects the settlement export artifact.
type ReportFormat string

const (
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatPDF  ReportFormat = "pdf"
)

var validReportFormats = []ReportFormat{
	ReportFormatXLSX,
	ReportFormatPDF,
}

// IsValid reports whether the value matches a known format.
func (f ReportFormat) IsValid() bool {
	for _, candidate := range validReportFormats {
		if candidate == f {
			return true
		}
	}
	return false
}

func (f ReportFormat) String() string {
	return string(f)
}

// ParseReportFormat converts raw input into ReportFormat.
func ParseReportFormat(value string) (ReportFormat, error) {
	for _, candidate := range validReportFormats {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report format %q", value)
}
