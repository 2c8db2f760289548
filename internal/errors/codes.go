package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"
	CodeConfigNotFound   Code = "CONFIG_NOT_FOUND"
	CodeNotImplemented   Code = "NOT_IMPLEMENTED"

	// Snapshot loading
	CodeSnapshotReadError     Code = "SNAPSHOT_READ_ERROR"
	CodeSnapshotParseError    Code = "SNAPSHOT_PARSE_ERROR"
	CodeUnsupportedSnapshot   Code = "UNSUPPORTED_SNAPSHOT_FORMAT"
	CodeSnapshotLoaderMissing Code = "SNAPSHOT_LOADER_MISSING"

	// Comparison and output
	CodeComparisonError Code = "COMPARISON_ERROR"
	CodeReportError     Code = "REPORT_ERROR"
)

func (c Code) String() string {
	return string(c)
}
