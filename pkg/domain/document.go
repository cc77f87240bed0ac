package domain

// Document is one parsed markdown source.
type Document struct {
	// Source is the file name the document was read from.
	Source string
	// Title names the output unit (sheet or file).
	Title string
	// SummaryLines are the lines between "## Summary" and the steps marker,
	// blank-trimmed front and back.
	SummaryLines []string
	// Variables are document-scoped overrides declared in front matter.
	Variables map[string]string
	// Steps are the raw records in file order.
	Steps []*Step
}
