package domain

// Project layout. Paths are relative to the project (source) directory.
const (
	// ConfigDir holds the column schema, variables and ignore files.
	ConfigDir = "config"
	// OutputDir receives every generated artifact.
	OutputDir = "output"
	// VariablesFile is the base variables file. Environment overrides live in
	// "variables_<env>.ini" next to it.
	VariablesFile = "variables.ini"
	// IgnoreFile lists source basenames (or glob patterns) to skip.
	IgnoreFile = "ignore.txt"
	// SourceExt is the extension of convertible documents.
	SourceExt = ".md"
)

// ColumnFiles are the accepted column schema file names, in lookup order.
var ColumnFiles = []string{"columns.yml", "columns.yaml", "columns.json"}
