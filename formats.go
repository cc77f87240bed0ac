package mael

import (
	"sync"

	"github.com/aretw0/mael/pkg/adapters/delimited"
	"github.com/aretw0/mael/pkg/adapters/excel"
	"github.com/aretw0/mael/pkg/registry"
)

var (
	formatsOnce sync.Once
	formats     *registry.Registry
)

// Formats returns the registry of built-in output formats.
// Additional formats can be registered on it before calling New.
func Formats() *registry.Registry {
	formatsOnce.Do(func() {
		formats = registry.NewRegistry()
		formats.Register(excel.Factory, "excel", "xlsx")
		formats.Register(delimited.NewCSV, "csv")
		formats.Register(delimited.NewTSV, "tsv")
	})
	return formats
}
