package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aretw0/mael/pkg/schema"
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// Horizontal maps a column alignment to the workbook's horizontal alignment.
func Horizontal(a schema.Alignment) string {
	switch a {
	case schema.AlignCenter:
		return "center"
	case schema.AlignRight:
		return "right"
	default:
		return "left"
	}
}

type styleKey struct {
	header    bool
	alignment schema.Alignment
}

// styles caches style ids per (row kind, alignment) in one workbook.
type styles struct {
	file  *excelize.File
	ids   map[styleKey]int
	title int
}

func newStyles(f *excelize.File) *styles {
	return &styles{file: f, ids: make(map[styleKey]int), title: -1}
}

func (s *styles) summaryTitle() (int, error) {
	if s.title >= 0 {
		return s.title, nil
	}
	id, err := s.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0, fmt.Errorf("failed to create summary style: %w", err)
	}
	s.title = id
	return id, nil
}

func (s *styles) header(a schema.Alignment) (int, error) {
	return s.get(styleKey{header: true, alignment: a})
}

func (s *styles) cell(a schema.Alignment) (int, error) {
	return s.get(styleKey{alignment: a})
}

func (s *styles) get(key styleKey) (int, error) {
	if id, ok := s.ids[key]; ok {
		return id, nil
	}

	style := &excelize.Style{
		Border:    thinBorder,
		Alignment: &excelize.Alignment{Horizontal: Horizontal(key.alignment)},
	}
	if key.header {
		style.Font = &excelize.Font{Bold: true}
	} else {
		style.Alignment.Vertical = "top"
		style.Alignment.WrapText = true
	}

	id, err := s.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("failed to create cell style: %w", err)
	}
	s.ids[key] = id
	return id, nil
}
