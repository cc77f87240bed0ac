package domain

// Sheet is a shaped output unit, ready to hand to a composer.
type Sheet struct {
	Document *Document
	Columns  []string
	Steps    []*Step
}

// Title returns the document title, or an empty string for a detached sheet.
func (s *Sheet) Title() string {
	if s.Document == nil {
		return ""
	}
	return s.Document.Title
}
