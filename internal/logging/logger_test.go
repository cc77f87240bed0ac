package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelInfo)

	logger.Debug("Hidden")
	logger.Warn("Document Skipped", "file", "a.md", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "Hidden")
	assert.Contains(t, out, "file=a.md")
	assert.Contains(t, out, "err=boom")
	assert.NotContains(t, out, "error=")
}
