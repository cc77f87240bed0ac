package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/mael/pkg/domain"
)

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	first := domain.LifecycleHooks{
		OnDocumentParsed: func(context.Context, *domain.DocumentEvent) { calls = append(calls, "first") },
	}
	second := domain.LifecycleHooks{
		OnDocumentParsed:  func(context.Context, *domain.DocumentEvent) { calls = append(calls, "second") },
		OnDocumentSkipped: func(context.Context, *domain.DocumentEvent) { calls = append(calls, "skipped") },
	}

	merged := first.Merge(second)
	merged.OnDocumentParsed(context.Background(), &domain.DocumentEvent{})
	merged.OnDocumentSkipped(context.Background(), &domain.DocumentEvent{})

	assert.Equal(t, []string{"first", "second", "skipped"}, calls)
	assert.Nil(t, merged.OnOutputSaved)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", domain.FormatValue(nil))
	assert.Equal(t, "text", domain.FormatValue("text"))
	assert.Equal(t, "a\nb", domain.FormatValue([]string{"a", "b"}))
	assert.Equal(t, "7", domain.FormatValue(7))
	assert.Equal(t, "true", domain.FormatValue(true))
}
