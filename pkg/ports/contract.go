package ports

import (
	"context"
	"testing"

	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunComposerContract runs a suite of tests to verify that a Composer
// implementation adheres to the interface contract. The factory must return
// a fresh composer on every call.
func RunComposerContract(t *testing.T, factory ComposerFactory) {
	ctx := context.Background()

	sheet := func(title string) *domain.Sheet {
		return &domain.Sheet{
			Document: &domain.Document{
				Source:       title + ".md",
				Title:        title,
				SummaryLines: []string{"Summary of {{ name }}"},
			},
			Columns: []string{"No.", "Action"},
			Steps: []*domain.Step{
				domain.StepOf("No.", 1, "Action", "open {{ name }}"),
				domain.StepOf("No.", 2),
			},
		}
	}
	opts := SheetOptions{
		Columns:   schema.New(),
		Variables: map[string]string{"name": "mael"},
	}

	t.Run("Compose After Sheets", func(t *testing.T) {
		composer := factory()
		require.NoError(t, composer.AddSheet(ctx, sheet("First"), opts))
		require.NoError(t, composer.AddSheet(ctx, sheet("Second"), opts))

		path, err := composer.Compose(ctx, Target{Dir: t.TempDir(), Basename: "contract"})
		require.NoError(t, err, "Compose should not return error")
		assert.NotEmpty(t, path, "Compose should report where it saved")
	})

	t.Run("Nil Options Schema", func(t *testing.T) {
		composer := factory()
		err := composer.AddSheet(ctx, sheet("Defaults"), SheetOptions{})
		assert.NoError(t, err, "a nil schema means all defaults")
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		composer := factory()
		err := composer.AddSheet(cancelled, sheet("Cancelled"), opts)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
