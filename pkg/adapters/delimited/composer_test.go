package delimited_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mael/pkg/adapters/delimited"
	"github.com/aretw0/mael/pkg/domain"
	"github.com/aretw0/mael/pkg/ports"
)

func TestCSVContract(t *testing.T) {
	ports.RunComposerContract(t, delimited.NewCSV)
}

func TestTSVContract(t *testing.T) {
	ports.RunComposerContract(t, delimited.NewTSV)
}

func sheet(title string) *domain.Sheet {
	return &domain.Sheet{
		Document: &domain.Document{Title: title, SummaryLines: []string{"not written"}},
		Columns:  []string{"No.", "Action", "Note"},
		Steps: []*domain.Step{
			domain.StepOf("No.", 1, "Action", "say \"{{ word }}\"", "Note", "a, b"),
			domain.StepOf("No.", 2, "Action", "line1\nline2"),
		},
	}
}

func TestComposer_CSV(t *testing.T) {
	composer := delimited.New(delimited.CSV)
	opts := ports.SheetOptions{Variables: map[string]string{"word": "hi"}}
	require.NoError(t, composer.AddSheet(context.Background(), sheet("Login"), opts))

	dir := t.TempDir()
	out, err := composer.Compose(context.Background(), ports.Target{Dir: dir, Basename: "proj"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "proj_csv"), out)

	data, err := os.ReadFile(filepath.Join(out, "Login.csv"))
	require.NoError(t, err)
	assert.Equal(t, "No.,Action,Note\n1,\"say \"\"hi\"\"\",\"a, b\"\n2,\"line1\nline2\",\n", string(data))
}

func TestComposer_TSVWithEnvironment(t *testing.T) {
	composer := delimited.New(delimited.TSV)
	require.NoError(t, composer.AddSheet(context.Background(), sheet("One"), ports.SheetOptions{}))
	require.NoError(t, composer.AddSheet(context.Background(), sheet("Two"), ports.SheetOptions{}))

	dir := t.TempDir()
	out, err := composer.Compose(context.Background(), ports.Target{Dir: dir, Basename: "proj", Environment: "stg"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "proj_stg_tsv"), out)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "One.tsv", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(out, "Two.tsv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "No.\tAction\tNote\n")
}

func TestComposer_DirectoryIsRecreated(t *testing.T) {
	dir := t.TempDir()
	target := ports.Target{Dir: dir, Basename: "proj"}
	stale := filepath.Join(dir, "proj_csv", "Stale.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	composer := delimited.New(delimited.CSV)
	require.NoError(t, composer.AddSheet(context.Background(), sheet("Fresh"), ports.SheetOptions{}))
	_, err := composer.Compose(context.Background(), target)
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(dir, "proj_csv", "Fresh.csv"))
}

func TestComposer_CollidingTitlesKeepEveryFile(t *testing.T) {
	composer := delimited.New(delimited.CSV)
	for _, title := range []string{"Login", "Login", "a/b", "a_b"} {
		require.NoError(t, composer.AddSheet(context.Background(), sheet(title), ports.SheetOptions{}))
	}

	out, err := composer.Compose(context.Background(), ports.Target{Dir: t.TempDir(), Basename: "proj"})
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"Login.csv", "Login (2).csv", "a_b.csv", "a_b (2).csv"}, names)
}

func TestFileName(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "Login", delimited.FileName("Login", used))
	assert.Equal(t, "Login (2)", delimited.FileName("Login", used))
	assert.Equal(t, "LOGIN (3)", delimited.FileName("LOGIN", used), "case-insensitive")
	assert.Equal(t, `x_y_z`, delimited.FileName(`x/y\z`, used))
}
