package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mael"
	"github.com/aretw0/mael/internal/templates"
	"github.com/aretw0/mael/internal/testutils"
)

func TestRunBuild(t *testing.T) {
	dir := testutils.SetupDemoProject(t)
	metricsFile := filepath.Join(t.TempDir(), "mael.prom")
	var out bytes.Buffer

	path, err := RunBuild(context.Background(), BuildOptions{
		RepoPath:    dir,
		Environment: "qa",
		MetricsFile: metricsFile,
		Out:         &out,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "output", "demo_qa.xlsx"), path)
	assert.FileExists(t, path)
	assert.Equal(t, ">>> Saved "+path+"\n", out.String())

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `mael_documents_total{status="converted"} 1`)
}

func TestRunBuild_Errors(t *testing.T) {
	t.Run("Unknown format", func(t *testing.T) {
		dir := testutils.SetupDemoProject(t)
		_, err := RunBuild(context.Background(), BuildOptions{RepoPath: dir, Format: "odt"})
		assert.ErrorContains(t, err, "error initializing mael")
	})

	t.Run("Strict missing summary", func(t *testing.T) {
		dir := testutils.SetupProject(t, "proj", map[string]string{"a.md": "# A\n"})
		_, err := RunBuild(context.Background(), BuildOptions{RepoPath: dir, Strict: true})
		assert.ErrorContains(t, err, "a.md")
	})
}

func TestRunInit(t *testing.T) {
	t.Run("Explicit template", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "new")
		var out bytes.Buffer

		written, err := RunInit(InitOptions{Dir: dir, Template: templates.TestCase, Out: &out})
		require.NoError(t, err)

		assert.Contains(t, written, "login.md")
		assert.FileExists(t, filepath.Join(dir, "config", "variables_prod.ini"))
		assert.True(t, strings.HasPrefix(out.String(), ">>> Initialized test_case project"))
	})

	t.Run("Non interactive default", func(t *testing.T) {
		dir := t.TempDir()
		_, err := RunInit(InitOptions{Dir: dir, Out: io.Discard})
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "sample.md"))
	})

	t.Run("Prompt by number", func(t *testing.T) {
		dir := t.TempDir()
		var out bytes.Buffer
		_, err := RunInit(InitOptions{
			Dir:         dir,
			Interactive: true,
			In:          strings.NewReader("9\n2\n"),
			Out:         &out,
		})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Invalid choice: 9")
		assert.FileExists(t, filepath.Join(dir, "login.md"))
	})

	t.Run("Unknown template", func(t *testing.T) {
		_, err := RunInit(InitOptions{Dir: t.TempDir(), Template: "fancy", Out: io.Discard})
		assert.Error(t, err)
	})
}

func TestPromptTemplate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\n", templates.Normal},
		{"", templates.Normal},
		{"1\n", templates.Normal},
		{"TEST_CASE\n", templates.TestCase},
		{"nope\nnormal\n", templates.Normal},
	}
	for _, tt := range tests {
		got, err := promptTemplate(strings.NewReader(tt.input), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func newTestInspector(t *testing.T) (*Inspector, *bytes.Buffer) {
	t.Helper()
	conv, err := mael.New(testutils.SetupDemoProject(t))
	require.NoError(t, err)
	var out bytes.Buffer
	return NewInspector(conv, nil, &out), &out
}

func TestInspector_Session(t *testing.T) {
	inspector, out := newTestInspector(t)
	in := strings.NewReader("load\nshow 1\nfrobnicate\n\nquit\nshow 1\n")

	require.NoError(t, inspector.Run(context.Background(), in))

	text := out.String()
	assert.Contains(t, text, ">>> Loaded 1 document(s)")
	assert.Contains(t, text, "1) Demo (demo.md, 2 rows)")
	assert.Contains(t, text, "# Demo\n\nThe demo summary.")
	assert.Contains(t, text, "Step (2)")
	assert.Contains(t, text, "second")
	assert.Contains(t, text, "Unknown command: frobnicate")
	assert.Contains(t, text, ">>> Bye.")
	assert.Equal(t, 1, strings.Count(text, "# Demo"), "commands after quit are not run")
}

func TestInspector_Commands(t *testing.T) {
	inspector, out := newTestInspector(t)
	ctx := context.Background()

	assert.True(t, inspector.Execute(ctx, "?", nil))
	assert.Contains(t, out.String(), "Commands:")

	out.Reset()
	assert.True(t, inspector.Execute(ctx, "s", []string{"1"}))
	assert.Contains(t, out.String(), "no document \"1\" (loaded: 0)")

	out.Reset()
	assert.True(t, inspector.Execute(ctx, "l", nil))
	require.Len(t, inspector.Sheets(), 1)

	out.Reset()
	assert.True(t, inspector.Execute(ctx, "show", nil))
	assert.Contains(t, out.String(), "usage: show <n>")

	for _, cmd := range []string{"quit", "exit", "q", "BYE"} {
		assert.False(t, inspector.Execute(ctx, cmd, nil), cmd)
	}
}

func TestInspector_EndOfInput(t *testing.T) {
	inspector, _ := newTestInspector(t)
	assert.NoError(t, inspector.Run(context.Background(), strings.NewReader("help")))
}

func TestInterruptibleReader(t *testing.T) {
	cancel := make(chan struct{})
	r := NewInterruptibleReader(strings.NewReader("abc"), cancel)

	buf := make([]byte, 3)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	close(cancel)
	_, err = r.Read(buf)
	assert.True(t, isInterrupted(err))
	assert.NoError(t, handleExecutionError(err))
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(io.EOF))
	assert.Error(t, handleExecutionError(os.ErrPermission))
}

func TestSignalContext_CancelWithoutSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()

	<-sc.Done()
	assert.ErrorIs(t, sc.Err(), context.Canceled)
	assert.Nil(t, sc.Signal())
}
