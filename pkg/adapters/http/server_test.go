package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mael/pkg/adapters/memory"
	"github.com/aretw0/mael/pkg/schema"
)

// MockRenderer for testing
type MockRenderer struct {
	Sheets  []memory.RenderedSheet
	Columns *schema.ColumnConfig
	Err     error
}

func (m *MockRenderer) Render(ctx context.Context) ([]memory.RenderedSheet, error) {
	return m.Sheets, m.Err
}

func (m *MockRenderer) Schema() (*schema.ColumnConfig, error) {
	return m.Columns, m.Err
}

func newMock() *MockRenderer {
	return &MockRenderer{Sheets: []memory.RenderedSheet{
		{Title: "Login", Source: "login.md", Summary: []string{"s"}, Columns: []string{"A"}, Rows: [][]string{{"1"}, {"2"}}},
		{Title: "Logout", Source: "logout.md", Summary: []string{}, Columns: []string{"B"}, Rows: [][]string{}},
	}}
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := serve(t, NewHandler(newMock(), "1.0.0", nil), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestInfo(t *testing.T) {
	w := serve(t, NewHandler(newMock(), "1.0.0", nil), "/info")
	assert.JSONEq(t, `{"app":"mael-http","version":"1.0.0"}`, w.Body.String())
}

func TestListDocuments(t *testing.T) {
	w := serve(t, NewHandler(newMock(), "", nil), "/documents")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got []Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, Summary{Index: 0, Title: "Login", Source: "login.md", Columns: []string{"A"}, Rows: 2}, got[0])
}

func TestGetDocument(t *testing.T) {
	h := NewHandler(newMock(), "", nil)

	w := serve(t, h, "/documents/1")
	require.Equal(t, http.StatusOK, w.Code)
	var sheet memory.RenderedSheet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sheet))
	assert.Equal(t, "Logout", sheet.Title)

	assert.Equal(t, http.StatusNotFound, serve(t, h, "/documents/9").Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, h, "/documents/first").Code)
}

func TestRenderFailure(t *testing.T) {
	w := serve(t, NewHandler(&MockRenderer{Err: errors.New("bad schema")}, "", nil), "/documents")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "bad schema")
}

func TestMetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mael_steps_total 0\n"))
	})

	w := serve(t, NewHandler(newMock(), "", metrics), "/metrics")
	assert.Equal(t, "mael_steps_total 0\n", w.Body.String())

	w = serve(t, NewHandler(newMock(), "", nil), "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(newMock(), "", nil).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/documents", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetSchema(t *testing.T) {
	cfg, err := schema.ParseBytes([]byte("column_conditions:\n  Step:\n    type: list\n    width: 40\n"))
	require.NoError(t, err)

	w := serve(t, NewHandler(&MockRenderer{Columns: cfg}, "", nil), "/schema")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"global": {"duplicate_previous_for_blank": false, "overwrite_for_repeat": false},
		"prepend": [],
		"column_conditions": [{"name": "Step", "type": "list", "width": 40, "alignment": "left", "duplicate_previous_for_blank": false}],
		"append": []
	}`, w.Body.String())

	w = serve(t, NewHandler(&MockRenderer{Err: errors.New("bad schema")}, "", nil), "/schema")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "bad schema")
}
