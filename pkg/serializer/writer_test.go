package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type resolution struct {
	Version string `json:"version" yaml:"version"`
	Source  string `json:"source" yaml:"source"`
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	defer w.Close()

	err := w.Serialize(context.Background(), resolution{Version: "v2r1", Source: "path"})
	require.NoError(t, err)

	var got resolution
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "v2r1", got.Version)
	assert.Equal(t, "path", got.Source)
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	defer w.Close()

	err := w.Serialize(context.Background(), resolution{Version: "v2r1", Source: "root"})
	require.NoError(t, err)

	var got resolution
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "v2r1", got.Version)
	assert.Equal(t, "root", got.Source)
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	defer w.Close()

	err := w.Serialize(context.Background(), resolution{Version: "v2r1", Source: "override"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Version")
	assert.Contains(t, out, "v2r1")
	assert.Contains(t, out, "override")
}

func TestSerializeTableNested(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	defer w.Close()

	data := map[string]any{
		"installed": []string{"v1r2", "v2r1"},
	}
	err := w.Serialize(context.Background(), data)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "installed.[0]")
	assert.Contains(t, out, "v1r2")
	assert.Contains(t, out, "installed.[1]")
}

func TestSerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	defer w.Close()

	err := w.Serialize(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	defer w.Close()

	err := w.Serialize(context.Background(), resolution{Version: "v2r1"})
	require.NoError(t, err)
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestFormatIsUnknown(t *testing.T) {
	assert.False(t, FormatJSON.IsUnknown())
	assert.False(t, FormatYAML.IsUnknown())
	assert.False(t, FormatTable.IsUnknown())
	assert.True(t, Format("csv").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	assert.Len(t, formats, 3)
	assert.Contains(t, formats, "json")
	assert.Contains(t, formats, "yaml")
	assert.Contains(t, formats, "table")
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	err := w.Serialize(context.Background(), resolution{Version: "v2r1", Source: "path"})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "v2r1"))
}

func TestNewFileWriterOrStdoutEmptyPath(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, "  ")
	require.NotNil(t, w)
	assert.NoError(t, w.Close())
}
