package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCorpus = `
- description: getHealth happy path
  payload:
    jsonrpc: "2.0"
    id: 1
    method: getHealth
- description: getAccountInfo finalized
  payload:
    jsonrpc: "2.0"
    id: 1
    method: getAccountInfo
    params:
      - "11111111111111111111111111111111"
      - commitment: finalized
  exclude_paths:
    - result.context.slot
`

func TestLoad(t *testing.T) {
	cases, err := Load(strings.NewReader(sampleCorpus))
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "getHealth happy path", cases[0].Description)
	payload, ok := cases[0].Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "getHealth", payload["method"])
	assert.Empty(t, cases[0].ExcludePaths)

	assert.Equal(t, []string{"result.context.slot"}, cases[1].ExcludePaths)
	payload, ok = cases[1].Payload.(map[string]any)
	require.True(t, ok)
	params, ok := payload["params"].([]any)
	require.True(t, ok)
	require.Len(t, params, 2)
	assert.Equal(t, "11111111111111111111111111111111", params[0])
}

func TestLoadAggregatesValidationErrors(t *testing.T) {
	const bad = `
- description: no payload at all
- description: broken exclusion
  payload:
    method: getHealth
  exclude_paths:
    - "a[["
    - "b..c"
`
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)

	// All three problems are reported together.
	msg := err.Error()
	assert.Contains(t, msg, "no payload at all: missing payload")
	assert.Contains(t, msg, `exclude path "a[["`)
	assert.Contains(t, msg, `exclude path "b..c"`)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("{not yaml: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding document")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCorpus), 0o644))

	cases, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cases, 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening")
}
