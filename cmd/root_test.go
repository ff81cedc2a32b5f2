package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	out, _, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "metaagent builds system prompts")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "frameworks")
	assert.Contains(t, out, "generate")
}

func TestVersion(t *testing.T) {
	assert.Equal(t, version, GetVersion())

	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "metaagent "+version)

	out, _, err = executeCommand(t, "version", "--json")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, version, v["version"])
}

func TestConfigShow(t *testing.T) {
	out, _, err := executeCommand(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "maxIndustryAdditions: 4")
	assert.Contains(t, out, "maxCombined: 12")
}

func TestSourceHeaders(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		src := string(data)
		if !strings.HasPrefix(src, "/*") {
			continue
		}
		header := src[:strings.Index(src, "*/")]
		assert.Contains(t, header, "Copyright © 2025 LMKidston", f)
	}
}
