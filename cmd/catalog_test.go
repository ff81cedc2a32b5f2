package cmd

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LMKidston/meta-agent1/internal/knowledge"
)

func TestArchetypesCmd(t *testing.T) {
	useMemFs(t)

	out, _, err := executeCommand(t, "archetypes")
	require.NoError(t, err)
	assert.Contains(t, out, "Agent archetypes")
	assert.Contains(t, out, "20 archetypes")
	assert.Contains(t, out, "developer")
	assert.Contains(t, out, "innovation-catalyst")

	out, _, err = executeCommand(t, "archetypes", "--quiet")
	require.NoError(t, err)
	assert.NotContains(t, out, "Agent archetypes")
	assert.Contains(t, out, "developer")

	out, _, err = executeCommand(t, "archetypes", "--json")
	require.NoError(t, err)
	var archetypes []knowledge.Archetype
	require.NoError(t, json.Unmarshal([]byte(out), &archetypes))
	assert.Len(t, archetypes, 20)
	assert.Equal(t, "consultant", archetypes[0].ID)
}

func TestIndustriesCmd(t *testing.T) {
	useMemFs(t)

	out, _, err := executeCommand(t, "industries")
	require.NoError(t, err)
	assert.Contains(t, out, "Industries")
	assert.Contains(t, out, "26 industries")
	assert.Contains(t, out, "finance")
	assert.Contains(t, out, "general")

	out, _, err = executeCommand(t, "industries", "--json")
	require.NoError(t, err)
	var industries []knowledge.Industry
	require.NoError(t, json.Unmarshal([]byte(out), &industries))
	assert.Len(t, industries, 26)
	assert.Equal(t, knowledge.GeneralIndustry, industries[len(industries)-1].ID)
}

func TestKnowledgeCmds(t *testing.T) {
	fs := useMemFs(t)

	out, _, err := executeCommand(t, "knowledge", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "consistent")

	out, _, err = executeCommand(t, "knowledge", "export", "--format", "json")
	require.NoError(t, err)
	var doc knowledge.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Archetypes, 20)
	assert.NotEmpty(t, doc.Policies)

	_, _, err = executeCommand(t, "knowledge", "export", "--out", "kb.yaml")
	require.NoError(t, err)
	data, err := afero.ReadFile(fs, "kb.yaml")
	require.NoError(t, err)
	exported, err := knowledge.ParseDocument(data)
	require.NoError(t, err)
	want := knowledge.Default().Document()
	assert.Len(t, exported.Archetypes, len(want.Archetypes))
	assert.Len(t, exported.Industries, len(want.Industries))
	assert.Equal(t, want.Policies, exported.Policies)

	_, _, err = executeCommand(t, "knowledge", "export", "--format", "toml")
	assert.Error(t, err)
}
