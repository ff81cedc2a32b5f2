package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LMKidston/meta-agent1/internal/recommend"
)

func TestFrameworksCmd_Quiet(t *testing.T) {
	useMemFs(t)

	tests := []struct {
		name     string
		agent    string
		industry string
	}{
		{"both", "developer", "finance"},
		{"agent only", "therapist", ""},
		{"industry only", "", "healthcare"},
		{"neither", "", ""},
		{"unknown agent", "astronaut", "finance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, "frameworks", "--agent", tt.agent, "--industry", tt.industry, "--quiet")
			require.NoError(t, err)

			want := recommend.SelectFrameworks(tt.agent, tt.industry)
			got := strings.Split(strings.TrimSpace(out), "\n")
			assert.Equal(t, want, got)
		})
	}
}

func TestFrameworksCmd_JSON(t *testing.T) {
	useMemFs(t)

	out, _, err := executeCommand(t, "frameworks", "--agent", "developer", "--industry", "finance", "--json")
	require.NoError(t, err)

	var res recommend.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, recommend.CaseBoth, res.Case)
	last := res.Entries[len(res.Entries)-1]
	assert.Equal(t, "Technical Analysis", last.Methodology)
	assert.Equal(t, recommend.SourceIndustry, last.Source)
}

func TestFrameworksCmd_Explain(t *testing.T) {
	useMemFs(t)

	out, _, err := executeCommand(t, "frameworks", "-a", "developer", "-i", "finance", "--explain")
	require.NoError(t, err)
	assert.Contains(t, out, "case: both")
	assert.Contains(t, out, "from archetype")
	assert.Contains(t, out, "from industry")
}

func TestFrameworksCmd_WatchNeedsOverlay(t *testing.T) {
	useMemFs(t)

	_, _, err := executeCommand(t, "frameworks", "--agent", "developer", "--watch", "--quiet")
	require.Error(t, err)
	assert.Contains(t, userMessage(err), "knowledge overlay")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestFrameworksCmd_JSONWriteErrorIsLogged(t *testing.T) {
	useMemFs(t)
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var errOut bytes.Buffer
	rootCmd.SetOut(failingWriter{})
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"frameworks", "--agent", "developer", "--industry", "finance", "--json"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, errOut.String(), "print recommendation")
	assert.Contains(t, errOut.String(), "stdout closed")
}
