package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/termalign/core"
)

func TestRenderTable(t *testing.T) {
	results := []*core.StandardizationResult{
		{
			Term:      "NMDAR",
			Label:     "NMDAR",
			VoteCount: 3,
			Votes: []core.Vote{
				{Method: core.MethodLexical, Label: "NMDAR", Score: 100.0, Accepted: true},
				{Method: core.MethodFuzzy, Label: "NMDAR", Score: 100.0, Accepted: true},
				{Method: core.MethodSemantic, Label: "NMDAR", Score: 100.0, Accepted: true},
			},
		},
		{
			Term:      "Anti-NMDAR Encephalitis",
			Label:     "NMDAR",
			VoteCount: 1,
			Votes: []core.Vote{
				{Method: core.MethodLexical, Label: "Anti-NMDAR Encephalitis", Score: 52.4, Accepted: false},
				{Method: core.MethodFuzzy, Label: "NMDAR", Score: 100.0, Accepted: true},
				{Method: core.MethodSemantic, Label: "Anti-NMDAR Encephalitis", Score: -100.0, Accepted: false},
			},
		},
	}

	rendered := RenderTable(results)

	lines := strings.Split(rendered, "\n")
	require.Greater(t, len(lines), 4, "expected header, separator, and data rows")

	assert.Contains(t, rendered, "Reported Term")
	assert.NotContains(t, rendered, "REPORTED TERM", "header casing is preserved")
	assert.Contains(t, rendered, "Anti-NMDAR Encephalitis")
	assert.Contains(t, rendered, "100.0")
	assert.Contains(t, rendered, "(52.4)", "fallback scores are parenthesized")
	assert.Contains(t, rendered, "(-100.0)")
}

func TestRenderTable_SkipsNilResults(t *testing.T) {
	results := []*core.StandardizationResult{
		nil,
		{
			Term:      "Caspr2",
			Label:     "CASPR2",
			VoteCount: 2,
			Votes: []core.Vote{
				{Method: core.MethodLexical, Label: "Caspr2", Score: 0.0, Accepted: false},
				{Method: core.MethodFuzzy, Label: "CASPR2", Score: 100.0, Accepted: true},
				{Method: core.MethodSemantic, Label: "CASPR2", Score: 91.3, Accepted: true},
			},
		},
	}

	rendered := RenderTable(results)
	assert.Contains(t, rendered, "CASPR2")
	assert.Equal(t, 1, strings.Count(rendered, "Caspr2"))
}

func TestRenderTable_Empty(t *testing.T) {
	rendered := RenderTable(nil)
	assert.Contains(t, rendered, "Reported Term")
}
