package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantops/linesight/internal/models"
	"github.com/plantops/linesight/internal/rules"
)

func TestRenderSectionOrder(t *testing.T) {
	a := models.Assessment{
		Domain:          rules.DomainEngine,
		Findings:        []string{"Possible bearing wear or misalignment (high vibration)."},
		Actions:         []string{"Schedule bearing inspection within next 24–48 hours; reduce RPM by 10% temporarily."},
		TimeToAttention: "Likely failure within 3–5 days if untreated.",
		ClosingNote:     rules.Engine.ClosingNote,
	}

	text := Render(a, rules.Engine)

	assessmentIdx := strings.Index(text, "**Assessment:**")
	actionsIdx := strings.Index(text, "**Recommended Actions (next 24–48h):**")
	etaIdx := strings.Index(text, "**Estimated Time-to-Attention:**")
	notesIdx := strings.Index(text, "**Notes:**")

	require.GreaterOrEqual(t, assessmentIdx, 0)
	assert.Greater(t, actionsIdx, assessmentIdx)
	assert.Greater(t, etaIdx, actionsIdx)
	assert.Greater(t, notesIdx, etaIdx)

	assert.Contains(t, text, "- Possible bearing wear")
	assert.Contains(t, text, "Likely failure within 3–5 days if untreated.")
}

func TestRenderBulletCountsMatch(t *testing.T) {
	a := models.Assessment{
		Findings:        []string{"finding one", "finding two", "finding three"},
		Actions:         []string{"action one", "action two", "action three"},
		TimeToAttention: "N/A",
		ClosingNote:     "note",
	}

	text := Render(a, rules.Engine)

	assert.Equal(t, 6, strings.Count(text, "\n- "),
		"every finding and action renders as one bullet")
}

func TestRenderDeterministic(t *testing.T) {
	a := models.Assessment{
		Findings:        []string{"f"},
		Actions:         []string{"a"},
		TimeToAttention: "N/A",
		ClosingNote:     "note",
	}
	assert.Equal(t, Render(a, rules.Engine), Render(a, rules.Engine))
}
