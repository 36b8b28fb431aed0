// Package narrative turns assessments into the text shown to users.
// Pure formatting, no decision logic.
package narrative

import (
	"fmt"
	"strings"

	"github.com/plantops/linesight/internal/models"
	"github.com/plantops/linesight/internal/rules"
)

// Render produces the three-section Markdown-style document: bulleted
// findings, bulleted actions in the same order, the single
// time-to-attention line, and the profile's closing note.
func Render(a models.Assessment, profile rules.Profile) string {
	var sb strings.Builder

	sb.WriteString("**Assessment:**\n- ")
	sb.WriteString(strings.Join(a.Findings, "\n- "))

	sb.WriteString(fmt.Sprintf("\n\n**%s:**\n- ", profile.ActionsHeading))
	sb.WriteString(strings.Join(a.Actions, "\n- "))

	sb.WriteString(fmt.Sprintf("\n\n**Estimated Time-to-Attention:** %s", a.TimeToAttention))
	sb.WriteString(fmt.Sprintf("\n\n**Notes:** %s", a.ClosingNote))

	return sb.String()
}
