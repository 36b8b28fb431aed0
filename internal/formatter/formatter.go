package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/plantops/linesight/internal/models"
)

const (
	divider      = "═══════════════════════════════════════════════════════════════════════════════"
	sectionBreak = "───────────────────────────────────────────────────────────────────────────────"
)

type Formatter struct {
	useColors bool
}

func NewFormatter(useColors bool) *Formatter {
	return &Formatter{
		useColors: useColors,
	}
}

func (f *Formatter) FormatAnalysisResult(result *models.AnalysisResult) string {
	var sb strings.Builder

	// Header
	sb.WriteString("\n")
	sb.WriteString(Colorize(Cyan, divider))
	sb.WriteString("\n")
	sb.WriteString(Title("  🔧 LINESIGHT MAINTENANCE ASSESSMENT"))
	sb.WriteString("\n")
	sb.WriteString(Colorize(Cyan, divider))
	sb.WriteString("\n\n")

	f.writeRequestSummary(&sb, result)
	f.writeFindings(&sb, result.Assessment)
	f.writeActions(&sb, result.Assessment)
	f.writeAttention(&sb, result.Assessment)

	if result.GeneratorUsed || result.FellBack {
		f.writeNarrative(&sb, result)
	}

	// Footer
	sb.WriteString("\n")
	sb.WriteString(Colorize(Cyan, divider))
	sb.WriteString("\n")

	return sb.String()
}

func (f *Formatter) writeRequestSummary(sb *strings.Builder, result *models.AnalysisResult) {
	sb.WriteString(SectionHeader("📋 REQUEST"))
	sb.WriteString("\n")
	sb.WriteString(Colorize(Gray, sectionBreak))
	sb.WriteString("\n")

	a := result.Assessment
	sb.WriteString(fmt.Sprintf("  Domain:      %s\n", Info(a.Domain)))
	if a.Station != "" {
		sb.WriteString(fmt.Sprintf("  Station:     %s\n", Info(a.Station)))
	}
	if result.Request.Issue != "" {
		sb.WriteString(fmt.Sprintf("  Issue:       %s\n", result.Request.Issue))
	}
	sb.WriteString(fmt.Sprintf("  Window:      %s (%d samples)\n",
		Info(fmt.Sprintf("%d min", result.Request.WindowMinutes)), a.WindowSamples))
	if !a.EvaluatedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("  Latest Data: %s\n", Muted(a.EvaluatedAt.Format(time.RFC3339))))
	}
	sb.WriteString(fmt.Sprintf("  Status:      %s  %s\n", StatusBadge(a.Anomalous),
		SourceBadge(result.GeneratorUsed, result.FellBack)))
	sb.WriteString("\n")
}

func (f *Formatter) writeFindings(sb *strings.Builder, a models.Assessment) {
	sb.WriteString(SectionHeader("🎯 ASSESSMENT"))
	sb.WriteString("\n")
	sb.WriteString(Colorize(Gray, sectionBreak))
	sb.WriteString("\n")

	for i, finding := range a.Findings {
		marker := Success("•")
		if a.Anomalous {
			marker = Error("•")
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			Colorize(Yellow, fmt.Sprintf("%d.", i+1)),
			marker,
			finding,
		))
	}
	sb.WriteString("\n")
}

func (f *Formatter) writeActions(sb *strings.Builder, a models.Assessment) {
	sb.WriteString(SectionHeader("💡 RECOMMENDED ACTIONS"))
	sb.WriteString("\n")
	sb.WriteString(Colorize(Gray, sectionBreak))
	sb.WriteString("\n")

	for i, action := range a.Actions {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			Colorize(Yellow, fmt.Sprintf("%d.", i+1)),
			action,
		))
	}
	sb.WriteString("\n")
}

func (f *Formatter) writeAttention(sb *strings.Builder, a models.Assessment) {
	sb.WriteString(SectionHeader("⏰ TIME-TO-ATTENTION"))
	sb.WriteString("\n")
	sb.WriteString(Colorize(Gray, sectionBreak))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  ETA:         %s\n", Warning(a.TimeToAttention)))
	sb.WriteString(fmt.Sprintf("  Est. RUL:    %s\n", RULBadge(a.RULDays)))
	if a.ClosingNote != "" {
		sb.WriteString(fmt.Sprintf("  Notes:       %s\n", Muted(a.ClosingNote)))
	}
	sb.WriteString("\n")
}

func (f *Formatter) writeNarrative(sb *strings.Builder, result *models.AnalysisResult) {
	sb.WriteString(SectionHeader("📝 NARRATIVE"))
	sb.WriteString("\n")
	sb.WriteString(Colorize(Gray, sectionBreak))
	sb.WriteString("\n")
	sb.WriteString(f.indentText(result.Narrative, "  "))
	sb.WriteString("\n")
}

func (f *Formatter) indentText(text string, indent string) string {
	lines := strings.Split(text, "\n")
	var result strings.Builder

	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			result.WriteString(indent)
			result.WriteString(line)
		}
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}
