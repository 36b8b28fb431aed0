package formatter

import "fmt"

// ANSI color codes for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	// Foreground colors
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	Gray    = "\033[90m"

	// Background colors
	BgRed    = "\033[41m"
	BgGreen  = "\033[42m"
	BgYellow = "\033[43m"
)

// Color helpers
func Colorize(color, text string) string {
	return fmt.Sprintf("%s%s%s", color, text, Reset)
}

func BoldColorize(color, text string) string {
	return fmt.Sprintf("%s%s%s%s", Bold, color, text, Reset)
}

func Title(text string) string {
	return BoldColorize(Cyan, text)
}

func SectionHeader(text string) string {
	return BoldColorize(Blue, text)
}

func Success(text string) string {
	return Colorize(Green, text)
}

func Warning(text string) string {
	return Colorize(Yellow, text)
}

func Error(text string) string {
	return Colorize(Red, text)
}

func Info(text string) string {
	return Colorize(Cyan, text)
}

func Muted(text string) string {
	return Colorize(Gray, text)
}

// StatusBadge renders the anomaly state of an assessment.
func StatusBadge(anomalous bool) string {
	if anomalous {
		return fmt.Sprintf("%s%s ANOMALY %s", Bold, BgRed, Reset)
	}
	return fmt.Sprintf("%s%s NOMINAL %s", Bold, BgGreen, Reset)
}

// RULBadge colors the remaining-useful-life estimate by urgency.
func RULBadge(days int) string {
	text := fmt.Sprintf("~%d days", days)
	switch {
	case days <= 5:
		return BoldColorize(Red, "● "+text)
	case days <= 14:
		return BoldColorize(Yellow, "● "+text)
	default:
		return BoldColorize(Green, "● "+text)
	}
}

// SourceBadge marks whether the narrative came from the rule engine or
// the external generator.
func SourceBadge(generatorUsed, fellBack bool) string {
	switch {
	case generatorUsed:
		return BoldColorize(Magenta, "◆ GENERATOR")
	case fellBack:
		return BoldColorize(Yellow, "◆ RULES (FALLBACK)")
	default:
		return BoldColorize(Cyan, "◆ RULES")
	}
}
