package narrative

import "strings"

// CondenseHeading prefixes every condensed summary.
const CondenseHeading = "**Top-line Summary**"

// condenseBullets is the fixed number of lines kept by Condense.
const condenseBullets = 3

// Condense extracts the first three bulleted lines of a narrative. If
// the text has fewer than three bullets it falls back to the first
// three non-empty lines in original order. Total: empty input yields
// the heading alone.
func Condense(text string) string {
	lines := strings.Split(text, "\n")

	var bullets []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "- ") {
			bullets = append(bullets, strings.TrimSpace(line))
			if len(bullets) == condenseBullets {
				break
			}
		}
	}

	if len(bullets) < condenseBullets {
		bullets = bullets[:0]
		for _, line := range lines {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				bullets = append(bullets, trimmed)
				if len(bullets) == condenseBullets {
					break
				}
			}
		}
	}

	if len(bullets) == 0 {
		return CondenseHeading
	}
	return CondenseHeading + "\n" + strings.Join(bullets, "\n")
}
