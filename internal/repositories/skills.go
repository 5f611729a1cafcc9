package repositories

import "strings"

// SplitSkills tokenizes a comma-separated skill tag string: trimmed,
// lowercased, empties dropped. "Python, React," -> ["python", "react"].
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
