package layout

import "github.com/young1lin/pillrow/internal/pill"

// FilterPills drops pills excluded by the show and hide lists.
// A non-empty show list keeps only the listed ids; hide takes priority over show.
func FilterPills(pills []pill.Pill, show, hide []string) []pill.Pill {
	// If both are empty, return the pills as-is
	if len(show) == 0 && len(hide) == 0 {
		return pills
	}

	showSet := make(map[string]bool, len(show))
	for _, s := range show {
		showSet[s] = true
	}
	hideSet := make(map[string]bool, len(hide))
	for _, h := range hide {
		hideSet[h] = true
	}

	filtered := make([]pill.Pill, 0, len(pills))
	for _, p := range pills {
		if len(show) > 0 && !showSet[p.ID] {
			continue
		}
		if hideSet[p.ID] {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
