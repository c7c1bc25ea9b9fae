package aggregation

import (
	"strings"

	"github.com/lifetimegps/quiz-engine/internal/types"
)

// MaxSelectedInterests bounds how many interest areas one session may select.
const MaxSelectedInterests = 5

// interestPercentages is the fixed decreasing sequence assigned by selection
// order: the first choice scores highest.
var interestPercentages = [MaxSelectedInterests]float64{95, 88, 82, 77, 73}

// ParseInterests converts a comma-separated list of selected interest IDs
// into interest entries with percentages assigned by selection order.
// Unknown IDs and duplicates are skipped, selections beyond the maximum are
// dropped, and unselected interests are omitted entirely.
func ParseInterests(selected string) []types.InterestEntry {
	entries := []types.InterestEntry{}
	if strings.TrimSpace(selected) == "" {
		return entries
	}

	seen := map[string]bool{}
	for _, part := range strings.Split(selected, ",") {
		id := strings.TrimSpace(part)
		if id == "" || seen[id] {
			continue
		}
		label, ok := types.InterestLabel(id)
		if !ok {
			continue
		}
		seen[id] = true
		entries = append(entries, types.InterestEntry{
			InterestID: id,
			Label:      label,
			Percentage: interestPercentages[len(entries)],
		})
		if len(entries) == MaxSelectedInterests {
			break
		}
	}
	return entries
}
