package types

// interestAreas is the fixed catalog of selectable interest areas.
var interestAreas = map[string]string{
	"technology":      "Technology & Computing",
	"healthcare":      "Healthcare & Medicine",
	"construction":    "Construction & Building",
	"automotive":      "Automotive & Mechanics",
	"electrical":      "Electrical & Energy",
	"culinary":        "Culinary Arts & Food",
	"business":        "Business & Management",
	"finance":         "Finance & Accounting",
	"marketing":       "Marketing & Sales",
	"education":       "Education & Training",
	"arts":            "Arts & Design",
	"music":           "Music & Performance",
	"writing":         "Writing & Communication",
	"science":         "Science & Research",
	"engineering":     "Engineering",
	"law":             "Law & Public Safety",
	"sports":          "Sports & Fitness",
	"nature":          "Nature & Environment",
	"animals":         "Animal Care",
	"travel":          "Travel & Hospitality",
	"social-services": "Social Services & Counseling",
	"media":           "Media & Entertainment",
}

// tradeInterests are the interest areas that signal affinity for skilled
// trade careers and activate the trade-career bonus.
var tradeInterests = map[string]bool{
	"construction": true,
	"automotive":   true,
	"electrical":   true,
	"culinary":     true,
}

// InterestLabel returns the display label for an interest ID.
// The second return value is false for unknown IDs.
func InterestLabel(id string) (string, bool) {
	label, ok := interestAreas[id]
	return label, ok
}

// IsTradeInterest reports whether the interest area signals trade affinity.
func IsTradeInterest(id string) bool {
	return tradeInterests[id]
}

// InterestAreaCount returns the size of the interest area catalog.
func InterestAreaCount() int {
	return len(interestAreas)
}
