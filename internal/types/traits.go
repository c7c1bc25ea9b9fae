package types

import "strings"

// Category identifies one of the four tallied trait categories.
// The interests sector is handled separately and has no tally.
type Category string

// Category constants
const (
	CategoryWorkStyle  Category = "work_style"
	CategoryCognitive  Category = "cognitive_strength"
	CategorySocial     Category = "social_approach"
	CategoryMotivation Category = "motivation"
)

// Work style trait labels
const (
	TraitHandsOn     = "hands-on"
	TraitCreative    = "creative"
	TraitStructured  = "structured"
	TraitIndependent = "independent"
	TraitTeam        = "team" // umbrella for team_* labels
)

// Cognitive strength trait labels
const (
	TraitAnalytical = "analytical"
	TraitVerbal     = "verbal"
	TraitVisual     = "visual"
	TraitSkills     = "skills"
	TraitNumbers    = "numbers"
)

// Social approach trait labels
const (
	TraitOutgoing = "outgoing"
	TraitReserved = "reserved"
	TraitHelper   = "helper"
	TraitGroup    = "group" // umbrella for group_* labels
)

// Motivation trait labels
const (
	TraitAchievement = "achievement"
	TraitSecurity    = "security"
	TraitImpact      = "impact"
	TraitGrowth      = "growth"
	TraitCommitted   = "committed" // yes answers in the yes/no motivation sector
	TraitExploring   = "exploring" // no answers in the yes/no motivation sector
)

// traitVocabulary is the closed set of recognized trait labels per category.
// Labels outside this set contribute nothing to a tally.
var traitVocabulary = map[Category][]string{
	CategoryWorkStyle:  {TraitHandsOn, TraitCreative, TraitStructured, TraitIndependent, TraitTeam},
	CategoryCognitive:  {TraitAnalytical, TraitVerbal, TraitVisual, TraitSkills, TraitNumbers},
	CategorySocial:     {TraitOutgoing, TraitReserved, TraitHelper, TraitGroup},
	CategoryMotivation: {TraitAchievement, TraitSecurity, TraitImpact, TraitGrowth, TraitCommitted, TraitExploring},
}

// umbrellaPrefixes maps a label prefix to the umbrella trait it rolls up into.
// A label of the form "<prefix>_<suffix>" increments both its own tally and
// the umbrella tally.
var umbrellaPrefixes = map[Category]map[string]string{
	CategoryWorkStyle: {"team": TraitTeam},
	CategorySocial:    {"group": TraitGroup},
}

// CategoryTraits returns the recognized trait labels for a category.
func CategoryTraits(category Category) []string {
	return traitVocabulary[category]
}

// IsKnownTrait reports whether label is a recognized top-level trait for the category.
func IsKnownTrait(category Category, label string) bool {
	for _, t := range traitVocabulary[category] {
		if t == label {
			return true
		}
	}
	return false
}

// UmbrellaFor returns the umbrella trait a prefixed label rolls up into, if any.
// For example, "team_lead" in the work style category returns ("team", true).
func UmbrellaFor(category Category, label string) (string, bool) {
	prefixes := umbrellaPrefixes[category]
	if prefixes == nil {
		return "", false
	}
	idx := strings.Index(label, "_")
	if idx <= 0 {
		return "", false
	}
	umbrella, ok := prefixes[label[:idx]]
	return umbrella, ok
}
