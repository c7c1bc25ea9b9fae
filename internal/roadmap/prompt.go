package roadmap

import (
	"fmt"
	"strings"

	"github.com/lifetimegps/quiz-engine/internal/types"
)

// buildPrompt assembles the roadmap generation prompt for one career.
func buildPrompt(career types.CareerRecord) string {
	var sb strings.Builder

	sb.WriteString("You are a career counselor writing a practical roadmap for a student ")
	sb.WriteString("who just completed a career assessment.\n\n")

	sb.WriteString(fmt.Sprintf("Career: %s\n", career.Title))
	if career.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", career.Description))
	}
	if len(career.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Key skills: %s\n", strings.Join(career.Skills, ", ")))
	}
	if career.Salary != "" {
		sb.WriteString(fmt.Sprintf("Typical salary: %s\n", career.Salary))
	}
	if career.Outlook != "" {
		sb.WriteString(fmt.Sprintf("Job outlook: %s\n", career.Outlook))
	}
	if career.ScoringProfile.Trade {
		sb.WriteString("This is a skilled trade; emphasize apprenticeships and certifications ")
		sb.WriteString("over four-year degrees.\n")
	}

	sb.WriteString("\nWrite a step-by-step roadmap in markdown with these sections:\n")
	sb.WriteString("1. Education and training paths (including costs and timelines)\n")
	sb.WriteString("2. Entry-level positions and how to land them\n")
	sb.WriteString("3. Skills to build now, while still in school\n")
	sb.WriteString("4. Five-year growth trajectory\n")
	sb.WriteString("\nKeep it encouraging, concrete, and under 600 words.\n")

	return sb.String()
}
