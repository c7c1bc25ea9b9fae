// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lifetimegps/quiz-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBreakdown outputs a human-readable summary of the score breakdown.
func (p *Printer) PrintBreakdown(breakdown *types.ScoreBreakdown) {
	if breakdown == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Interests:      %5.1f%%\n", breakdown.Interest))
	sb.WriteString(fmt.Sprintf("Work Style:     %5.1f%%\n", breakdown.WorkStyle))
	sb.WriteString(fmt.Sprintf("Cognitive:      %5.1f%%\n", breakdown.Cognitive))
	sb.WriteString(fmt.Sprintf("Social:         %5.1f%%\n", breakdown.Social))
	sb.WriteString(fmt.Sprintf("Motivation:     %5.1f%%\n", breakdown.Motivation))
	sb.WriteString(fmt.Sprintf("Mini-games:     %5.1f%%\n", breakdown.MiniGame))
	sb.WriteString(fmt.Sprintf("Trade careers:  %5.1f%%\n", breakdown.TradeCareer))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Weighted total: %5.1f%%", breakdown.Total))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintMatches outputs the top ranked career matches.
func (p *Printer) PrintMatches(matches []types.RankedMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, match.Title))
		sb.WriteString(fmt.Sprintf("    Match: %.1f%%\n", match.MatchPercentage))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP CAREER MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestions outputs the differentiation questions for flagged clusters.
func (p *Printer) PrintQuestions(questions []types.DifferentiationQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("%s:\n", q.ID))
		sb.WriteString(fmt.Sprintf("  %s\n", q.Text))
		for j, opt := range q.Options {
			sb.WriteString(fmt.Sprintf("  %d) %s\n", j+1, opt.Text))
		}
		if i < len(questions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DIFFERENTIATION QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRefinement outputs the refined matches and any explanations.
func (p *Printer) PrintRefinement(refinement *types.Refinement) {
	if refinement == nil {
		return
	}

	var sb strings.Builder
	count := min(len(refinement.Matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := refinement.Matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s  %.1f%%\n", i+1, match.Title, match.MatchPercentage))
	}

	if len(refinement.Explanations) > 0 {
		sb.WriteString("\nWhy these moved:\n")
		titles := make([]string, 0, len(refinement.Explanations))
		for title := range refinement.Explanations {
			titles = append(titles, title)
		}
		sort.Strings(titles)
		for _, title := range titles {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", title, refinement.Explanations[title]))
		}
	}

	p.printBox("REFINED MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}
