// Command import_catalog builds career catalog entries from occupation
// profile pages. It fetches each URL, extracts the page text, asks the LLM
// to produce a structured career record, and writes the combined catalog
// JSON, validated against the catalog schema.
//
// Usage:
//
//	go run cmd/tools/import_catalog/main.go -urls urls.txt -out data/career_catalog.json
//
// Requires GEMINI_API_KEY environment variable to be set.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lifetimegps/quiz-engine/internal/fetch"
	"github.com/lifetimegps/quiz-engine/internal/llm"
	"github.com/lifetimegps/quiz-engine/internal/schemas"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

const maxConcurrentFetches = 4

func main() {
	urlsPath := flag.String("urls", "", "Path to a file with one occupation page URL per line (required)")
	outPath := flag.String("out", "data/career_catalog.json", "Path to output catalog JSON file")
	useBrowser := flag.Bool("browser", false, "Fall back to headless Chrome for JavaScript-rendered pages")
	flag.Parse()

	if *urlsPath == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -urls flag is required")
		os.Exit(1)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "ERROR: GEMINI_API_KEY environment variable not set")
		os.Exit(1)
	}

	urls, err := readURLs(*urlsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: no URLs found in input file")
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create LLM client: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	fmt.Printf("Importing %d occupation pages...\n\n", len(urls))

	var mu sync.Mutex
	var careers []types.CareerRecord

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentFetches)

	for _, url := range urls {
		group.Go(func() error {
			career, err := importOne(groupCtx, client, url, *useBrowser)
			if err != nil {
				// A single bad page should not sink the whole import
				fmt.Fprintf(os.Stderr, "WARN: skipping %s: %v\n", url, err)
				return nil
			}
			mu.Lock()
			careers = append(careers, *career)
			mu.Unlock()
			fmt.Printf("  imported %s (%s)\n", career.Title, career.ID)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: import failed: %v\n", err)
		os.Exit(1)
	}

	if len(careers) == 0 {
		fmt.Fprintln(os.Stderr, "ERROR: no careers imported")
		os.Exit(1)
	}

	// Deterministic output ordering
	sort.Slice(careers, func(i, j int) bool { return careers[i].ID < careers[j].ID })

	output, err := json.MarshalIndent(careers, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to marshal catalog: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, output, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write %s: %v\n", *outPath, err)
		os.Exit(1)
	}

	// Validate the written catalog against the schema
	schemaPath := schemas.ResolveSchemaPath("schemas/career_catalog.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARN: catalog validation failed: %v\n", err)
		}
	}

	fmt.Printf("\nWrote %d careers to %s\n", len(careers), *outPath)
}

// importOne fetches one occupation page and extracts a career record.
func importOne(ctx context.Context, client llm.Client, url string, useBrowser bool) (*types.CareerRecord, error) {
	result, err := fetch.URL(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.CareerPageSelectors())
	if err != nil {
		return nil, err
	}

	// JavaScript-rendered pages produce near-empty extractions
	if useBrowser && fetch.ShouldUseBrowser(text) {
		html, err := fetch.WithBrowser(ctx, url, 30*time.Second, nil)
		if err != nil {
			return nil, err
		}
		text, err = fetch.ExtractMainText(html, fetch.CareerPageSelectors())
		if err != nil {
			return nil, err
		}
	}

	salary, outlook, err := fetch.ExtractSalaryAndOutlook(result.HTML)
	if err != nil {
		return nil, err
	}

	response, err := client.GenerateJSON(ctx, buildExtractionPrompt(text, salary, outlook), llm.TierStandard)
	if err != nil {
		return nil, err
	}

	var career types.CareerRecord
	if err := json.Unmarshal([]byte(response), &career); err != nil {
		return nil, fmt.Errorf("LLM returned invalid career JSON: %w", err)
	}
	if career.ID == "" || career.Title == "" {
		return nil, fmt.Errorf("LLM career record is missing id or title")
	}
	return &career, nil
}

// buildExtractionPrompt asks the LLM to turn page text into a career record.
func buildExtractionPrompt(pageText, salary, outlook string) string {
	var sb strings.Builder
	sb.WriteString("Extract a career catalog record from this occupation profile page.\n\n")
	sb.WriteString("Return ONLY a JSON object with these fields:\n")
	sb.WriteString(`  id (kebab-case slug), title, description (one sentence),`)
	sb.WriteString(" skills (string array), salary, outlook, category,\n")
	sb.WriteString("  scoring_profile: {work_style, cognitive_strength, social_approach, motivation")
	sb.WriteString(" (each a map of trait label to weight 0-1), interests (string array), trade (boolean)}\n\n")
	sb.WriteString("Recognized trait labels:\n")
	sb.WriteString("  work_style: hands-on, creative, structured, independent, team\n")
	sb.WriteString("  cognitive_strength: analytical, verbal, visual, skills, numbers\n")
	sb.WriteString("  social_approach: outgoing, reserved, helper, group\n")
	sb.WriteString("  motivation: achievement, security, impact, growth\n\n")
	if salary != "" {
		sb.WriteString(fmt.Sprintf("Known salary: %s\n", salary))
	}
	if outlook != "" {
		sb.WriteString(fmt.Sprintf("Known outlook: %s\n", outlook))
	}
	sb.WriteString("\nPage text:\n")
	sb.WriteString(pageText)
	return sb.String()
}

// readURLs reads one URL per line, skipping blanks and # comments.
func readURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read URL file: %w", err)
	}
	return urls, nil
}
