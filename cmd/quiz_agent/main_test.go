package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifetimegps/quiz-engine/internal/types"
)

const testResponsesFixture = `{
  "sectors": {
    "work_style": {"q1": "hands-on", "q2": "team_sports", "q3": "hands-on"},
    "motivation": {"q1": "impact", "q2": true}
  },
  "interests": "electrical,construction"
}`

const testCareersFixture = `[
  {
    "id": "electrician",
    "title": "Electrician",
    "description": "Installs and maintains electrical systems.",
    "skills": ["wiring", "troubleshooting"],
    "salary": "$50,000 - $85,000",
    "outlook": "Growing",
    "category": "skilled-trades",
    "scoring_profile": {
      "work_style": {"hands-on": 1.0},
      "interests": ["electrical", "construction"],
      "trade": true
    }
  },
  {
    "id": "marketing-manager",
    "title": "Marketing Manager",
    "description": "Plans and runs marketing campaigns.",
    "skills": ["communication", "strategy"],
    "salary": "$60,000 - $120,000",
    "outlook": "Stable",
    "category": "business",
    "scoring_profile": {
      "work_style": {"creative": 0.8, "team": 0.6},
      "interests": ["marketing", "business"]
    }
  }
]`

const testClustersFixture = `[
  {
    "id": "hands-on-vs-business",
    "category": "mixed",
    "member_ids": ["electrician", "marketing-manager"],
    "questions": [
      {
        "id": "bm-q1",
        "text": "Which task sounds best?",
        "options": [
          {"text": "Wiring a panel", "deltas": {"electrician": 25}},
          {"text": "Running a campaign", "deltas": {"marketing-manager": 25}}
        ]
      }
    ]
  }
]`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScoreCommand_ProducesBreakdown(t *testing.T) {
	dir := t.TempDir()
	scoreResponses = writeTestFile(t, dir, "responses.json", testResponsesFixture)
	scoreOutput = filepath.Join(dir, "breakdown.json")
	scoreVerbose = false

	require.NoError(t, runScore(nil, nil))

	content, err := os.ReadFile(scoreOutput)
	require.NoError(t, err)

	var breakdown types.ScoreBreakdown
	require.NoError(t, json.Unmarshal(content, &breakdown))
	assert.Greater(t, breakdown.Total, 0.0)
	assert.Greater(t, breakdown.WorkStyle, 0.0)
}

func TestScoreCommand_MissingResponsesFile(t *testing.T) {
	scoreResponses = filepath.Join(t.TempDir(), "nope.json")
	scoreOutput = ""

	assert.Error(t, runScore(nil, nil))
}

func TestScoreCommand_EmptyResponses(t *testing.T) {
	dir := t.TempDir()
	scoreResponses = writeTestFile(t, dir, "responses.json", `{"sectors": {}}`)
	scoreOutput = filepath.Join(dir, "breakdown.json")

	assert.Error(t, runScore(nil, nil))
}

func TestRankCommand_ProducesMatches(t *testing.T) {
	dir := t.TempDir()
	rankResponses = writeTestFile(t, dir, "responses.json", testResponsesFixture)
	rankCareers = writeTestFile(t, dir, "careers.json", testCareersFixture)
	rankOutput = filepath.Join(dir, "matches.json")
	rankTopN = 5
	rankVerbose = false

	require.NoError(t, runRank(nil, nil))

	content, err := os.ReadFile(rankOutput)
	require.NoError(t, err)

	var matches []types.RankedMatch
	require.NoError(t, json.Unmarshal(content, &matches))
	require.Len(t, matches, 2)
	assert.Equal(t, "electrician", matches[0].CareerID)
}

func TestDetectOverlapsCommand_FlagsCluster(t *testing.T) {
	dir := t.TempDir()
	detectMatches = writeTestFile(t, dir, "matches.json", `[
		{"career_id": "electrician", "title": "Electrician", "match_percentage": 80},
		{"career_id": "marketing-manager", "title": "Marketing Manager", "match_percentage": 75}
	]`)
	detectCareers = writeTestFile(t, dir, "careers.json", testCareersFixture)
	detectClusters = writeTestFile(t, dir, "clusters.json", testClustersFixture)
	detectOutput = filepath.Join(dir, "overlaps.json")
	detectVerbose = false

	require.NoError(t, runDetectOverlaps(nil, nil))

	content, err := os.ReadFile(detectOutput)
	require.NoError(t, err)

	var output struct {
		FlaggedClusters []string                        `json:"flagged_clusters"`
		Questions       []types.DifferentiationQuestion `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(content, &output))
	assert.Equal(t, []string{"hands-on-vs-business"}, output.FlaggedClusters)
	require.Len(t, output.Questions, 1)
	assert.Equal(t, "bm-q1", output.Questions[0].ID)
}

func TestRefineCommand_AppliesAnswers(t *testing.T) {
	dir := t.TempDir()
	refineMatches = writeTestFile(t, dir, "matches.json", `[
		{"career_id": "marketing-manager", "title": "Marketing Manager", "match_percentage": 80},
		{"career_id": "electrician", "title": "Electrician", "match_percentage": 75}
	]`)
	refineCareers = writeTestFile(t, dir, "careers.json", testCareersFixture)
	refineClusters = writeTestFile(t, dir, "clusters.json", testClustersFixture)
	refineAnswers = writeTestFile(t, dir, "answers.json", `{"bm-q1": 0}`)
	refineSkip = false
	refineOutput = filepath.Join(dir, "refinement.json")
	refineVerbose = false

	require.NoError(t, runRefine(nil, nil))

	content, err := os.ReadFile(refineOutput)
	require.NoError(t, err)

	var refinement types.Refinement
	require.NoError(t, json.Unmarshal(content, &refinement))
	// Electrician gets the capped +15 boost and now leads
	require.Len(t, refinement.Matches, 2)
	assert.Equal(t, "electrician", refinement.Matches[0].CareerID)
	assert.InDelta(t, 90.0, refinement.Matches[0].MatchPercentage, 1e-6)
	assert.Contains(t, refinement.Explanations, "Electrician")
}

func TestRefineCommand_Skip(t *testing.T) {
	dir := t.TempDir()
	refineMatches = writeTestFile(t, dir, "matches.json", `[
		{"career_id": "marketing-manager", "title": "Marketing Manager", "match_percentage": 80}
	]`)
	refineCareers = writeTestFile(t, dir, "careers.json", testCareersFixture)
	refineClusters = writeTestFile(t, dir, "clusters.json", testClustersFixture)
	refineAnswers = ""
	refineSkip = true
	refineOutput = filepath.Join(dir, "refinement.json")

	require.NoError(t, runRefine(nil, nil))

	content, err := os.ReadFile(refineOutput)
	require.NoError(t, err)

	var refinement types.Refinement
	require.NoError(t, json.Unmarshal(content, &refinement))
	require.Len(t, refinement.Matches, 1)
	assert.Equal(t, 80.0, refinement.Matches[0].MatchPercentage)
	assert.Empty(t, refinement.Explanations)
}

func TestRefineCommand_RequiresAnswersOrSkip(t *testing.T) {
	refineMatches = "matches.json"
	refineAnswers = ""
	refineSkip = false

	assert.Error(t, runRefine(nil, nil))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, buf.String(), "quiz_agent")
}
