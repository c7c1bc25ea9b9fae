package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lifetimegps/quiz-engine/internal/schemas"
	"github.com/lifetimegps/quiz-engine/internal/types"
)

// Schema file locations relative to the repository root.
const (
	CareerSchemaPath  = "schemas/career_catalog.schema.json"
	ClusterSchemaPath = "schemas/overlap_clusters.schema.json"
)

// LoadCareers loads the career catalog from a JSON file. When the catalog
// schema can be located the file is validated against it first. Career IDs
// must be unique.
func LoadCareers(path string) ([]types.CareerRecord, error) {
	if schemaPath := schemas.ResolveSchemaPath(CareerSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var careers []types.CareerRecord
	if err := json.Unmarshal(content, &careers); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	if err := checkCareerIDs(careers); err != nil {
		return nil, err
	}
	return careers, nil
}

// LoadClusters loads the overlap cluster definitions from a JSON file and
// cross-checks every member ID and question delta against the catalog.
func LoadClusters(path string, careers []types.CareerRecord) ([]types.OverlapCluster, error) {
	if schemaPath := schemas.ResolveSchemaPath(ClusterSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var clusters []types.OverlapCluster
	if err := json.Unmarshal(content, &clusters); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	if err := checkClusterMembers(clusters, careers); err != nil {
		return nil, err
	}
	return clusters, nil
}

// checkCareerIDs rejects duplicate catalog IDs.
func checkCareerIDs(careers []types.CareerRecord) error {
	seen := make(map[string]bool, len(careers))
	for _, career := range careers {
		if seen[career.ID] {
			return &IntegrityError{Message: fmt.Sprintf("duplicate career ID %q", career.ID)}
		}
		seen[career.ID] = true
	}
	return nil
}

// checkClusterMembers verifies that every cluster member and every question
// delta references a career present in the catalog. Clusters and careers
// share explicit IDs; there is no title matching to go wrong.
func checkClusterMembers(clusters []types.OverlapCluster, careers []types.CareerRecord) error {
	known := make(map[string]bool, len(careers))
	for _, career := range careers {
		known[career.ID] = true
	}

	for _, cluster := range clusters {
		for _, memberID := range cluster.MemberIDs {
			if !known[memberID] {
				return &IntegrityError{Message: fmt.Sprintf(
					"cluster %q references unknown career %q", cluster.ID, memberID)}
			}
		}
		for _, question := range cluster.Questions {
			for _, option := range question.Options {
				for careerID := range option.Deltas {
					if !known[careerID] {
						return &IntegrityError{Message: fmt.Sprintf(
							"question %q option %q references unknown career %q",
							question.ID, option.Text, careerID)}
					}
				}
			}
		}
	}
	return nil
}
