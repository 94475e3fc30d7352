// Package report layers derived scoring and human-readable assembly on
// top of raw pipeline results: per-framework compliance scores, report
// completeness and quality heuristics, and section building.
package report

import (
	"fmt"
	"strings"

	"github.com/greenstamp/greenstamp/internal/knowledge"
	"github.com/greenstamp/greenstamp/internal/model"
)

// CheckRequirements reconciles a ComplianceResult against the requested
// frameworks. Every flattened requirement lands in exactly one of three
// buckets: met, missing, or partial. Partial is rebuilt here by set
// subtraction; the compliance stage itself never emits it.
func CheckRequirements(base *knowledge.Base, compliance model.ComplianceResult, frameworkIDs []string) (model.RequirementCheck, error) {
	check := model.RequirementCheck{
		MetRequirements:     []string{},
		MissingRequirements: []string{},
		PartialRequirements: []string{},
		FrameworkScores:     map[string]float64{},
	}

	met := make(map[string]bool, len(compliance.StandardsMet))
	for _, s := range compliance.StandardsMet {
		met[s] = true
	}
	violated := make(map[string]bool, len(compliance.PotentialViolations))
	for _, s := range compliance.PotentialViolations {
		violated[s] = true
	}

	for _, standard := range base.FlattenItems(frameworkIDs) {
		switch {
		case met[standard]:
			check.MetRequirements = append(check.MetRequirements, standard)
		case violated[standard]:
			check.MissingRequirements = append(check.MissingRequirements, standard)
		default:
			check.PartialRequirements = append(check.PartialRequirements, standard)
		}
	}

	for _, id := range frameworkIDs {
		fw, err := base.Requirements(id)
		if err != nil {
			// Unknown ids are tolerated in the flatten pass too
			continue
		}

		total := 0
		metCount := 0
		for _, req := range fw.Requirements {
			for _, item := range req.Items {
				total++
				if met[knowledge.Standard(fw.ID, item)] {
					metCount++
				}
			}
		}
		if total == 0 {
			return model.RequirementCheck{}, fmt.Errorf("framework %s has no requirement items, score undefined", fw.ID)
		}
		check.FrameworkScores[fw.ID] = 100 * float64(metCount) / float64(total)
	}

	return check, nil
}

// titleCase turns a snake_case identifier into a display name
func titleCase(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
