// Package knowledge holds the static regulatory catalog consulted by the
// compliance stage and by report post-processing. It is initialized once
// and read-only afterwards.
package knowledge

import (
	"fmt"

	"github.com/greenstamp/greenstamp/internal/model"
)

// Base is the in-memory catalog of reporting frameworks
type Base struct {
	order      []string
	frameworks map[string]model.Framework
}

// NewBase builds the catalog from the fixed literal below
func NewBase() *Base {
	b := &Base{
		frameworks: make(map[string]model.Framework),
	}
	for _, fw := range catalog() {
		b.order = append(b.order, fw.ID)
		b.frameworks[fw.ID] = fw
	}
	return b
}

// Frameworks returns all frameworks in catalog order
func (b *Base) Frameworks() []model.Framework {
	out := make([]model.Framework, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.frameworks[id])
	}
	return out
}

// Requirements returns the full framework for an id
func (b *Base) Requirements(frameworkID string) (model.Framework, error) {
	fw, ok := b.frameworks[frameworkID]
	if !ok {
		return model.Framework{}, &model.NotFoundError{Kind: "framework", ID: frameworkID}
	}
	return fw, nil
}

// FlattenItems flattens every requirement item of the given frameworks
// into "<framework>: <item>" standards, in catalog order. Unknown ids are
// skipped, matching how the original endpoints tolerated them.
func (b *Base) FlattenItems(frameworkIDs []string) []string {
	var items []string
	for _, id := range frameworkIDs {
		fw, ok := b.frameworks[id]
		if !ok {
			continue
		}
		for _, req := range fw.Requirements {
			for _, item := range req.Items {
				items = append(items, Standard(fw.ID, item))
			}
		}
	}
	return items
}

// Standard renders the canonical "<framework>: <item>" string used across
// the compliance stage, reconciliation and recommendations
func Standard(frameworkID, item string) string {
	return fmt.Sprintf("%s: %s", frameworkID, item)
}

func catalog() []model.Framework {
	return []model.Framework{
		{
			ID:          "GRI",
			Name:        "Global Reporting Initiative",
			Description: "Comprehensive sustainability reporting standards",
			Version:     "Standards 2021",
			Categories:  []string{"Economic", "Environmental", "Social"},
			Requirements: []model.Requirement{
				{
					ID:    "GRI-2",
					Title: "General Disclosures",
					Items: []string{
						"Organizational details",
						"Reporting practices",
						"Activities and workers",
						"Governance",
						"Strategy and policies",
						"Stakeholder engagement",
					},
				},
				{
					ID:    "GRI-3",
					Title: "Material Topics",
					Items: []string{
						"Process to determine material topics",
						"List of material topics",
						"Management of material topics",
					},
				},
			},
		},
		{
			ID:          "SASB",
			Name:        "Sustainability Accounting Standards Board",
			Description: "Industry-specific sustainability standards",
			Version:     "2021",
			Categories:  []string{"Financial Materiality", "Industry Metrics"},
			Requirements: []model.Requirement{
				{
					ID:    "SASB-ENV",
					Title: "Environmental Metrics",
					Items: []string{
						"GHG emissions",
						"Air quality",
						"Energy management",
						"Water management",
						"Waste management",
					},
				},
				{
					ID:    "SASB-SOC",
					Title: "Social Capital",
					Items: []string{
						"Human rights",
						"Customer privacy",
						"Data security",
						"Access and affordability",
						"Product quality and safety",
					},
				},
			},
		},
		{
			ID:          "TCFD",
			Name:        "Task Force on Climate-related Financial Disclosures",
			Description: "Climate-related financial risk disclosures",
			Version:     "2021",
			Categories:  []string{"Governance", "Strategy", "Risk Management", "Metrics"},
			Requirements: []model.Requirement{
				{
					ID:    "TCFD-GOV",
					Title: "Governance",
					Items: []string{
						"Board oversight",
						"Management role",
					},
				},
				{
					ID:    "TCFD-STRAT",
					Title: "Strategy",
					Items: []string{
						"Climate-related risks and opportunities",
						"Impact on organization",
						"Resilience of strategy",
					},
				},
				{
					ID:    "TCFD-RISK",
					Title: "Risk Management",
					Items: []string{
						"Risk identification process",
						"Risk management process",
						"Integration into overall risk management",
					},
				},
			},
		},
	}
}
