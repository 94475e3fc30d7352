package report

// Template describes one predefined report layout
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Sections    []string `json:"sections"`
}

// Templates returns the static report template catalog
func Templates() []Template {
	return []Template{
		{
			ID:          "standard_esg",
			Name:        "Standard ESG Report",
			Description: "Comprehensive ESG report covering all major aspects",
			Sections: []string{
				"Executive Summary",
				"Environmental Performance",
				"Social Impact",
				"Governance Practices",
				"Risk Assessment",
				"Recommendations",
			},
		},
		{
			ID:          "environmental_focus",
			Name:        "Environmental Impact Report",
			Description: "Detailed analysis of environmental performance",
			Sections: []string{
				"Executive Summary",
				"Carbon Emissions",
				"Energy Usage",
				"Water Management",
				"Waste Management",
				"Environmental Risks",
				"Recommendations",
			},
		},
		{
			ID:          "governance_focus",
			Name:        "Governance Report",
			Description: "Focus on corporate governance and compliance",
			Sections: []string{
				"Executive Summary",
				"Board Structure",
				"Risk Management",
				"Compliance Overview",
				"Ethics and Policies",
				"Recommendations",
			},
		},
	}
}
