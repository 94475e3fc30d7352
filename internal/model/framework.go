package model

// Framework is one named, versioned regulatory catalog entry. Loaded once
// at process start, never mutated.
type Framework struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Version      string        `json:"version,omitempty"`
	Categories   []string      `json:"categories,omitempty"`
	Requirements []Requirement `json:"requirements"`
}

// Requirement is one requirement section within a framework
type Requirement struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// FrameworkSummary is the list-view shape returned by the frameworks
// endpoint (no requirement detail)
type FrameworkSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

// Summary strips a framework down to its list view
func (f Framework) Summary() FrameworkSummary {
	return FrameworkSummary{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Categories:  f.Categories,
	}
}
