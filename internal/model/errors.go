package model

import "fmt"

// ExtractionError means a text source could not be read or decoded
type ExtractionError struct {
	Source string // Path or format that failed
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("extract %s: source unreadable", e.Source)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// InferenceError means an underlying engine call failed or returned an
// unusable shape. The pipeline never retries these.
type InferenceError struct {
	Stage    string // Which analysis stage issued the call
	Provider string
	Err      error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference (%s stage, %s): %v", e.Stage, e.Provider, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// NotFoundError means a lookup key (framework id, report id) is unknown
type NotFoundError struct {
	Kind string // "framework", "report"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
