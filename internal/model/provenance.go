package model

import "time"

// ProvenanceRecord is the stable score/summary/hash object handed off to
// the ledger and the mock store by the disconnected variant
type ProvenanceRecord struct {
	ReportID           string   `json:"report_id"`
	StoragePointer     string   `json:"storage_pointer"` // Content-addressed storage key
	ContentHash        string   `json:"content_hash"`    // SHA-256 of the source bytes
	ESGScore           int      `json:"esg_score"`
	Summary            string   `json:"summary"`
	GreenwashingRisk   string   `json:"greenwashing_risk"` // "Low", "Medium", "High"
	MissingDisclosures []string `json:"missing_disclosures"`
}

// StoredReport is a ProvenanceRecord as persisted by the mock store
type StoredReport struct {
	ProvenanceRecord

	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LedgerReceipt acknowledges a ledger submission
type LedgerReceipt struct {
	TxID      string    `json:"tx_id"`
	Sequence  uint64    `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
}
