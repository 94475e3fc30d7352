package provenance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greenstamp/greenstamp/internal/model"
)

// Ledger is an append-only registry of provenance records. The in-memory
// implementation stands in for an external immutable store; nothing above
// this interface knows the difference.
type Ledger interface {
	Submit(ctx context.Context, record model.ProvenanceRecord) (model.LedgerReceipt, error)
	Lookup(ctx context.Context, reportID string) (model.ProvenanceRecord, error)
}

// MemoryLedger keeps submissions in insertion order, keyed by report id
type MemoryLedger struct {
	mu      sync.Mutex
	seq     uint64
	records map[string]model.ProvenanceRecord
}

// NewMemoryLedger creates an empty ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{records: make(map[string]model.ProvenanceRecord)}
}

// Submit appends a record and returns its receipt. Resubmitting the same
// report id overwrites the previous entry and consumes a new sequence
// number.
func (l *MemoryLedger) Submit(_ context.Context, record model.ProvenanceRecord) (model.LedgerReceipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	l.records[record.ReportID] = record

	return model.LedgerReceipt{
		TxID:      uuid.NewString(),
		Sequence:  l.seq,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Lookup returns the record for a report id
func (l *MemoryLedger) Lookup(_ context.Context, reportID string) (model.ProvenanceRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.records[reportID]
	if !ok {
		return model.ProvenanceRecord{}, &model.NotFoundError{Kind: "ledger record", ID: reportID}
	}
	return record, nil
}
