package provenance

import (
	"context"

	"github.com/google/uuid"

	"github.com/greenstamp/greenstamp/internal/analyze"
	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/model"
)

// Registrar runs the full registration flow for an uploaded report:
// score the text, hash the source file, submit the record to the ledger
// and persist it in the store.
type Registrar struct {
	assessor   *Assessor
	summarizer inference.Summarizer
	ledger     Ledger
	store      *Store
}

// NewRegistrar wires the registration flow
func NewRegistrar(engine inference.Engine, ledger Ledger, store *Store) *Registrar {
	return &Registrar{
		assessor:   NewAssessor(engine),
		summarizer: engine,
		ledger:     ledger,
		store:      store,
	}
}

// Store exposes the underlying report store
func (r *Registrar) Store() *Store {
	return r.store
}

// Register processes one uploaded report. The source file at path is
// hashed as-is; text is its already-extracted content.
func (r *Registrar) Register(ctx context.Context, path string, text model.ExtractedText) (model.StoredReport, model.LedgerReceipt, error) {
	hash, err := HashFile(path)
	if err != nil {
		return model.StoredReport{}, model.LedgerReceipt{}, err
	}

	assessment, err := r.assessor.Assess(ctx, string(text))
	if err != nil {
		return model.StoredReport{}, model.LedgerReceipt{}, err
	}

	summary, err := r.summarizer.Summarize(ctx, string(text), analyze.SummaryMinLength, analyze.SummaryMaxLength)
	if err != nil {
		return model.StoredReport{}, model.LedgerReceipt{}, err
	}

	record := model.ProvenanceRecord{
		ReportID:           "report_" + uuid.NewString(),
		StoragePointer:     "cas://" + hash,
		ContentHash:        hash,
		ESGScore:           assessment.ESGScore,
		Summary:            summary,
		GreenwashingRisk:   assessment.GreenwashingRisk,
		MissingDisclosures: assessment.MissingDisclosures,
	}

	receipt, err := r.ledger.Submit(ctx, record)
	if err != nil {
		return model.StoredReport{}, model.LedgerReceipt{}, err
	}

	return r.store.Create(record), receipt, nil
}
