package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/labrecon/labrecon/internal/domain/recon"
	"github.com/labrecon/labrecon/internal/domain/reference"
)

// -- Mock Repository --

type mockRepo struct {
	reports map[uuid.UUID]*Report
}

func newMockRepo() *mockRepo {
	return &mockRepo{reports: make(map[uuid.UUID]*Report)}
}

func (m *mockRepo) Create(_ context.Context, r *Report) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	m.reports[r.ID] = r
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Report, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return r, nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Summary, int, error) {
	var items []*Summary
	for _, r := range m.reports {
		items = append(items, summarize(r))
	}
	return items, len(items), nil
}

func (m *mockRepo) ListBySubject(_ context.Context, subjectID uuid.UUID, limit, offset int) ([]*Summary, int, error) {
	var items []*Summary
	for _, r := range m.reports {
		if r.SubjectID != nil && *r.SubjectID == subjectID {
			items = append(items, summarize(r))
		}
	}
	return items, len(items), nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.reports, id)
	return nil
}

func summarize(r *Report) *Summary {
	s := &Summary{
		ID:               r.ID,
		SubjectID:        r.SubjectID,
		FileName:         r.FileName,
		ObservationCount: len(r.Observations),
		CreatedAt:        r.CreatedAt,
	}
	for _, o := range r.Observations {
		if o.Abnormal() {
			s.AbnormalCount++
		}
		if o.Conflict {
			s.ConflictCount++
		}
	}
	return s
}

func newTestService(t *testing.T) (*Service, *mockRepo) {
	t.Helper()
	repo := newMockRepo()
	svc, err := NewService(repo, reference.Default(), recon.DefaultOptions())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

// -- Tests --

func TestReconcileFromCandidates(t *testing.T) {
	svc, _ := newTestService(t)

	result := svc.Reconcile(ReconcileRequest{
		VisionCandidates: []recon.RawCandidate{
			{Name: "Hemoglobin", Value: "14.2", Unit: "g/dL"},
		},
		PatternCandidates: []recon.RawCandidate{
			{Name: "Hemoglobin", Value: "14.2", Unit: "g/dL"},
		},
	})

	if len(result.Observations) != 1 {
		t.Fatalf("got %d observations, want 1", len(result.Observations))
	}
	o := result.Observations[0]
	if o.Analyte != "HGB" || len(o.Sources) != 2 {
		t.Errorf("observation = %+v, want merged HGB from both pathways", o)
	}
	if o.Status != recon.StatusNormal {
		t.Errorf("status = %s, want NORMAL", o.Status)
	}
}

func TestReconcileFromText(t *testing.T) {
	svc, _ := newTestService(t)

	result := svc.Reconcile(ReconcileRequest{
		VisionText:  "Hemoglobin: 14.2 g/dL (13.5-17.5)\nGlucose: 105 mg/dL (70-99)",
		PatternText: "Hemoglobin 14.2 g/dL (13.5-17.5)\nPage 1 of 2",
	})

	if len(result.Observations) != 2 {
		t.Fatalf("got %d observations, want 2: %+v", len(result.Observations), result.Observations)
	}
	byKey := make(map[string]recon.Observation)
	for _, o := range result.Observations {
		byKey[o.Analyte] = o
	}
	if hgb, ok := byKey["HGB"]; !ok || len(hgb.Sources) != 2 {
		t.Errorf("HGB = %+v, want both pathways", byKey["HGB"])
	}
	if gluc, ok := byKey["GLUC"]; !ok || gluc.Status != recon.StatusHigh {
		t.Errorf("GLUC = %+v, want vision-only HIGH", byKey["GLUC"])
	}
}

func TestReconcileCoercesSource(t *testing.T) {
	svc, _ := newTestService(t)

	// A candidate submitted on the vision list with a PATTERN stamp still
	// counts as a vision observation.
	result := svc.Reconcile(ReconcileRequest{
		VisionCandidates: []recon.RawCandidate{
			{Source: recon.SourcePattern, Name: "WBC", Value: "7.8"},
		},
	})
	if len(result.Observations) != 1 {
		t.Fatalf("got %d observations, want 1", len(result.Observations))
	}
	o := result.Observations[0]
	if len(o.Sources) != 1 || o.Sources[0] != recon.SourceVision {
		t.Errorf("sources = %v, want [VISION]", o.Sources)
	}
}

func TestReconcileEmptyRequest(t *testing.T) {
	svc, _ := newTestService(t)
	result := svc.Reconcile(ReconcileRequest{})
	if len(result.Observations) != 0 {
		t.Errorf("empty request produced %+v", result.Observations)
	}
}

func TestIngestPersistsReport(t *testing.T) {
	svc, repo := newTestService(t)
	subject := uuid.New()
	name := "cbc_2024_01.pdf"

	rep, err := svc.Ingest(context.Background(), IngestRequest{
		ReconcileRequest: ReconcileRequest{
			PatternText: "Hemoglobin 11.9 g/dL (13.5-17.5)\nGlucose 105 mg/dL (70-99)",
		},
		SubjectID: &subject,
		FileName:  &name,
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if rep.ID == uuid.Nil {
		t.Error("report was not assigned an id")
	}
	if len(rep.Observations) != 2 {
		t.Fatalf("got %d observations, want 2", len(rep.Observations))
	}

	stored, err := repo.GetByID(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("stored report not found: %v", err)
	}
	if ab := stored.Abnormal(); len(ab) != 2 {
		t.Errorf("abnormal count = %d, want 2 (HGB low, GLUC high)", len(ab))
	}
}

func TestAbnormalSelectsLowAndHigh(t *testing.T) {
	svc, _ := newTestService(t)

	rep, err := svc.Ingest(context.Background(), IngestRequest{
		ReconcileRequest: ReconcileRequest{
			PatternText: "Hemoglobin 14.2 g/dL (13.5-17.5)\nGlucose 105 mg/dL (70-99)",
		},
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	abnormal, err := svc.Abnormal(context.Background(), rep.ID)
	if err != nil {
		t.Fatalf("Abnormal: %v", err)
	}
	if len(abnormal) != 1 || abnormal[0].Analyte != "GLUC" {
		t.Errorf("abnormal = %+v, want only GLUC", abnormal)
	}
}

func TestListBySubject(t *testing.T) {
	svc, _ := newTestService(t)
	subject := uuid.New()

	for i := 0; i < 2; i++ {
		if _, err := svc.Ingest(context.Background(), IngestRequest{
			ReconcileRequest: ReconcileRequest{PatternText: "WBC 7.8 (4.5-11.0)"},
			SubjectID:        &subject,
		}); err != nil {
			t.Fatalf("Ingest: %v", err)
		}
	}
	if _, err := svc.Ingest(context.Background(), IngestRequest{
		ReconcileRequest: ReconcileRequest{PatternText: "WBC 7.8 (4.5-11.0)"},
	}); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	items, total, err := svc.ListBySubject(context.Background(), subject, 20, 0)
	if err != nil {
		t.Fatalf("ListBySubject: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("got %d/%d reports for subject, want 2", len(items), total)
	}
	for _, s := range items {
		if s.ObservationCount != 1 {
			t.Errorf("summary observation count = %d, want 1", s.ObservationCount)
		}
	}
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService(t)
	rep, err := svc.Ingest(context.Background(), IngestRequest{
		ReconcileRequest: ReconcileRequest{PatternText: "WBC 7.8 (4.5-11.0)"},
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if err := svc.Delete(context.Background(), rep.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), rep.ID); err == nil {
		t.Error("report still present after delete")
	}
}
