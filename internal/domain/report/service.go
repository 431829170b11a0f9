package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/labrecon/labrecon/internal/domain/recon"
	"github.com/labrecon/labrecon/internal/domain/reference"
	"github.com/labrecon/labrecon/internal/platform/extract"
)

// Service runs the two extraction pathways and the reconciliation engine,
// and persists the results.
type Service struct {
	repo    Repository
	engine  *recon.Engine
	pattern *extract.PatternExtractor
	vision  *extract.VisionExtractor
}

func NewService(repo Repository, kb *reference.Registry, opts recon.Options) (*Service, error) {
	engine, err := recon.NewEngine(kb, opts)
	if err != nil {
		return nil, err
	}
	return &Service{
		repo:    repo,
		engine:  engine,
		pattern: extract.NewPatternExtractor(kb),
		vision:  extract.NewVisionExtractor(),
	}, nil
}

// ReconcileRequest carries the raw material for one reconciliation run.
// Callers may submit pre-extracted candidates, raw pathway text, or both;
// text is run through the matching extractor and the candidate lists are
// concatenated per pathway.
type ReconcileRequest struct {
	VisionText        string               `json:"vision_text,omitempty"`
	PatternText       string               `json:"pattern_text,omitempty"`
	VisionCandidates  []recon.RawCandidate `json:"vision_candidates,omitempty"`
	PatternCandidates []recon.RawCandidate `json:"pattern_candidates,omitempty"`
}

// IngestRequest is a reconciliation run whose result is persisted.
type IngestRequest struct {
	ReconcileRequest
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	FileName  *string    `json:"file_name,omitempty"`
	Note      *string    `json:"note,omitempty"`
}

// Reconcile runs the pipeline without persisting anything. Empty input is
// not an error; it produces an empty result.
func (s *Service) Reconcile(req ReconcileRequest) recon.Result {
	vision := append([]recon.RawCandidate(nil), req.VisionCandidates...)
	if req.VisionText != "" {
		vision = append(vision, s.vision.Extract(req.VisionText)...)
	}
	pattern := append([]recon.RawCandidate(nil), req.PatternCandidates...)
	if req.PatternText != "" {
		pattern = append(pattern, s.pattern.Extract(req.PatternText)...)
	}

	// The pathway a candidate arrived through is authoritative over
	// whatever source the caller stamped on it.
	for i := range vision {
		vision[i].Source = recon.SourceVision
	}
	for i := range pattern {
		pattern[i].Source = recon.SourcePattern
	}

	return s.engine.Reconcile(vision, pattern)
}

// Ingest reconciles and stores the result as a new report.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (*Report, error) {
	result := s.Reconcile(req.ReconcileRequest)
	rep := &Report{
		SubjectID:    req.SubjectID,
		FileName:     req.FileName,
		Note:         req.Note,
		Observations: result.Observations,
	}
	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}
	return rep, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Report, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Summary, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*Summary, int, error) {
	return s.repo.ListBySubject(ctx, subjectID, limit, offset)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Abnormal returns the stored observations of a report whose status is LOW
// or HIGH.
func (s *Service) Abnormal(ctx context.Context, id uuid.UUID) ([]recon.Observation, error) {
	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rep.Abnormal(), nil
}
