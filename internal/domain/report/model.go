package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/labrecon/labrecon/internal/domain/recon"
)

// Report is one reconciled blood test report, persisted with the full set of
// merged observations the engine produced for it.
type Report struct {
	ID           uuid.UUID           `db:"id" json:"id"`
	SubjectID    *uuid.UUID          `db:"subject_id" json:"subject_id,omitempty"`
	FileName     *string             `db:"file_name" json:"file_name,omitempty"`
	Note         *string             `db:"note" json:"note,omitempty"`
	Observations []recon.Observation `json:"observations"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
}

// Abnormal returns the stored observations with LOW or HIGH status.
func (r *Report) Abnormal() []recon.Observation {
	var out []recon.Observation
	for _, o := range r.Observations {
		if o.Abnormal() {
			out = append(out, o)
		}
	}
	return out
}

// Summary is the list-view projection of a report: header fields plus
// counts, without the observation rows.
type Summary struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	SubjectID        *uuid.UUID `db:"subject_id" json:"subject_id,omitempty"`
	FileName         *string    `db:"file_name" json:"file_name,omitempty"`
	ObservationCount int        `db:"observation_count" json:"observation_count"`
	AbnormalCount    int        `db:"abnormal_count" json:"abnormal_count"`
	ConflictCount    int        `db:"conflict_count" json:"conflict_count"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}
