package register

import (
	"github.com/tribunalworks/evidence-register/pkg/model"
)

// Rejection reason codes surfaced in logs and the run summary.
const (
	reasonMissingRequiredField = "missing_required_field"
	reasonInvalidType          = "invalid_type"
	reasonDuplicateEvidID      = "duplicate_evid_id"
	reasonDuplicateFilename    = "duplicate_filename"
	reasonDuplicateID          = "duplicate_id"
	reasonDuplicateFileNumber  = "duplicate_file_number"
	reasonUnreadableFile       = "unreadable_file"
)

// registry owns the per-run uniqueness sets for the four identifying
// fields. There is exactly one sequential writer, so no locking.
type registry struct {
	evidIDs     map[int]struct{}
	filenames   map[string]struct{}
	ids         map[int]struct{}
	fileNumbers map[int]struct{}
}

func newRegistry() *registry {
	return &registry{
		evidIDs:     map[int]struct{}{},
		filenames:   map[string]struct{}{},
		ids:         map[int]struct{}{},
		fileNumbers: map[int]struct{}{},
	}
}

// validate applies the row checklist in order; the first failure wins.
// It does not mutate the registry — call commit after acceptance.
func (r *registry) validate(rec *model.EvidenceRecord) (string, bool) {
	if rec.EvidID == 0 || rec.ID == 0 || rec.FileNumber == 0 || rec.Filename == "" {
		return reasonMissingRequiredField, false
	}
	if rec.EvidID < 0 || rec.ID < 0 || rec.FileNumber < 0 {
		return reasonInvalidType, false
	}

	if _, seen := r.evidIDs[rec.EvidID]; seen {
		return reasonDuplicateEvidID, false
	}
	if _, seen := r.filenames[rec.Filename]; seen {
		return reasonDuplicateFilename, false
	}
	if _, seen := r.ids[rec.ID]; seen {
		return reasonDuplicateID, false
	}
	if _, seen := r.fileNumbers[rec.FileNumber]; seen {
		return reasonDuplicateFileNumber, false
	}

	return "", true
}

// commit marks an accepted record's identifying values as seen. Must run
// before the next candidate is validated so same-run duplicates are caught.
func (r *registry) commit(rec *model.EvidenceRecord) {
	r.evidIDs[rec.EvidID] = struct{}{}
	r.filenames[rec.Filename] = struct{}{}
	r.ids[rec.ID] = struct{}{}
	r.fileNumbers[rec.FileNumber] = struct{}{}
}
