package register

import (
	"fmt"
	"os"
	"strings"

	"github.com/tribunalworks/evidence-register/pkg/filename"
	"github.com/tribunalworks/evidence-register/pkg/hasher"
	"github.com/tribunalworks/evidence-register/pkg/model"
)

// counters carries the identifier values assigned by the driver, keeping
// record assembly a pure function of its inputs.
type counters struct {
	evidID     int
	id         int
	fileNumber int
}

const modifiedStampLayout = "2006-01-02T15:04:05"

// assemble builds a candidate record for one file: filename metadata,
// content digests, stat data and the injected counter values, then the
// derived summary. It does not touch the uniqueness registries.
func (rp *RegisterProcessor) assemble(path string, name string, c counters) (model.EvidenceRecord, error) {
	fields := filename.Parse(name)

	sha256Hex, sha512Hex, sizeBytes, err := hasher.Digest(path)
	if err != nil {
		return model.EvidenceRecord{}, err
	}

	// Modified (A) and (B) are two readings of the same mtime, kept as
	// separate columns to tolerate clock/filesystem discrepancies.
	modifiedA, err := modifiedStamp(path)
	if err != nil {
		return model.EvidenceRecord{}, err
	}
	modifiedB, err := modifiedStamp(path)
	if err != nil {
		return model.EvidenceRecord{}, err
	}

	rec := model.EvidenceRecord{
		EvidID:     c.evidID,
		ID:         c.id,
		FileNumber: c.fileNumber,
		Filename:   name,

		DateFormatted: fields.Date,
		Subject:       fields.Subject,
		MessageID:     fields.MessageID,
		Domain:        fields.Domain,
		EmailAddress:  fields.EmailAddress,

		FileSizeKB: (sizeBytes + 512) / 1024,
		SHA256:     sha256Hex,
		SHA512:     sha512Hex,
		ModifiedA:  modifiedA,
		ModifiedB:  modifiedB,

		Category:    rp.classifier.Classify(name, fields.Subject),
		StoragePath: model.DefaultStoragePath,
	}
	rec.OCRSummary = ocrSummary(&rec)

	return rec, nil
}

func modifiedStamp(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	return info.ModTime().Format(modifiedStampLayout), nil
}

// ocrSummary renders the "Fully detail clean OCR" column: a fixed-order,
// semicolon-joined clause sequence templated entirely from the record's
// own fields. Clauses backed by empty fields are omitted.
func ocrSummary(rec *model.EvidenceRecord) string {
	parts := []string{fmt.Sprintf("Document filename: '%s'", rec.Filename)}

	if rec.FileSizeKB > 0 {
		parts = append(parts, fmt.Sprintf("File size: %d KB", rec.FileSizeKB))
	}
	if rec.DateFormatted != "" {
		parts = append(parts, fmt.Sprintf("Document date: %s", rec.DateFormatted))
	}
	if rec.Subject != "" {
		parts = append(parts, fmt.Sprintf("Subject: %s", rec.Subject))
	}

	parts = append(parts, fmt.Sprintf("Categorized as: %s", rec.Category))

	if rec.MessageID != "" {
		parts = append(parts, fmt.Sprintf("Email Message ID: %s", rec.MessageID))
	}
	if rec.EmailAddress != "" {
		parts = append(parts, fmt.Sprintf("Email address: %s", rec.EmailAddress))
	}
	if rec.Domain != "" {
		parts = append(parts, fmt.Sprintf("Email domain: %s", rec.Domain))
	}

	if rec.SHA256 != "" {
		parts = append(parts, fmt.Sprintf("SHA256 hash: %s", rec.SHA256))
	}
	if rec.SHA512 != "" {
		parts = append(parts, fmt.Sprintf("SHA512 hash: %s", rec.SHA512))
	}

	parts = append(parts, fmt.Sprintf("Storage location: %s", rec.StoragePath))

	if rec.EvidID > 0 {
		parts = append(parts, fmt.Sprintf("Evidence ID: %d", rec.EvidID))
	}
	if rec.ModifiedA != "" {
		parts = append(parts, fmt.Sprintf("Last modified: %s", rec.ModifiedA))
	}

	parts = append(parts,
		"Document integrity verified through cryptographic hashing",
		"Evidence is authenticated and suitable for inclusion in legal proceedings as an exhibit",
		"Chain of custody maintained; document is legally admissible subject to tribunal rules",
	)

	return strings.Join(parts, "; ")
}
