package model

import "strconv"

// Defaults applied when upstream data does not supply a value.
const (
	DefaultCategory    = "Document"
	DefaultStoragePath = "Root"
)

// Columns is the canonical register header. Serialization order is fixed
// and must match Row() exactly.
var Columns = []string{
	"EVID ID",
	"Filename",
	"Date Formatted",
	"Subject",
	"Message ID",
	"Domain",
	"Email Address",
	"File Size (KB)",
	"SHA256",
	"SHA512",
	"file_category",
	"Raw URL",
	"storage_path",
	"ID",
	"file_number",
	"Modified (A)",
	"Modified (B)",
	"Fully detail clean OCR",
}

type EvidenceRecord struct {
	// Identifiers, each unique across a run
	EvidID     int    `json:"evid_id"`
	ID         int    `json:"id"`
	FileNumber int    `json:"file_number"`
	Filename   string `json:"filename"`

	// Metadata derived from the filename
	DateFormatted string `json:"date_formatted"`
	Subject       string `json:"subject"`
	MessageID     string `json:"message_id"`
	Domain        string `json:"domain"`
	EmailAddress  string `json:"email_address"`

	// File content/attributes
	FileSizeKB int64  `json:"file_size_kb"`
	SHA256     string `json:"sha256"`
	SHA512     string `json:"sha512"`
	ModifiedA  string `json:"modified_a"`
	ModifiedB  string `json:"modified_b"`

	// Classification and storage
	Category    string `json:"file_category"`
	RawURL      string `json:"raw_url"`
	StoragePath string `json:"storage_path"`

	// Templated legal summary, derived from the fields above only
	OCRSummary string `json:"ocr_summary"`
}

// Row projects the record into Columns order. Unknown values serialize as
// empty fields, never as placeholder strings.
func (rec *EvidenceRecord) Row() []string {
	return []string{
		strconv.Itoa(rec.EvidID),
		rec.Filename,
		rec.DateFormatted,
		rec.Subject,
		rec.MessageID,
		rec.Domain,
		rec.EmailAddress,
		strconv.FormatInt(rec.FileSizeKB, 10),
		rec.SHA256,
		rec.SHA512,
		rec.Category,
		rec.RawURL,
		rec.StoragePath,
		strconv.Itoa(rec.ID),
		strconv.Itoa(rec.FileNumber),
		rec.ModifiedA,
		rec.ModifiedB,
		rec.OCRSummary,
	}
}
