package register

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tribunalworks/evidence-register/pkg/model"
)

func validRecord() model.EvidenceRecord {
	return model.EvidenceRecord{
		EvidID:     100001,
		ID:         200001,
		FileNumber: 5001,
		Filename:   "241016-rent-receipt.pdf",
	}
}

func TestRegistry_AcceptsFreshRecord(t *testing.T) {
	reg := newRegistry()
	rec := validRecord()

	reason, ok := reg.validate(&rec)
	assert.True(t, ok)
	assert.Equal(t, "", reason)
}

func TestRegistry_MissingRequiredFields(t *testing.T) {
	reg := newRegistry()

	rec := validRecord()
	rec.EvidID = 0
	reason, ok := reg.validate(&rec)
	assert.False(t, ok)
	assert.Equal(t, reasonMissingRequiredField, reason)

	rec = validRecord()
	rec.Filename = ""
	reason, ok = reg.validate(&rec)
	assert.False(t, ok)
	assert.Equal(t, reasonMissingRequiredField, reason)

	rec = validRecord()
	rec.ID = 0
	reason, ok = reg.validate(&rec)
	assert.False(t, ok)
	assert.Equal(t, reasonMissingRequiredField, reason)

	rec = validRecord()
	rec.FileNumber = 0
	reason, ok = reg.validate(&rec)
	assert.False(t, ok)
	assert.Equal(t, reasonMissingRequiredField, reason)
}

func TestRegistry_InvalidType(t *testing.T) {
	reg := newRegistry()

	rec := validRecord()
	rec.EvidID = -7
	reason, ok := reg.validate(&rec)
	assert.False(t, ok)
	assert.Equal(t, reasonInvalidType, reason)
}

func TestRegistry_Duplicates(t *testing.T) {
	reg := newRegistry()
	first := validRecord()
	_, ok := reg.validate(&first)
	assert.True(t, ok)
	reg.commit(&first)

	// same evid id
	dup := validRecord()
	dup.Filename = "other.pdf"
	dup.ID = 200002
	dup.FileNumber = 5002
	reason, ok := reg.validate(&dup)
	assert.False(t, ok)
	assert.Equal(t, reasonDuplicateEvidID, reason)

	// same filename, fresh numbers
	dup = validRecord()
	dup.EvidID = 100002
	dup.ID = 200002
	dup.FileNumber = 5002
	reason, ok = reg.validate(&dup)
	assert.False(t, ok)
	assert.Equal(t, reasonDuplicateFilename, reason)

	// same id
	dup = validRecord()
	dup.EvidID = 100002
	dup.Filename = "other.pdf"
	dup.FileNumber = 5002
	reason, ok = reg.validate(&dup)
	assert.False(t, ok)
	assert.Equal(t, reasonDuplicateID, reason)

	// same file number
	dup = validRecord()
	dup.EvidID = 100002
	dup.Filename = "other.pdf"
	dup.ID = 200002
	reason, ok = reg.validate(&dup)
	assert.False(t, ok)
	assert.Equal(t, reasonDuplicateFileNumber, reason)

	// all four fresh -> accepted
	fresh := model.EvidenceRecord{EvidID: 100002, ID: 200002, FileNumber: 5002, Filename: "other.pdf"}
	reason, ok = reg.validate(&fresh)
	assert.True(t, ok)
	assert.Equal(t, "", reason)
}

func TestRegistry_ChecklistOrder(t *testing.T) {
	reg := newRegistry()
	first := validRecord()
	reg.commit(&first)

	// missing field outranks a would-be duplicate
	rec := validRecord()
	rec.ID = 0
	reason, ok := reg.validate(&rec)
	assert.False(t, ok)
	assert.Equal(t, reasonMissingRequiredField, reason)

	// validate alone must not mutate the registry
	reg2 := newRegistry()
	candidate := validRecord()
	_, ok = reg2.validate(&candidate)
	assert.True(t, ok)
	_, ok = reg2.validate(&candidate)
	assert.True(t, ok, "uncommitted candidate should not register as duplicate")
}
