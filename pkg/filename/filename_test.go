package filename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"241016-residential-rental-agreement.pdf", "2024-10-16"},
		{"240101 - rent receipt.pdf", "2024-01-01"},
		{"991231-old-notice.pdf", "2099-12-31"},
		{"240229-leap-day.pdf", "2024-02-29"},

		// not valid calendar dates
		{"241316-month-thirteen.pdf", ""},
		{"240230-february-thirtieth.pdf", ""},
		{"230229-not-a-leap-year.pdf", ""},

		// no leading date token
		{"rental-agreement.pdf", ""},
		{"24101-short-token.pdf", ""},
		{"24A016-not-digits.pdf", ""},
		{"x241016-prefixed.pdf", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractDate(tt.name), "filename: %s", tt.name)
	}
}

func TestExtractSubject(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"241016-residential-rental-agreement-1803-243-franklin-st.pdf", "residential rental agreement 1803 243 franklin st"},
		{"241016 - rent receipt - october.pdf", "rent receipt october"},
		{"maintenance_request_form.pdf", "maintenance request form"},
		{"241016 - vcat application - ABC123@vcat.vic.gov.au.pdf", "vcat application"},
		{"241016.pdf", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractSubject(tt.name), "filename: %s", tt.name)
	}
}

func TestExtractMessageID(t *testing.T) {
	assert.Equal(t, "ABC123@mail.example.com", ExtractMessageID("241016 - rent receipt - ABC123@mail.example.com.pdf"))
	assert.Equal(t, "CAF=xyz.123@mx.google.com", ExtractMessageID("240501 - repair request - CAF=xyz.123@mx.google.com.pdf"))

	// no @ token at all
	assert.Equal(t, "", ExtractMessageID("241016-residential-rental-agreement-1803-243-franklin-st.pdf"))
	assert.Equal(t, "", ExtractMessageID("plain-document.pdf"))
	assert.Equal(t, "", ExtractMessageID(""))
}

func TestSplitAddress(t *testing.T) {
	domain, email := SplitAddress("ABC123@mail.example.com")
	assert.Equal(t, "mail.example.com", domain)
	assert.Equal(t, "ABC123@mail.example.com", email)

	domain, email = SplitAddress("")
	assert.Equal(t, "", domain)
	assert.Equal(t, "", email)

	domain, email = SplitAddress("no-at-sign")
	assert.Equal(t, "", domain)
	assert.Equal(t, "", email)
}

func TestParse_NonEmailFilename(t *testing.T) {
	fields := Parse("241016-residential-rental-agreement-1803-243-franklin-st.pdf")

	assert.Equal(t, "2024-10-16", fields.Date)
	assert.Equal(t, "residential rental agreement 1803 243 franklin st", fields.Subject)
	assert.Equal(t, "", fields.MessageID)
	assert.Equal(t, "", fields.Domain)
	assert.Equal(t, "", fields.EmailAddress)
}

func TestParse_EmailFilename(t *testing.T) {
	fields := Parse("241016 - rent receipt - ABC123@mail.example.com.pdf")

	assert.Equal(t, "2024-10-16", fields.Date)
	assert.Equal(t, "rent receipt", fields.Subject)
	assert.Equal(t, "ABC123@mail.example.com", fields.MessageID)
	assert.Equal(t, "mail.example.com", fields.Domain)
	assert.Equal(t, "ABC123@mail.example.com", fields.EmailAddress)
}

func TestParse_Idempotent(t *testing.T) {
	names := []string{
		"241016-residential-rental-agreement-1803-243-franklin-st.pdf",
		"241016 - rent receipt - ABC123@mail.example.com.pdf",
		"garbage###.pdf",
		"",
	}

	for _, name := range names {
		first := Parse(name)
		second := Parse(name)
		require.Equal(t, first, second, "filename: %s", name)
	}
}
