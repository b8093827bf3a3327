package filename

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Fields holds everything derivable from an evidence filename. Every field
// is independently optional; extraction never fails.
type Fields struct {
	Date         string
	Subject      string
	MessageID    string
	Domain       string
	EmailAddress string
}

// Parse runs every extractor against the filename. Pure function: the same
// name always yields the same Fields.
func Parse(name string) Fields {
	messageID := ExtractMessageID(name)
	domain, emailAddress := SplitAddress(messageID)

	return Fields{
		Date:         ExtractDate(name),
		Subject:      ExtractSubject(name),
		MessageID:    messageID,
		Domain:       domain,
		EmailAddress: emailAddress,
	}
}

// ExtractDate reads a leading YYMMDD token and formats it as YYYY-MM-DD.
// Two-digit years map to the 2000s. Tokens that are not valid calendar
// dates (month 13, day 32) yield an empty string.
func ExtractDate(name string) string {
	if len(name) < 6 {
		return ""
	}
	for i := 0; i < 6; i++ {
		if name[i] < '0' || name[i] > '9' {
			return ""
		}
	}

	year := 2000 + digits(name[0:2])
	month := digits(name[2:4])
	day := digits(name[4:6])

	// round-trip through time.Date to reject impossible calendar dates,
	// which would otherwise normalize (month 13 -> January next year)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return ""
	}

	return t.Format("2006-01-02")
}

// ExtractMessageID finds an @-delimited token in the filename. The token
// runs from the separator before the local part to the separator (or the
// file extension) after the domain. Filenames without '@' yield "".
func ExtractMessageID(name string) string {
	stem := trimExtension(name)

	at := strings.LastIndex(stem, "@")
	if at <= 0 || at == len(stem)-1 {
		return ""
	}

	start := at
	for start > 0 && !isSeparator(rune(stem[start-1])) {
		start--
	}
	end := at + 1
	for end < len(stem) && !isSeparator(rune(stem[end])) {
		end++
	}

	local := stem[start:at]
	domain := stem[at+1 : end]
	if local == "" || domain == "" {
		return ""
	}

	return local + "@" + domain
}

// SplitAddress derives the domain and email address from a message id.
// The whole token doubles as the email address, the part after the last
// '@' as the domain.
func SplitAddress(messageID string) (string, string) {
	if messageID == "" || !strings.Contains(messageID, "@") {
		return "", ""
	}

	parts := strings.Split(messageID, "@")
	domain := strings.TrimSpace(parts[len(parts)-1])
	if domain == "" {
		return "", ""
	}

	return domain, strings.TrimSpace(messageID)
}

// ExtractSubject returns the text between the date token and either the
// message-id token or the extension, with separator runs collapsed to
// single spaces and surrounding punctuation trimmed.
func ExtractSubject(name string) string {
	stem := trimExtension(name)

	if ExtractDate(name) != "" {
		stem = stem[6:]
	}
	if messageID := ExtractMessageID(name); messageID != "" {
		stem = strings.Replace(stem, messageID, "", 1)
	}

	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})

	return strings.Trim(strings.Join(words, " "), " .,;:")
}

func trimExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '/' || r == '\\' || unicode.IsSpace(r)
}

func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
