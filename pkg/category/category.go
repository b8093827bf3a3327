package category

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/gobuffalo/packr"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Default is the classification applied when no rule matches. It is never
// empty: every record carries a category.
const Default = "Document"

// Rule maps a set of keywords to one category label. Fields lists which
// inputs the keywords are tested against ("filename", "subject").
type Rule struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
	Fields   []string `json:"fields"`
}

// Classifier applies a priority-ordered rule list. The first matching rule
// wins; declaration order is the tie-break.
type Classifier struct {
	rules []Rule
}

// NewClassifier loads the embedded rule set.
func NewClassifier() (*Classifier, error) {
	box := packr.NewBox("../../static/evidence-register")

	rulesJson, err := box.Find("categories.json")
	if err != nil {
		return nil, err
	}

	return newClassifier(rulesJson)
}

// NewClassifierFromFile loads a rule set override from disk. The file is
// held to the same schema as the embedded rules.
func NewClassifierFromFile(path string) (*Classifier, error) {
	rulesJson, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category rules %s: %w", path, err)
	}

	return newClassifier(rulesJson)
}

func newClassifier(rulesJson []byte) (*Classifier, error) {
	if err := validateRules(rulesJson); err != nil {
		return nil, fmt.Errorf("category rules are invalid: %w", err)
	}

	var rules []Rule
	if err := json.Unmarshal(rulesJson, &rules); err != nil {
		return nil, err
	}

	return &Classifier{rules: rules}, nil
}

func validateRules(rulesJson []byte) error {
	box := packr.NewBox("../../static/evidence-register")

	schemaJson, err := box.Find("categories.schema.json")
	if err != nil {
		return err
	}

	schema, err := jsonschema.CompileString("categories.schema.json", string(schemaJson))
	if err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(rulesJson, &doc); err != nil {
		return err
	}

	return schema.Validate(doc)
}

// Classify returns the label of the first rule whose keywords appear in
// one of the rule's inspected fields. Matching is case-insensitive.
func (c *Classifier) Classify(fileName string, subject string) string {
	fileNameLower := strings.ToLower(fileName)
	subjectLower := strings.ToLower(subject)

	for _, rule := range c.rules {
		for _, field := range rule.Fields {
			text := fileNameLower
			if field == "subject" {
				text = subjectLower
			}
			for _, keyword := range rule.Keywords {
				if keyword != "" && strings.Contains(text, keyword) {
					return rule.Label
				}
			}
		}
	}

	return Default
}
