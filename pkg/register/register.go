package register

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tribunalworks/evidence-register/pkg/category"
	"github.com/tribunalworks/evidence-register/pkg/export"
	"github.com/tribunalworks/evidence-register/pkg/model"
)

// Identifier bases for the three sequential counters. The n-th accepted
// candidate (1-based, filename order) gets base+n in each series.
const (
	evidIDBase     = 100000
	idBase         = 200000
	fileNumberBase = 5000
)

type Options struct {
	Directory  string // evidence directory to scan
	Pattern    string // filename glob, matched against basenames
	OutputPath string // CSV artifact
	XLSXPath   string // optional XLSX rendition, skipped when empty
	RulesPath  string // optional category-rules override
}

// Summary reports the outcome of one run. Rejections maps reason codes to
// counts so that no skipped file disappears silently.
type Summary struct {
	RunID      string
	Found      int
	Accepted   int
	Skipped    int
	Rejections map[string]int
}

type RegisterProcessor struct {
	options    Options
	classifier *category.Classifier
	filter     *model.Filter
	logger     *logrus.Entry
}

// CreateRegisterProcessor validates the run configuration up front so that
// setup problems (unreadable directory, bad pattern, invalid rules) fail
// before any file is touched.
func CreateRegisterProcessor(logger *logrus.Entry, options Options) (RegisterProcessor, error) {
	if options.Directory == "" {
		options.Directory = "."
	}
	if options.Pattern == "" {
		options.Pattern = "*.pdf"
	}
	if options.OutputPath == "" {
		options.OutputPath = "EVIDENCE_REGISTER_OUTPUT.csv"
	}

	info, err := os.Stat(options.Directory)
	if err != nil {
		return RegisterProcessor{}, fmt.Errorf("evidence directory unreadable: %w", err)
	}
	if !info.IsDir() {
		return RegisterProcessor{}, fmt.Errorf("%s is not a directory", options.Directory)
	}

	if _, err := filepath.Match(options.Pattern, "probe.pdf"); err != nil {
		return RegisterProcessor{}, fmt.Errorf("invalid filename pattern %q: %w", options.Pattern, err)
	}

	var classifier *category.Classifier
	if options.RulesPath != "" {
		classifier, err = category.NewClassifierFromFile(options.RulesPath)
	} else {
		classifier, err = category.NewClassifier()
	}
	if err != nil {
		return RegisterProcessor{}, err
	}

	rp := RegisterProcessor{
		options:    options,
		classifier: classifier,
		filter:     model.DefaultFilter(),
		logger:     logger,
	}

	return rp, nil
}

// Run processes every matching file sequentially (parse, hash, categorize,
// assemble, validate), then writes the artifacts. Individual bad files are
// skipped with a counted reason; only setup and output failures are fatal.
func (rp *RegisterProcessor) Run() (Summary, error) {
	summary := Summary{
		RunID:      uuid.New().String(),
		Rejections: map[string]int{},
	}

	names, err := rp.enumerate()
	if err != nil {
		return summary, err
	}
	summary.Found = len(names)
	rp.logger.Infof("Found %d documents to process (run %s)", len(names), summary.RunID)

	reg := newRegistry()
	accepted := []model.EvidenceRecord{}

	for idx, name := range names {
		seq := idx + 1
		rp.logger.Debugf("Processing %s (%d/%d)", name, seq, len(names))

		rec, err := rp.assemble(filepath.Join(rp.options.Directory, name), name, counters{
			evidID:     evidIDBase + seq,
			id:         idBase + seq,
			fileNumber: fileNumberBase + seq,
		})
		if err != nil {
			summary.Skipped++
			summary.Rejections[reasonUnreadableFile]++
			rp.logger.Warnf("Skipping %s: %v", name, err)
			continue
		}

		if reason, ok := reg.validate(&rec); !ok {
			summary.Skipped++
			summary.Rejections[reason]++
			rp.logger.Warnf("Rejecting %s: %s", name, reason)
			continue
		}
		reg.commit(&rec)

		accepted = append(accepted, rec)
		rp.logger.Debugf("Accepted %s as EVID %d", name, rec.EvidID)
	}

	sort.Slice(accepted, func(i, j int) bool {
		return accepted[i].EvidID < accepted[j].EvidID
	})

	if err := writeCSV(rp.options.OutputPath, accepted); err != nil {
		return summary, err
	}
	rp.logger.Infof("Wrote %d rows to %s", len(accepted), rp.options.OutputPath)

	if rp.options.XLSXPath != "" {
		payload, err := export.Workbook(accepted)
		if err != nil {
			return summary, err
		}
		if err := ioutil.WriteFile(rp.options.XLSXPath, payload, 0644); err != nil {
			return summary, fmt.Errorf("write xlsx rendition: %w", err)
		}
		rp.logger.Infof("Wrote XLSX rendition to %s", rp.options.XLSXPath)
	}

	summary.Accepted = len(accepted)
	rp.logger.Infof("Processing complete: %d accepted, %d skipped", summary.Accepted, summary.Skipped)

	return summary, nil
}

// enumerate lists candidate basenames: non-recursive, glob-matched, junk
// filtered, sorted by filename so identifier assignment is reproducible.
func (rp *RegisterProcessor) enumerate() ([]string, error) {
	entries, err := ioutil.ReadDir(rp.options.Directory)
	if err != nil {
		return nil, fmt.Errorf("evidence directory unreadable: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(rp.options.Pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid filename pattern %q: %w", rp.options.Pattern, err)
		}
		if !matched {
			continue
		}
		if !rp.filter.ValidPath(entry.Name()) {
			rp.logger.Debugf("Ignoring %s, matches exclude pattern", entry.Name())
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}
