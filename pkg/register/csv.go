package register

import (
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/tribunalworks/evidence-register/pkg/model"
)

// writeCSV serializes the register: exact 18-column header, RFC4180
// quoting, newline-terminated rows. Rows go to a temp file in the target
// directory which is renamed over the destination only after a successful
// flush, so a failed run never leaves a partial artifact behind.
func writeCSV(outputPath string, records []model.EvidenceRecord) error {
	tmp, err := ioutil.TempFile(filepath.Dir(outputPath), ".evidence-register-*.csv")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(model.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := writer.Write(records[i].Row()); err != nil {
			return fmt.Errorf("write row for EVID %d: %w", records[i].EvidID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}

	return nil
}
