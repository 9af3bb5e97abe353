package catalog

import (
	"encoding/csv"
	goerrors "errors"
	"fmt"
	"io"
	"movie-rec/errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})
	return v
}

// descriptionRecord is a row of the description source once positional access is resolved.
type descriptionRecord struct {
	ID          string `validate:"required"`
	Title       string `validate:"utf8"`
	Description string `validate:"utf8"`
}

// genreRecord is a row of the genre source.
type genreRecord struct {
	ID    string `validate:"required"`
	Genre string `validate:"required,utf8"`
}

var errStopScan = goerrors.New("stop scan")

// delimiter sniffs the file content first and falls back on the extension.
func delimiter(path string) rune {
	if mtype, err := mimetype.DetectFile(path); err == nil && mtype.Is("text/tab-separated-values") {
		return '\t'
	}
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// scanRows streams the rows of a delimited file. The first row is handed to
// resolve as the header and is only passed to fn when skipHeader is false.
// fn may return errStopScan to end the scan early.
func scanRows(path string, skipHeader bool, resolve func(header []string) error, fn func(line int, row []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter(path)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("%w: %s line %d: %v", errors.ErrMalformedInput, filepath.Base(path), line, err)
		}
		if line == 1 {
			if err := resolve(row); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
			if skipHeader {
				continue
			}
		}
		if err := fn(line, row); err != nil {
			if goerrors.Is(err, errStopScan) {
				return nil
			}
			return err
		}
	}
}

func cell(row []string, idx int, name string, line int) (string, error) {
	if idx < 0 || idx >= len(row) {
		return "", fmt.Errorf("%w: line %d has %d fields, missing %s", errors.ErrMalformedInput, line, len(row), name)
	}
	return row[idx], nil
}

func checkRecord(record any, line int) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("%w: line %d: %v", errors.ErrMalformedInput, line, err)
	}
	return nil
}
