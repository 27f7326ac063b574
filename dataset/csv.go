package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/foldwise/foldwise/pkg/errors"
)

// Column names expected in the CSV header, Titanic-style.
const (
	colClass    = "Pclass"
	colSex      = "Sex"
	colSibSp    = "SibSp"
	colParCh    = "Parch"
	colAge      = "Age"
	colSurvived = "Survived"
)

// ReadCSV reads a labeled dataset from r. The first row must be a header
// containing at least the Pclass, Sex, SibSp, Parch, Age and Survived
// columns; extra columns are ignored. Rows with an empty Age cell are
// dropped, since the similarity predicate cannot place them on either side
// of a cutoff.
func ReadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return Table{}, errors.Wrap(err, "dataset: reading CSV header")
	}

	cols, err := headerIndex(header)
	if err != nil {
		return Table{}, err
	}

	var records []Record
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, errors.Wrapf(err, "dataset: reading CSV row %d", row)
		}
		row++

		if strings.TrimSpace(fields[cols[colAge]]) == "" {
			continue
		}

		rec, err := parseRecord(fields, cols, row)
		if err != nil {
			return Table{}, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return Table{}, errors.NewModelError("ReadCSV", "no usable rows", errors.ErrEmptyData)
	}

	return Table{records: records}, nil
}

// ReadCSVFile reads a labeled dataset from the CSV file at path.
func ReadCSVFile(path string) (Table, error) {
	f, err := os.Open(path) // #nosec G304 - caller-supplied dataset path
	if err != nil {
		return Table{}, errors.Wrapf(err, "dataset: opening %s", path)
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(f)
}

// headerIndex maps the required column names to their positions.
func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, 6)
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colClass, colSex, colSibSp, colParCh, colAge, colSurvived} {
		if _, ok := cols[required]; !ok {
			return nil, errors.NewValueError("ReadCSV", "missing required column "+required)
		}
	}
	return cols, nil
}

func parseRecord(fields []string, cols map[string]int, row int) (Record, error) {
	class, err := strconv.Atoi(strings.TrimSpace(fields[cols[colClass]]))
	if err != nil {
		return Record{}, errors.Wrapf(err, "dataset: row %d: parsing %s", row, colClass)
	}

	sibSp, err := strconv.Atoi(strings.TrimSpace(fields[cols[colSibSp]]))
	if err != nil {
		return Record{}, errors.Wrapf(err, "dataset: row %d: parsing %s", row, colSibSp)
	}

	parCh, err := strconv.Atoi(strings.TrimSpace(fields[cols[colParCh]]))
	if err != nil {
		return Record{}, errors.Wrapf(err, "dataset: row %d: parsing %s", row, colParCh)
	}

	age, err := strconv.ParseFloat(strings.TrimSpace(fields[cols[colAge]]), 64)
	if err != nil {
		return Record{}, errors.Wrapf(err, "dataset: row %d: parsing %s", row, colAge)
	}

	survived, err := strconv.Atoi(strings.TrimSpace(fields[cols[colSurvived]]))
	if err != nil {
		return Record{}, errors.Wrapf(err, "dataset: row %d: parsing %s", row, colSurvived)
	}
	if survived != 0 && survived != 1 {
		return Record{}, errors.NewValueError("ReadCSV",
			"Survived must be 0 or 1 at row "+strconv.Itoa(row))
	}

	return Record{
		Class:    class,
		Sex:      strings.TrimSpace(fields[cols[colSex]]),
		SibSp:    sibSp,
		ParCh:    parCh,
		Age:      age,
		Survived: survived,
	}, nil
}
