package data

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/teaplant/darjnet/internal/label"
)

// LoadCSV loads samples from a CSV file. labelCol is the index of the column
// holding the label, parsed as the given kind; pass a negative labelCol to
// load unlabeled rows (kind is then ignored). All other columns are features.
// hasHeader skips the first line if true.
func LoadCSV(filename string, labelCol int, kind label.Kind, hasHeader bool) ([]Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "data: failed to open csv")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "data: failed to read csv")
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}
	if len(records) <= startRow {
		return nil, errors.New("data: csv file has no data rows")
	}

	numCols := len(records[startRow])
	samples := make([]Sample, 0, len(records)-startRow)
	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, errors.Errorf("data: inconsistent number of columns at row %d", i)
		}

		s := Sample{Features: make([]float64, 0, numCols)}
		for j, field := range record {
			if j == labelCol {
				s.Label, err = parseLabel(field, kind)
				if err != nil {
					return nil, errors.Wrapf(err, "data: row %d, col %d", i, j)
				}
				continue
			}
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "data: failed to parse value at row %d, col %d", i, j)
			}
			s.Features = append(s.Features, val)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func parseLabel(field string, kind label.Kind) (label.Value, error) {
	switch kind {
	case label.KindInteger:
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return label.Value{}, err
		}
		return label.Int(v), nil
	case label.KindFloat:
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return label.Value{}, err
		}
		return label.Float(v), nil
	case label.KindBoolean:
		v, err := strconv.ParseBool(field)
		if err != nil {
			return label.Value{}, err
		}
		return label.Bool(v), nil
	case label.KindText:
		return label.Text(field), nil
	}
	return label.Value{}, errors.Errorf("cannot parse label of kind %s", kind)
}
