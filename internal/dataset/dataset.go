// Package dataset loads the fixed heart-disease CSV dataset at process start
// and exposes read-only aggregate views used by the visualization charts.
//
// The dataset is immutable after Load and safe for concurrent reads.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/JahangirOsman/hdp-webapp/internal/logger"
)

// ErrMalformedDataset is returned by Load when the CSV header or a row does
// not match the expected 14-column layout.
var ErrMalformedDataset = errors.New("malformed dataset")

// expectedHeader is the exact column layout of the dataset file. The 13
// clinical features in model order, followed by the target class.
var expectedHeader = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalach", "exang", "oldpeak", "slope", "ca", "thal", "target",
}

// Row is one historical patient record. Read-only chart input; never the
// subject of a prediction.
type Row struct {
	Age            int
	Sex            int
	ChestPainType  int
	RestingBP      int
	Cholesterol    int
	FastingBS      int
	RestingECG     int
	MaxHeartRate   int
	ExerciseAngina int
	OldPeak        float64
	Slope          int
	MajorVessels   int
	Thalassemia    int
	Target         int
}

// Dataset holds the loaded rows. Never mutated after Load.
type Dataset struct {
	rows []Row
}

// Load reads the CSV dataset at path into memory.
//
// A failure here is fatal for the caller: the visualization endpoint cannot
// serve without the dataset, so startup should abort on error.
func Load(path string, log *logger.Logger) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Err(err).Str("func", "dataset.Load").Str("path", path).Msg("error opening dataset file")
		return nil, fmt.Errorf("error opening dataset file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(expectedHeader)

	header, err := reader.Read()
	if err != nil {
		log.Err(err).Str("func", "dataset.Load").Msg("error reading dataset header")
		return nil, fmt.Errorf("%w: reading header: %w", ErrMalformedDataset, err)
	}
	for i, name := range expectedHeader {
		if header[i] != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrMalformedDataset, i, header[i], name)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Err(err).Str("func", "dataset.Load").Int("line", line).Msg("error reading dataset row")
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedDataset, line, err)
		}

		row, err := parseRow(record)
		if err != nil {
			log.Err(err).Str("func", "dataset.Load").Int("line", line).Msg("error parsing dataset row")
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedDataset, line, err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrMalformedDataset)
	}

	log.Info().Str("func", "dataset.Load").Int("rows", len(rows)).Msg("dataset loaded")

	return &Dataset{rows: rows}, nil
}

func parseRow(record []string) (Row, error) {
	ints := make([]int, len(expectedHeader))
	var oldPeak float64

	for i, raw := range record {
		if expectedHeader[i] == "oldpeak" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return Row{}, fmt.Errorf("column %q: %w", expectedHeader[i], err)
			}
			oldPeak = v
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return Row{}, fmt.Errorf("column %q: %w", expectedHeader[i], err)
		}
		ints[i] = v
	}

	return Row{
		Age:            ints[0],
		Sex:            ints[1],
		ChestPainType:  ints[2],
		RestingBP:      ints[3],
		Cholesterol:    ints[4],
		FastingBS:      ints[5],
		RestingECG:     ints[6],
		MaxHeartRate:   ints[7],
		ExerciseAngina: ints[8],
		OldPeak:        oldPeak,
		Slope:          ints[10],
		MajorVessels:   ints[11],
		Thalassemia:    ints[12],
		Target:         ints[13],
	}, nil
}

// Len returns the number of loaded rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Rows returns the loaded rows. Callers must treat the slice as read-only.
func (d *Dataset) Rows() []Row {
	return d.rows
}
