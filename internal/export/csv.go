package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/oscillator/internal/dynamo"
)

var csvHeader = []string{"time", "x", "y", "vx", "vy", "ax", "ay"}

// CSV writes one row per snapshot with full float precision so that
// ReadCSV restores the values exactly.
func CSV(w io.Writer, times []float64, snaps []dynamo.Snapshot) error {
	if len(times) != len(snaps) {
		return fmt.Errorf("csv: %d times for %d snapshots", len(times), len(snaps))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	row := make([]string, len(csvHeader))
	for i, s := range snaps {
		for j, v := range [...]float64{
			times[i],
			s.Position.X, s.Position.Y,
			s.Velocity.X, s.Velocity.Y,
			s.Acceleration.X, s.Acceleration.Y,
		} {
			row[j] = formatFloat(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the output of CSV. Snapshots get the given mass.
func ReadCSV(r io.Reader, mass float64) ([]float64, []dynamo.Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv: missing header")
	}

	times := make([]float64, 0, len(records)-1)
	snaps := make([]dynamo.Snapshot, 0, len(records)-1)

	for line, record := range records[1:] {
		var vals [7]float64
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("csv: line %d, column %s: %w", line+2, csvHeader[j], err)
			}
			vals[j] = v
		}
		times = append(times, vals[0])
		snaps = append(snaps, dynamo.Snapshot{
			Mass:         mass,
			Position:     dynamo.Vector{X: vals[1], Y: vals[2]},
			Velocity:     dynamo.Vector{X: vals[3], Y: vals[4]},
			Acceleration: dynamo.Vector{X: vals[5], Y: vals[6]},
		})
	}

	return times, snaps, nil
}
