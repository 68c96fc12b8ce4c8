package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"chili-report/internal/aggregate"
)

var averagesHeader = []string{"Difficulty", "AverageTotalTime"}

// WriteAveragesTo writes the average-time report: one row per seeded
// difficulty label, in seeding order.
func WriteAveragesTo(w io.Writer, averages []aggregate.Average) error {
	cw := csv.NewWriter(w)
	cw.Comma = '|'

	if err := cw.Write(averagesHeader); err != nil {
		return err
	}
	for _, a := range averages {
		if err := cw.Write([]string{string(a.Label), strconv.Itoa(a.Minutes)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAverages publishes the report atomically at path.
func WriteAverages(path string, averages []aggregate.Average) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteAveragesTo(w, averages)
	})
}
