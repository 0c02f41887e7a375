package cmd

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/neudestifanoes/ltpsim/sim/trace"
)

// WriteTracesCSV exports traces to one CSV: a time column from the first
// trace plus one weight column per condition. Traces simulated over the same
// base parameters share a grid; a shorter trace leaves its trailing cells
// empty.
func WriteTracesCSV(path string, traces []*trace.Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := make([]string, 0, len(traces)+1)
	header = append(header, "time_s")
	rows := 0
	for _, tr := range traces {
		header = append(header, tr.Condition)
		if tr.Len() > rows {
			rows = tr.Len()
		}
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(traces)+1)
	for i := 0; i < rows; i++ {
		for j := range record {
			record[j] = ""
		}
		if len(traces) > 0 && i < traces[0].Len() {
			record[0] = strconv.FormatFloat(traces[0].Times[i], 'f', -1, 64)
		}
		for j, tr := range traces {
			if i < tr.Len() {
				record[j+1] = strconv.FormatFloat(tr.Weights[i], 'f', -1, 64)
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}
