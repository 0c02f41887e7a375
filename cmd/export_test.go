package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neudestifanoes/ltpsim/sim/trace"
)

func TestWriteTracesCSV_HeaderAndRows(t *testing.T) {
	// GIVEN two traces on a shared grid
	healthy := trace.New("Healthy", 3)
	healthy.Record(0, 1.0)
	healthy.Record(0.1, 1.0)
	healthy.Record(0.2, 1.1)
	ad := trace.New("AD", 3)
	ad.Record(0, 1.0)
	ad.Record(0.1, 1.0)
	ad.Record(0.2, 1.01)

	// WHEN exported to CSV
	path := filepath.Join(t.TempDir(), "traces.csv")
	require.NoError(t, WriteTracesCSV(path, []*trace.Trace{healthy, ad}))

	// THEN the file has one header row plus one row per grid point
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"time_s", "Healthy", "AD"}, records[0])
	assert.Equal(t, []string{"0.2", "1.1", "1.01"}, records[3])
}

func TestWriteTracesCSV_UnevenTraceLengths(t *testing.T) {
	long := trace.New("long", 2)
	long.Record(0, 1.0)
	long.Record(0.1, 1.5)
	short := trace.New("short", 1)
	short.Record(0, 1.0)

	path := filepath.Join(t.TempDir(), "traces.csv")
	require.NoError(t, WriteTracesCSV(path, []*trace.Trace{long, short}))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	// the short trace leaves its trailing cell empty
	assert.Equal(t, []string{"0.1", "1.5", ""}, records[2])
}
