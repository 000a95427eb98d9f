package dstat

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const preambleCsv = `"Host:","gandalf",,,,"User:","dag"
"Cmdline:","dstat --output out.csv",,,,"Date:","07 Mar 2021 10:00:00"




"total cpu usage",,,"dsk/total",
"usr","sys","idl","read","writ"
1000,10,5,80,0
1001,20,6,75,512
1002,15,7,78,1024
`

const bareCsv = `"cpu","cpu"
"usr","sys"
0,10,5
1,20,6
2,15,7
`

func writeCsv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWithPreamble(t *testing.T) {
	file, err := Load(writeCsv(t, preambleCsv))
	require.NoError(t, err)
	assert.Equal(t, "gandalf", file.Metadata.Host)
	assert.Equal(t, "dag", file.Metadata.User)
	assert.Equal(t, "07 Mar 2021 10:00:00", file.Metadata.Date)
	assert.Equal(t, "dstat --output out.csv", file.Metadata.Cmdline)
	assert.True(t, file.Metadata.Present())
	assert.Equal(t, []string{"total cpu usage", "dsk/total"}, file.Schema.CategoryNames())
	assert.Equal(t, 3, file.Samples())
	assert.Equal(t, 5, file.Columns())
}

func TestLoadWithoutPreamble(t *testing.T) {
	file, err := Load(writeCsv(t, bareCsv))
	require.NoError(t, err)
	assert.False(t, file.Metadata.Present())
	assert.Equal(t, []string{"cpu"}, file.Schema.CategoryNames())
	assert.Equal(t, []string{"usr", "sys"}, file.Schema.FieldNames())
	assert.Equal(t, 3, file.Samples())
}

func TestExtractNormalizesElapsedTime(t *testing.T) {
	file, err := Load(writeCsv(t, preambleCsv))
	require.NoError(t, err)
	series, err := file.Extract(1)
	require.NoError(t, err)
	// elapsed time starts at zero regardless of the log's absolute timestamps
	assert.Equal(t, []float64{0, 1, 2}, series.Timestamps)
	assert.Equal(t, []float64{10, 20, 15}, series.Values)
	assert.Equal(t, "test.csv", series.SourceLabel)
	for i := 1; i < len(series.Timestamps); i++ {
		assert.GreaterOrEqual(t, series.Timestamps[i], series.Timestamps[i-1])
	}
}

func TestExtractColumnOutOfRange(t *testing.T) {
	file, err := Load(writeCsv(t, bareCsv))
	require.NoError(t, err)
	_, err = file.Extract(7)
	var malformed *MalformedCsvError
	assert.ErrorAs(t, err, &malformed)
	_, err = file.Extract(-1)
	assert.ErrorAs(t, err, &malformed)
}

func TestLoadRaggedRows(t *testing.T) {
	ragged := `"cpu","cpu"
"usr","sys"
0,10,5
1,20
`
	_, err := Load(writeCsv(t, ragged))
	var malformed *MalformedCsvError
	assert.ErrorAs(t, err, &malformed)
	assert.Equal(t, 4, malformed.Row)
}

func TestExtractNonNumericCell(t *testing.T) {
	bad := `"cpu","cpu"
"usr","sys"
0,10,5
1,n/a,6
`
	file, err := Load(writeCsv(t, bad))
	require.NoError(t, err)
	_, err = file.Extract(1)
	var malformed *MalformedCsvError
	assert.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Detail, "n/a")
}

func TestLoadMissingHeaders(t *testing.T) {
	_, err := Load(writeCsv(t, `"just one row"`))
	var malformed *MalformedCsvError
	assert.ErrorAs(t, err, &malformed)
}

func TestExtractEmptyDataRows(t *testing.T) {
	file, err := Load(writeCsv(t, "\"cpu\",\"cpu\"\n\"usr\",\"sys\"\n"))
	require.NoError(t, err)
	series, err := file.Extract(0)
	require.NoError(t, err)
	assert.Equal(t, 0, series.Len())
}
