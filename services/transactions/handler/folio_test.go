package handler

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemapCSV(t *testing.T) {
	input := strings.Join([]string{
		"old_folio,campus_id,new_folio",
		"10,1,100",
		"11,1,101",
	}, "\n")

	rows, errs := parseRemapCSV(csv.NewReader(strings.NewReader(input)))

	assert.Empty(t, errs)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(10), rows[0].OldFolio)
	assert.Equal(t, int64(1), rows[0].CampusID)
	assert.Equal(t, int64(100), rows[0].NewFolio)
	// Row numbers track the file, including the header line.
	assert.Equal(t, 2, rows[0].Row)
	assert.Equal(t, 3, rows[1].Row)
}

func TestParseRemapCSVWithoutHeader(t *testing.T) {
	rows, errs := parseRemapCSV(csv.NewReader(strings.NewReader("10,1,100\n")))

	assert.Empty(t, errs)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Row)
}

func TestParseRemapCSVCollectsRowErrors(t *testing.T) {
	input := strings.Join([]string{
		"10,1,100",
		"abc,1,101",
		"12,xx,102",
		"13,1",
	}, "\n")

	rows, errs := parseRemapCSV(csv.NewReader(strings.NewReader(input)))

	require.Len(t, rows, 1)
	assert.Len(t, errs, 3)
}
