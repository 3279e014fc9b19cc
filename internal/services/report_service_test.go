package services

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBulkPDFZip(t *testing.T) {
	svc := &ReportService{}
	pdfs := map[string][]byte{
		"INV-1717250000000-AB12CD34E": []byte("%PDF-1.4 fake one"),
		"INV-1717250000001-XY98ZW76Q": []byte("%PDF-1.4 fake two"),
	}

	data, err := svc.CreateBulkPDFZip(pdfs)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["invoice_INV-1717250000000-AB12CD34E.pdf"])
	assert.True(t, names["invoice_INV-1717250000001-XY98ZW76Q.pdf"])
}
