package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Id", "Name"}
	rows := [][]string{
		{"1", "first"},
		{"2", "second"},
	}

	require.NoError(t, WriteSheet(f, "Tags", headers, rows))

	got, err := f.GetCellValue("Tags", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Id", got)

	got, err = f.GetCellValue("Tags", "B3")
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	// header-only sheet is fine
	require.NoError(t, WriteSheet(f, "Empty", headers, nil))
	got, err = f.GetCellValue("Empty", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Name", got)
}
