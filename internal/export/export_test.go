package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Record{
		{Issue: "Vibration spike on Station 2", RULDays: 4},
		{Issue: "routine check", RULDays: 30},
	})
	require.NoError(t, err)

	expected := "issue,rul_days\n" +
		"Vibration spike on Station 2,4\n" +
		"routine check,30\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Record{{Issue: "temps rising, error E42 twice", RULDays: 4}})
	require.NoError(t, err)
	assert.Equal(t, "issue,rul_days\n\"temps rising, error E42 twice\",4\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "issue,rul_days\n", buf.String(), "empty export still carries the fixed header")
}

func TestAppendFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "rul_export.csv")

	require.NoError(t, AppendFile(path, Record{Issue: "first", RULDays: 4}))
	require.NoError(t, AppendFile(path, Record{Issue: "second", RULDays: 10}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "issue,rul_days\nfirst,4\nsecond,10\n", string(content),
		"header written once, records appended in order")
}
