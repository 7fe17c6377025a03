package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplate(t *testing.T) {
	tmpl := DefaultTemplate()
	require.NoError(t, tmpl.Validate())
	assert.Equal(t, "I2", tmpl.BillNo.String())
	assert.Equal(t, "I11", tmpl.Date.String())
	assert.Equal(t, "B18", tmpl.Section.String())
	assert.Equal(t, "B20", tmpl.Description.String())
	assert.Equal(t, "I37", tmpl.Amount.String())
	assert.Equal(t, 19, tmpl.AmountScanStart)
}

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     bool
		errContains string
		check       func(t *testing.T, tmpl Template)
	}{
		{
			name:  "empty document keeps defaults",
			input: "",
			check: func(t *testing.T, tmpl Template) {
				assert.Equal(t, DefaultTemplate(), tmpl)
			},
		},
		{
			name:  "partial override",
			input: "bill_no:\n  row: 2\namount:\n  col: 7\namount_scan_start: 21\n",
			check: func(t *testing.T, tmpl Template) {
				assert.Equal(t, Coord{Row: 2, Col: 8}, tmpl.BillNo)
				assert.Equal(t, Coord{Row: 36, Col: 7}, tmpl.Amount)
				assert.Equal(t, 21, tmpl.AmountScanStart)
				assert.Equal(t, DefaultTemplate().Date, tmpl.Date)
			},
		},
		{
			name:        "negative coordinate rejected",
			input:       "date:\n  row: -1\n",
			wantErr:     true,
			errContains: "negative",
		},
		{
			name:    "unknown key rejected",
			input:   "amout:\n  row: 3\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, tmpl)
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.yaml")
	require.NoError(t, os.WriteFile(path, []byte("section: {row: 16, col: 2}\n"), 0644))

	tmpl, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, Coord{Row: 16, Col: 2}, tmpl.Section)

	_, err = LoadTemplate(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
