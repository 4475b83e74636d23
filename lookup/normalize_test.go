package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecords(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "single object", body: `{"name":"X","address":"City"}`, want: 1},
		{name: "bare array", body: `[{"name":"A"},{"name":"B"}]`, want: 2},
		{name: "data wrapper", body: `{"data":[{"name":"A"},{"name":"B"},{"name":"C"}]}`, want: 3},
		{name: "null", body: `null`, want: 0},
		{name: "empty object", body: `{}`, want: 0},
		{name: "empty array", body: `[]`, want: 0},
		{name: "empty data wrapper", body: `{"data":[]}`, want: 0},
		{name: "array with non-object elements", body: `[{"name":"A"},"junk",42]`, want: 1},
		{name: "bare string", body: `"no records"`, want: 0},
		{name: "bare number", body: `404`, want: 0},
		{name: "not json", body: `<html>error</html>`, wantErr: true},
		{name: "truncated json", body: `{"name":"X"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := NormalizeRecords([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestNormalizeRecordsKeepsFields(t *testing.T) {
	records, err := NormalizeRecords([]byte(`{"data":[{"name":"X","mobile":"9876543210"}]}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "X", records[0].First("N/A", "name"))
	assert.Equal(t, "9876543210", records[0].First("N/A", "mobile"))
}
