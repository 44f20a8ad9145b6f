package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "number", input: `42`, want: 42},
		{name: "string", input: `"42"`, want: 42},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
		{name: "negative number", input: `-7`, want: -7},
		{name: "large id", input: `"9007199254740993"`, want: 9007199254740993},
		{name: "not a number", input: `"abc"`, wantErr: true},
		{name: "float", input: `4.2`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.Int64())
		})
	}
}

// Mixed encodings of the same id must compare equal through the numeric
// value. The backend emits owner ids as strings on some endpoints and as
// numbers on others.
func TestID_MixedEncodingsCompareEqual(t *testing.T) {
	var fromNumber, fromString ID
	require.NoError(t, json.Unmarshal([]byte(`77`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"77"`), &fromString))

	assert.Equal(t, fromNumber.Int64(), fromString.Int64())
}

func TestID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ID(42))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(data))
}

func TestID_InStruct(t *testing.T) {
	var folder Folder
	payload := `{"id": "15", "ownerId": 3, "isPublic": false}`
	require.NoError(t, json.Unmarshal([]byte(payload), &folder))

	assert.Equal(t, int64(15), folder.ID.Int64())
	assert.Equal(t, int64(3), folder.OwnerID.Int64())
	assert.False(t, folder.IsPublic)
}
