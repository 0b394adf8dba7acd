package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_MarshalJSONUsesTwoPlaces(t *testing.T) {
	data, err := json.Marshal(MustParseAmount("99.9"))
	require.NoError(t, err)
	assert.Equal(t, `"99.90"`, string(data))

	data, err = json.Marshal(MustParseAmount("2500"))
	require.NoError(t, err)
	assert.Equal(t, `"2500.00"`, string(data))
}

func TestAmount_UnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	var body struct {
		A *Amount `json:"a"`
		B *Amount `json:"b"`
		C *Amount `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a": 99.90, "b": "12.30"}`), &body)
	require.NoError(t, err)

	require.NotNil(t, body.A)
	require.NotNil(t, body.B)
	assert.Nil(t, body.C)
	assert.Equal(t, "99.90", body.A.String())
	assert.Equal(t, "12.30", body.B.String())
}

func TestAmount_UnmarshalRejectsGarbage(t *testing.T) {
	var a Amount
	assert.Error(t, json.Unmarshal([]byte(`"twelve"`), &a))
}

func TestAmount_Rounded(t *testing.T) {
	assert.Equal(t, "10.01", MustParseAmount("10.005").Rounded().String())
	assert.Equal(t, "10.00", MustParseAmount("10.004").Rounded().String())
}

func TestAmount_IntegerDigits(t *testing.T) {
	tests := map[string]int{
		"0":          0,
		"7":          1,
		"99999999.9": 8,
		"100000000":  9,
		"0.05":       -1,
		"1e50000000": 50000001,
		"-12.5":      2,
	}
	for raw, want := range tests {
		assert.Equal(t, want, MustParseAmount(raw).IntegerDigits(), raw)
	}
}
