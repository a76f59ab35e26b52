package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"integer", "100", "100", true},
		{"fractional", "100.5", "100.5", true},
		{"surrounding spaces", "  0.1  ", "0.1", true},
		{"empty", "", "", false},
		{"letters", "abc", "", false},
		{"comma separator", "10,5", "", false},
		{"double dot", "1.2.3", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseAmount(tc.input)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
