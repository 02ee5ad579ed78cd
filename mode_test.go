package subspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"dist", Dist},
		{"trace", Trace},
		{"canonical", Canonical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMode(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
			assert.Equal(t, tt.name, m.String())
		})
	}
}

func TestParseModeInvalid(t *testing.T) {
	for _, name := range []string{"", "Dist", "frobenius", "cca"} {
		_, err := ParseMode(name)
		assert.ErrorIs(t, err, ErrInvalidMode, name)
	}
}

func TestModeDefault(t *testing.T) {
	var m Mode
	assert.Equal(t, Dist, m)
	assert.Equal(t, "Mode(-1)", Mode(-1).String())
}
