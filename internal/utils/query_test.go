package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"1", 1},
		{"2", 2},
		{" 3", 3},
		{"3abc", 3},
		{"+4", 4},
		{"0", 1},
		{"-2", 1},
		{"2.7", 2},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParsePage(tt.in), "in=%q", tt.in)
	}
}

func TestOid(t *testing.T) {
	t.Parallel()

	_, err := Oid("not-an-id")
	require.Error(t, err)

	id, err := Oid("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", id.Hex())
}
