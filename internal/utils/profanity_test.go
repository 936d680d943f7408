package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfanityFilter_Mask(t *testing.T) {
	t.Parallel()

	pf := NewDefaultProfanityFilter("heck, darn ,")

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"clean comment", "clean comment"},
		{"what the heck", "what the ****"},
		{"DARN it", "**** it"},
		{"Shithead!", "********!"},
		{"scunthorpe is a town", "scunthorpe is a town"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, pf.Mask(tt.in), "in=%q", tt.in)
	}
}

func TestProfanityFilter_NonASCIISubstring(t *testing.T) {
	t.Parallel()

	pf := NewProfanityFilter([]string{"ß-wort", "ärger"})
	require.Equal(t, "viel *****!", pf.Mask("viel ärger!"))
}

func TestProfanityFilter_Nil(t *testing.T) {
	t.Parallel()

	var pf *ProfanityFilter
	require.Equal(t, "shit", pf.Mask("shit"))
}
