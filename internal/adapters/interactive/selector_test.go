package interactive

import (
	"context"
	"testing"

	"github.com/phoswap/phodeploy/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm_AssumeYes(t *testing.T) {
	c := NewConfirmerAdapter(&config.RuntimeConfig{AssumeYes: true, NonInteractive: true})
	ok, err := c.Confirm(context.Background(), "Deploy?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConfirm_NonInteractiveRefuses(t *testing.T) {
	c := NewConfirmerAdapter(&config.RuntimeConfig{NonInteractive: true})
	ok, err := c.Confirm(context.Background(), "Deploy?")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "--yes")
}

func TestSuggestNames(t *testing.T) {
	known := []string{"dev", "farm", "pho"}

	tests := []struct {
		input string
		want  []string
	}{
		{input: "frm", want: []string{"farm"}},
		{input: "FARM", want: []string{"farm"}},
		{input: "farms", want: []string{"farm"}},
		{input: "xyz", want: nil},
		{input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestNames(tt.input, known))
		})
	}
}
