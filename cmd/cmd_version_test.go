package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "binary", args: nil, expected: Version},
		{name: "marketplace module", args: []string{"--module", "marketplace"}, expected: marketplace.Version},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := NewVersionCommand()
			cmd.SetOut(&out)
			cmd.SetArgs(tc.args)
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tc.expected, strings.TrimSpace(out.String()))
		})
	}

	cmd := NewVersionCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--module", "runes"})
	assert.ErrorIs(t, cmd.Execute(), errs.Unsupported)
}
