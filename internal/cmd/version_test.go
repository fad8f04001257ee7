package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	env.cfg.Settings.Tools.Cpplint = "gojo-test-no-such-cpplint"

	out, err := env.execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gojo:")
	assert.Contains(t, out, "Tools:")
	assert.Contains(t, out, "gojo-test-no-such-cpplint")
	assert.Contains(t, out, "not found")
	assert.Empty(t, env.runner.Calls())
}
