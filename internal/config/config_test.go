package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Flags(t *testing.T) {
	opts, err := Load([]string{
		"--classpath", "classes", "-c", "lib/",
		"--plan", "plan.yaml",
		"-o", "out",
		"--log-level", "debug",
		"--dump", "--no-verify",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"classes", "lib/"}, opts.Classpath)
	assert.Equal(t, []string{"classes", "lib"}, opts.Roots())
	assert.Equal(t, "plan.yaml", opts.Plan)
	assert.Equal(t, "out", opts.Output)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, 256, opts.CacheSize)
	assert.True(t, opts.Dump)
	assert.True(t, opts.NoVerify)
	assert.False(t, opts.DryRun)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GRAFTT_CLASSPATH", "a:b")
	t.Setenv("GRAFTT_PLAN", "env-plan.yaml")
	t.Setenv("GRAFTT_OUTPUT", "env-out")
	t.Setenv("GRAFTT_LOG_LEVEL", "warn")

	opts, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, opts.Classpath)
	assert.Equal(t, "env-plan.yaml", opts.Plan)
	assert.Equal(t, "env-out", opts.Output)
	assert.Equal(t, "warn", opts.LogLevel)

	opts, err = Load([]string{"--plan", "flag-plan.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "flag-plan.yaml", opts.Plan, "flags win over the environment")
}

func TestLoad_Defaults(t *testing.T) {
	opts, err := Load([]string{"-c", "classes", "-p", "plan.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "graftt-out", opts.Output)
	assert.Equal(t, "info", opts.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no classpath", args: []string{"-p", "plan.yaml"}, want: "no classpath"},
		{name: "no plan", args: []string{"-c", "classes"}, want: "no plan"},
		{name: "bad level", args: []string{"-c", "x", "-p", "y", "-l", "loud"}, want: "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := Load([]string{"--help"})
	require.Error(t, err)
	assert.True(t, IsHelp(err))

	_, err = Load([]string{"--bogus"})
	require.Error(t, err)
	assert.False(t, IsHelp(err))
}
