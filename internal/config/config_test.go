package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Commute)
	assert.False(t, cfg.Uniform)
	assert.Equal(t, 1, cfg.CycleTime)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/qsched.yaml"
	require.NoError(t, os.WriteFile(path, []byte("scheduler_uniform: true\ncycle_time: 4\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Uniform)
	assert.Equal(t, 4, cfg.CycleTime)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	t.Setenv("QSCHED_CYCLE_TIME", "7")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.CycleTime)
}

func TestLoad_RejectsNonPositiveCycleTime(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/qsched.yaml"
	require.NoError(t, os.WriteFile(path, []byte("cycle_time: 0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSchedConfig_ProjectsFields(t *testing.T) {
	cfg := Default()
	cfg.Uniform = true
	sc := cfg.SchedConfig()
	assert.True(t, sc.Uniform)
	assert.True(t, sc.Commute)
}
