package config_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaresPSCR/ROScript/pkg/config"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
log_level: debug
color: never
trailing_newline: false
max_steps: 1000
input_prompt: "> "
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.False(t, cfg.TrailingNewline)
	assert.Equal(t, 1000, cfg.MaxSteps)
	assert.Equal(t, "> ", cfg.InputPrompt)
	assert.Equal(t, config.Default().MaxSourceSize, cfg.MaxSourceSize)
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := config.Decode(strings.NewReader("max_stepz: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_stepz")
}

func TestValidationAggregatesIssues(t *testing.T) {
	_, err := config.Decode(strings.NewReader("log_level: loud\ncolor: purple\nmax_steps: -1\nmax_source_size: 0\n"))
	require.Error(t, err)

	verr, ok := err.(*config.ValidationError)
	require.True(t, ok, "got %T", err)
	assert.Len(t, verr.Issues, 4)
	assert.Contains(t, err.Error(), "config validation failed:")
}

func TestSourceRootMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Decode(strings.NewReader("source_root: " + dir + "\n"))
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.SourceRoot)

	_, err = config.Decode(strings.NewReader("source_root: " + filepath.Join(dir, "missing") + "\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source_root")
}

func TestFindPathOrder(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("max_steps: 7\n"), 0o644))

	t.Setenv(config.EnvConfigPath, envPath)
	log := quietLogger()

	assert.Equal(t, "explicit.yaml", config.FindPath("explicit.yaml", log))
	assert.Equal(t, envPath, config.FindPath("", log))

	cfg, err := config.Resolve("", log)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxSteps)
}

func TestResolveExplicitMissing(t *testing.T) {
	_, err := config.Resolve(filepath.Join(t.TempDir(), "missing.yaml"), quietLogger())
	assert.Error(t, err)
}

func TestDefaultPaths(t *testing.T) {
	paths := config.DefaultPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, config.FileName, filepath.Base(paths[0]))
}
