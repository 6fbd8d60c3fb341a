package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"object_patterns_code/demo"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PATTERNS_DEMOS", "")
	t.Setenv("PATTERNS_VERBOSE", "")
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootRunsEverything(t *testing.T) {
	out, err := execute(t)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "true\nPerson {calcAge: ƒ}\n50\n46\n"))
	assert.Contains(t, out, "CODING CHALLENGE 1:\n")
	assert.Contains(t, out, "CODING CHALLENGE 2:\n")
	assert.True(t, strings.HasSuffix(out, "Person -> Object\n"))
}

func TestRunSelected(t *testing.T) {
	out, err := execute(t, "run", "create")
	assert.NoError(t, err)
	assert.Equal(t, "77\n", out)
}

func TestRunUnknown(t *testing.T) {
	_, err := execute(t, "run", "boat")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
}

func TestRunNeedsArgs(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	assert := assert.New(t)
	out, err := execute(t, "list")
	assert.NoError(err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if assert.Len(lines, len(demo.All())) {
		assert.True(strings.HasPrefix(lines[0], "constructors"))
		assert.True(strings.HasPrefix(lines[5], "inspect"))
	}
}

func TestConfigSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("demos: [classes]\n"), 0o644))

	out, err := execute(t, "--config", path)
	assert.NoError(t, err)
	assert.Equal(t, "PersonCl {firstName: 'Klopp', birthYear: 1977}\n44\nHello Klopp!\nHey there\n----------------------------------------\n", out)
}

func TestConfigMissing(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
