// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	mainCommand.SetOut(&out)
	mainCommand.SetErr(&out)
	mainCommand.SetArgs(args)
	err := mainCommand.Execute()

	return out.String(), err
}

func TestScenarioCommand(t *testing.T) {
	out, err := execute(t, "scenario")
	require.NoError(t, err)
	for _, name := range []string{"S1", "S2", "S3", "S4", "S5", "S6"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "FAIL")

	_, err = execute(t, "scenario", "S9")
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", "--kind", "cdll", "--shuffle", "0", "10", "20", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "10 <-> 20 <-> 30")
	assert.Contains(t, out, "len: 3")

	out, err = execute(t, "list", "--kind", "csll", "--shuffle", "4", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "len: 4")

	_, err = execute(t, "list", "--kind", "skiplist", "--shuffle", "0", "1")
	assert.ErrorIs(t, err, errUnknownKind)

	_, err = execute(t, "list", "--kind", "sll", "--shuffle", "0", "x")
	assert.Error(t, err)
}

func TestHeapCommand(t *testing.T) {
	out, err := execute(t, "heap", "--capacity", "8", "--variant", "max", "4", "5", "6", "3", "2", "1", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "level order: 7 4 6 3 2 1 5")
	assert.Contains(t, out, "drained: [7 6 5 4 3 2 1]")

	out, err = execute(t, "heap", "--capacity", "0", "--variant", "min", "3", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "drained: [1 2 3]")

	_, err = execute(t, "heap", "--variant", "median", "1")
	assert.Error(t, err)
}

func TestAVLCommand(t *testing.T) {
	out, err := execute(t, "avl", "30", "25", "35", "20", "15", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "level order: 30 20 35 15 25")
	assert.Contains(t, out, "in order:    [15 20 25 30 35]")
	assert.Contains(t, out, "  20 (h=2, b=+0)")
}

func TestQueueCommand(t *testing.T) {
	out, err := execute(t, "queue", "--capacity", "2", "--producers", "3", "--items", "5")
	require.NoError(t, err)
	// values 0..14
	assert.Contains(t, out, "consumed 15 values, sum 105")
	assert.Contains(t, out, "lvlds_queue_enqueued_total 15")
	assert.Contains(t, out, "lvlds_queue_length 0")
}

func TestLogLevelFromEnv(t *testing.T) {
	t.Setenv("LVLDS_LOG_LEVEL", "loud")
	_, err := execute(t, "scenario", "S1")
	assert.Error(t, err)
}
