package main

import (
	"bytes"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slopeplan/scenario"
	"github.com/katalvlaran/slopeplan/terrain"
)

func TestRun_Default(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(nil, &out, &errOut))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "34.14"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], ", Ascend"), lines[0])
	assert.Equal(t, "0, Ascend", lines[1])
	assert.Equal(t, "0, Ascend", lines[2])

	logs := errOut.String()
	assert.Contains(t, logs, "msg=\"plan complete\"")
	assert.Contains(t, logs, "evaluations=13")
	assert.Contains(t, logs, "run=")
}

func TestRun_FlagsOverrideScenario(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{
		"-scenario", filepath.Join("..", "..", "scenario", "testdata", "hills.yaml"),
		"-depth", "1", "-strategy", "Ascend", "-cache", "-trace", "-v",
	}
	require.NoError(t, run(args, &out, &errOut))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ", Ascend"), lines[0])

	logs := errOut.String()
	assert.Contains(t, logs, "cache_hits=")
	assert.Equal(t, 2, strings.Count(logs, "msg=step"))
	assert.Equal(t, 2, strings.Count(logs, "discouraged="))
	assert.Contains(t, logs, "msg=evaluate", "-v enables planner debug records")
}

func TestRun_TraceCountsDiscouragedMoves(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-depth", "0", "-trace"}, &out, &errOut))

	// On the reference cone no neighbour pair is level, so exactly one
	// direction of every pair is downhill and priced DisallowedCost under Ascend.
	logs := errOut.String()
	assert.Contains(t, logs, "edges=39,600")
	assert.Contains(t, logs, "discouraged=19,800")
}

func TestRun_Errors(t *testing.T) {
	cases := [][]string{
		{"-depth", "-1"},
		{"-strategy", "sideways"},
		{"-start", "1;2"},
		{"-start", "500,0"},
		{"-conn", "6"},
		{"-scenario", "does-not-exist.yaml"},
		{"stray"},
	}
	for _, args := range cases {
		var out, errOut bytes.Buffer
		assert.Error(t, run(args, &out, &errOut), "%v", args)
		assert.Empty(t, out.String(), "%v", args)
	}

	var out, errOut bytes.Buffer
	err := run([]string{"-h"}, &out, &errOut)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, errOut.String(), "-scenario")
}

func TestLoad_InvalidOverride(t *testing.T) {
	_, err := load(options{depth: -3}, map[string]bool{"depth": true})
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 3, 14 ")
	require.NoError(t, err)
	assert.Equal(t, terrain.C(3, 14), c)

	for _, bad := range []string{"", "3", "a,1", "1,b"} {
		_, err := parseCoord(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "unreachable", formatPath(nil))
	assert.Equal(t, "0,0 1,0", formatPath([]terrain.Coord{terrain.C(0, 0), terrain.C(1, 0)}))

	long := make([]terrain.Coord, 20)
	for i := range long {
		long[i] = terrain.C(i, 0)
	}
	got := formatPath(long)
	assert.Equal(t, 13, len(strings.Fields(got)))
	assert.True(t, strings.HasPrefix(got, "0,0 1,0"))
	assert.True(t, strings.HasSuffix(got, "18,0 19,0"))
	assert.Contains(t, got, "…")
}
