package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/gridgraph"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	smallLoop = "#####\n#S..#\n#.#.#\n#..E#\n#####\n"
	twoByTwo  = "S.\n.E\n"
	walledOff = "S#E\n"
)

// writeInputs creates name→content files in a fresh directory.
func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	return dir
}

// run executes the root command and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{2 * time.Second, "2.000 s"},
		{1005 * time.Millisecond, "1.005 s"},
		{3120 * time.Microsecond, "3.120 ms"},
		{12345 * time.Nanosecond, "12.345 micros"},
		{870 * time.Nanosecond, "0.870 micros"},
		{0, "0.000 micros"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatDuration(tc.in), tc.in.String())
	}
}

func TestDiscoverInputs(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"b.txt":     twoByTwo,
		"a.txt":     smallLoop,
		"empty.txt": "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	single := filepath.Join(writeInputs(t, map[string]string{"one.txt": twoByTwo}), "one.txt")

	got, err := discoverInputs([]string{dir, single})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		single,
	}, got)

	_, err = discoverInputs([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestSolve_DirectoryInOrder(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"1-loop.txt": smallLoop,
		"2-tiny.txt": twoByTwo,
		"3-wall.txt": walledOff,
	})

	out, err := run(t, "solve", dir, "--workers", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "1-loop.txt")
	assert.Contains(t, lines[0], "( 1004 , 5 )")
	assert.Contains(t, lines[1], "( 1002 , 3 )")
	assert.Contains(t, lines[2], "( 0 , 0 )", "unreachable end reports zero")
	for _, l := range lines {
		assert.Regexp(t, ` in \d+\.\d{3} (s|ms|micros)$`, l)
	}
}

func TestSolve_CostFlags(t *testing.T) {
	dir := writeInputs(t, map[string]string{"tiny.txt": twoByTwo})

	out, err := run(t, "solve", filepath.Join(dir, "tiny.txt"), "--step-cost", "5", "--turn-cost", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "( 12 , 3 )")

	out, err = run(t, "solve", dir, "--max-cost", "1001")
	require.NoError(t, err)
	assert.Contains(t, out, "( 0 , 0 )")

	// Facing south, the 2×2 maze needs one turn either way.
	out, err = run(t, "solve", dir, "--facing", "v")
	require.NoError(t, err)
	assert.Contains(t, out, "( 1002 , 3 )")
}

func TestSolve_Render(t *testing.T) {
	dir := writeInputs(t, map[string]string{"loop.txt": smallLoop})

	out, err := run(t, "solve", dir, "--render", "cells")
	require.NoError(t, err)
	assert.Contains(t, out, "#####\n#OOO#\n#.#O#\n#..O#\n#####\n")

	out, err = run(t, "solve", dir, "--render", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "#>>>#\n#.#v#\n#..v#\n")
}

func TestSolve_InvalidSettings(t *testing.T) {
	dir := writeInputs(t, map[string]string{"tiny.txt": twoByTwo})

	_, err := run(t, "solve", dir, "--facing", "sideways")
	assert.ErrorIs(t, err, gridgraph.ErrBadDirection)

	_, err = run(t, "solve", dir, "--turn-cost", "0")
	assert.Error(t, err)

	_, err = run(t, "solve", dir, "--workers", "0")
	assert.ErrorContains(t, err, "invalid workers")
}

func TestSolve_BadInputReportedInline(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"good.txt":    twoByTwo,
		"nostart.txt": "..E\n",
	})

	out, err := run(t, "solve", dir)
	assert.ErrorContains(t, err, "1 of 2 inputs failed")
	assert.Contains(t, out, "( 1002 , 3 )")
	assert.Contains(t, out, "error:")
	assert.Contains(t, out, gridgraph.ErrMissingStart.Error())
}

func TestSolveAll_Cancelled(t *testing.T) {
	dir := writeInputs(t, map[string]string{"loop.txt": smallLoop})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := solveAll(ctx, &out, []string{filepath.Join(dir, "loop.txt")}, config.DefaultConfig(), zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazepath.yaml")

	out, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	_, err = run(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"config", "show", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "turn: 1000")
}

// syncBuffer is a bytes.Buffer safe for one writer and a polling reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch_ResolvesOnWrite(t *testing.T) {
	dir := writeInputs(t, map[string]string{"maze.txt": twoByTwo})
	path := filepath.Join(dir, "maze.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- watchInputs(ctx, &out, []string{dir}, config.DefaultConfig(), zap.NewNop(), ready)
	}()

	select {
	case <-ready:
	case err := <-done:
		t.Fatalf("watch exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not start")
	}
	assert.Contains(t, out.String(), "( 1002 , 3 )")

	require.NoError(t, os.WriteFile(path, []byte(smallLoop), 0644))
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "( 1004 , 5 )")
	}, 5*time.Second, 20*time.Millisecond)

	added := filepath.Join(dir, "added.txt")
	require.NoError(t, os.WriteFile(added, []byte("#S....E#\n"), 0644))
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "( 5 , 6 )")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
