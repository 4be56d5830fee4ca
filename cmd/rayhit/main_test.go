package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const basicScene = "../../scene/testdata/basic.yaml"

func TestRunReport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), basicScene, options{}, &out))

	got := out.String()
	for _, want := range []string{
		"ray east from (-5.000, 0.000) toward (1.000, 0.000)",
		"  box          2 hit(s)",
		"    (-1.000, 0.000)  distance 4.000",
		"    (13.000, 0.000)  distance 18.000",
		"  nearest: ring at (-2.000, 0.000)",
		"ray up from (0.000, -5.000) toward (0.000, 1.000)",
		"  nearest: ring at (0.000, -2.000)",
	} {
		require.Contains(t, got, want)
	}
}

func TestRunOptions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), basicScene, options{limit: 1, maxDist: 5.5}, &out))

	got := out.String()
	require.Contains(t, got, "  box          1 hit(s)")
	require.NotContains(t, got, "wall")
	require.NotContains(t, got, "distance 6.000")
}

func TestRunPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), basicScene, options{png: path, width: 120, height: 90}, &out))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 120, cfg.Width)
	require.Equal(t, 90, cfg.Height)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(context.Background(), "missing.yaml", options{}, &out))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("shapes: [{kind: hexagon}]\n"), 0o600))
	err := run(context.Background(), bad, options{}, &out)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), bad))
}
