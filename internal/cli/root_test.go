// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/coop/internal/bench"
)

func resolveWith(t *testing.T, args ...string) (bench.Config, error) {
	t.Helper()
	cmd, opts := newRootCommand()
	require.NoError(t, cmd.ParseFlags(args))
	return resolveConfig(cmd, opts)
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveWith(t)
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultConfig(), cfg)
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coopbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 50\nwarmup: 5\n"), 0o644))

	cfg, err := resolveWith(t,
		"--config", path,
		"--samples", "7",
		"--lengths", "0,8",
		"--timer-delays", "2ms",
	)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Samples, "flag beats file")
	assert.Equal(t, 5, cfg.Warmup, "file beats default")
	assert.Equal(t, []int{0, 8}, cfg.Lengths)
	assert.Equal(t, []bench.Duration{bench.Duration(2 * time.Millisecond)}, cfg.TimerDelays)
	assert.Equal(t, 10, cfg.TimerSamples, "default survives")
}

func TestResolveConfigRejectsInvalid(t *testing.T) {
	_, err := resolveWith(t, "--samples", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "samples")
}

func TestResolveConfigMissingFile(t *testing.T) {
	_, err := resolveWith(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestRootCommandSmoke(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{
		"--samples", "1",
		"--timer-samples", "1",
		"--warmup", "0",
		"--lengths", "0,1",
		"--timer-delays", "1us",
	})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "scenario")
	assert.Contains(t, out.String(), "guard=on/alloc=stack/suspend=yield/len=0")
}
