package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shreyas4546/motion"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDelays(t *testing.T) {
	out, err := run(t, "delays", "headline-accent")
	require.NoError(t, err)
	assert.Contains(t, out, "headline-accent")
	assert.Contains(t, out, "w1/c1")
	assert.Contains(t, out, "0.990")
	assert.Contains(t, out, "1.990")
}

func TestDelaysAllBlocksIncludesScene(t *testing.T) {
	out, err := run(t, "delays")
	require.NoError(t, err)
	for _, name := range []string{"headline", "hero-copy", "features", "badges", "print-ready"} {
		assert.Contains(t, out, name)
	}
}

func TestDelaysUnknownBlock(t *testing.T) {
	_, err := run(t, "delays", "footer")
	assert.ErrorContains(t, err, `no block named "footer"`)
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample", "--at", "3.1", "--visible", "features=0.5", "--block", "features")
	require.NoError(t, err)

	var frame struct {
		Time   float64 `yaml:"time"`
		Blocks map[string][]struct {
			ID    string       `yaml:"id"`
			State string       `yaml:"state"`
			Props motion.Props `yaml:"props"`
		} `yaml:"blocks"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &frame))
	assert.InDelta(t, 3.1, frame.Time, 1e-9)
	require.Len(t, frame.Blocks, 1)
	cards := frame.Blocks["features"]
	require.Len(t, cards, 4)
	assert.Equal(t, "upload", cards[1].ID)
	assert.Equal(t, "settled", cards[1].State)
	assert.Equal(t, motion.Rest, cards[1].Props)
}

func TestSampleBelowThresholdStaysPending(t *testing.T) {
	out, err := run(t, "sample", "--at", "2", "--visible", "features=0.05", "--block", "features")
	require.NoError(t, err)
	assert.Contains(t, out, "state: pending")
	assert.NotContains(t, out, "state: settled")
}

func TestSampleBadFlags(t *testing.T) {
	_, err := run(t, "sample", "--visible", "features")
	assert.ErrorContains(t, err, "want block=ratio")

	_, err = run(t, "sample", "--fire", "footer")
	assert.Error(t, err)

	_, err = run(t, "sample", "--visible", "featurs=0.5")
	assert.ErrorContains(t, err, `no block named "featurs"`)

	_, err = run(t, "sample", "--visible", "scene=0.5", "--block", "scene")
	assert.NoError(t, err)

	_, err = run(t, "sample", "--at", "-1")
	assert.Error(t, err)
}

func TestSamplePresentAndPress(t *testing.T) {
	out, err := run(t, "sample", "--at", "1", "--present", "mobile-menu", "--press", "cta",
		"--block", "mobile-menu", "--block", "cta")
	require.NoError(t, err)

	var frame struct {
		Hovers    map[string]motion.Props `yaml:"hovers"`
		Presences map[string]struct {
			Shown  bool    `yaml:"shown"`
			Extent float64 `yaml:"extent"`
		} `yaml:"presences"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &frame))
	menu, ok := frame.Presences["mobile-menu"]
	require.True(t, ok, "menu missing from output:\n%s", out)
	assert.True(t, menu.Shown)
	assert.InDelta(t, 1, menu.Extent, 1e-9)
	assert.InDelta(t, 0.98, frame.Hovers["cta"].Scale, 0.005)

	_, err = run(t, "sample", "--present", "drawer")
	assert.ErrorContains(t, err, `no presence named "drawer"`)
}

func TestInitAndLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	out, err := run(t, "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	_, err = run(t, "init", "-o", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = run(t, "--layout", path, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "layout is valid: 6 blocks")
}

func TestValidateRejectsBadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cascades:\n  - name: x\n    items: [a]\n    trigger:\n      threshold: 3\n"), 0644))
	_, err := run(t, "--layout", path, "validate")
	assert.ErrorIs(t, err, motion.ErrConfiguration)
}

func TestSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	out, err := run(t, "sheet", "--block", "hero-copy", "--frames", "4", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
