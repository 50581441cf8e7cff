package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkers = `<marker_set name="sample">
<marker id="0" x="0" y="0" z="0" r="1" g="1" b="0" radius="0.05"/>
<marker id="1" x="1" y="0" z="0" r="1" g="1" b="0" radius="0.05"/>
<marker id="2" x="2" y="0" z="0" r="1" g="1" b="0" radius="0.05"/>
</marker_set>
`

func TestColorizeCmd_Use(t *testing.T) {
	assert.Equal(t, "colorize", colorizeCmd.Use)
	assert.Equal(t, "Recolour markers from an r,g,b table", colorizeCmd.Short)
}

func TestColorizeCmd_ToStdout(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	rgb := writeTestFile(t, dir, "rgb.csv", "r,g,b\n1,0,0\n0,1,0\n0,0,1\n")

	stdout, stderr, err := execute(t, nil, "colorize", "--in", in, "--rgb", rgb)

	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, `<marker id="1" x="1" y="0" z="0" r="0.000000" g="1.000000" b="0.000000" radius="0.05"/>`)
	assert.True(t, strings.HasSuffix(stdout, "</marker_set>\n"))
}

func TestColorizeCmd_ToFile(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	rgb := writeTestFile(t, dir, "rgb.csv", "1,0,0\n0,1,0\n0,0,1\n")
	out := filepath.Join(dir, "out.cmm")

	stdout, _, err := execute(t, nil, "colorize", "-i", in, "--rgb", rgb, "-o", out)

	require.NoError(t, err)
	assert.Empty(t, stdout)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `r="1.000000" g="0.000000" b="0.000000"`)
}

func TestColorizeCmd_ShortTableFails(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	rgb := writeTestFile(t, dir, "rgb.csv", "1,0,0\n0,1,0\n")
	out := filepath.Join(dir, "out.cmm")

	_, stderr, err := execute(t, nil, "colorize", "--in", in, "--rgb", rgb, "--out", out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "marker id 2")
	assert.Contains(t, stderr, "Error:")
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestColorizeCmd_RequiresFlags(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, nil, "colorize", "--in", "x.cmm")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rgb")
}

func TestLinkCmd(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	labels := writeTestFile(t, dir, "labels.bin", string([]byte{2, 2, 2}))

	stdout, _, err := execute(t, nil, "link", "--in", in, "--labels", labels)

	require.NoError(t, err)
	assert.Contains(t, stdout,
		`<link id1="0" id2="1" r="0.0" g="0.4588" b="0.8627" radius="0.006251"/>`+"\n"+
			`<link id1="1" id2="2" r="0.0" g="0.4588" b="0.8627" radius="0.006251"/>`+"\n"+
			"</marker_set>\n")
}

func TestLinkCmd_MissingMarkersWarn(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	labels := writeTestFile(t, dir, "labels.bin", string([]byte{1, 1, 1, 1, 1}))

	_, stderr, err := execute(t, nil, "link", "--in", in, "--labels", labels)

	require.NoError(t, err)
	assert.Contains(t, stderr, "warning: skipped 2 links referencing missing markers")
}

func TestLinkCmd_PaletteFlag(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	labels := writeTestFile(t, dir, "labels.bin", string([]byte{1, 1}))
	palette := writeTestFile(t, dir, "palette.csv", "0,255,0\n")

	stdout, _, err := execute(t, nil, "link", "--in", in, "--labels", labels, "--palette", palette)

	require.NoError(t, err)
	assert.Contains(t, stdout, `r="0.0" g="1.0" b="0.0"`)
}

func TestAnnotateCmd_TrackAndLinks(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	track := writeTestFile(t, dir, "track.txt", "1\n2\n3\n")
	labels := writeTestFile(t, dir, "labels.bin", string([]byte{1, 1, 1}))

	stdout, _, err := execute(t, nil, "annotate", "--in", in, "--track", track, "--cmap", "magma", "--labels", labels)

	require.NoError(t, err)
	assert.NotContains(t, stdout, `r="1" g="1" b="0"`)
	assert.Equal(t, 2, strings.Count(stdout, "<link "))
}

func TestAnnotateCmd_Groups(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	groups := writeTestFile(t, dir, "groups.csv", "A,B\n0,1\n2,\n")
	colors := writeTestFile(t, dir, "colors.csv", "A,B\n1,0\n0,1\n0,0\n")

	stdout, _, err := execute(t, nil, "annotate", "--in", in, "--groups", groups, "--colors", colors)

	require.NoError(t, err)
	assert.Contains(t, stdout, `<marker id="2" x="2" y="0" z="0" r="1.000000" g="0.000000" b="0.000000" radius="0.05"/>`)
}

func TestAnnotateCmd_FlagConflicts(t *testing.T) {
	setupTestServices(t)

	tests := map[string][]string{
		"rgb and track":         {"annotate", "--in", "a.cmm", "--rgb", "t.csv", "--track", "k.txt"},
		"groups without colors": {"annotate", "--in", "a.cmm", "--groups", "g.csv"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, nil, args...)
			assert.Error(t, err)
		})
	}
}

func TestAnnotateCmd_ColormapWithoutTrack(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)
	rgb := writeTestFile(t, dir, "rgb.csv", "1,0,0\n0,1,0\n0,0,1\n")

	stdout, _, err := execute(t, nil, "annotate", "--in", in, "--rgb", rgb, "--cmap", "magma")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--cmap only applies to --track")
	assert.Empty(t, stdout)
}

func TestAnnotateCmd_NothingToDo(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", sampleMarkers)

	_, _, err := execute(t, nil, "annotate", "--in", in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to do")
}

func TestAnnotateCmd_NoMarkersWarns(t *testing.T) {
	dir := setupTestServices(t)
	in := writeTestFile(t, dir, "in.cmm", "<marker_set>\n</marker_set>\n")
	rgb := writeTestFile(t, dir, "rgb.csv", "1,0,0\n")

	_, stderr, err := execute(t, nil, "annotate", "--in", in, "--rgb", rgb)

	require.NoError(t, err)
	assert.Contains(t, stderr, "warning: no markers updated")
}

func TestFormatWarning_PlainWhenNotTerminal(t *testing.T) {
	var buf strings.Builder

	assert.Equal(t, "warning: careful", formatWarning(&buf, "careful"))
}
