package display

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/image.course/internal/fsutil"
	"github.com/banshee-data/image.course/internal/testutil"
)

func TestSnapshots_Canvas(t *testing.T) {
	t.Parallel()

	mfs := fsutil.NewMemoryFileSystem()
	snaps := NewSnapshots(mfs, "/out/run")
	c := NewCanvas(snaps)
	c.Reportf = func(string, ...interface{}) {}

	require.NoError(t, c.Render(channelItems()[:2]))

	require.Equal(t, []string{"/out/run/001_red-channel-green-channel.png"}, snaps.Written())
	data, err := mfs.ReadFile(snaps.Written()[0])
	require.NoError(t, err)
	img := testutil.DecodePNG(t, data)
	assert.Equal(t, image.Rect(0, 0, 1152, 576), img.Bounds())
}

func TestSnapshots_Windows(t *testing.T) {
	t.Parallel()

	mfs := fsutil.NewMemoryFileSystem()
	snaps := NewSnapshots(mfs, "/out")
	w := NewWindows(snaps)
	w.Reportf = func(string, ...interface{}) {}

	require.NoError(t, w.Render(flipItems()[:2], true))
	assert.Equal(t, []string{
		"/out/001_original-image.png",
		"/out/002_image-flipped-horizontally.png",
	}, snaps.Written())

	data, err := mfs.ReadFile("/out/002_image-flipped-horizontally.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 300, 225), testutil.DecodePNG(t, data).Bounds())
}

func TestSlug(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Original Image":                     "original-image",
		"Higher Contrast with Overflow":      "higher-contrast-with-overflow",
		"Red channel / Full Merged Image":    "red-channel-full-merged-image",
		"  --  ":                             "image",
		"checkerboard_18x18.png":             "checkerboard_18x18-png",
		"Café & Crème":                       "cafe-and-creme",
		"Apollo 11 Saturn V Launch, July 16": "apollo-11-saturn-v-launch-july-16",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), in)
	}
}
