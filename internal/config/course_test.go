package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/image.course/internal/display"
	"github.com/banshee-data/image.course/internal/fsutil"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultsFileMatchesDefaultCourseConfig(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	if diff := cmp.Diff(DefaultCourseConfig(), cfg); diff != "" {
		t.Errorf("defaults file drifted (-code +file):\n%s", diff)
	}
}

func TestEmptyConfigGetters(t *testing.T) {
	t.Parallel()

	cfg := EmptyCourseConfig()
	assert.Equal(t, []string{"images"}, cfg.GetImageSubFolders())
	assert.False(t, cfg.GetHeadless())
	assert.Equal(t, "output", cfg.GetOutputDir())
	assert.True(t, cfg.GetFitToScreen())
	assert.Empty(t, cfg.GetLessons())
	assert.Empty(t, cfg.GetJournalPath())
	assert.False(t, cfg.GetSaveDerived())
	assert.Equal(t, 10, cfg.GetHueIncrement())
	assert.Equal(t, CropConfig{Top: 0.30, Bottom: 0.30, Left: 0.05, Right: 0.02}, cfg.GetCrop())
	assert.Equal(t, 0.5, cfg.GetResizeFactor())
	assert.Equal(t, 50, cfg.GetBrightnessOffset())
	assert.Equal(t, 0.5, cfg.GetContrastLow())
	assert.Equal(t, 1.2, cfg.GetContrastHigh())
	assert.Equal(t, display.Gray, cfg.GetGrayColormap())
	assert.NoError(t, cfg.Validate())
}

func TestLoadCourseConfig_Partial(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "course.json", `{
  "image_sub_folders": ["assets", "images"],
  "headless": true,
  "lessons": ["flip-image", "split-image"],
  "resize_factor": 0.25
}`)

	cfg, err := LoadCourseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"assets", "images"}, cfg.GetImageSubFolders())
	assert.True(t, cfg.GetHeadless())
	assert.Equal(t, []string{"flip-image", "split-image"}, cfg.GetLessons())
	assert.Equal(t, 0.25, cfg.GetResizeFactor())
	assert.Equal(t, 10, cfg.GetHueIncrement(), "omitted fields keep defaults")
}

func TestLoadCourseConfig_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"resize factor":   `{"resize_factor": 1.5}`,
		"negative crop":   `{"crop": {"top": -0.1, "bottom": 0, "left": 0, "right": 0}}`,
		"vertical crop":   `{"crop": {"top": 0.6, "bottom": 0.5, "left": 0, "right": 0}}`,
		"horizontal crop": `{"crop": {"top": 0, "bottom": 0, "left": 0.7, "right": 0.4}}`,
		"brightness":      `{"brightness_offset": 300}`,
		"contrast":        `{"contrast_low": 0}`,
		"absolute folder": `{"image_sub_folders": ["/etc"]}`,
		"empty folder":    `{"image_sub_folders": [""]}`,
		"malformed":       `{"headless": `,
		"color map":       `{"gray_colormap": "jet"}`,
	}
	for name, body := range cases {
		_, err := LoadCourseConfig(writeConfig(t, "bad.json", body))
		assert.Error(t, err, name)
	}
}

func TestLoadCourseConfig_FileChecks(t *testing.T) {
	t.Parallel()

	_, err := LoadCourseConfig(writeConfig(t, "course.yaml", "{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json extension")

	_, err = LoadCourseConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat")

	big := `{"lessons": ["` + strings.Repeat("x", 1024*1024) + `"]}`
	_, err = LoadCourseConfig(writeConfig(t, "big.json", big))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestLoadCourseConfigFS(t *testing.T) {
	t.Parallel()

	mfs := fsutil.NewMemoryFileSystem()
	mfs.AddFile("/opt/course/config/course.defaults.json", []byte(`{"gray_colormap": "Viridis", "hue_increment": -5}`))

	path, ok := FindConfig(mfs, "/srv", "/opt/course")
	require.True(t, ok)
	assert.Equal(t, "/opt/course/config/course.defaults.json", path)

	cfg, err := LoadCourseConfigFS(mfs, path)
	require.NoError(t, err)
	assert.Equal(t, display.Viridis, cfg.GetGrayColormap())
	assert.Equal(t, -5, cfg.GetHueIncrement())

	_, ok = FindConfig(mfs, "/srv")
	assert.False(t, ok)

	_, err = LoadCourseConfigFS(mfs, "/srv/course.json")
	assert.ErrorContains(t, err, "stat")
}
