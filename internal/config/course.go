package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/banshee-data/image.course/internal/display"
	"github.com/banshee-data/image.course/internal/fsutil"
)

// DefaultConfigPath is the path to the canonical course defaults file.
const DefaultConfigPath = "config/course.defaults.json"

// CourseConfig is the root configuration for a course run. Every field is
// optional; the Get* methods supply defaults for omitted fields.
type CourseConfig struct {
	// Asset lookup
	ImageSubFolders []string `json:"image_sub_folders,omitempty"`

	// Presentation
	Headless    *bool   `json:"headless,omitempty"`
	OutputDir   *string `json:"output_dir,omitempty"`
	FitToScreen *bool   `json:"fit_to_screen,omitempty"`

	// GrayColormap tints single-channel reads on the canvas.
	GrayColormap *string `json:"gray_colormap,omitempty"`

	// Run selection and bookkeeping
	Lessons     []string `json:"lessons,omitempty"`
	JournalPath *string  `json:"journal_path,omitempty"`
	SaveDerived *bool    `json:"save_derived,omitempty"`

	// Lesson parameters
	HueIncrement     *int        `json:"hue_increment,omitempty"`
	Crop             *CropConfig `json:"crop,omitempty"`
	ResizeFactor     *float64    `json:"resize_factor,omitempty"`
	BrightnessOffset *int        `json:"brightness_offset,omitempty"`
	ContrastLow      *float64    `json:"contrast_low,omitempty"`
	ContrastHigh     *float64    `json:"contrast_high,omitempty"`
}

// CropConfig holds the fraction cut from each side of an image.
type CropConfig struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Validate checks the cut fractions.
func (c CropConfig) Validate() error {
	if c.Top < 0 || c.Bottom < 0 || c.Left < 0 || c.Right < 0 {
		return fmt.Errorf("crop fractions must be non-negative, got %+v", c)
	}
	if c.Top+c.Bottom > 1 {
		return fmt.Errorf("crop top+bottom must not exceed 1, got %.2f", c.Top+c.Bottom)
	}
	if c.Left+c.Right > 1 {
		return fmt.Errorf("crop left+right must not exceed 1, got %.2f", c.Left+c.Right)
	}
	return nil
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyCourseConfig returns a CourseConfig with all fields unset.
func EmptyCourseConfig() *CourseConfig {
	return &CourseConfig{}
}

// DefaultCourseConfig returns a CourseConfig with every field set to its
// default, matching config/course.defaults.json.
func DefaultCourseConfig() *CourseConfig {
	crop := defaultCrop
	return &CourseConfig{
		ImageSubFolders:  []string{"images"},
		Headless:         ptrBool(false),
		OutputDir:        ptrString("output"),
		FitToScreen:      ptrBool(true),
		GrayColormap:     ptrString("gray"),
		JournalPath:      ptrString(""),
		SaveDerived:      ptrBool(false),
		HueIncrement:     ptrInt(10),
		Crop:             &crop,
		ResizeFactor:     ptrFloat64(0.5),
		BrightnessOffset: ptrInt(50),
		ContrastLow:      ptrFloat64(0.5),
		ContrastHigh:     ptrFloat64(1.2),
	}
}

var defaultCrop = CropConfig{Top: 0.30, Bottom: 0.30, Left: 0.05, Right: 0.02}

// LoadCourseConfig loads a CourseConfig from a JSON file on disk.
func LoadCourseConfig(path string) (*CourseConfig, error) {
	return LoadCourseConfigFS(fsutil.OSFileSystem{}, path)
}

// LoadCourseConfigFS loads a CourseConfig through fsys.
// The file must have a .json extension and be at most 1MB. Omitted fields
// keep their defaults through the Get* methods.
func LoadCourseConfigFS(fsys fsutil.FileSystem, path string) (*CourseConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyCourseConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// FindConfig returns the first dir/DefaultConfigPath that exists.
func FindConfig(fsys fsutil.FileSystem, dirs ...string) (string, bool) {
	for _, dir := range dirs {
		path := filepath.Join(dir, DefaultConfigPath)
		if fsys.Exists(path) {
			return path, true
		}
	}
	return "", false
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching the current
// directory and its parents. Panics if the file cannot be loaded, intended
// for test setup.
func MustLoadDefaultConfig() *CourseConfig {
	// internal/config and internal/display/highgui sit two and three levels down.
	path, ok := FindConfig(fsutil.OSFileSystem{}, ".", "../..", "../../..")
	if !ok {
		panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
	}
	cfg, err := LoadCourseConfig(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks that the configuration values are usable.
func (c *CourseConfig) Validate() error {
	for i, dir := range c.ImageSubFolders {
		if dir == "" || filepath.IsAbs(dir) {
			return fmt.Errorf("image_sub_folders[%d] must be a non-empty relative path, got %q", i, dir)
		}
	}

	if c.GrayColormap != nil {
		if _, err := display.ParseColormap(*c.GrayColormap); err != nil {
			return fmt.Errorf("gray_colormap: %w", err)
		}
	}

	if c.Crop != nil {
		if err := c.Crop.Validate(); err != nil {
			return err
		}
	}

	if c.ResizeFactor != nil {
		if *c.ResizeFactor <= 0 || *c.ResizeFactor >= 1 {
			return fmt.Errorf("resize_factor must be between 0 and 1, got %f", *c.ResizeFactor)
		}
	}

	if c.BrightnessOffset != nil {
		if *c.BrightnessOffset < 0 || *c.BrightnessOffset > 255 {
			return fmt.Errorf("brightness_offset must be between 0 and 255, got %d", *c.BrightnessOffset)
		}
	}

	if c.ContrastLow != nil && *c.ContrastLow <= 0 {
		return fmt.Errorf("contrast_low must be positive, got %f", *c.ContrastLow)
	}
	if c.ContrastHigh != nil && *c.ContrastHigh <= 0 {
		return fmt.Errorf("contrast_high must be positive, got %f", *c.ContrastHigh)
	}

	return nil
}

// GetImageSubFolders returns the folders below the base directory that hold
// course images.
func (c *CourseConfig) GetImageSubFolders() []string {
	if len(c.ImageSubFolders) == 0 {
		return []string{"images"}
	}
	return c.ImageSubFolders
}

// GetHeadless returns the headless value or the default.
func (c *CourseConfig) GetHeadless() bool {
	if c.Headless == nil {
		return false
	}
	return *c.Headless
}

// GetOutputDir returns the snapshot directory used in headless runs.
func (c *CourseConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return "output"
	}
	return *c.OutputDir
}

// GetFitToScreen returns the fit_to_screen value or the default.
func (c *CourseConfig) GetFitToScreen() bool {
	if c.FitToScreen == nil {
		return true
	}
	return *c.FitToScreen
}

// GetGrayColormap returns the color map for single-channel reads.
func (c *CourseConfig) GetGrayColormap() display.Colormap {
	if c.GrayColormap != nil {
		if cm, err := display.ParseColormap(*c.GrayColormap); err == nil {
			return cm
		}
	}
	return display.Gray
}

// GetLessons returns the selected lesson names. Empty means the default
// sequence.
func (c *CourseConfig) GetLessons() []string {
	return c.Lessons
}

// GetJournalPath returns the SQLite journal path. Empty disables the journal.
func (c *CourseConfig) GetJournalPath() string {
	if c.JournalPath == nil {
		return ""
	}
	return *c.JournalPath
}

// GetSaveDerived returns the save_derived value or the default.
func (c *CourseConfig) GetSaveDerived() bool {
	if c.SaveDerived == nil {
		return false
	}
	return *c.SaveDerived
}

// GetHueIncrement returns the hue_increment value or the default.
func (c *CourseConfig) GetHueIncrement() int {
	if c.HueIncrement == nil {
		return 10
	}
	return *c.HueIncrement
}

// GetCrop returns the crop fractions or the default.
func (c *CourseConfig) GetCrop() CropConfig {
	if c.Crop == nil {
		return defaultCrop
	}
	return *c.Crop
}

// GetResizeFactor returns the resize_factor value or the default.
func (c *CourseConfig) GetResizeFactor() float64 {
	if c.ResizeFactor == nil {
		return 0.5
	}
	return *c.ResizeFactor
}

// GetBrightnessOffset returns the brightness_offset value or the default.
func (c *CourseConfig) GetBrightnessOffset() int {
	if c.BrightnessOffset == nil {
		return 50
	}
	return *c.BrightnessOffset
}

// GetContrastLow returns the contrast_low value or the default.
func (c *CourseConfig) GetContrastLow() float64 {
	if c.ContrastLow == nil {
		return 0.5
	}
	return *c.ContrastLow
}

// GetContrastHigh returns the contrast_high value or the default.
func (c *CourseConfig) GetContrastHigh() float64 {
	if c.ContrastHigh == nil {
		return 1.2
	}
	return *c.ContrastHigh
}
