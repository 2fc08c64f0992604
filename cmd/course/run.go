package main

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/banshee-data/image.course/internal/config"
	"github.com/banshee-data/image.course/internal/course"
	"github.com/banshee-data/image.course/internal/db"
	"github.com/banshee-data/image.course/internal/fsutil"
	"github.com/banshee-data/image.course/internal/timeutil"
)

// loadConfig reads the explicit config file, else the defaults file below
// base, else falls back to the built-in defaults.
func loadConfig(fsys fsutil.FileSystem, explicit, base string) (*config.CourseConfig, error) {
	if explicit != "" {
		return config.LoadCourseConfigFS(fsys, explicit)
	}
	if path, ok := config.FindConfig(fsys, base); ok {
		return config.LoadCourseConfigFS(fsys, path)
	}
	return config.DefaultCourseConfig(), nil
}

// selectSteps picks the lessons to run. No selection means the default
// sequence.
func selectSteps(names []string, all bool) ([]course.Step, error) {
	switch {
	case all:
		return course.AllSteps(), nil
	case len(names) == 0:
		return course.DefaultSequence(), nil
	}
	steps, err := course.Select(names)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("no lessons match %v", names)
	}
	return steps, nil
}

// snapshotDir is a timestamped directory below base for one headless run.
func snapshotDir(base string) string {
	return filepath.Join(base, "run_"+timeutil.Stamp(time.Now()))
}

func printCatalog(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODULE\tLESSON\tSUMMARY")
	for _, l := range course.Catalog() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", l.Module, l.Name, l.Summary)
	}
	tw.Flush()
}

type lessonHistory interface {
	RecentLessons(limit int) ([]db.LessonRecord, error)
}

func printHistory(w io.Writer, j lessonHistory, limit int) error {
	recs, err := j.RecentLessons(limit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tLESSON\tIMAGE\tSTATUS\tDURATION\tMESSAGE")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.StartedAt.Format(time.DateTime), r.Lesson, r.ImageFile, r.Status, r.Duration, r.Message)
	}
	return tw.Flush()
}
