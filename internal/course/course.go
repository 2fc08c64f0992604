// Package course runs the lessons of the image-processing course. Each
// lesson resolves its asset, delegates the transform to OpenCV (gocv) and
// hands the labeled results to the display package.
package course

import (
	"errors"
	"fmt"

	"github.com/banshee-data/image.course/internal/config"
	"github.com/banshee-data/image.course/internal/db"
	"github.com/banshee-data/image.course/internal/display"
	"github.com/banshee-data/image.course/internal/monitoring"
	"github.com/banshee-data/image.course/internal/resolver"
	"github.com/banshee-data/image.course/internal/timeutil"
)

// Journal records lesson outcomes and rendered items. *db.DB satisfies it.
type Journal interface {
	RecordLesson(db.LessonRecord) error
	RecordRender(db.RenderRecord) error
}

// ParamError rejects lesson parameters before any image is read.
type ParamError struct {
	Lesson string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Lesson, e.Reason)
}

// Session carries the collaborators shared by every lesson of a run.
type Session struct {
	Resolver *resolver.Resolver
	Canvas   *display.Canvas
	Windows  *display.Windows
	Config   *config.CourseConfig

	// Journal is optional.
	Journal Journal
	RunID   string

	// Printf receives course output. Nil selects monitoring.Printf.
	Printf func(format string, v ...interface{})

	// Clock times lessons for the journal. Nil selects the real clock.
	Clock timeutil.Clock

	lesson string
}

// Summary counts lesson outcomes for a run.
type Summary struct {
	OK       int
	NotFound int
	Skipped  int
	Failed   int
}

func (s *Session) printf(format string, v ...interface{}) {
	if s.Printf != nil {
		s.Printf(format, v...)
		return
	}
	monitoring.Printf(format, v...)
}

func (s *Session) clock() timeutil.Clock {
	if s.Clock == nil {
		return timeutil.RealClock{}
	}
	return s.Clock
}

// readStyle is StyleForRead with the configured map for single-channel
// reads.
func (s *Session) readStyle(mode ReadMode) display.Style {
	style := StyleForRead(mode)
	if _, ok := style.Colormap(); ok {
		return display.Styled(s.cfg().GetGrayColormap())
	}
	return style
}

func (s *Session) cfg() *config.CourseConfig {
	if s.Config == nil {
		s.Config = config.EmptyCourseConfig()
	}
	return s.Config
}

// Run executes steps in order. A missing asset or rejected parameter skips
// its step with a message; any other failure is logged and the run goes on
// with the next step.
func (s *Session) Run(steps []Step) Summary {
	var sum Summary
	for _, st := range steps {
		lesson, ok := Lookup(st.Lesson)
		if !ok {
			monitoring.Logf("unknown lesson %q", st.Lesson)
			sum.Failed++
			continue
		}

		s.lesson = st.Lesson
		start := s.clock().Now()
		err := lesson.Run(s, st)
		rec := db.LessonRecord{
			RunID:     s.RunID,
			Lesson:    st.Lesson,
			ImageFile: st.File,
			StartedAt: start,
			Duration:  s.clock().Since(start),
		}

		var nf *resolver.NotFoundError
		var pe *ParamError
		switch {
		case err == nil:
			rec.Status = db.StatusOK
			sum.OK++
		case errors.As(err, &nf):
			s.printf("%s\n", nf.Error())
			rec.Status, rec.Message = db.StatusNotFound, nf.Error()
			sum.NotFound++
		case errors.As(err, &pe):
			s.printf("%s\n", pe.Reason)
			rec.Status, rec.Message = db.StatusSkipped, pe.Reason
			sum.Skipped++
		default:
			monitoring.Logf("lesson %s (%s) failed: %v", st.Lesson, st.File, err)
			rec.Status, rec.Message = db.StatusFailed, err.Error()
			sum.Failed++
		}
		s.record(rec)
	}
	s.lesson = ""
	return sum
}

// locate resolves file under the configured image folders. A miss comes
// back as *resolver.NotFoundError.
func (s *Session) locate(file string) (string, error) {
	res, err := s.Resolver.Resolve(file, s.cfg().GetImageSubFolders()...)
	if err != nil {
		return "", err
	}
	if !res.Exists {
		return "", res.NotFound()
	}
	return res.FullPath, nil
}

// plot shows items on the shared canvas.
func (s *Session) plot(items []display.Item) error {
	if s.Canvas == nil {
		return fmt.Errorf("no canvas backend configured")
	}
	if err := s.Canvas.Render(items); err != nil {
		return err
	}
	s.recordRenders("canvas", items)
	return nil
}

// show opens one window per item.
func (s *Session) show(items []display.Item, fit bool) error {
	if s.Windows == nil {
		return fmt.Errorf("no window backend configured")
	}
	if err := s.Windows.Render(items, fit && s.cfg().GetFitToScreen()); err != nil {
		return err
	}
	s.recordRenders("windows", items)
	return nil
}

func (s *Session) record(rec db.LessonRecord) {
	if s.Journal == nil {
		return
	}
	if err := s.Journal.RecordLesson(rec); err != nil {
		monitoring.Logf("journal: %v", err)
	}
}

func (s *Session) recordRenders(backend string, items []display.Item) {
	if s.Journal == nil {
		return
	}
	for i, it := range items {
		shape := display.ShapeOf(it.Image)
		err := s.Journal.RecordRender(db.RenderRecord{
			RunID:    s.RunID,
			Lesson:   s.lesson,
			Backend:  backend,
			Index:    i,
			Title:    it.Title,
			Height:   shape.Height,
			Width:    shape.Width,
			Channels: shape.Channels,
			Style:    it.Style.String(),
		})
		if err != nil {
			monitoring.Logf("journal: %v", err)
			return
		}
	}
}
