// Command course runs the image-processing lessons in order, showing each
// lesson's results before moving on to the next.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/banshee-data/image.course/internal/config"
	"github.com/banshee-data/image.course/internal/course"
	"github.com/banshee-data/image.course/internal/db"
	"github.com/banshee-data/image.course/internal/display"
	"github.com/banshee-data/image.course/internal/display/highgui"
	"github.com/banshee-data/image.course/internal/fsutil"
	"github.com/banshee-data/image.course/internal/resolver"
	"github.com/banshee-data/image.course/internal/version"
)

var (
	configPath  = flag.String("config", "", "Path to a course config JSON file")
	baseDir     = flag.String("base", "", "Directory holding the image folders (default: executable directory)")
	lessons     = flag.String("lessons", "", "Comma-separated lesson names or module-N selectors")
	runAll      = flag.Bool("all", false, "Run every lesson of every module")
	listLessons = flag.Bool("list", false, "List the lessons and exit")
	headless    = flag.Bool("headless", false, "Write PNG snapshots instead of opening windows")
	grayCmap    = flag.String("colormap", "", "Color map for grayscale reads: gray, Reds, Greens, Blues, viridis (overrides config)")
	outDir      = flag.String("out", "", "Snapshot directory for headless runs (overrides config)")
	journalPath = flag.String("journal", "", "SQLite journal path (overrides config)")
	history     = flag.Int("history", 0, "Print the N most recent journaled lessons and exit")
	showVersion = flag.Bool("version", false, "Print the version and exit")
)

func init() {
	// HighGUI must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *listLessons {
		printCatalog(os.Stdout)
		return
	}

	base := *baseDir
	if base == "" {
		var err error
		base, err = resolver.ExecutableDir()
		if err != nil {
			log.Fatalf("failed to locate executable: %v", err)
		}
	}

	cfg, err := loadConfig(fsutil.OSFileSystem{}, *configPath, base)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var journal *db.DB
	if p := cfg.GetJournalPath(); p != "" {
		journal, err = db.NewDB(p)
		if err != nil {
			log.Fatalf("failed to open journal: %v", err)
		}
		defer journal.Close()
	}

	if *history > 0 {
		if journal == nil {
			log.Fatal("-history needs a journal (-journal or journal_path)")
		}
		if err := printHistory(os.Stdout, journal, *history); err != nil {
			log.Fatalf("failed to read journal: %v", err)
		}
		return
	}

	steps, err := selectSteps(cfg.GetLessons(), *runAll)
	if err != nil {
		log.Fatalf("%v", err)
	}

	session := &course.Session{
		Resolver: resolver.NewResolver(base, nil),
		Config:   cfg,
	}
	if cfg.GetHeadless() {
		snaps := display.NewSnapshots(nil, snapshotDir(cfg.GetOutputDir()))
		session.Canvas = display.NewCanvas(snaps)
		session.Windows = display.NewWindows(snaps)
		defer func() { log.Printf("wrote %d snapshots to %s", len(snaps.Written()), snaps.Dir()) }()
	} else {
		session.Canvas = display.NewCanvas(highgui.Viewer{})
		session.Windows = display.NewWindows(highgui.NewSystem())
	}

	if journal != nil {
		runID, err := journal.StartRun(version.Version, cfg.GetHeadless())
		if err != nil {
			log.Fatalf("failed to start run: %v", err)
		}
		session.Journal = journal
		session.RunID = runID
		defer func() {
			if err := journal.FinishRun(runID); err != nil {
				log.Printf("failed to finish run: %v", err)
			}
		}()
	}

	sum := session.Run(steps)
	log.Printf("course finished: %d ok, %d not found, %d skipped, %d failed",
		sum.OK, sum.NotFound, sum.Skipped, sum.Failed)
}

// applyFlags lets explicitly set flags override the loaded config.
func applyFlags(cfg *config.CourseConfig) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			v := *headless
			cfg.Headless = &v
		case "colormap":
			v := *grayCmap
			cfg.GrayColormap = &v
		case "out":
			v := *outDir
			cfg.OutputDir = &v
		case "journal":
			v := *journalPath
			cfg.JournalPath = &v
		case "lessons":
			cfg.Lessons = splitList(*lessons)
		}
	})
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
