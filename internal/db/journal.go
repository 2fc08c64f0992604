package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Lesson outcomes recorded in lesson_runs.status.
const (
	StatusOK       = "ok"
	StatusSkipped  = "skipped"
	StatusFailed   = "failed"
	StatusNotFound = "not_found"
)

// LessonRecord is one executed lesson.
type LessonRecord struct {
	RunID     string
	Lesson    string
	ImageFile string
	Status    string
	Message   string
	StartedAt time.Time
	Duration  time.Duration
}

// RenderRecord is one image handed to a display backend.
type RenderRecord struct {
	RunID    string
	Lesson   string
	Backend  string
	Index    int
	Title    string
	Height   int
	Width    int
	Channels int
	Style    string
}

// StartRun creates a run row and returns its identifier.
func (db *DB) StartRun(version string, headless bool) (string, error) {
	runID := uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO runs (run_id, version, headless, started_at) VALUES (?, ?, ?, ?)`,
		runID, version, headless, time.Now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}
	return runID, nil
}

// FinishRun stamps the run's end time.
func (db *DB) FinishRun(runID string) error {
	res, err := db.Exec(`UPDATE runs SET finished_at = ? WHERE run_id = ?`, time.Now().UnixNano(), runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("unknown run %s", runID)
	}
	return nil
}

// RecordLesson appends a lesson outcome.
func (db *DB) RecordLesson(r LessonRecord) error {
	_, err := db.Exec(
		`INSERT INTO lesson_runs (run_id, lesson, image_file, status, message, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Lesson, r.ImageFile, r.Status, r.Message, r.StartedAt.UnixNano(), r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to record lesson %s: %w", r.Lesson, err)
	}
	return nil
}

// RecordRender appends one rendered item.
func (db *DB) RecordRender(r RenderRecord) error {
	_, err := db.Exec(
		`INSERT INTO renders (run_id, lesson, backend, item_index, title, height, width, channels, style)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Lesson, r.Backend, r.Index, r.Title, r.Height, r.Width, r.Channels, r.Style,
	)
	if err != nil {
		return fmt.Errorf("failed to record render %q: %w", r.Title, err)
	}
	return nil
}

// RecentLessons returns the latest lesson outcomes, newest first.
func (db *DB) RecentLessons(limit int) ([]LessonRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(
		`SELECT run_id, lesson, image_file, status, message, started_at, duration_ms
		 FROM lesson_runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var out []LessonRecord
	for rows.Next() {
		var r LessonRecord
		var startedNanos, durationMs int64
		if err := rows.Scan(&r.RunID, &r.Lesson, &r.ImageFile, &r.Status, &r.Message, &startedNanos, &durationMs); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		r.StartedAt = time.Unix(0, startedNanos)
		r.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// RendersForLesson returns the items rendered by a lesson within a run, in
// the order they were recorded.
func (db *DB) RendersForLesson(runID, lesson string) ([]RenderRecord, error) {
	rows, err := db.Query(
		`SELECT run_id, lesson, backend, item_index, title, height, width, channels, style
		 FROM renders WHERE run_id = ? AND lesson = ? ORDER BY id`, runID, lesson)
	if err != nil {
		return nil, fmt.Errorf("failed to query renders: %w", err)
	}
	defer rows.Close()

	var out []RenderRecord
	for rows.Next() {
		var r RenderRecord
		if err := rows.Scan(&r.RunID, &r.Lesson, &r.Backend, &r.Index, &r.Title, &r.Height, &r.Width, &r.Channels, &r.Style); err != nil {
			return nil, fmt.Errorf("failed to scan render: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
