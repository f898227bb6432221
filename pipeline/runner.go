// Package pipeline runs one export pass: read cursor, fetch orders, append
// them to the sheet.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"seroter.com/ordersheet/cursor"
	"seroter.com/ordersheet/model"
)

// ErrRunInProgress is returned when a run is triggered while another one
// is still going.
var ErrRunInProgress = errors.New("export run already in progress")

type Fetcher interface {
	Fetch(ctx context.Context, cursor string) []model.Order
}

type Writer interface {
	Write(ctx context.Context, orders []model.Order) (int64, error)
}

type Runner struct {
	cursor  cursor.Store
	fetcher Fetcher
	writer  Writer

	running sync.Mutex
	busy    atomic.Bool

	mu   sync.RWMutex
	last *model.RunReport
}

func NewRunner(store cursor.Store, fetcher Fetcher, writer Writer) *Runner {
	return &Runner{cursor: store, fetcher: fetcher, writer: writer}
}

// Run executes one export. Only one run is allowed at a time; a concurrent
// call returns ErrRunInProgress immediately and does not replace the last
// report.
func (r *Runner) Run(ctx context.Context) (model.RunReport, error) {
	report := model.RunReport{RunId: uuid.NewString(), StartedAt: time.Now().UTC()}
	log := slog.With("run_id", report.RunId)

	if !r.running.TryLock() {
		report.Skipped = true
		report.FinishedAt = report.StartedAt
		log.Warn("skipping export, previous run still in flight")
		return report, ErrRunInProgress
	}
	defer r.running.Unlock()
	r.busy.Store(true)
	defer r.busy.Store(false)

	log.Info("running export")
	err := r.run(ctx, log, &report)
	report.FinishedAt = time.Now().UTC()
	if err != nil {
		report.Error = err.Error()
		log.Error("export failed", "error", err)
	} else {
		log.Info("export finished",
			"fetched", report.Fetched,
			"appended", report.Appended,
			"cursor", report.CursorAfter,
			"totals", report.Totals,
			"took", report.FinishedAt.Sub(report.StartedAt))
	}

	r.mu.Lock()
	r.last = &report
	r.mu.Unlock()

	return report, err
}

func (r *Runner) run(ctx context.Context, log *slog.Logger, report *model.RunReport) error {
	from, err := r.cursor.Read(ctx)
	if err != nil {
		return fmt.Errorf("read cursor: %w", err)
	}
	report.CursorBefore = from
	report.CursorAfter = from
	if from == "" {
		log.Info("no cursor found, fetching all orders")
	}

	orders := r.fetcher.Fetch(ctx, from)
	report.Fetched = len(orders)
	report.Totals = totals(log, orders)

	appended, err := r.writer.Write(ctx, orders)
	report.Appended = appended
	if err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	if len(orders) > 0 {
		report.CursorAfter = orders[0].CreatedAt
	}
	return nil
}

// Last returns the most recent completed report, or false before the
// first run has finished.
func (r *Runner) Last() (model.RunReport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.last == nil {
		return model.RunReport{}, false
	}
	return *r.last, true
}

// Running reports whether a run is in flight.
func (r *Runner) Running() bool {
	return r.busy.Load()
}

// Cursor exposes the stored watermark.
func (r *Runner) Cursor(ctx context.Context) (string, error) {
	return r.cursor.Read(ctx)
}
