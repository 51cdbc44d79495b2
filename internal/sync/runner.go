package sync

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnitKind identifies what a sync unit targets.
type UnitKind string

const (
	UnitSeries UnitKind = "series"
	UnitEvent  UnitKind = "event"
)

// UnitResult is the outcome of one independently-executed sync unit.
// Result is nil when Err is set.
type UnitResult struct {
	Kind   UnitKind
	Ticker string
	Result *Result
	Err    error
}

// Report aggregates one whole run across its units.
type Report struct {
	RunID  uuid.UUID
	Units  []UnitResult
	Totals Result
}

// Failed returns the units that errored.
func (r *Report) Failed() []UnitResult {
	var failed []UnitResult
	for _, u := range r.Units {
		if u.Err != nil {
			failed = append(failed, u)
		}
	}
	return failed
}

// Runner executes a set of series and event sync units sequentially. A
// failing unit is recorded in the report and the run moves on to the next
// unit rather than aborting the batch.
type Runner struct {
	syncer *Syncer
	logger *slog.Logger
}

func NewRunner(syncer *Syncer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{syncer: syncer, logger: logger}
}

// Run syncs every configured series ticker, then every standalone event
// ticker. Blank tickers are skipped.
func (r *Runner) Run(ctx context.Context, seriesTickers, eventTickers []string) *Report {
	report := &Report{RunID: uuid.New()}
	log := r.logger.With("run_id", report.RunID.String())
	start := time.Now()

	for _, ticker := range seriesTickers {
		r.runUnit(ctx, report, log, UnitSeries, ticker)
	}
	for _, ticker := range eventTickers {
		r.runUnit(ctx, report, log, UnitEvent, ticker)
	}

	log.Info("sync run complete",
		"units", len(report.Units),
		"failed", len(report.Failed()),
		"events", report.Totals.EventsCount,
		"markets", report.Totals.MarketsCount,
		"markets_created", report.Totals.MarketsCreated,
		"snapshots_created", report.Totals.SnapshotsCreated,
		"duration", time.Since(start))
	return report
}

func (r *Runner) runUnit(ctx context.Context, report *Report, log *slog.Logger, kind UnitKind, ticker string) {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return
	}

	var res *Result
	var err error
	switch kind {
	case UnitSeries:
		res, err = r.syncer.SyncSeries(ctx, ticker)
	default:
		res, err = r.syncer.SyncEvent(ctx, ticker)
	}

	if err != nil {
		log.Error("sync unit failed", "kind", string(kind), "ticker", ticker, "error", err)
		report.Units = append(report.Units, UnitResult{Kind: kind, Ticker: ticker, Err: err})
		return
	}
	report.Totals.add(*res)
	report.Units = append(report.Units, UnitResult{Kind: kind, Ticker: ticker, Result: res})
}
