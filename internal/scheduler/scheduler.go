package scheduler

import (
	"context"
	"fmt"
	"log"

	"TradeEdge/internal/batch"
	"TradeEdge/internal/notifier"
	"TradeEdge/internal/table"

	"github.com/robfig/cron/v3"
)

// Scheduler re-scores the watched input CSV on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Input    string
	Output   string
	Options  batch.Options
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context
}

// NewScheduler creates a Scheduler. Output may be empty to skip the
// write-back; the notifier may be unconfigured to skip the push.
func NewScheduler(ctx context.Context, input, output string, opts batch.Options, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Input:    input,
		Output:   output,
		Options:  opts,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register registers the scan task on the given cron spec.
func (s *Scheduler) Register(cronSpec string) error {
	if _, err := s.Cron.AddFunc(cronSpec, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the scan task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.scanTask()
}

// scanTask reads, scores, writes, and notifies. Failures are logged and
// the schedule keeps running; the next tick retries from scratch.
func (s *Scheduler) scanTask() {
	log.Printf("[INFO] scanning %s", s.Input)

	t, err := table.ReadFile(s.Input)
	if err != nil {
		log.Printf("[ERROR] scan read: %v", err)
		return
	}

	res, err := batch.ScoreTable(t, s.Options)
	if err != nil {
		log.Printf("[ERROR] scan score: %v", err)
		return
	}

	if s.Output != "" {
		if err := res.Table.WriteFile(s.Output); err != nil {
			log.Printf("[ERROR] scan write: %v", err)
			return
		}
		log.Printf("[INFO] results saved to %s", s.Output)
	}

	if s.Notifier != nil && s.Notifier.Enabled() {
		digest := notifier.FormatWatchDigest(res, s.Options.EVThreshold)
		if err := s.Notifier.SendWithRetry(s.Ctx, digest, 3); err != nil {
			log.Printf("[ERROR] scan notify: %v", err)
		}
	}
}
