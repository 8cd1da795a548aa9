package check

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

// CandidateSource fetches the pre-joined medication/user/caretaker projection
// for a target date ("YYYY-MM-DD"). Medications already logged as taken for
// that date are excluded by the source.
type CandidateSource interface {
	FetchDueCandidates(ctx context.Context, targetDate string) ([]models.MedicationSchedule, error)
}

// Mailer delivers one rendered notification. Implementations are expected to
// be remote and possibly failing; the checker treats every error as a
// per-batch delivery failure, never as a run failure.
type Mailer interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}

// Result is the externally observable outcome of one check run.
// EmailsSent counts confirmed deliveries only; Matched counts classified
// candidates regardless of delivery outcome.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	EmailsSent int    `json:"emailsSent"`
	Matched    int    `json:"matched"`
}

// Checker runs the fetch -> classify -> group -> dispatch pipeline once per
// invocation. It holds no state between runs: repeated runs over the same
// candidates send repeated emails, which is the intended at-least-once
// behavior of a stateless poller.
type Checker struct {
	source CandidateSource
	mailer Mailer
	log    *zap.Logger
	loc    *time.Location
	from   string
}

// NewChecker wires a checker with its external collaborators. loc is the
// wall-clock location used for all schedule arithmetic; from is the sender
// address stamped on every notification.
func NewChecker(source CandidateSource, mailer Mailer, log *zap.Logger, loc *time.Location, from string) *Checker {
	if loc == nil {
		loc = time.Local
	}
	return &Checker{
		source: source,
		mailer: mailer,
		log:    log,
		loc:    loc,
		from:   from,
	}
}

// Run executes one check as of the given instant. A fetch failure aborts the
// run with an error and no dispatch attempts; everything below the fetch is
// contained and reported through the Result.
func (c *Checker) Run(ctx context.Context, mode Mode, asOf time.Time) (Result, error) {
	local := asOf.In(c.loc)
	targetDate := local.Format("2006-01-02")
	nowM := local.Hour()*60 + local.Minute()

	c.log.Info("starting medication check",
		zap.String("mode", string(mode)),
		zap.String("date", targetDate),
		zap.String("time", fmt.Sprintf("%02d:%02d", local.Hour(), local.Minute())),
	)

	records, err := c.source.FetchDueCandidates(ctx, targetDate)
	if err != nil {
		return Result{Success: false, Message: "Database error"},
			fmt.Errorf("failed to fetch due candidates: %w", err)
	}

	if len(records) == 0 {
		return Result{Success: true, Message: "No medications found for check"}, nil
	}

	matched := c.classifyAll(records, nowM, mode)
	if len(matched) == 0 {
		msg := "No medications due for reminder right now"
		if mode == ModeMissed {
			msg = "No medications past grace period"
		}
		return Result{Success: true, Message: msg}, nil
	}

	batches := GroupByUser(matched)
	sent := c.dispatch(ctx, mode, batches)

	msg := fmt.Sprintf("Sent %d immediate reminder emails", sent)
	if mode == ModeMissed {
		msg = fmt.Sprintf("Checked medications and sent %d email alerts", sent)
	}

	return Result{
		Success:    true,
		Message:    msg,
		EmailsSent: sent,
		Matched:    len(matched),
	}, nil
}

// classifyAll filters records to those matching the mode's target outcome.
// Records with malformed schedule times are skipped with a warning so one
// bad row cannot poison the batch.
func (c *Checker) classifyAll(records []models.MedicationSchedule, nowM int, mode Mode) []models.MedicationSchedule {
	matched := make([]models.MedicationSchedule, 0, len(records))
	for _, rec := range records {
		schedM, err := ParseClockTime(rec.ScheduledTime)
		if err != nil {
			var malformed *MalformedTimeError
			if errors.As(err, &malformed) {
				c.log.Warn("skipping medication with malformed schedule time",
					zap.String("medication_id", rec.MedicationID.String()),
					zap.String("time", malformed.Value),
				)
			}
			continue
		}
		if Classify(schedM, nowM, mode) == mode.target() {
			matched = append(matched, rec)
		}
	}
	return matched
}

// dispatch fans out one send per batch and collects results independently,
// so a slow or failing caretaker address never blocks or cancels a sibling.
// Returns the number of confirmed deliveries.
func (c *Checker) dispatch(ctx context.Context, mode Mode, batches []Batch) int {
	var wg sync.WaitGroup
	var sent int64

	for _, batch := range batches {
		if batch.CaretakerEmail == "" {
			c.log.Info("no caretaker configured, skipping notification",
				zap.String("user_email", batch.UserEmail),
			)
			continue
		}

		wg.Add(1)
		go func(b Batch) {
			defer wg.Done()
			if c.dispatchOne(ctx, mode, b) {
				atomic.AddInt64(&sent, 1)
			}
		}(batch)
	}

	wg.Wait()
	return int(sent)
}

func (c *Checker) dispatchOne(ctx context.Context, mode Mode, batch Batch) bool {
	msg := RenderMessage(mode, batch, c.from)
	if err := c.mailer.Send(ctx, msg); err != nil {
		c.log.Error("failed to send notification",
			zap.String("to", batch.CaretakerEmail),
			zap.String("mode", string(mode)),
			zap.Error(err),
		)
		return false
	}
	c.log.Info("notification sent",
		zap.String("to", batch.CaretakerEmail),
		zap.String("mode", string(mode)),
		zap.Int("medications", len(batch.Medications)),
	)
	return true
}
