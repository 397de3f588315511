package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/sindhujaReddy244/Hacking-Scl-Task/internal/metrics"
)

const collectTimeout = 10 * time.Second

// MessageCounter reports how many messages the board holds.
type MessageCounter interface {
	Count(ctx context.Context) (int, error)
}

// BoardStats periodically publishes the stored message count.
type BoardStats struct {
	messages MessageCounter
	metrics  metrics.Recorder
	cron     *cron.Cron
}

// NewBoardStats creates a stats job running on the given cron schedule
// (standard five-field spec or a descriptor such as "@every 1m").
func NewBoardStats(messages MessageCounter, rec metrics.Recorder, schedule string) (*BoardStats, error) {
	if rec == nil {
		rec = metrics.Nop{}
	}
	b := &BoardStats{
		messages: messages,
		metrics:  rec,
		cron:     cron.New(),
	}

	if _, err := b.cron.AddFunc(schedule, b.run); err != nil {
		return nil, fmt.Errorf("invalid stats schedule %q: %w", schedule, err)
	}
	return b, nil
}

// Start runs the job once immediately and then on schedule.
func (b *BoardStats) Start() {
	log.Info().Msg("Starting board stats job...")
	go b.run()
	b.cron.Start()
}

// Stop halts the schedule and waits for a running job to finish.
func (b *BoardStats) Stop() {
	<-b.cron.Stop().Done()
	log.Info().Msg("Stopped board stats job.")
}

// Collect counts the stored messages and updates the gauge.
func (b *BoardStats) Collect(ctx context.Context) (int, error) {
	n, err := b.messages.Count(ctx)
	if err != nil {
		return 0, err
	}
	b.metrics.SetBoardMessages(n)
	return n, nil
}

func (b *BoardStats) run() {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	n, err := b.Collect(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Board stats: failed to count messages")
		return
	}
	log.Info().Int("messages", n).Msg("Board stats")
}
