package repository

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zippyy/deck-tracker-go/internal/events"
)

// SummaryFunc supplies the identity half of a match record (ids, names,
// classes) from current session state; the recorder fills in outcome and
// turn count from the event stream.
type SummaryFunc func() Match

// Recorder listens on the event bus and writes a row when a match
// reaches an outcome.
type Recorder struct {
	repo      *MatchRepository
	summarize SummaryFunc
	logger    *zap.Logger

	mu       sync.Mutex
	lastTurn int
	conceded bool
}

// NewRecorder creates a recorder and subscribes it to bus.
func NewRecorder(bus *events.Bus, repo *MatchRepository, summarize SummaryFunc, logger *zap.Logger) *Recorder {
	r := &Recorder{repo: repo, summarize: summarize, logger: logger}
	bus.Subscribe(r.handle)
	return r
}

func (r *Recorder) handle(ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ev.Turn > r.lastTurn {
		r.lastTurn = ev.Turn
	}

	switch ev.Type {
	case events.EventConcede:
		r.conceded = true
	case events.EventWin:
		r.save("win")
	case events.EventLoss:
		if r.conceded {
			r.save("concede")
		} else {
			r.save("loss")
		}
	case events.EventTied:
		r.save("tie")
	}
}

func (r *Recorder) save(outcome string) {
	m := r.summarize()
	m.Outcome = outcome
	m.Turns = r.lastTurn
	m.EndedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.repo.Save(ctx, m); err != nil {
		r.logger.Error("recording match", zap.Error(err))
		return
	}
	r.logger.Info("match recorded",
		zap.String("match_id", m.ID.String()),
		zap.String("outcome", outcome),
		zap.Int("turns", m.Turns),
	)
	r.lastTurn = 0
	r.conceded = false
}
