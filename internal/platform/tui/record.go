package tui

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Recorder logs finished rounds and persists them to the session store.
// Storage is best effort: failures are logged and play continues.
// A nil store only logs.
type Recorder struct {
	mu        sync.Mutex
	store     *storage.Store
	logger    *log.Logger
	sessionID string
	scores    [2]uint8
	ended     bool
}

// NewRecorder starts a session in mode and returns its recorder.
func NewRecorder(store *storage.Store, logger *log.Logger, mode string) *Recorder {
	r := &Recorder{store: store, logger: logger}
	if store != nil {
		id, err := store.StartSession(mode)
		if err != nil {
			logger.Warn("could not start session", "mode", mode, "error", err)
		} else {
			r.sessionID = id
		}
	}
	logger.Info("session started", "mode", mode, "session", r.sessionID)
	return r
}

// SessionID returns the stored session's ID, or "" when nothing is stored.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Observe records a frame result. Round ends are logged and stored. Other
// played frames are logged only at debug level, and the game is read only
// when something is logged.
func (r *Recorder) Observe(res pong.FrameResult, game *pong.Game) {
	if res.RoundOver {
		r.round(res, game.Snapshot())
		return
	}
	if !res.Held && r.logger.GetLevel() <= log.DebugLevel {
		r.logger.Debug("frame", game.Snapshot().KeyVals()...)
	}
}

func (r *Recorder) round(res pong.FrameResult, snap pong.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores = res.Scores

	r.logger.Info("round over", append([]any{"winner", res.Winner}, snap.KeyVals()...)...)
	if r.store == nil || r.sessionID == "" {
		return
	}
	err := r.store.RecordRound(storage.RoundRecord{
		SessionID: r.sessionID,
		Round:     snap.Round,
		Winner:    res.Winner.String(),
		Tick:      res.Tick,
		Score1:    int(res.Scores[pong.Left]),
		Score2:    int(res.Scores[pong.Right]),
	})
	if err != nil {
		r.logger.Warn("could not record round", "session", r.sessionID, "error", err)
	}
}

// End closes the session with the last recorded score. Safe to call more
// than once and from any goroutine; only the first call counts.
func (r *Recorder) End() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ended {
		return
	}
	r.ended = true

	r.logger.Info("session ended", "session", r.sessionID, "score", r.scores)
	if r.store == nil || r.sessionID == "" {
		return
	}
	if err := r.store.EndSession(r.sessionID, int(r.scores[pong.Left]), int(r.scores[pong.Right])); err != nil {
		r.logger.Warn("could not end session", "session", r.sessionID, "error", err)
	}
}
