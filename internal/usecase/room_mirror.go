package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const defaultMirrorTimeout = 2 * time.Second

// roomMirror - copies a room's snapshots to the store off the actor goroutine.
// Only the newest pending snapshot is kept; older ones are overwritten.
type roomMirror struct {
	code    string
	store   roomStore
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	latest  *entity.Snapshot
	dropped bool

	wake chan struct{}
}

func newRoomMirror(code string, store roomStore, logger *slog.Logger, timeout time.Duration) *roomMirror {
	if timeout <= 0 {
		timeout = defaultMirrorTimeout
	}

	return &roomMirror{
		code:    code,
		store:   store,
		logger:  logger.With("roomCode", code),
		timeout: timeout,
		wake:    make(chan struct{}, 1),
	}
}

// push - queues snapshot as the next one to write. Never blocks.
func (that *roomMirror) push(snapshot *entity.Snapshot) {
	that.mu.Lock()
	that.latest = snapshot
	that.mu.Unlock()

	that.notify()
}

// drop - discards anything pending and deletes the stored copy.
func (that *roomMirror) drop() {
	that.mu.Lock()
	that.latest = nil
	that.dropped = true
	that.mu.Unlock()

	that.notify()
}

func (that *roomMirror) notify() {
	select {
	case that.wake <- struct{}{}:
	default:
	}
}

func (that *roomMirror) run(quit <-chan struct{}) {
	for {
		select {
		case <-that.wake:
			if done := that.flush(); done {
				return
			}
		case <-quit:
			that.flush()
			return
		}
	}
}

// flush - writes the pending state and reports whether the room is gone.
func (that *roomMirror) flush() bool {
	that.mu.Lock()
	snapshot, dropped := that.latest, that.dropped
	that.latest = nil
	that.mu.Unlock()

	if dropped {
		that.delete()
		return true
	}

	if snapshot != nil {
		that.save(snapshot)
	}

	return false
}

func (that *roomMirror) save(snapshot *entity.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
	defer cancel()

	if err := that.store.Save(ctx, snapshot); err != nil {
		that.logger.Error("failed to mirror room snapshot", "error", err)
	}
}

func (that *roomMirror) delete() {
	ctx, cancel := context.WithTimeout(context.Background(), that.timeout)
	defer cancel()

	if err := that.store.DeleteByCode(ctx, that.code); err != nil {
		that.logger.Error("failed to delete room snapshot", "error", err)
	}
}
