package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
)

// roomActor - owns one room. Jobs run one at a time on the actor goroutine.
type roomActor struct {
	code   string
	room   *monopoly.Room
	mirror *roomMirror

	inbox chan func()
	done  chan struct{}

	stopping bool
	stopOnce sync.Once

	summary atomic.Pointer[entity.RoomSummary]
}

func newRoomActor(room *monopoly.Room, mirror *roomMirror, mailboxSize int) *roomActor {
	return &roomActor{
		code:   room.Code(),
		room:   room,
		mirror: mirror,
		inbox:  make(chan func(), mailboxSize),
		done:   make(chan struct{}),
	}
}

func (that *roomActor) run(quit <-chan struct{}) {
	defer that.stopOnce.Do(func() { close(that.done) })

	for {
		select {
		case job := <-that.inbox:
			job()

			if that.stopping {
				return
			}
		case <-quit:
			return
		}
	}
}

// stop - asks the loop to exit after the current job. Only called from a job.
func (that *roomActor) stop() {
	that.stopping = true
}

// do - runs fn on the actor and waits for its result.
func (that *roomActor) do(ctx context.Context, fn func(room *monopoly.Room) error) error {
	reply := make(chan error, 1)
	job := func() {
		reply <- fn(that.room)
	}

	select {
	case that.inbox <- job:
	case <-that.done:
		return apperror.ErrRoomNotFound
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-reply:
		return err
	case <-that.done:
		// the job may have been the one that stopped the actor
		select {
		case err := <-reply:
			return err
		default:
			return apperror.ErrRoomNotFound
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}
