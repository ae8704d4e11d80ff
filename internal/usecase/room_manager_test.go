package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/config"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	mockedUseCase "github.com/rocketscienceinc/monopoly-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

type fixedDice struct {
	first, second int
}

func (that fixedDice) Roll() (int, int) {
	return that.first, that.second
}

type publishedEvent struct {
	recipients []string
	action     string
	payload    any
}

// recorder - collects everything the manager publishes.
type recorder struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (that *recorder) record(_ context.Context, recipients []string, action string, payload any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = append(that.events, publishedEvent{recipients: recipients, action: action, payload: payload})
}

func (that *recorder) count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.events)
}

func (that *recorder) last() publishedEvent {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.events[len(that.events)-1]
}

func (that *recorder) lastState(t *testing.T) entity.Snapshot {
	t.Helper()

	that.mu.Lock()
	defer that.mu.Unlock()

	for i := len(that.events) - 1; i >= 0; i-- {
		if that.events[i].action == EventGameState {
			snapshot, ok := that.events[i].payload.(entity.Snapshot)
			require.True(t, ok)

			return snapshot
		}
	}

	require.Fail(t, "no state published")

	return entity.Snapshot{}
}

type fixture struct {
	manager   *RoomManager
	store     *mockedUseCase.MockroomStore
	publisher *mockedUseCase.Mockpublisher
	published *recorder
}

func newFixture(t *testing.T, opts ...monopoly.Option) *fixture {
	t.Helper()

	store := mockedUseCase.NewMockroomStore(t)
	publisher := mockedUseCase.NewMockpublisher(t)
	published := &recorder{}

	publisher.EXPECT().
		Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(published.record).
		Return().
		Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	conf := config.Game{MailboxSize: 8, AllowTestMode: true, MaxPlayers: 6, MirrorTimeout: time.Second}

	manager := NewRoomManager(logger, conf, store, publisher)
	manager.roomOptions = append(opts, monopoly.WithShuffler(func([]entity.Card) {}))
	t.Cleanup(manager.Close)

	return &fixture{manager: manager, store: store, publisher: publisher, published: published}
}

func (that *fixture) acceptSaves() {
	that.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Maybe()
	that.store.EXPECT().DeleteByCode(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func codes(values ...string) func() (string, error) {
	next := 0

	return func() (string, error) {
		code := values[min(next, len(values)-1)]
		next++

		return code, nil
	}
}

func TestRoomManager_CreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a room with the caller as host", func(t *testing.T) {
		// Given: a manager handing out a fixed code
		fx := newFixture(t)
		fx.manager.newCode = codes("ROOM01")

		fx.store.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(snapshot *entity.Snapshot) bool {
				return snapshot.RoomCode == "ROOM01"
			})).
			Return(nil).
			Once()

		// When: alice creates a room
		code, err := fx.manager.CreateRoom(ctx, "alice", "Alice", "pikachu")

		// Then: she hosts it and received its state
		require.NoError(t, err)
		assert.Equal(t, "ROOM01", code)

		snapshot := fx.published.lastState(t)
		require.Len(t, snapshot.Players, 1)
		assert.True(t, snapshot.Players[0].IsHost)
		assert.Equal(t, entity.StatusLobby, snapshot.Status)
		assert.Equal(t, []string{"alice"}, fx.published.last().recipients)

		roomCode, ok := fx.manager.RoomOf("alice")
		assert.True(t, ok)
		assert.Equal(t, "ROOM01", roomCode)
	})

	t.Run("Rejects a player who already sits in a room", func(t *testing.T) {
		fx := newFixture(t)
		fx.acceptSaves()

		_, err := fx.manager.CreateRoom(ctx, "alice", "Alice", "")
		require.NoError(t, err)

		_, err = fx.manager.CreateRoom(ctx, "alice", "Alice", "")
		require.ErrorIs(t, err, apperror.ErrAlreadyInRoom)
	})

	t.Run("Retries on code collisions", func(t *testing.T) {
		// Given: a generator that repeats itself before moving on
		fx := newFixture(t)
		fx.acceptSaves()
		fx.manager.newCode = codes("AAAAAA", "AAAAAA", "BBBBBB")

		// When: two rooms are created
		first, err := fx.manager.CreateRoom(ctx, "alice", "", "")
		require.NoError(t, err)
		second, err := fx.manager.CreateRoom(ctx, "bob", "", "")
		require.NoError(t, err)

		// Then: the second got the next free code
		assert.Equal(t, "AAAAAA", first)
		assert.Equal(t, "BBBBBB", second)
	})

	t.Run("Gives up when every code is taken", func(t *testing.T) {
		fx := newFixture(t)
		fx.acceptSaves()
		fx.manager.newCode = codes("AAAAAA")

		_, err := fx.manager.CreateRoom(ctx, "alice", "", "")
		require.NoError(t, err)

		_, err = fx.manager.CreateRoom(ctx, "bob", "", "")
		require.ErrorIs(t, err, apperror.ErrRoomCodeExhausted)

		_, ok := fx.manager.RoomOf("bob")
		assert.False(t, ok)
	})

	t.Run("A failing mirror does not fail the action", func(t *testing.T) {
		fx := newFixture(t)
		fx.store.EXPECT().Save(mock.Anything, mock.Anything).Return(errRedisDown).Once()

		_, err := fx.manager.CreateRoom(ctx, "alice", "", "")

		require.NoError(t, err)
	})
}

func TestRoomManager_JoinRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown room", func(t *testing.T) {
		fx := newFixture(t)

		err := fx.manager.JoinRoom(ctx, "bob", "NOPE00", "Bob", "")

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
		_, ok := fx.manager.RoomOf("bob")
		assert.False(t, ok)
	})

	t.Run("Codes are case-insensitive and everyone gets the new state", func(t *testing.T) {
		// Given: alice's room
		fx := newFixture(t)
		fx.acceptSaves()
		fx.manager.newCode = codes("ROOM01")
		_, err := fx.manager.CreateRoom(ctx, "alice", "Alice", "")
		require.NoError(t, err)

		// When: bob joins with a lower-case code
		err = fx.manager.JoinRoom(ctx, "bob", " room01", "Bob", "")

		// Then: both players receive the two-seat state
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob"}, fx.published.last().recipients)
		assert.Len(t, fx.published.lastState(t).Players, 2)
	})

	t.Run("Concurrent joins never overfill a room", func(t *testing.T) {
		// Given: a room with its host
		fx := newFixture(t)
		fx.acceptSaves()
		code, err := fx.manager.CreateRoom(ctx, "host", "", "")
		require.NoError(t, err)

		// When: ten players join at once
		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			joined int
			full   int
		)

		for i := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				err := fx.manager.JoinRoom(ctx, fmt.Sprintf("p%d", i), code, "", "")

				mu.Lock()
				defer mu.Unlock()

				switch {
				case err == nil:
					joined++
				case errors.Is(err, apperror.ErrRoomFull):
					full++
				}
			}()
		}

		wg.Wait()

		// Then: exactly five got a seat and the rest were turned away
		assert.Equal(t, 5, joined)
		assert.Equal(t, 5, full)
		assert.Len(t, fx.published.lastState(t).Players, 6)
	})
}

func TestRoomManager_Game(t *testing.T) {
	ctx := context.Background()

	t.Run("Create, join, start, roll, buy and end the turn", func(t *testing.T) {
		// Given: a room whose dice always show 1 + 2
		fx := newFixture(t, monopoly.WithDice(fixedDice{first: 1, second: 2}))
		fx.acceptSaves()

		code, err := fx.manager.CreateRoom(ctx, "alice", "Alice", "")
		require.NoError(t, err)
		require.NoError(t, fx.manager.JoinRoom(ctx, "bob", code, "Bob", ""))
		require.NoError(t, fx.manager.StartGame(ctx, "alice", false))

		// When: alice rolls onto Bhubaneswar
		event, err := fx.manager.Roll(ctx, "alice")
		require.NoError(t, err)

		// Then: the roll signal follows the state
		assert.Equal(t, [2]int{1, 2}, event.Dice)
		assert.Equal(t, EventGameRolled, fx.published.last().action)
		assert.Equal(t, event, fx.published.last().payload)

		// When: she buys it and ends the turn
		require.NoError(t, fx.manager.BuyProperty(ctx, "alice"))
		require.NoError(t, fx.manager.EndTurn(ctx, "alice"))

		// Then: the price was paid, she owns it and bob is up
		snapshot := fx.published.lastState(t)
		assert.Equal(t, 1500-60, snapshot.Players[0].Money)
		assert.Equal(t, "alice", snapshot.Board[3].Owner)
		assert.Equal(t, "bob", snapshot.CurrentTurn)
	})

	t.Run("Rejected actions publish nothing", func(t *testing.T) {
		// Given: a started game
		fx := newFixture(t)
		fx.acceptSaves()
		code, err := fx.manager.CreateRoom(ctx, "alice", "", "")
		require.NoError(t, err)
		require.NoError(t, fx.manager.JoinRoom(ctx, "bob", code, "", ""))
		require.NoError(t, fx.manager.StartGame(ctx, "alice", false))
		before := fx.published.count()

		// When: bob rolls out of turn
		_, err = fx.manager.Roll(ctx, "bob")

		// Then: the reason is returned and nothing went out
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, before, fx.published.count())
	})

	t.Run("Actions outside a room are refused", func(t *testing.T) {
		fx := newFixture(t)

		require.ErrorIs(t, fx.manager.EndTurn(ctx, "ghost"), apperror.ErrNotInRoom)
		require.ErrorIs(t, fx.manager.Leave(ctx, "ghost"), apperror.ErrNotInRoom)
	})

	t.Run("Test mode can be switched off", func(t *testing.T) {
		fx := newFixture(t)
		fx.acceptSaves()
		fx.manager.conf.AllowTestMode = false
		_, err := fx.manager.CreateRoom(ctx, "alice", "", "")
		require.NoError(t, err)

		err = fx.manager.StartGame(ctx, "alice", true)

		require.ErrorIs(t, err, apperror.ErrNotEnoughPlayers)
	})
}

func TestRoomManager_Leave(t *testing.T) {
	ctx := context.Background()

	t.Run("The last player leaving closes the room", func(t *testing.T) {
		// Given: alice alone in her room
		fx := newFixture(t)
		fx.store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Maybe()
		fx.store.EXPECT().DeleteByCode(mock.Anything, "ROOM01").Return(nil).Once()
		fx.manager.newCode = codes("ROOM01")
		_, err := fx.manager.CreateRoom(ctx, "alice", "", "")
		require.NoError(t, err)
		require.Len(t, fx.manager.ListRooms(), 1)

		// When: she leaves
		err = fx.manager.Leave(ctx, "alice")

		// Then: the room and its mirror are gone
		require.NoError(t, err)
		assert.Empty(t, fx.manager.ListRooms())
		require.ErrorIs(t, fx.manager.JoinRoom(ctx, "bob", "ROOM01", "", ""), apperror.ErrRoomNotFound)
	})

	t.Run("Remaining players get the new state", func(t *testing.T) {
		fx := newFixture(t)
		fx.acceptSaves()
		code, err := fx.manager.CreateRoom(ctx, "alice", "", "")
		require.NoError(t, err)
		require.NoError(t, fx.manager.JoinRoom(ctx, "bob", code, "", ""))

		require.NoError(t, fx.manager.Leave(ctx, "alice"))

		assert.Equal(t, []string{"bob"}, fx.published.last().recipients)
		snapshot := fx.published.lastState(t)
		require.Len(t, snapshot.Players, 1)
		assert.True(t, snapshot.Players[0].IsHost)
	})
}

func TestRoomManager_ListRooms(t *testing.T) {
	ctx := context.Background()

	// Given: two rooms created out of order
	fx := newFixture(t)
	fx.acceptSaves()
	fx.manager.newCode = codes("ZZZZZZ", "AAAAAA")
	_, err := fx.manager.CreateRoom(ctx, "alice", "", "")
	require.NoError(t, err)
	code, err := fx.manager.CreateRoom(ctx, "bob", "", "")
	require.NoError(t, err)
	require.NoError(t, fx.manager.JoinRoom(ctx, "carol", code, "", ""))

	// When: the rooms are listed
	rooms := fx.manager.ListRooms()

	// Then: they come sorted by code with their head counts
	assert.Equal(t, []entity.RoomSummary{
		{Code: "AAAAAA", Status: entity.StatusLobby, PlayerCount: 2},
		{Code: "ZZZZZZ", Status: entity.StatusLobby, PlayerCount: 1},
	}, rooms)
}

func TestRoomManager_Close(t *testing.T) {
	ctx := context.Background()

	// Given: a live room
	fx := newFixture(t)
	fx.acceptSaves()
	_, err := fx.manager.CreateRoom(ctx, "alice", "", "")
	require.NoError(t, err)

	// When: the manager is closed
	fx.manager.Close()

	// Then: the room no longer takes actions
	require.ErrorIs(t, fx.manager.StartGame(ctx, "alice", true), apperror.ErrRoomNotFound)
}

func TestIsDirectoryError(t *testing.T) {
	assert.True(t, IsDirectoryError(fmt.Errorf("failed to join room: %w", apperror.ErrRoomFull)))
	assert.True(t, IsDirectoryError(apperror.ErrRoomNotFound))
	assert.False(t, IsDirectoryError(apperror.ErrNotYourTurn))
	assert.False(t, IsDirectoryError(nil))
}
