package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/config"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/monopoly"
	"github.com/rocketscienceinc/monopoly-backend/internal/pkg"
)

const (
	EventGameState  = "game:state"
	EventGameRolled = "game:rolled"

	maxCodeAttempts    = 10
	defaultMailboxSize = 64
)

type roomStore interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	DeleteByCode(ctx context.Context, code string) error
}

type publisher interface {
	Publish(ctx context.Context, recipients []string, action string, payload any)
}

// RoomManager - directory of live rooms. Every room is driven by its own actor goroutine.
type RoomManager struct {
	logger    *slog.Logger
	conf      config.Game
	store     roomStore
	publisher publisher

	mu      sync.RWMutex
	rooms   map[string]*roomActor
	members map[string]string

	quit     chan struct{}
	quitOnce sync.Once
	wg       sync.WaitGroup

	newCode     func() (string, error)
	roomOptions []monopoly.Option
}

func NewRoomManager(logger *slog.Logger, conf config.Game, store roomStore, publisher publisher) *RoomManager {
	if conf.MailboxSize <= 0 {
		conf.MailboxSize = defaultMailboxSize
	}

	return &RoomManager{
		logger: logger.With("component", "room_manager"),
		conf:   conf,

		store:     store,
		publisher: publisher,

		rooms:   make(map[string]*roomActor),
		members: make(map[string]string),

		quit:    make(chan struct{}),
		newCode: pkg.GenerateRoomCode,
	}
}

// CreateRoom - opens a room with the caller as host and returns its code.
func (that *RoomManager) CreateRoom(ctx context.Context, playerID, name, avatar string) (string, error) {
	log := that.logger.With("method", "CreateRoom", "playerID", playerID)

	that.mu.Lock()

	if _, ok := that.members[playerID]; ok {
		that.mu.Unlock()
		return "", apperror.ErrAlreadyInRoom
	}

	code, err := that.freeCode()
	if err != nil {
		that.mu.Unlock()
		return "", err
	}

	room := monopoly.NewRoom(code, that.optionsFor(code)...)
	if err = room.AddPlayer(playerID, name, avatar); err != nil {
		that.mu.Unlock()
		return "", fmt.Errorf("failed to seat host: %w", err)
	}

	mirror := newRoomMirror(code, that.store, that.logger, that.conf.MirrorTimeout)
	actor := newRoomActor(room, mirror, that.conf.MailboxSize)
	that.rooms[code] = actor
	that.members[playerID] = code

	that.mu.Unlock()

	that.wg.Add(2)
	go func() {
		defer that.wg.Done()
		actor.run(that.quit)
	}()
	go func() {
		defer that.wg.Done()
		mirror.run(that.quit)
	}()

	if err = actor.do(ctx, func(room *monopoly.Room) error {
		that.emit(ctx, actor)
		return nil
	}); err != nil {
		return "", fmt.Errorf("failed to publish new room: %w", err)
	}

	log.Info("room created", "roomCode", code)

	return code, nil
}

// freeCode - must be called with mu held.
func (that *RoomManager) freeCode() (string, error) {
	for range maxCodeAttempts {
		code, err := that.newCode()
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}

		if _, taken := that.rooms[code]; !taken {
			return code, nil
		}
	}

	return "", apperror.ErrRoomCodeExhausted
}

func (that *RoomManager) optionsFor(code string) []monopoly.Option {
	log := that.logger.With("roomCode", code)

	options := []monopoly.Option{
		monopoly.WithMaxPlayers(that.conf.MaxPlayers),
		monopoly.WithInsolvencyHook(func(player *entity.Player) {
			log.Warn("player cash went negative", "playerID", player.ID, "money", player.Money)
		}),
	}

	return append(options, that.roomOptions...)
}

func (that *RoomManager) JoinRoom(ctx context.Context, playerID, code, name, avatar string) error {
	log := that.logger.With("method", "JoinRoom", "playerID", playerID)

	code = pkg.NormalizeRoomCode(code)

	that.mu.Lock()

	if _, ok := that.members[playerID]; ok {
		that.mu.Unlock()
		return apperror.ErrAlreadyInRoom
	}

	actor, ok := that.rooms[code]
	if !ok {
		that.mu.Unlock()
		return apperror.ErrRoomNotFound
	}

	that.members[playerID] = code

	that.mu.Unlock()

	err := actor.do(ctx, func(room *monopoly.Room) error {
		if err := room.AddPlayer(playerID, name, avatar); err != nil {
			return err
		}

		that.emit(ctx, actor)

		return nil
	})
	if err != nil {
		that.forget(playerID, code)
		return fmt.Errorf("failed to join room %s: %w", code, err)
	}

	log.Info("player joined room", "roomCode", code)

	return nil
}

func (that *RoomManager) StartGame(ctx context.Context, playerID string, testMode bool) error {
	if testMode && !that.conf.AllowTestMode {
		that.logger.Debug("test mode is disabled, starting a regular game", "playerID", playerID)
		testMode = false
	}

	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.Start(playerID, testMode)
	})
}

func (that *RoomManager) Roll(ctx context.Context, playerID string) (entity.RollEvent, error) {
	var event entity.RollEvent

	err := that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		var err error
		event, err = room.Roll(playerID)

		return err
	}, func(members []string) {
		that.publisher.Publish(ctx, members, EventGameRolled, event)
	})

	return event, err
}

func (that *RoomManager) EndTurn(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.EndTurn(playerID)
	})
}

func (that *RoomManager) BuyProperty(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.BuyProperty(playerID)
	})
}

func (that *RoomManager) DeclineProperty(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.DeclineProperty(playerID)
	})
}

func (that *RoomManager) PlaceBid(ctx context.Context, playerID string, amount int) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.PlaceBid(playerID, amount)
	})
}

func (that *RoomManager) PassAuction(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.PassAuction(playerID)
	})
}

func (that *RoomManager) PayJailFine(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.PayJailFine(playerID)
	})
}

func (that *RoomManager) UseJailCard(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.UseJailCard(playerID)
	})
}

func (that *RoomManager) BuildHouse(ctx context.Context, playerID string, index int) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.BuildHouse(playerID, index)
	})
}

func (that *RoomManager) SellHouse(ctx context.Context, playerID string, index int) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.SellHouse(playerID, index)
	})
}

func (that *RoomManager) BuildHotel(ctx context.Context, playerID string, index int) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.BuildHotel(playerID, index)
	})
}

func (that *RoomManager) SellHotel(ctx context.Context, playerID string, index int) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.SellHotel(playerID, index)
	})
}

func (that *RoomManager) ProposeTrade(ctx context.Context, playerID string, offer entity.TradeOffer) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.ProposeTrade(playerID, offer)
	})
}

func (that *RoomManager) AcceptTrade(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.AcceptTrade(playerID)
	})
}

func (that *RoomManager) DeclineTrade(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.DeclineTrade(playerID)
	})
}

func (that *RoomManager) CancelTrade(ctx context.Context, playerID string) error {
	return that.mutate(ctx, playerID, func(room *monopoly.Room) error {
		return room.CancelTrade(playerID)
	})
}

// Leave - removes the player from their room, retiring the room once it is empty.
func (that *RoomManager) Leave(ctx context.Context, playerID string) error {
	log := that.logger.With("method", "Leave", "playerID", playerID)

	that.mu.Lock()

	code, ok := that.members[playerID]
	if !ok {
		that.mu.Unlock()
		return apperror.ErrNotInRoom
	}

	delete(that.members, playerID)
	actor, ok := that.rooms[code]

	that.mu.Unlock()

	if !ok {
		return apperror.ErrRoomNotFound
	}

	err := actor.do(ctx, func(room *monopoly.Room) error {
		if err := room.RemovePlayer(playerID); err != nil {
			return err
		}

		if room.IsEmpty() {
			that.retire(actor)
			return nil
		}

		that.emit(ctx, actor)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to leave room %s: %w", code, err)
	}

	log.Info("player left room", "roomCode", code)

	return nil
}

// RoomOf - the code of the room the player sits in.
func (that *RoomManager) RoomOf(playerID string) (string, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	code, ok := that.members[playerID]

	return code, ok
}

// ListRooms - summaries of the live rooms ordered by code.
func (that *RoomManager) ListRooms() []entity.RoomSummary {
	that.mu.RLock()

	summaries := make([]entity.RoomSummary, 0, len(that.rooms))
	for _, actor := range that.rooms {
		if summary := actor.summary.Load(); summary != nil {
			summaries = append(summaries, *summary)
		}
	}

	that.mu.RUnlock()

	slices.SortFunc(summaries, func(a, b entity.RoomSummary) int {
		return strings.Compare(a.Code, b.Code)
	})

	return summaries
}

// Close - stops every room actor and waits for them to exit.
func (that *RoomManager) Close() {
	that.quitOnce.Do(func() {
		close(that.quit)
	})

	that.wg.Wait()
}

// mutate - runs op on the player's room and broadcasts the new state if it applied.
func (that *RoomManager) mutate(
	ctx context.Context,
	playerID string,
	op func(room *monopoly.Room) error,
	after ...func(members []string),
) error {
	actor, err := that.actorOf(playerID)
	if err != nil {
		return err
	}

	return actor.do(ctx, func(room *monopoly.Room) error {
		if err := op(room); err != nil {
			that.logger.Debug("action rejected", "roomCode", actor.code, "playerID", playerID, "error", err)
			return err
		}

		members := that.emit(ctx, actor)
		for _, fn := range after {
			fn(members)
		}

		return nil
	})
}

func (that *RoomManager) actorOf(playerID string) (*roomActor, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	code, ok := that.members[playerID]
	if !ok {
		return nil, apperror.ErrNotInRoom
	}

	actor, ok := that.rooms[code]
	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	return actor, nil
}

// emit - publishes the room state and queues it for the mirror. Runs on the room's actor goroutine.
func (that *RoomManager) emit(ctx context.Context, actor *roomActor) []string {
	snapshot := actor.room.Snapshot()
	members := snapshot.Members()

	actor.summary.Store(&entity.RoomSummary{
		Code:        snapshot.RoomCode,
		Status:      snapshot.Status,
		PlayerCount: len(snapshot.Players),
	})

	that.publisher.Publish(ctx, members, EventGameState, snapshot)

	actor.mirror.push(&snapshot)

	return members
}

// retire - deregisters an empty room. Runs on the room's actor goroutine.
func (that *RoomManager) retire(actor *roomActor) {
	that.mu.Lock()
	if that.rooms[actor.code] == actor {
		delete(that.rooms, actor.code)
	}
	that.mu.Unlock()

	actor.stop()

	actor.mirror.drop()

	that.logger.Info("room closed", "roomCode", actor.code)
}

func (that *RoomManager) forget(playerID, code string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.members[playerID] == code {
		delete(that.members, playerID)
	}
}

// IsDirectoryError reports whether err is a room lookup or admission failure worth telling the client about.
func IsDirectoryError(err error) bool {
	for _, target := range []error{
		apperror.ErrRoomNotFound,
		apperror.ErrAlreadyInRoom,
		apperror.ErrNotInRoom,
		apperror.ErrRoomFull,
		apperror.ErrGameAlreadyStarted,
		apperror.ErrPlayerExists,
		apperror.ErrRoomCodeExhausted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
