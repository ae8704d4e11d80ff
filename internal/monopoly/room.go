package monopoly

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	DefaultMaxPlayers = 6
	DefaultLogLimit   = 200
)

// Room - one game instance. Not safe for concurrent use: callers serialize access.
type Room struct {
	code   string
	status entity.RoomStatus

	players []*entity.Player
	board   []entity.Space

	chance    *deck
	community *deck

	turn         int
	doubles      int
	dice         [2]int
	hasRolled    bool
	canRollAgain bool

	pendingPurchase *int
	auction         *entity.Auction
	trade           *entity.TradeOffer

	logs     []string
	lastCard *entity.Card
	testMode bool

	maxPlayers  int
	logLimit    int
	roller      Dice
	shuffle     Shuffler
	onInsolvent func(player *entity.Player)
}

type Option func(room *Room)

func WithDice(dice Dice) Option {
	return func(room *Room) {
		room.roller = dice
	}
}

func WithShuffler(shuffle Shuffler) Option {
	return func(room *Room) {
		room.shuffle = shuffle
	}
}

func WithMaxPlayers(limit int) Option {
	return func(room *Room) {
		if limit > 0 {
			room.maxPlayers = limit
		}
	}
}

func WithLogLimit(limit int) Option {
	return func(room *Room) {
		if limit > 0 {
			room.logLimit = limit
		}
	}
}

// WithInsolvencyHook - called whenever a debit leaves a player's cash below zero.
func WithInsolvencyHook(hook func(player *entity.Player)) Option {
	return func(room *Room) {
		room.onInsolvent = hook
	}
}

func NewRoom(code string, opts ...Option) *Room {
	room := &Room{
		code:       code,
		status:     entity.StatusLobby,
		board:      newBoard(),
		maxPlayers: DefaultMaxPlayers,
		logLimit:   DefaultLogLimit,
		roller:     randomDice{},
		shuffle:    shuffleCards,
	}

	for _, opt := range opts {
		opt(room)
	}

	room.chance = newDeck(entity.DeckChance, room.shuffle)
	room.community = newDeck(entity.DeckCommunity, room.shuffle)

	return room
}

func (that *Room) Code() string {
	return that.code
}

func (that *Room) Status() entity.RoomStatus {
	return that.status
}

func (that *Room) IsEmpty() bool {
	return len(that.players) == 0
}

// Members - player ids in seat order.
func (that *Room) Members() []string {
	ids := make([]string, 0, len(that.players))
	for _, player := range that.players {
		ids = append(ids, player.ID)
	}

	return ids
}

func (that *Room) AddPlayer(id, name, avatar string) error {
	if that.status != entity.StatusLobby {
		return apperror.ErrGameAlreadyStarted
	}

	if that.playerByID(id) != nil {
		return apperror.ErrPlayerExists
	}

	if len(that.players) >= that.maxPlayers {
		return apperror.ErrRoomFull
	}

	seat := len(that.players)
	if name == "" {
		name = fmt.Sprintf("Player %d", seat+1)
	}

	player := entity.NewPlayer(id, name, avatar, seat)
	player.IsHost = seat == 0

	that.players = append(that.players, player)
	that.addLog("%s joined the room", player.Name)

	return nil
}

func (that *Room) Start(playerID string, testMode bool) error {
	if that.status != entity.StatusLobby {
		return apperror.ErrGameAlreadyStarted
	}

	player := that.playerByID(playerID)
	if player == nil || !player.IsHost {
		return apperror.ErrNotHost
	}

	required := 2
	if testMode {
		required = 1
	}

	if len(that.players) < required {
		return apperror.ErrNotEnoughPlayers
	}

	that.status = entity.StatusPlaying
	that.testMode = testMode
	that.turn = 0
	that.resetTurnState()
	that.addLog("Game started. %s goes first", that.players[0].Name)

	return nil
}

// RemovePlayer - drops a seat in any state, releasing everything the player held.
func (that *Room) RemovePlayer(playerID string) error {
	seat := that.seatOf(playerID)
	if seat < 0 {
		return apperror.ErrPlayerNotFound
	}

	leaver := that.players[seat]

	for i := range that.board {
		if that.board[i].Owner == playerID {
			that.board[i].Release()
		}
	}

	if that.trade != nil && (that.trade.From == playerID || that.trade.To == playerID) {
		that.trade = nil
	}

	that.players = slices.Delete(that.players, seat, seat+1)
	that.addLog("%s left the room", leaver.Name)

	if that.auction != nil {
		that.dropBidder(playerID)
	}

	if len(that.players) == 0 {
		that.turn = 0
		return nil
	}

	if leaver.IsHost {
		that.players[0].IsHost = true
	}

	that.fixTurnAfterRemoval(seat)

	if that.status == entity.StatusPlaying && !that.testMode && that.solventCount() <= 1 {
		that.status = entity.StatusEnded
		that.auction = nil
		that.trade = nil
		that.pendingPurchase = nil
		that.addLog("Game over")
	}

	return nil
}

func (that *Room) fixTurnAfterRemoval(seat int) {
	switch {
	case seat < that.turn:
		that.turn--
	case seat == that.turn:
		that.turn %= len(that.players)
		that.resetTurnState()

		if that.players[that.turn].IsBankrupt {
			that.turn = that.nextSolventSeat(that.turn)
		}
	}
}

// Snapshot - a deep copy of the room state, safe to hand to other goroutines.
func (that *Room) Snapshot() entity.Snapshot {
	snapshot := entity.Snapshot{
		RoomCode:     that.code,
		Status:       that.status,
		Players:      make([]entity.Player, 0, len(that.players)),
		Board:        make([]entity.Space, len(that.board)),
		Dice:         that.dice,
		DoublesCount: that.doubles,
		HasRolled:    that.hasRolled,
		CanRollAgain: that.canRollAgain,
		Logs:         slices.Clone(that.logs),
	}

	for _, player := range that.players {
		snapshot.Players = append(snapshot.Players, *player)
	}

	for i, space := range that.board {
		space.Rent = slices.Clone(space.Rent)
		snapshot.Board[i] = space
	}

	if that.status == entity.StatusPlaying && len(that.players) > 0 {
		snapshot.CurrentTurn = that.players[that.turn].ID
	}

	if that.pendingPurchase != nil {
		index := *that.pendingPurchase
		snapshot.PendingPurchase = &index
	}

	if that.lastCard != nil {
		card := *that.lastCard
		snapshot.LastCard = &card
	}

	if that.auction != nil {
		auction := *that.auction
		auction.Eligible = slices.Clone(that.auction.Eligible)
		auction.Passed = slices.Clone(that.auction.Passed)
		snapshot.Auction = &auction
	}

	if that.trade != nil {
		trade := *that.trade
		trade.OfferProperties = slices.Clone(that.trade.OfferProperties)
		trade.RequestProperties = slices.Clone(that.trade.RequestProperties)
		snapshot.Trade = &trade
	}

	return snapshot
}

func (that *Room) playerByID(id string) *entity.Player {
	if seat := that.seatOf(id); seat >= 0 {
		return that.players[seat]
	}

	return nil
}

func (that *Room) seatOf(id string) int {
	return slices.IndexFunc(that.players, func(player *entity.Player) bool {
		return player.ID == id
	})
}

// currentPlayer - the turn holder, checked against the caller.
func (that *Room) currentPlayer(playerID string) (*entity.Player, error) {
	if that.status != entity.StatusPlaying || len(that.players) == 0 {
		return nil, apperror.ErrGameNotPlaying
	}

	if that.players[that.turn].ID != playerID {
		return nil, apperror.ErrNotYourTurn
	}

	return that.players[that.turn], nil
}

func (that *Room) solventCount() int {
	count := 0
	for _, player := range that.players {
		if !player.IsBankrupt {
			count++
		}
	}

	return count
}

func (that *Room) resetTurnState() {
	that.doubles = 0
	that.hasRolled = false
	that.canRollAgain = false
	that.pendingPurchase = nil
}

func (that *Room) debit(player *entity.Player, amount int) {
	player.Money -= amount

	if player.Money < 0 && that.onInsolvent != nil {
		that.onInsolvent(player)
	}
}

func (that *Room) credit(player *entity.Player, amount int) {
	player.Money += amount
}

// transfer - moves cash between players, the payer may end up negative.
func (that *Room) transfer(from, to *entity.Player, amount int) {
	that.debit(from, amount)
	that.credit(to, amount)
}

func (that *Room) addLog(format string, args ...any) {
	that.logs = append(that.logs, fmt.Sprintf(format, args...))

	if overflow := len(that.logs) - that.logLimit; overflow > 0 {
		that.logs = slices.Delete(that.logs, 0, overflow)
	}
}

func (that *Room) space(index int) (*entity.Space, error) {
	if index < 0 || index >= len(that.board) {
		return nil, apperror.ErrInvalidSpace
	}

	return &that.board[index], nil
}
