package monopoly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	alice = "alice"
	bob   = "bob"
	carol = "carol"
)

// scriptedDice - replays fixed rolls, then falls back to a harmless 1 + 2.
type scriptedDice struct {
	rolls [][2]int
}

func (that *scriptedDice) Roll() (int, int) {
	if len(that.rolls) == 0 {
		return 1, 2
	}

	next := that.rolls[0]
	that.rolls = that.rolls[1:]

	return next[0], next[1]
}

func keepOrder([]entity.Card) {}

// newPlayingRoom - a started room with the given seats and scripted dice.
func newPlayingRoom(t *testing.T, dice *scriptedDice, ids ...string) *Room {
	t.Helper()

	room := NewRoom("TEST01", WithDice(dice), WithShuffler(keepOrder))
	for _, id := range ids {
		require.NoError(t, room.AddPlayer(id, id, ""))
	}

	require.NoError(t, room.Start(ids[0], len(ids) == 1))

	return room
}

func rolls(pairs ...[2]int) *scriptedDice {
	return &scriptedDice{rolls: pairs}
}

func (that *Room) mustPlayer(t *testing.T, id string) *entity.Player {
	t.Helper()

	player := that.playerByID(id)
	require.NotNil(t, player)

	return player
}

// stackDeck - puts the named cards on top of a deck, keeping the rest in order.
func (that *Room) stackDeck(t *testing.T, kind entity.DeckKind, ids ...string) {
	t.Helper()

	cards := that.deckFor(kind)

	var top, rest []entity.Card
	for _, id := range ids {
		for _, card := range cards.cards {
			if card.ID == id {
				top = append(top, card)
			}
		}
	}

	for _, card := range cards.cards {
		kept := true
		for _, id := range ids {
			if card.ID == id {
				kept = false
			}
		}

		if kept {
			rest = append(rest, card)
		}
	}

	require.Len(t, top, len(ids))
	cards.cards = append(top, rest...)
}
