package monopoly

import "github.com/rocketscienceinc/monopoly-backend/internal/entity"

type deck struct {
	kind  entity.DeckKind
	cards []entity.Card
}

func newDeck(kind entity.DeckKind, shuffle Shuffler) *deck {
	cards := newDeckCards(kind)
	shuffle(cards)

	return &deck{kind: kind, cards: cards}
}

// draw - pops the front card, false when the deck ran dry.
func (that *deck) draw() (entity.Card, bool) {
	if len(that.cards) == 0 {
		return entity.Card{}, false
	}

	card := that.cards[0]
	that.cards = that.cards[1:]

	return card, true
}

func (that *deck) requeue(card entity.Card) {
	that.cards = append(that.cards, card)
}

func (that *deck) size() int {
	return len(that.cards)
}
