package monopoly

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

type Dice interface {
	Roll() (int, int)
}

// Shuffler - reorders a freshly built deck in place.
type Shuffler func(cards []entity.Card)

type randomDice struct{}

func (randomDice) Roll() (int, int) {
	return rand.IntN(6) + 1, rand.IntN(6) + 1
}

func shuffleCards(cards []entity.Card) {
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
