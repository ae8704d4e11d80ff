package monopoly

import "github.com/rocketscienceinc/monopoly-backend/internal/entity"

const (
	nearestStationRentFactor = 2
	nearestUtilityDiceFactor = 10
)

func (that *Room) deckFor(kind entity.DeckKind) *deck {
	if kind == entity.DeckCommunity {
		return that.community
	}

	return that.chance
}

// drawCard - draws from the deck, resolves the effect, then returns the card unless it is kept.
func (that *Room) drawCard(player *entity.Player, kind entity.DeckKind, depth int) {
	cards := that.deckFor(kind)

	card, ok := cards.draw()
	if !ok {
		return
	}

	drawn := card
	that.lastCard = &drawn
	that.addLog("%s drew: %s", player.Name, card.Text)

	that.applyCard(player, card, depth)

	if !card.IsConsumable() {
		cards.requeue(card)
	}
}

func (that *Room) applyCard(player *entity.Player, card entity.Card, depth int) {
	switch card.Effect {
	case entity.EffectMove:
		if card.CollectGo || card.Destination < player.Position {
			that.credit(player, GoBonus)
		}

		player.Position = card.Destination
		that.land(player, depth+1)
	case entity.EffectMoveBack:
		player.Position = (player.Position - card.Spaces%BoardSize + BoardSize) % BoardSize
		that.land(player, depth+1)
	case entity.EffectCollect:
		that.credit(player, card.Amount)
	case entity.EffectPay:
		that.debit(player, card.Amount)
	case entity.EffectGoToJail:
		that.sendToJail(player)
	case entity.EffectJailFree:
		player.JailFreeCards++
	case entity.EffectPayEach:
		for _, other := range that.otherSolvent(player) {
			that.transfer(player, other, card.Amount)
		}
	case entity.EffectCollectEach:
		for _, other := range that.otherSolvent(player) {
			that.transfer(other, player, card.Amount)
		}
	case entity.EffectRepairs:
		that.debit(player, that.repairCost(player.ID, card))
	case entity.EffectNearestStation:
		that.advanceToNearest(player, entity.KindStation, func(space *entity.Space) int {
			return nearestStationRentFactor * that.rent(space)
		})
	case entity.EffectNearestUtility:
		that.advanceToNearest(player, entity.KindUtility, func(*entity.Space) int {
			return nearestUtilityDiceFactor * that.diceTotal()
		})
	}
}

// advanceToNearest - moves forward to the next space of kind. An owned space charges the card rent,
// an unowned one is offered for purchase.
func (that *Room) advanceToNearest(player *entity.Player, kind entity.SpaceKind, cardRent func(space *entity.Space) int) {
	for step := 1; step <= BoardSize; step++ {
		index := (player.Position + step) % BoardSize
		space := &that.board[index]

		if space.Kind != kind {
			continue
		}

		if player.Position+step >= BoardSize {
			that.credit(player, GoBonus)
			that.addLog("%s passed GO and collected $%d", player.Name, GoBonus)
		}

		player.Position = index

		switch {
		case !space.IsOwned():
			that.pendingPurchase = &index
		case space.Owner != player.ID && !space.Mortgaged:
			that.payRent(player, space, cardRent(space))
		}

		return
	}
}

func (that *Room) repairCost(playerID string, card entity.Card) int {
	cost := 0
	for i := range that.board {
		space := &that.board[i]
		if space.Owner != playerID {
			continue
		}

		if space.Hotel {
			cost += card.HotelRate
		} else {
			cost += space.Houses * card.HouseRate
		}
	}

	return cost
}

func (that *Room) otherSolvent(player *entity.Player) []*entity.Player {
	var others []*entity.Player
	for _, other := range that.players {
		if other.ID != player.ID && !other.IsBankrupt {
			others = append(others, other)
		}
	}

	return others
}
