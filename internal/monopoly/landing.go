package monopoly

import "github.com/rocketscienceinc/monopoly-backend/internal/entity"

const maxLandingDepth = 8

// land - applies the effect of the space the player now occupies. First match wins.
func (that *Room) land(player *entity.Player, depth int) {
	if depth > maxLandingDepth {
		return
	}

	space := &that.board[player.Position]

	switch {
	case player.Position == GoToJailIndex:
		that.sendToJail(player)
	case space.Kind == entity.KindSpecial && space.Deck != "":
		that.drawCard(player, space.Deck, depth)
	case space.Kind == entity.KindTax:
		that.debit(player, space.Tax)
		that.addLog("%s paid $%d %s", player.Name, space.Tax, space.Name)
	case space.IsOwned() && space.Owner != player.ID && !space.Mortgaged:
		that.payRent(player, space, that.rent(space))
	case space.IsPurchasable() && !space.IsOwned():
		index := space.Index
		that.pendingPurchase = &index
	}
}

func (that *Room) payRent(player *entity.Player, space *entity.Space, amount int) {
	owner := that.playerByID(space.Owner)
	if owner == nil {
		return
	}

	that.transfer(player, owner, amount)
	that.addLog("%s paid $%d rent to %s", player.Name, amount, owner.Name)
}
