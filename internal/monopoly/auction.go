package monopoly

import (
	"slices"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// BuyProperty - the turn holder takes the space they were offered at list price.
func (that *Room) BuyProperty(playerID string) error {
	player, space, err := that.offeredSpace(playerID)
	if err != nil {
		return err
	}

	if !player.CanAfford(space.Price) {
		return apperror.ErrInsufficientFunds
	}

	that.debit(player, space.Price)
	space.Owner = player.ID
	that.pendingPurchase = nil
	that.addLog("%s bought %s for $%d", player.Name, space.Name, space.Price)

	return nil
}

// DeclineProperty - the turn holder passes on the offer and the space goes to auction.
func (that *Room) DeclineProperty(playerID string) error {
	player, space, err := that.offeredSpace(playerID)
	if err != nil {
		return err
	}

	var eligible []string
	for _, candidate := range that.players {
		if !candidate.IsBankrupt {
			eligible = append(eligible, candidate.ID)
		}
	}

	that.pendingPurchase = nil
	that.auction = &entity.Auction{
		SpaceIndex: space.Index,
		Eligible:   eligible,
		Passed:     []string{},
	}
	that.addLog("%s declined %s, auction started", player.Name, space.Name)

	return nil
}

func (that *Room) offeredSpace(playerID string) (*entity.Player, *entity.Space, error) {
	player, err := that.currentPlayer(playerID)
	if err != nil {
		return nil, nil, err
	}

	if that.auction != nil {
		return nil, nil, apperror.ErrAuctionInProgress
	}

	if that.pendingPurchase == nil || *that.pendingPurchase != player.Position {
		return nil, nil, apperror.ErrNothingToBuy
	}

	space := &that.board[player.Position]
	if space.IsOwned() || !space.IsPurchasable() {
		return nil, nil, apperror.ErrNothingToBuy
	}

	return player, space, nil
}

func (that *Room) PlaceBid(playerID string, amount int) error {
	if that.auction == nil {
		return apperror.ErrNoAuction
	}

	if !that.auction.IsEligible(playerID) {
		return apperror.ErrNotEligible
	}

	player := that.playerByID(playerID)
	if player == nil {
		return apperror.ErrPlayerNotFound
	}

	if amount <= that.auction.HighBid || !player.CanAfford(amount) {
		return apperror.ErrInvalidBid
	}

	that.auction.HighBid = amount
	that.auction.HighBidder = playerID
	that.auction.Passed = []string{}
	that.addLog("%s bid $%d", player.Name, amount)

	return nil
}

func (that *Room) PassAuction(playerID string) error {
	if that.auction == nil {
		return apperror.ErrNoAuction
	}

	if !that.auction.IsEligible(playerID) {
		return apperror.ErrNotEligible
	}

	if !that.auction.HasPassed(playerID) {
		that.auction.Passed = append(that.auction.Passed, playerID)

		if player := that.playerByID(playerID); player != nil {
			that.addLog("%s passed", player.Name)
		}
	}

	that.resolveAuction()

	return nil
}

// dropBidder - forgets a leaving player, voiding their high bid.
func (that *Room) dropBidder(playerID string) {
	isLeaver := func(id string) bool { return id == playerID }

	that.auction.Eligible = slices.DeleteFunc(that.auction.Eligible, isLeaver)
	that.auction.Passed = slices.DeleteFunc(that.auction.Passed, isLeaver)

	if that.auction.HighBidder == playerID {
		that.auction.HighBidder = ""
		that.auction.HighBid = 0
	}

	that.resolveAuction()
}

// resolveAuction - closes the auction once nobody can outbid the current state.
func (that *Room) resolveAuction() {
	auction := that.auction
	space := &that.board[auction.SpaceIndex]

	for _, id := range auction.Eligible {
		if id != auction.HighBidder && !auction.HasPassed(id) {
			return
		}
	}

	that.auction = nil

	winner := that.playerByID(auction.HighBidder)
	if winner == nil {
		that.addLog("Nobody bought %s", space.Name)
		return
	}

	that.debit(winner, auction.HighBid)
	space.Owner = winner.ID
	that.addLog("%s won %s for $%d", winner.Name, space.Name, auction.HighBid)
}
