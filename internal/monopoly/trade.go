package monopoly

import (
	"slices"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

// ProposeTrade - opens an offer from playerID. The proposer may replace their own pending offer.
func (that *Room) ProposeTrade(playerID string, offer entity.TradeOffer) error {
	if that.status != entity.StatusPlaying {
		return apperror.ErrGameNotPlaying
	}

	proposer := that.playerByID(playerID)
	if proposer == nil {
		return apperror.ErrPlayerNotFound
	}

	if that.trade != nil && that.trade.From != playerID {
		return apperror.ErrTradePending
	}

	if offer.To == playerID || that.playerByID(offer.To) == nil {
		return apperror.ErrInvalidTrade
	}

	if offer.OfferMoney < 0 || offer.RequestMoney < 0 {
		return apperror.ErrInvalidTrade
	}

	for _, index := range slices.Concat(offer.OfferProperties, offer.RequestProperties) {
		space, err := that.space(index)
		if err != nil {
			return err
		}

		if !space.IsPurchasable() {
			return apperror.ErrInvalidTrade
		}
	}

	that.trade = &entity.TradeOffer{
		From:              playerID,
		To:                offer.To,
		OfferMoney:        offer.OfferMoney,
		RequestMoney:      offer.RequestMoney,
		OfferProperties:   slices.Clone(offer.OfferProperties),
		RequestProperties: slices.Clone(offer.RequestProperties),
	}
	that.addLog("%s proposed a trade to %s", proposer.Name, that.playerByID(offer.To).Name)

	return nil
}

// AcceptTrade - settles the pending offer. A property whose owner changed since the proposal stays put.
func (that *Room) AcceptTrade(playerID string) error {
	if that.trade == nil {
		return apperror.ErrNoTrade
	}

	if that.trade.To != playerID {
		return apperror.ErrNotTradeParty
	}

	if that.status != entity.StatusPlaying {
		return apperror.ErrGameNotPlaying
	}

	trade := that.trade
	proposer := that.playerByID(trade.From)
	counterparty := that.playerByID(trade.To)

	if proposer == nil || counterparty == nil {
		that.trade = nil
		return apperror.ErrPlayerNotFound
	}

	if trade.OfferMoney > 0 {
		that.transfer(proposer, counterparty, trade.OfferMoney)
	}

	if trade.RequestMoney > 0 {
		that.transfer(counterparty, proposer, trade.RequestMoney)
	}

	that.moveOwnership(trade.OfferProperties, proposer.ID, counterparty.ID)
	that.moveOwnership(trade.RequestProperties, counterparty.ID, proposer.ID)

	that.trade = nil
	that.addLog("%s accepted the trade from %s", counterparty.Name, proposer.Name)

	return nil
}

func (that *Room) moveOwnership(indices []int, from, to string) {
	for _, index := range indices {
		if index < 0 || index >= len(that.board) {
			continue
		}

		if that.board[index].Owner == from {
			that.board[index].Owner = to
		}
	}
}

func (that *Room) DeclineTrade(playerID string) error {
	if that.trade == nil {
		return apperror.ErrNoTrade
	}

	if that.trade.To != playerID {
		return apperror.ErrNotTradeParty
	}

	that.trade = nil
	that.addLog("Trade declined")

	return nil
}

func (that *Room) CancelTrade(playerID string) error {
	if that.trade == nil {
		return apperror.ErrNoTrade
	}

	if that.trade.From != playerID {
		return apperror.ErrNotTradeParty
	}

	that.trade = nil
	that.addLog("Trade cancelled")

	return nil
}
