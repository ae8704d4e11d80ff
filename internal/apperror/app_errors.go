package apperror

import "errors"

// room directory and lookups.
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomCodeExhausted = errors.New("could not generate a free room code")
	ErrAlreadyInRoom     = errors.New("player is already in a room")
	ErrNotInRoom         = errors.New("player is not in a room")
	ErrRoomFull          = errors.New("room is full")
	ErrPlayerExists      = errors.New("player already joined")
	ErrPlayerNotFound    = errors.New("player not found")
)

// game lifecycle and turn ownership.
var (
	ErrGameNotPlaying     = errors.New("game is not in progress")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrNotEnoughPlayers   = errors.New("not enough players to start")
	ErrNotHost            = errors.New("only the host can do this")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrAlreadyRolled      = errors.New("dice already rolled this turn")
	ErrMustRoll           = errors.New("dice must be rolled before ending the turn")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInvalidSpace       = errors.New("invalid space index")
)

// jail.
var (
	ErrNotInJail  = errors.New("player is not in jail")
	ErrNoJailCard = errors.New("player has no get out of jail card")
)

// purchases and auctions.
var (
	ErrNothingToBuy      = errors.New("no property waiting for a decision")
	ErrAuctionInProgress = errors.New("an auction is in progress")
	ErrNoAuction         = errors.New("no auction in progress")
	ErrNotEligible       = errors.New("player is not eligible to bid")
	ErrInvalidBid        = errors.New("invalid bid")
)

// improvements.
var (
	ErrNotOwner      = errors.New("player does not own this property")
	ErrNotBuildable  = errors.New("property cannot be improved")
	ErrNoMonopoly    = errors.New("player does not own the whole color group")
	ErrBuildLimit    = errors.New("property is fully built")
	ErrUnevenBuild   = errors.New("houses must be built and sold evenly")
	ErrNothingToSell = errors.New("nothing to sell on this property")
)

// trades.
var (
	ErrNoTrade       = errors.New("no trade pending")
	ErrTradePending  = errors.New("another trade is pending")
	ErrInvalidTrade  = errors.New("invalid trade")
	ErrNotTradeParty = errors.New("player is not the addressed trade party")
)
