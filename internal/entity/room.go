package entity

import "slices"

type RoomStatus string

const (
	StatusLobby   RoomStatus = "LOBBY"
	StatusPlaying RoomStatus = "PLAYING"
	StatusEnded   RoomStatus = "ENDED"
)

// Auction - bidding on a property the lander declined to buy.
type Auction struct {
	SpaceIndex int      `json:"space_index"`
	HighBid    int      `json:"high_bid"`
	HighBidder string   `json:"high_bidder,omitempty"`
	Eligible   []string `json:"eligible"`
	Passed     []string `json:"passed"`
}

func (that *Auction) IsEligible(playerID string) bool {
	return slices.Contains(that.Eligible, playerID)
}

func (that *Auction) HasPassed(playerID string) bool {
	return slices.Contains(that.Passed, playerID)
}

// TradeOffer - a pending bilateral exchange of money and properties.
type TradeOffer struct {
	From              string `json:"from"`
	To                string `json:"to"`
	OfferMoney        int    `json:"offer_money"`
	RequestMoney      int    `json:"request_money"`
	OfferProperties   []int  `json:"offer_properties,omitempty"`
	RequestProperties []int  `json:"request_properties,omitempty"`
}

// Snapshot - the canonical state of one room, emitted after every applied action.
type Snapshot struct {
	RoomCode        string      `json:"room_code"`
	Status          RoomStatus  `json:"status"`
	Players         []Player    `json:"players"`
	Board           []Space     `json:"board"`
	CurrentTurn     string      `json:"current_turn,omitempty"`
	Dice            [2]int      `json:"dice"`
	DoublesCount    int         `json:"doubles_count"`
	HasRolled       bool        `json:"has_rolled"`
	CanRollAgain    bool        `json:"can_roll_again"`
	PendingPurchase *int        `json:"pending_purchase,omitempty"`
	Logs            []string    `json:"logs"`
	LastCard        *Card       `json:"last_card,omitempty"`
	Auction         *Auction    `json:"auction,omitempty"`
	Trade           *TradeOffer `json:"trade,omitempty"`
}

// Members - player ids in seat order.
func (that *Snapshot) Members() []string {
	ids := make([]string, 0, len(that.Players))
	for _, player := range that.Players {
		ids = append(ids, player.ID)
	}

	return ids
}

// RollEvent - the narrow "roll completed" signal.
type RollEvent struct {
	PlayerID     string `json:"player_id"`
	Dice         [2]int `json:"dice"`
	CanRollAgain bool   `json:"can_roll_again"`
}

type RoomSummary struct {
	Code        string     `json:"code"`
	Status      RoomStatus `json:"status"`
	PlayerCount int        `json:"player_count"`
}
