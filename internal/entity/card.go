package entity

type DeckKind string

const (
	DeckChance    DeckKind = "chance"
	DeckCommunity DeckKind = "community"
)

type CardEffect string

const (
	EffectMove           CardEffect = "move"
	EffectMoveBack       CardEffect = "move_back"
	EffectCollect        CardEffect = "collect"
	EffectPay            CardEffect = "pay"
	EffectGoToJail       CardEffect = "go_jail"
	EffectJailFree       CardEffect = "jail_card"
	EffectPayEach        CardEffect = "pay_each"
	EffectCollectEach    CardEffect = "collect_each"
	EffectRepairs        CardEffect = "repairs"
	EffectNearestStation CardEffect = "nearest_station"
	EffectNearestUtility CardEffect = "nearest_utility"
)

type Card struct {
	ID          string     `json:"id"`
	Deck        DeckKind   `json:"deck"`
	Text        string     `json:"text"`
	Effect      CardEffect `json:"effect"`
	Destination int        `json:"destination,omitempty"`
	CollectGo   bool       `json:"collect_go,omitempty"`
	Amount      int        `json:"amount,omitempty"`
	Spaces      int        `json:"spaces,omitempty"`
	HouseRate   int        `json:"house_rate,omitempty"`
	HotelRate   int        `json:"hotel_rate,omitempty"`
}

// IsConsumable reports whether the card leaves circulation once drawn.
func (that Card) IsConsumable() bool {
	return that.Effect == EffectJailFree
}
