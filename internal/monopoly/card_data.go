package monopoly

import "github.com/rocketscienceinc/monopoly-backend/internal/entity"

var chanceCards = []entity.Card{
	{ID: "c1", Text: "Advance to GO. Collect ₹200.", Effect: entity.EffectMove, Destination: 0, CollectGo: true},
	{ID: "c2", Text: "Advance to Mumbai (dark blue). If you pass GO, collect ₹200.", Effect: entity.EffectMove, Destination: 39},
	{ID: "c3", Text: "Advance to Hyderabad (red). If you pass GO, collect ₹200.", Effect: entity.EffectMove, Destination: 23},
	{ID: "c4", Text: "Advance to Chennai Central Station. If you pass GO, collect ₹200.", Effect: entity.EffectMove, Destination: 5},
	{ID: "c5", Text: "Advance to nearest Station. Pay owner twice the rental.", Effect: entity.EffectNearestStation},
	{ID: "c6", Text: "Advance to nearest Utility. If unowned, you may buy it. If owned, pay 10× dice roll.", Effect: entity.EffectNearestUtility},
	{ID: "c7", Text: "Bank pays you dividend of ₹50.", Effect: entity.EffectCollect, Amount: 50},
	{ID: "c8", Text: "Get Out of Jail Free.", Effect: entity.EffectJailFree},
	{ID: "c9", Text: "Go back 3 spaces.", Effect: entity.EffectMoveBack, Spaces: 3},
	{ID: "c10", Text: "Go to Jail. Do not pass GO. Do not collect ₹200.", Effect: entity.EffectGoToJail},
	{ID: "c11", Text: "Make general repairs. Pay ₹25 per house, ₹100 per hotel.", Effect: entity.EffectRepairs, HouseRate: 25, HotelRate: 100},
	{ID: "c12", Text: "Pay poor tax of ₹15.", Effect: entity.EffectPay, Amount: 15},
	{ID: "c13", Text: "Take a trip to Trivandrum (orange). If you pass GO, collect ₹200.", Effect: entity.EffectMove, Destination: 19},
	{ID: "c14", Text: "You have been elected Chairman of the Board. Pay each player ₹50.", Effect: entity.EffectPayEach, Amount: 50},
	{ID: "c15", Text: "Your building loan matures. Collect ₹150.", Effect: entity.EffectCollect, Amount: 150},
	{ID: "c16", Text: "You have won a crossword competition. Collect ₹100.", Effect: entity.EffectCollect, Amount: 100},
}

var communityCards = []entity.Card{
	{ID: "cc1", Text: "Advance to GO. Collect ₹200.", Effect: entity.EffectMove, Destination: 0, CollectGo: true},
	{ID: "cc2", Text: "Bank error in your favor. Collect ₹200.", Effect: entity.EffectCollect, Amount: 200},
	{ID: "cc3", Text: "Doctor's fees. Pay ₹50.", Effect: entity.EffectPay, Amount: 50},
	{ID: "cc4", Text: "From sale of stock you get ₹50.", Effect: entity.EffectCollect, Amount: 50},
	{ID: "cc5", Text: "Get Out of Jail Free.", Effect: entity.EffectJailFree},
	{ID: "cc6", Text: "Go to Jail. Do not pass GO. Do not collect ₹200.", Effect: entity.EffectGoToJail},
	{ID: "cc7", Text: "Holiday fund matures. Receive ₹100.", Effect: entity.EffectCollect, Amount: 100},
	{ID: "cc8", Text: "Income tax refund. Collect ₹20.", Effect: entity.EffectCollect, Amount: 20},
	{ID: "cc9", Text: "It is your birthday. Collect ₹10 from each player.", Effect: entity.EffectCollectEach, Amount: 10},
	{ID: "cc10", Text: "Life insurance matures. Collect ₹100.", Effect: entity.EffectCollect, Amount: 100},
	{ID: "cc11", Text: "Hospital fees. Pay ₹100.", Effect: entity.EffectPay, Amount: 100},
	{ID: "cc12", Text: "School fees. Pay ₹50.", Effect: entity.EffectPay, Amount: 50},
	{ID: "cc13", Text: "Receive ₹25 consultancy fee.", Effect: entity.EffectCollect, Amount: 25},
	{ID: "cc14", Text: "You are assessed for street repairs. ₹40 per house, ₹115 per hotel.", Effect: entity.EffectRepairs, HouseRate: 40, HotelRate: 115},
	{ID: "cc15", Text: "You have won second prize in a beauty contest. Collect ₹10.", Effect: entity.EffectCollect, Amount: 10},
	{ID: "cc16", Text: "You inherit ₹100.", Effect: entity.EffectCollect, Amount: 100},
}

func newDeckCards(kind entity.DeckKind) []entity.Card {
	source := chanceCards
	if kind == entity.DeckCommunity {
		source = communityCards
	}

	cards := make([]entity.Card, len(source))
	for i, card := range source {
		card.Deck = kind
		cards[i] = card
	}

	return cards
}
