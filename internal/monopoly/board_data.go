package monopoly

import (
	"slices"

	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	BoardSize     = 40
	GoIndex       = 0
	JailIndex     = 10
	GoToJailIndex = 30
)

var boardLayout = []entity.Space{
	{ID: "go", Name: "GO", Kind: entity.KindCorner},
	{ID: "guwahati", Name: "Guwahati", Kind: entity.KindProperty, Group: "brown", Price: 60, Rent: []int{2, 10, 30, 90, 160, 250}},
	{ID: "community_chest_1", Name: "Community Chest", Kind: entity.KindSpecial, Deck: entity.DeckCommunity},
	{ID: "bhubaneswar", Name: "Bhubaneswar", Kind: entity.KindProperty, Group: "brown", Price: 60, Rent: []int{4, 20, 60, 180, 320, 450}},
	{ID: "income_tax", Name: "Income Tax", Kind: entity.KindTax, Tax: 200},
	{ID: "station_1", Name: "Chennai Central", Kind: entity.KindStation, Group: entity.GroupStation, Price: 200, Rent: []int{25, 50, 100, 200}},
	{ID: "agra", Name: "Agra", Kind: entity.KindProperty, Group: "light_blue", Price: 100, Rent: []int{6, 30, 90, 270, 400, 550}},
	{ID: "chance_1", Name: "Chance", Kind: entity.KindSpecial, Deck: entity.DeckChance},
	{ID: "lucknow", Name: "Lucknow", Kind: entity.KindProperty, Group: "light_blue", Price: 100, Rent: []int{6, 30, 90, 270, 400, 550}},
	{ID: "kanpur", Name: "Kanpur", Kind: entity.KindProperty, Group: "light_blue", Price: 120, Rent: []int{8, 40, 100, 300, 450, 600}},

	{ID: "jail", Name: "Jail", Kind: entity.KindCorner},
	{ID: "jaipur", Name: "Jaipur", Kind: entity.KindProperty, Group: "pink", Price: 140, Rent: []int{10, 50, 150, 450, 625, 750}},
	{ID: "electric_company", Name: "Electric Company", Kind: entity.KindUtility, Group: entity.GroupUtility, Price: 150},
	{ID: "udaipur", Name: "Udaipur", Kind: entity.KindProperty, Group: "pink", Price: 140, Rent: []int{10, 50, 150, 450, 625, 750}},
	{ID: "jodhpur", Name: "Jodhpur", Kind: entity.KindProperty, Group: "pink", Price: 160, Rent: []int{12, 60, 180, 500, 700, 900}},
	{ID: "station_2", Name: "Howrah Junction", Kind: entity.KindStation, Group: entity.GroupStation, Price: 200, Rent: []int{25, 50, 100, 200}},
	{ID: "kochi", Name: "Kochi", Kind: entity.KindProperty, Group: "orange", Price: 180, Rent: []int{14, 70, 200, 550, 750, 950}},
	{ID: "community_chest_2", Name: "Community Chest", Kind: entity.KindSpecial, Deck: entity.DeckCommunity},
	{ID: "calicut", Name: "Calicut", Kind: entity.KindProperty, Group: "orange", Price: 180, Rent: []int{14, 70, 200, 550, 750, 950}},
	{ID: "trivandrum", Name: "Trivandrum", Kind: entity.KindProperty, Group: "orange", Price: 200, Rent: []int{16, 80, 220, 600, 800, 1000}},

	{ID: "parking", Name: "Free Parking", Kind: entity.KindCorner},
	{ID: "vizag", Name: "Visakhapatnam", Kind: entity.KindProperty, Group: "red", Price: 220, Rent: []int{18, 90, 250, 700, 875, 1050}},
	{ID: "chance_2", Name: "Chance", Kind: entity.KindSpecial, Deck: entity.DeckChance},
	{ID: "hyderabad", Name: "Hyderabad", Kind: entity.KindProperty, Group: "red", Price: 220, Rent: []int{18, 90, 250, 700, 875, 1050}},
	{ID: "chennai", Name: "Chennai", Kind: entity.KindProperty, Group: "red", Price: 240, Rent: []int{20, 100, 300, 750, 925, 1100}},
	{ID: "station_3", Name: "Secunderabad", Kind: entity.KindStation, Group: entity.GroupStation, Price: 200, Rent: []int{25, 50, 100, 200}},
	{ID: "patna", Name: "Patna", Kind: entity.KindProperty, Group: "yellow", Price: 260, Rent: []int{22, 110, 330, 800, 975, 1150}},
	{ID: "ranchi", Name: "Ranchi", Kind: entity.KindProperty, Group: "yellow", Price: 260, Rent: []int{22, 110, 330, 800, 975, 1150}},
	{ID: "water_works", Name: "Water Works", Kind: entity.KindUtility, Group: entity.GroupUtility, Price: 150},
	{ID: "kolkata", Name: "Kolkata", Kind: entity.KindProperty, Group: "yellow", Price: 280, Rent: []int{24, 120, 360, 850, 1025, 1200}},

	{ID: "goto_jail", Name: "Go To Jail", Kind: entity.KindCorner},
	{ID: "pune", Name: "Pune", Kind: entity.KindProperty, Group: "green", Price: 300, Rent: []int{26, 130, 390, 900, 1100, 1275}},
	{ID: "ahmedabad", Name: "Ahmedabad", Kind: entity.KindProperty, Group: "green", Price: 300, Rent: []int{26, 130, 390, 900, 1100, 1275}},
	{ID: "community_chest_3", Name: "Community Chest", Kind: entity.KindSpecial, Deck: entity.DeckCommunity},
	{ID: "bangalore", Name: "Bangalore", Kind: entity.KindProperty, Group: "green", Price: 320, Rent: []int{28, 150, 450, 1000, 1200, 1400}},
	{ID: "station_4", Name: "CST Mumbai", Kind: entity.KindStation, Group: entity.GroupStation, Price: 200, Rent: []int{25, 50, 100, 200}},
	{ID: "chance_3", Name: "Chance", Kind: entity.KindSpecial, Deck: entity.DeckChance},
	{ID: "delhi", Name: "Delhi", Kind: entity.KindProperty, Group: "dark_blue", Price: 350, Rent: []int{35, 175, 500, 1100, 1300, 1500}},
	{ID: "luxury_tax", Name: "Luxury Tax", Kind: entity.KindTax, Tax: 100},
	{ID: "mumbai", Name: "Mumbai", Kind: entity.KindProperty, Group: "dark_blue", Price: 400, Rent: []int{50, 200, 600, 1400, 1700, 2000}},
}

// newBoard - a fresh, unowned overlay of the board layout for one room.
func newBoard() []entity.Space {
	board := make([]entity.Space, len(boardLayout))
	for i, space := range boardLayout {
		space.Index = i
		space.Rent = slices.Clone(space.Rent)
		board[i] = space
	}

	return board
}
