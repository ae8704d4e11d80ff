package entity

type SpaceKind string

const (
	KindCorner   SpaceKind = "corner"
	KindTax      SpaceKind = "tax"
	KindSpecial  SpaceKind = "special"
	KindProperty SpaceKind = "property"
	KindStation  SpaceKind = "station"
	KindUtility  SpaceKind = "utility"
)

const (
	GroupStation = "station"
	GroupUtility = "utility"

	MaxHouses = 4
)

type Space struct {
	Index      int       `json:"index"`
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       SpaceKind `json:"kind"`
	Group      string    `json:"group,omitempty"`
	Deck       DeckKind  `json:"deck,omitempty"`
	Price      int       `json:"price"`
	Rent       []int     `json:"rent,omitempty"`
	HousePrice int       `json:"house_price,omitempty"`
	Tax        int       `json:"tax,omitempty"`

	Owner     string `json:"owner,omitempty"`
	Houses    int    `json:"houses"`
	Hotel     bool   `json:"hotel"`
	Mortgaged bool   `json:"mortgaged"`
}

// IsPurchasable reports whether the space can ever have an owner.
func (that *Space) IsPurchasable() bool {
	switch that.Kind {
	case KindProperty, KindStation, KindUtility:
		return that.Price > 0
	default:
		return false
	}
}

// IsColored reports whether the space belongs to a color group and can carry buildings.
func (that *Space) IsColored() bool {
	return that.Kind == KindProperty && that.Group != ""
}

func (that *Space) IsOwned() bool {
	return that.Owner != ""
}

// UnitPrice - cost of one house (or the hotel upgrade), half the purchase price unless set.
func (that *Space) UnitPrice() int {
	if that.HousePrice > 0 {
		return that.HousePrice
	}

	return that.Price / 2
}

// BuildLevel - houses on the property, a hotel counting as one level above four houses.
func (that *Space) BuildLevel() int {
	if that.Hotel {
		return MaxHouses + 1
	}

	return that.Houses
}

// Release - clears ownership and buildings.
func (that *Space) Release() {
	that.Owner = ""
	that.Houses = 0
	that.Hotel = false
	that.Mortgaged = false
}
