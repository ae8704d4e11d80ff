package entity

const StartingMoney = 1500

var playerColors = []string{"#FF5733", "#33FF57", "#3357FF", "#F333FF", "#FFFF33", "#33FFFF"}

type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	IsHost        bool   `json:"is_host"`
	Avatar        string `json:"avatar,omitempty"`
	Money         int    `json:"money"`
	Position      int    `json:"position"`
	Color         string `json:"color"`
	IsBankrupt    bool   `json:"is_bankrupt"`
	InJail        bool   `json:"in_jail"`
	JailTurns     int    `json:"jail_turns"`
	JailFreeCards int    `json:"jail_free_cards"`
}

func NewPlayer(id, name, avatar string, seat int) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Avatar:   avatar,
		Money:    StartingMoney,
		Position: 0,
		Color:    ColorForSeat(seat),
	}
}

// ColorForSeat - picks the token color for a seat, cycling through the palette.
func ColorForSeat(seat int) string {
	return playerColors[seat%len(playerColors)]
}

func (that *Player) CanAfford(amount int) bool {
	return that.Money >= amount
}

func (that *Player) ReleaseFromJail() {
	that.InJail = false
	that.JailTurns = 0
}
