package monopoly

import "github.com/rocketscienceinc/monopoly-backend/internal/entity"

var stationRent = [4]int{25, 50, 100, 200}

const (
	utilityMultiplier     = 4
	utilityPairMultiplier = 10
)

// rent - what a lander owes the owner of space.
func (that *Room) rent(space *entity.Space) int {
	switch space.Kind {
	case entity.KindUtility:
		multiplier := utilityMultiplier
		if that.countOwned(space.Owner, entity.KindUtility) >= 2 {
			multiplier = utilityPairMultiplier
		}

		return that.diceTotal() * multiplier
	case entity.KindStation:
		return stationRentFor(that.countOwned(space.Owner, entity.KindStation))
	case entity.KindProperty:
		return that.propertyRent(space)
	default:
		return 0
	}
}

func (that *Room) propertyRent(space *entity.Space) int {
	if len(space.Rent) == 0 {
		return 0
	}

	switch {
	case space.Hotel && len(space.Rent) > entity.MaxHouses+1:
		return space.Rent[entity.MaxHouses+1]
	case space.Houses > 0 && space.Houses < len(space.Rent):
		return space.Rent[space.Houses]
	case that.ownsGroup(space.Owner, space.Group):
		return 2 * space.Rent[0]
	default:
		return space.Rent[0]
	}
}

func stationRentFor(owned int) int {
	if owned < 1 {
		return 0
	}

	return stationRent[min(owned, len(stationRent))-1]
}

func (that *Room) diceTotal() int {
	return that.dice[0] + that.dice[1]
}

func (that *Room) countOwned(owner string, kind entity.SpaceKind) int {
	count := 0
	for i := range that.board {
		if that.board[i].Kind == kind && that.board[i].Owner == owner {
			count++
		}
	}

	return count
}

// ownsGroup reports whether owner holds every property of a color group.
func (that *Room) ownsGroup(owner, group string) bool {
	if owner == "" || group == "" {
		return false
	}

	for i := range that.board {
		if that.board[i].Group == group && that.board[i].Owner != owner {
			return false
		}
	}

	return true
}

// groupMembers - the board indices of a color group.
func (that *Room) groupMembers(group string) []int {
	var members []int
	for i := range that.board {
		if that.board[i].Group == group {
			members = append(members, i)
		}
	}

	return members
}
