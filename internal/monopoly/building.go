package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

func (that *Room) BuildHouse(playerID string, index int) error {
	player, space, err := that.ownedColoredSpace(playerID, index)
	if err != nil {
		return err
	}

	if !that.ownsGroup(player.ID, space.Group) {
		return apperror.ErrNoMonopoly
	}

	if space.Hotel || space.Houses >= entity.MaxHouses {
		return apperror.ErrBuildLimit
	}

	if space.Houses > that.groupMinLevel(space.Group) {
		return apperror.ErrUnevenBuild
	}

	price := space.UnitPrice()
	if !player.CanAfford(price) {
		return apperror.ErrInsufficientFunds
	}

	that.debit(player, price)
	space.Houses++
	that.addLog("%s built a house on %s", player.Name, space.Name)

	return nil
}

func (that *Room) SellHouse(playerID string, index int) error {
	player, space, err := that.ownedColoredSpace(playerID, index)
	if err != nil {
		return err
	}

	if space.Houses == 0 {
		return apperror.ErrNothingToSell
	}

	if space.Houses < that.groupMaxLevel(space.Group) {
		return apperror.ErrUnevenBuild
	}

	refund := space.UnitPrice() / 2

	that.credit(player, refund)
	space.Houses--
	that.addLog("%s sold a house on %s for $%d", player.Name, space.Name, refund)

	return nil
}

func (that *Room) BuildHotel(playerID string, index int) error {
	player, space, err := that.ownedColoredSpace(playerID, index)
	if err != nil {
		return err
	}

	if !that.ownsGroup(player.ID, space.Group) {
		return apperror.ErrNoMonopoly
	}

	if space.Hotel || space.Houses != entity.MaxHouses {
		return apperror.ErrBuildLimit
	}

	if space.Houses > that.groupMinLevel(space.Group) {
		return apperror.ErrUnevenBuild
	}

	price := space.UnitPrice()
	if !player.CanAfford(price) {
		return apperror.ErrInsufficientFunds
	}

	that.debit(player, price)
	space.Houses = 0
	space.Hotel = true
	that.addLog("%s built a hotel on %s", player.Name, space.Name)

	return nil
}

func (that *Room) SellHotel(playerID string, index int) error {
	player, space, err := that.ownedColoredSpace(playerID, index)
	if err != nil {
		return err
	}

	if !space.Hotel {
		return apperror.ErrNothingToSell
	}

	refund := space.UnitPrice() / 2

	that.credit(player, refund)
	space.Hotel = false
	space.Houses = entity.MaxHouses
	that.addLog("%s sold the hotel on %s for $%d", player.Name, space.Name, refund)

	return nil
}

// ownedColoredSpace - common checks of the improvement operations.
func (that *Room) ownedColoredSpace(playerID string, index int) (*entity.Player, *entity.Space, error) {
	if that.status != entity.StatusPlaying {
		return nil, nil, apperror.ErrGameNotPlaying
	}

	player := that.playerByID(playerID)
	if player == nil {
		return nil, nil, apperror.ErrPlayerNotFound
	}

	space, err := that.space(index)
	if err != nil {
		return nil, nil, err
	}

	if space.Owner != playerID {
		return nil, nil, apperror.ErrNotOwner
	}

	if !space.IsColored() {
		return nil, nil, apperror.ErrNotBuildable
	}

	return player, space, nil
}

func (that *Room) groupMinLevel(group string) int {
	level := entity.MaxHouses + 1
	for _, index := range that.groupMembers(group) {
		level = min(level, that.board[index].BuildLevel())
	}

	return level
}

func (that *Room) groupMaxLevel(group string) int {
	level := 0
	for _, index := range that.groupMembers(group) {
		level = max(level, that.board[index].BuildLevel())
	}

	return level
}
