package monopoly

import (
	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

const (
	GoBonus      = 200
	JailFine     = 50
	MaxJailTurns = 3
	MaxDoubles   = 3
)

// Roll - throws the dice for the turn holder and resolves the move.
func (that *Room) Roll(playerID string) (entity.RollEvent, error) {
	player, err := that.currentPlayer(playerID)
	if err != nil {
		return entity.RollEvent{}, err
	}

	if that.auction != nil {
		return entity.RollEvent{}, apperror.ErrAuctionInProgress
	}

	if that.hasRolled && !that.canRollAgain {
		return entity.RollEvent{}, apperror.ErrAlreadyRolled
	}

	first, second := that.roller.Roll()
	that.dice = [2]int{first, second}
	that.hasRolled = true
	that.canRollAgain = false
	that.pendingPurchase = nil

	total := first + second
	isDouble := first == second

	that.addLog("%s rolled %d + %d = %d", player.Name, first, second, total)

	if player.InJail {
		that.rollInJail(player, total, isDouble)
	} else {
		that.rollFree(player, total, isDouble)
	}

	return entity.RollEvent{
		PlayerID:     player.ID,
		Dice:         that.dice,
		CanRollAgain: that.canRollAgain,
	}, nil
}

func (that *Room) rollInJail(player *entity.Player, total int, isDouble bool) {
	if isDouble {
		player.ReleaseFromJail()
		that.addLog("%s rolled doubles and left jail", player.Name)
		that.moveBy(player, total)

		return
	}

	player.JailTurns++
	if player.JailTurns < MaxJailTurns {
		that.addLog("%s stays in jail", player.Name)
		return
	}

	that.debit(player, JailFine)
	player.ReleaseFromJail()
	that.addLog("%s paid $%d after %d turns in jail", player.Name, JailFine, MaxJailTurns)
	that.moveBy(player, total)
}

func (that *Room) rollFree(player *entity.Player, total int, isDouble bool) {
	if !isDouble {
		that.doubles = 0
		that.moveBy(player, total)

		return
	}

	that.doubles++
	if that.doubles >= MaxDoubles {
		that.addLog("%s rolled doubles %d times in a row", player.Name, MaxDoubles)
		that.sendToJail(player)

		return
	}

	that.moveBy(player, total)

	if !player.InJail {
		that.canRollAgain = true
	}
}

// moveBy - advances a player, paying the GO bonus on wrap, then resolves the landing.
func (that *Room) moveBy(player *entity.Player, steps int) {
	target := player.Position + steps
	if target >= BoardSize {
		that.credit(player, GoBonus)
		that.addLog("%s passed GO and collected $%d", player.Name, GoBonus)
	}

	player.Position = target % BoardSize
	that.land(player, 0)
}

func (that *Room) sendToJail(player *entity.Player) {
	player.Position = JailIndex
	player.InJail = true
	player.JailTurns = 0

	that.doubles = 0
	that.canRollAgain = false
	that.pendingPurchase = nil
	that.addLog("%s was sent to jail", player.Name)
}

func (that *Room) EndTurn(playerID string) error {
	player, err := that.currentPlayer(playerID)
	if err != nil {
		return err
	}

	if that.auction != nil {
		return apperror.ErrAuctionInProgress
	}

	if !that.hasRolled || that.canRollAgain {
		return apperror.ErrMustRoll
	}

	that.resetTurnState()
	that.turn = that.nextSolventSeat(that.turn)
	that.addLog("%s ended the turn, %s is up", player.Name, that.players[that.turn].Name)

	return nil
}

// nextSolventSeat - the next non-bankrupt seat after from, or from itself when none is left.
func (that *Room) nextSolventSeat(from int) int {
	count := len(that.players)
	for step := 1; step <= count; step++ {
		seat := (from + step) % count
		if !that.players[seat].IsBankrupt {
			return seat
		}
	}

	return from
}

func (that *Room) PayJailFine(playerID string) error {
	player, err := that.currentPlayer(playerID)
	if err != nil {
		return err
	}

	if !player.InJail {
		return apperror.ErrNotInJail
	}

	if that.hasRolled {
		return apperror.ErrAlreadyRolled
	}

	if !player.CanAfford(JailFine) {
		return apperror.ErrInsufficientFunds
	}

	that.debit(player, JailFine)
	player.ReleaseFromJail()
	that.addLog("%s paid $%d to leave jail", player.Name, JailFine)

	return nil
}

func (that *Room) UseJailCard(playerID string) error {
	player, err := that.currentPlayer(playerID)
	if err != nil {
		return err
	}

	if !player.InJail {
		return apperror.ErrNotInJail
	}

	if player.JailFreeCards < 1 {
		return apperror.ErrNoJailCard
	}

	player.JailFreeCards--
	player.ReleaseFromJail()
	that.addLog("%s used a Get Out of Jail Free card", player.Name)

	return nil
}
