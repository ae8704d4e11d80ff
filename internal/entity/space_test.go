package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpace(t *testing.T) {
	t.Run("Unit price defaults to half the purchase price", func(t *testing.T) {
		space := &Space{Kind: KindProperty, Group: "brown", Price: 60}
		assert.Equal(t, 30, space.UnitPrice())

		space.HousePrice = 50
		assert.Equal(t, 50, space.UnitPrice())
	})

	t.Run("A hotel counts one level above four houses", func(t *testing.T) {
		space := &Space{Houses: 3}
		assert.Equal(t, 3, space.BuildLevel())

		space.Houses = 0
		space.Hotel = true
		assert.Equal(t, 5, space.BuildLevel())
	})

	t.Run("Only priced properties, stations and utilities can be bought", func(t *testing.T) {
		assert.True(t, (&Space{Kind: KindStation, Price: 200}).IsPurchasable())
		assert.True(t, (&Space{Kind: KindUtility, Price: 150}).IsPurchasable())
		assert.False(t, (&Space{Kind: KindCorner}).IsPurchasable())
		assert.False(t, (&Space{Kind: KindTax, Tax: 200}).IsPurchasable())
		assert.False(t, (&Space{Kind: KindStation, Group: GroupStation, Price: 200}).IsColored())
	})

	t.Run("Release clears ownership and buildings", func(t *testing.T) {
		space := &Space{Owner: "alice", Houses: 2, Hotel: true, Mortgaged: true}

		space.Release()

		assert.False(t, space.IsOwned())
		assert.Equal(t, 0, space.BuildLevel())
		assert.False(t, space.Mortgaged)
	})
}

func TestPlayer(t *testing.T) {
	t.Run("New players start on GO with the starting money", func(t *testing.T) {
		player := NewPlayer("id", "Alice", "pikachu", 7)

		assert.Equal(t, StartingMoney, player.Money)
		assert.Equal(t, 0, player.Position)
		assert.Equal(t, ColorForSeat(1), player.Color)
	})

	t.Run("Auction membership helpers", func(t *testing.T) {
		auction := &Auction{Eligible: []string{"a", "b"}, Passed: []string{"b"}}

		assert.True(t, auction.IsEligible("a"))
		assert.False(t, auction.IsEligible("c"))
		assert.True(t, auction.HasPassed("b"))
		assert.False(t, auction.HasPassed("a"))
	})
}
