package monopoly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
)

func TestRoom_ProposeTrade(t *testing.T) {
	t.Run("Records the pending offer", func(t *testing.T) {
		// Given: a running game
		room := newPlayingRoom(t, rolls(), alice, bob, carol)

		// When: bob proposes to carol outside his turn
		err := room.ProposeTrade(bob, entity.TradeOffer{To: carol, OfferMoney: 100, RequestProperties: []int{6}})

		// Then: the offer is visible with bob as proposer
		require.NoError(t, err)
		trade := room.Snapshot().Trade
		require.NotNil(t, trade)
		assert.Equal(t, bob, trade.From)
		assert.Equal(t, carol, trade.To)
		assert.Equal(t, []int{6}, trade.RequestProperties)
	})

	t.Run("Another proposer has to wait", func(t *testing.T) {
		room := newPlayingRoom(t, rolls(), alice, bob, carol)
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferMoney: 10}))

		require.ErrorIs(t, room.ProposeTrade(carol, entity.TradeOffer{To: bob}), apperror.ErrTradePending)
	})

	t.Run("The proposer may replace the offer", func(t *testing.T) {
		room := newPlayingRoom(t, rolls(), alice, bob)
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferMoney: 10}))

		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferMoney: 20}))
		assert.Equal(t, 20, room.Snapshot().Trade.OfferMoney)
	})

	t.Run("Rejects malformed offers", func(t *testing.T) {
		room := newPlayingRoom(t, rolls(), alice, bob)

		require.ErrorIs(t, room.ProposeTrade(alice, entity.TradeOffer{To: alice}), apperror.ErrInvalidTrade)
		require.ErrorIs(t, room.ProposeTrade(alice, entity.TradeOffer{To: "nobody"}), apperror.ErrInvalidTrade)
		require.ErrorIs(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferMoney: -1}), apperror.ErrInvalidTrade)
		require.ErrorIs(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferProperties: []int{99}}), apperror.ErrInvalidSpace)
		require.ErrorIs(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferProperties: []int{0}}), apperror.ErrInvalidTrade)
		assert.Nil(t, room.Snapshot().Trade)
	})
}

func TestRoom_AcceptTrade(t *testing.T) {
	t.Run("Swaps cash and properties", func(t *testing.T) {
		// Given: alice offers Agra and 100 for bob's Lucknow and 30
		room := newPlayingRoom(t, rolls(), alice, bob)
		room.board[6].Owner = alice
		room.board[8].Owner = bob
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{
			To:                bob,
			OfferMoney:        100,
			RequestMoney:      30,
			OfferProperties:   []int{6},
			RequestProperties: []int{8},
		}))

		// When: bob accepts
		require.NoError(t, room.AcceptTrade(bob))

		// Then: everything changed hands
		assert.Equal(t, bob, room.board[6].Owner)
		assert.Equal(t, alice, room.board[8].Owner)
		assert.Equal(t, 1430, room.mustPlayer(t, alice).Money)
		assert.Equal(t, 1570, room.mustPlayer(t, bob).Money)
		assert.Nil(t, room.Snapshot().Trade)
	})

	t.Run("Skips a property whose owner changed", func(t *testing.T) {
		// Given: alice offered Agra, which she no longer owns
		room := newPlayingRoom(t, rolls(), alice, bob, carol)
		room.board[6].Owner = alice
		room.board[9].Owner = alice
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferProperties: []int{6, 9}}))
		room.board[6].Owner = carol

		// When: bob accepts
		require.NoError(t, room.AcceptTrade(bob))

		// Then: only the still valid property moved
		assert.Equal(t, carol, room.board[6].Owner)
		assert.Equal(t, bob, room.board[9].Owner)
	})

	t.Run("Buildings travel with a traded property", func(t *testing.T) {
		// Given: alice built a house on Agra while holding all of light blue
		room := newPlayingRoom(t, rolls(), alice, bob)
		for _, index := range []int{6, 8, 9} {
			room.board[index].Owner = alice
		}
		require.NoError(t, room.BuildHouse(alice, 6))
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferProperties: []int{6}}))

		// When: bob accepts Agra
		require.NoError(t, room.AcceptTrade(bob))

		// Then: the house came along and charges one-house rent
		assert.Equal(t, bob, room.board[6].Owner)
		assert.Equal(t, 1, room.board[6].Houses)
		assert.Equal(t, 30, room.rent(&room.board[6]))

		// And: bob cannot build without the group but may sell the house back
		require.ErrorIs(t, room.BuildHouse(bob, 6), apperror.ErrNoMonopoly)
		require.NoError(t, room.SellHouse(bob, 6))
		assert.Equal(t, 0, room.board[6].Houses)
	})

	t.Run("May push cash below zero", func(t *testing.T) {
		var insolvent []string
		room := NewRoom("TRADE1", WithShuffler(keepOrder), WithInsolvencyHook(func(player *entity.Player) {
			insolvent = append(insolvent, player.ID)
		}))
		require.NoError(t, room.AddPlayer(alice, alice, ""))
		require.NoError(t, room.AddPlayer(bob, bob, ""))
		require.NoError(t, room.Start(alice, false))
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, RequestMoney: 2000}))

		require.NoError(t, room.AcceptTrade(bob))

		assert.Equal(t, -500, room.mustPlayer(t, bob).Money)
		assert.Equal(t, []string{bob}, insolvent)
	})

	t.Run("Only the addressed player answers", func(t *testing.T) {
		room := newPlayingRoom(t, rolls(), alice, bob, carol)
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferMoney: 10}))

		require.ErrorIs(t, room.AcceptTrade(carol), apperror.ErrNotTradeParty)
		require.ErrorIs(t, room.AcceptTrade(alice), apperror.ErrNotTradeParty)
		require.ErrorIs(t, room.DeclineTrade(alice), apperror.ErrNotTradeParty)
		assert.NotNil(t, room.Snapshot().Trade)
	})
}

func TestRoom_CloseTrade(t *testing.T) {
	t.Run("Decline clears the offer", func(t *testing.T) {
		room := newPlayingRoom(t, rolls(), alice, bob)
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferMoney: 10}))

		require.NoError(t, room.DeclineTrade(bob))
		assert.Nil(t, room.Snapshot().Trade)
		assert.Equal(t, 1500, room.mustPlayer(t, alice).Money)
	})

	t.Run("Cancel is for the proposer only", func(t *testing.T) {
		room := newPlayingRoom(t, rolls(), alice, bob)
		require.NoError(t, room.ProposeTrade(alice, entity.TradeOffer{To: bob, OfferMoney: 10}))

		require.ErrorIs(t, room.CancelTrade(bob), apperror.ErrNotTradeParty)
		require.NoError(t, room.CancelTrade(alice))
		require.ErrorIs(t, room.CancelTrade(alice), apperror.ErrNoTrade)
	})

	t.Run("A party leaving clears the offer", func(t *testing.T) {
		room := newPlayingRoom(t, rolls(), alice, bob, carol)
		require.NoError(t, room.ProposeTrade(bob, entity.TradeOffer{To: carol, OfferMoney: 10}))

		require.NoError(t, room.RemovePlayer(carol))
		assert.Nil(t, room.Snapshot().Trade)
	})
}
