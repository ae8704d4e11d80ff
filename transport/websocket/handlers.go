package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/monopoly-backend/internal/pkg"
)

func (that *Server) handleCreateRoom(ctx context.Context, c *client, msg *Message) error {
	log := that.logger.With("method", "handleCreateRoom", "playerID", c.id)

	var payload RoomPayload
	if err := decode(msg.Payload, &payload); err != nil {
		return err
	}

	code, err := that.rooms.CreateRoom(ctx, c.id, payload.Name, payload.Avatar)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	that.hub.sendTo(c.id, actionRoomCreated, RoomPayload{RoomCode: code})

	log.Info("room created", "roomCode", code)

	return nil
}

func (that *Server) handleJoinRoom(ctx context.Context, c *client, msg *Message) error {
	var payload RoomPayload
	if err := decode(msg.Payload, &payload); err != nil {
		return err
	}

	if err := that.rooms.JoinRoom(ctx, c.id, payload.RoomCode, payload.Name, payload.Avatar); err != nil {
		return fmt.Errorf("failed to join room: %w", err)
	}

	that.hub.sendTo(c.id, actionRoomJoined, RoomPayload{RoomCode: pkg.NormalizeRoomCode(payload.RoomCode)})

	return nil
}

func (that *Server) handleStartGame(ctx context.Context, c *client, msg *Message) error {
	var payload RoomPayload
	if err := decode(msg.Payload, &payload); err != nil {
		return err
	}

	return that.rooms.StartGame(ctx, c.id, payload.TestMode)
}

func (that *Server) handleRoll(ctx context.Context, c *client, _ *Message) error {
	_, err := that.rooms.Roll(ctx, c.id)

	return err
}

func (that *Server) handleBid(ctx context.Context, c *client, msg *Message) error {
	var payload BidPayload
	if err := decode(msg.Payload, &payload); err != nil {
		return err
	}

	if payload.Amount == nil {
		return fmt.Errorf("%w: amount is required", errMalformedPayload)
	}

	return that.rooms.PlaceBid(ctx, c.id, *payload.Amount)
}

func (that *Server) handleProposeTrade(ctx context.Context, c *client, msg *Message) error {
	var payload TradePayload
	if err := decode(msg.Payload, &payload); err != nil {
		return err
	}

	if payload.Trade == nil {
		return fmt.Errorf("%w: trade is required", errMalformedPayload)
	}

	return that.rooms.ProposeTrade(ctx, c.id, *payload.Trade)
}

// simple - adapts an action that needs nothing but the caller's identity.
func (that *Server) simple(action func(ctx context.Context, playerID string) error) handlerFunc {
	return func(ctx context.Context, c *client, _ *Message) error {
		return action(ctx, c.id)
	}
}

// onProperty - adapts an action addressed at one board space.
func (that *Server) onProperty(action func(ctx context.Context, playerID string, index int) error) handlerFunc {
	return func(ctx context.Context, c *client, msg *Message) error {
		var payload PropertyPayload
		if err := decode(msg.Payload, &payload); err != nil {
			return err
		}

		if payload.PropertyIndex == nil {
			return fmt.Errorf("%w: property_index is required", errMalformedPayload)
		}

		return action(ctx, c.id, *payload.PropertyIndex)
	}
}
