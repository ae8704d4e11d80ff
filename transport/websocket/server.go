package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/rocketscienceinc/monopoly-backend/internal/apperror"
	"github.com/rocketscienceinc/monopoly-backend/internal/entity"
	"github.com/rocketscienceinc/monopoly-backend/internal/usecase"
)

const (
	actionConnect     = "connect"
	actionRoomCreated = "room:created"
	actionRoomJoined  = "room:joined"
	actionError       = "error"

	shutdownTimeout = 5 * time.Second
)

type roomService interface {
	CreateRoom(ctx context.Context, playerID, name, avatar string) (string, error)
	JoinRoom(ctx context.Context, playerID, code, name, avatar string) error
	StartGame(ctx context.Context, playerID string, testMode bool) error
	Roll(ctx context.Context, playerID string) (entity.RollEvent, error)
	EndTurn(ctx context.Context, playerID string) error

	BuyProperty(ctx context.Context, playerID string) error
	DeclineProperty(ctx context.Context, playerID string) error
	PlaceBid(ctx context.Context, playerID string, amount int) error
	PassAuction(ctx context.Context, playerID string) error

	PayJailFine(ctx context.Context, playerID string) error
	UseJailCard(ctx context.Context, playerID string) error

	BuildHouse(ctx context.Context, playerID string, index int) error
	SellHouse(ctx context.Context, playerID string, index int) error
	BuildHotel(ctx context.Context, playerID string, index int) error
	SellHotel(ctx context.Context, playerID string, index int) error

	ProposeTrade(ctx context.Context, playerID string, offer entity.TradeOffer) error
	AcceptTrade(ctx context.Context, playerID string) error
	DeclineTrade(ctx context.Context, playerID string) error
	CancelTrade(ctx context.Context, playerID string) error

	Leave(ctx context.Context, playerID string) error
}

type handlerFunc func(ctx context.Context, c *client, message *Message) error

type Server struct {
	logger *slog.Logger
	rooms  roomService
	hub    *Hub

	allowedOrigins []string
	upgrader       websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, rooms roomService, hub *Hub, allowedOrigins []string) *Server {
	server := &Server{
		logger: logger.With("component", "ws_server"),
		rooms:  rooms,
		hub:    hub,

		allowedOrigins: allowedOrigins,
		handlers:       make(map[string]handlerFunc),
	}

	server.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     server.checkOrigin,
	}

	server.handlers["room:create"] = server.handleCreateRoom
	server.handlers["room:join"] = server.handleJoinRoom
	server.handlers["game:start"] = server.handleStartGame
	server.handlers["game:roll"] = server.handleRoll
	server.handlers["game:end_turn"] = server.simple(rooms.EndTurn)

	server.handlers["property:buy"] = server.simple(rooms.BuyProperty)
	server.handlers["property:decline"] = server.simple(rooms.DeclineProperty)
	server.handlers["auction:bid"] = server.handleBid
	server.handlers["auction:pass"] = server.simple(rooms.PassAuction)

	server.handlers["jail:pay"] = server.simple(rooms.PayJailFine)
	server.handlers["jail:card"] = server.simple(rooms.UseJailCard)

	server.handlers["house:build"] = server.onProperty(rooms.BuildHouse)
	server.handlers["house:sell"] = server.onProperty(rooms.SellHouse)
	server.handlers["hotel:build"] = server.onProperty(rooms.BuildHotel)
	server.handlers["hotel:sell"] = server.onProperty(rooms.SellHotel)

	server.handlers["trade:propose"] = server.handleProposeTrade
	server.handlers["trade:accept"] = server.simple(rooms.AcceptTrade)
	server.handlers["trade:decline"] = server.simple(rooms.DeclineTrade)
	server.handlers["trade:cancel"] = server.simple(rooms.CancelTrade)

	return server
}

// Handler - the /ws endpoint wrapped with the CORS policy.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})

	return cors.New(cors.Options{
		AllowedOrigins:   that.allowedOrigins,
		AllowCredentials: true,
	}).Handler(mux)
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}

		that.hub.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	return slices.Contains(that.allowedOrigins, "*") || slices.Contains(that.allowedOrigins, origin)
}

// serveWS - upgrades the connection and gives it a fresh identity.
func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}

	that.hub.register(c)
	go c.writeLoop(that.logger)

	log.Info("WebSocket connection established", "playerID", c.id)

	that.hub.sendTo(c.id, actionConnect, ConnectPayload{Player: PlayerRef{ID: c.id}})

	that.readLoop(ctx, c)
}

// readLoop - processes messages from the client until the connection ends.
func (that *Server) readLoop(ctx context.Context, c *client) {
	log := that.logger.With("method", "readLoop", "playerID", c.id)

	defer that.disconnect(ctx, c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}

			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			that.sendError(c, "", errMalformedPayload)

			continue
		}

		that.dispatch(ctx, c, &message)
	}
}

func (that *Server) dispatch(ctx context.Context, c *client, message *Message) {
	log := that.logger.With("action", message.Action, "playerID", c.id)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("error processing message", "error", errUnknownAction)
		that.sendError(c, message.Action, errUnknownAction)

		return
	}

	err := handler(ctx, c, message)
	switch {
	case err == nil:
	case errors.Is(err, errMalformedPayload) || usecase.IsDirectoryError(err):
		log.Info("action failed", "error", err)
		that.sendError(c, message.Action, err)
	default:
		log.Debug("action rejected", "error", err)
	}
}

func (that *Server) disconnect(ctx context.Context, c *client) {
	that.hub.unregister(c)

	// at shutdown the room may already be closed
	err := that.rooms.Leave(context.WithoutCancel(ctx), c.id)
	if err != nil && !errors.Is(err, apperror.ErrNotInRoom) && !errors.Is(err, apperror.ErrRoomNotFound) {
		that.logger.Error("failed to leave room on disconnect", "playerID", c.id, "error", err)
	}

	that.logger.Info("WebSocket connection closed", "playerID", c.id)
}

func (that *Server) sendError(c *client, action string, err error) {
	that.hub.sendTo(c.id, actionError, ErrorPayload{Action: action, Error: rootCause(err).Error()})
}

// rootCause - the innermost wrapped error, which carries the client-facing message.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}

		err = next
	}
}
