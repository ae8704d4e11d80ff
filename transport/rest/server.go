package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	rooms  *roomHandlers

	allowedOrigins []string
}

func New(logger *slog.Logger, rooms roomLister, snapshots snapshotReader, allowedOrigins []string) *Server {
	logger = logger.With("component", "rest_server")

	return &Server{
		logger: logger,
		rooms: &roomHandlers{
			logger:    logger,
			rooms:     rooms,
			snapshots: snapshots,
		},
		allowedOrigins: allowedOrigins,
	}
}

// Handler - the router wrapped with the CORS policy.
func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rooms", that.rooms.listRooms).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{code}", that.rooms.getRoom).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: that.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}).Handler(router)
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down http server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
