// Package server assembles the HTTP handler serving the chat API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/groupchat/docs"
	"github.com/fkhayef/groupchat/internal/group"
	"github.com/fkhayef/groupchat/internal/guard"
	"github.com/fkhayef/groupchat/internal/logging"
	"github.com/fkhayef/groupchat/internal/message"
	"github.com/fkhayef/groupchat/internal/metrics"
	"github.com/fkhayef/groupchat/internal/user"
	mw "github.com/fkhayef/groupchat/pkg/middleware"
	"github.com/fkhayef/groupchat/pkg/response"
)

const healthTimeout = 2 * time.Second

// NewRouter wires every feature against db and returns the root handler
func NewRouter(db *sqlx.DB, log *logrus.Logger) http.Handler {
	g := guard.New(db)

	// User feature
	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), g))

	// Group feature
	groupHandler := group.NewHandler(group.NewService(group.NewRepository(db), g))

	// Message feature, served under /groups
	messageHandler := message.NewHandler(message.NewService(message.NewRepository(db), g))

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(mw.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Chat API is running!"))
	})

	r.Get("/health", health(db))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/users", userHandler.Routes())
	r.Mount("/groups", groupHandler.Routes(messageHandler.RegisterRoutes))

	return r
}

// health reports whether the store answers a ping
func health(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logging.FromContext(r.Context()).WithError(err).Warn("health check failed")
			response.Error(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}

		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
