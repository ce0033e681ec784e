package routing

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"onlinetracker/pkg/handlers"
	"onlinetracker/pkg/presence"
	"onlinetracker/pkg/session"
)

const (
	staticPath      = "./static"
	landingPage     = staticPath + "/html/index.html"
	shutdownTimeout = 5 * time.Second
)

func InitRoutes(api *mux.Router, registry session.Registry, logger *slog.Logger) {

	service := presence.NewService(registry)
	onlineHandler := handlers.NewOnlineHandler(service, logger)

	onlineRouter := api.PathPrefix("/online").Subrouter()

	/* online routers */
	onlineRouter.HandleFunc("/count", onlineHandler.GetCount).Methods("GET", "OPTIONS")
	onlineRouter.HandleFunc("/users", onlineHandler.GetUsers).Methods("GET", "OPTIONS")
	onlineRouter.HandleFunc("/login", onlineHandler.Login).Methods("POST", "OPTIONS")
	onlineRouter.HandleFunc("/heartbeat", onlineHandler.Heartbeat).Methods("POST", "OPTIONS")
	onlineRouter.HandleFunc("/logout", onlineHandler.Logout).Methods("POST", "OPTIONS")
	onlineRouter.HandleFunc("/validate", onlineHandler.Validate).Methods("POST", "OPTIONS")

	/* health router */
	api.HandleFunc("/health", onlineHandler.Health).Methods("GET", "OPTIONS")
}

func ServeLandingPage(r *mux.Router) {
	r.Path("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, landingPage)
	})
}

// StartServer blocks until the listener fails or ctx is cancelled, in
// which case it drains in-flight requests before returning.
func StartServer(ctx context.Context, r *mux.Router, logger *slog.Logger, addr string) error {
	srv := &http.Server{Addr: addr, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
