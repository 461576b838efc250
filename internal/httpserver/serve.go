// Package httpserver runs an http.Handler until its context is cancelled and
// then shuts it down gracefully.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/William0209/backend-last/internal/logging"
)

// Serve listens on bind and serves handler until ctx is done. In-flight
// requests get shutdownTimeout to complete.
func Serve(ctx context.Context, log logging.Logger, bind string, handler http.Handler, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", bind)
	if err != nil {
		return err
	}
	return ServeListener(ctx, log, ln, handler, shutdownTimeout)
}

// ServeListener is Serve on an already open listener. It takes ownership of ln.
func ServeListener(ctx context.Context, log logging.Logger, ln net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	server := &http.Server{
		Handler:           handler,
		ReadTimeout:       time.Minute * 5,
		WriteTimeout:      time.Minute,
		ReadHeaderTimeout: time.Minute,
		IdleTimeout:       time.Minute * 5,
	}
	log = log.With("server.addr", ln.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		log.Info(ctx, "Starting HTTP server")
		err := server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			log.Info(ctx, "Server closed")
			return
		}
		serveErr <- err
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info(ctx, "Initiating shutdown process")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-serveErr
	log.Info(ctx, "Shutdown completed")
	return nil
}
