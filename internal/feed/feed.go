package feed

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/trangvu/lunacycle/internal/config"
)

// snapshot holds one rendered calendar together with the header values
// conditional requests compare against.
type snapshot struct {
	data         []byte
	etag         string
	lastModified string // RFC1123, as HTTP requires
}

// Server exposes the generated calendar on a localhost HTTP endpoint so
// calendar apps can subscribe to it instead of re-importing files. It is
// strictly read-only: nothing a client sends ever reaches the store.
type Server struct {
	// content is an atomic.Pointer so GET handlers read lock-free; the
	// calendar changes only when a command regenerates it, while
	// subscribed clients poll it repeatedly.
	content atomic.Pointer[snapshot]
	Port    string
}

// NewServer creates a feed server for the given port.
func NewServer(port string) *Server {
	return &Server{Port: port}
}

// ValidatePort checks that port is a usable TCP port string.
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(config.ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(config.ErrPortNumber)
	}
	if n < 1 || n > 65535 {
		return errors.New(config.ErrPortRange)
	}
	return nil
}

// Start runs the HTTP server and blocks until the context is cancelled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if err := ValidatePort(s.Port); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleFeedRequest)

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgFeedListen,
			config.LogKeyComponent, config.CompFeed,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgFeedStop, config.LogKeyComponent, config.CompFeed)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served calendar. Readers see either the
// previous snapshot or the new one, never a mix.
func (s *Server) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	s.content.Store(&snapshot{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	})

	slog.Debug(config.MsgFeedUpdated,
		config.LogKeyComponent, config.CompFeed,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// handleFeedRequest serves the calendar with ETag and Last-Modified
// support, so subscribed clients that poll frequently mostly get 304s.
func (s *Server) handleFeedRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.content.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	// Health data: private forbids shared caches from keeping a copy.
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompFeed,
				config.LogKeyError, err,
			)
		}
	}
}
