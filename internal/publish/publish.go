// Package publish emits query results to a Socket.IO server so that a
// dashboard or another service can follow almanac runs as they finish.
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/almanac/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const defaultTimeout = 10 * time.Second

var (
	// ErrInvalidOptions is returned by New for an unusable configuration.
	ErrInvalidOptions = errors.New("invalid publisher options")

	// ErrTimeout is returned when the server does not connect or answer in time.
	ErrTimeout = errors.New("publish timed out")
)

// Options configures a Publisher.
type Options struct {
	URL       string
	Namespace string
	Event     string
	// AwaitEvent, when set, makes Publish wait for the server to emit this
	// event before returning.
	AwaitEvent         string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Result is the payload emitted for one answered query.
type Result struct {
	RunID    string `json:"run_id"`
	Mode     string `json:"mode"`
	Location uint64 `json:"location"`
}

func (r Result) payload() map[string]any {
	return map[string]any{
		"run_id":   r.RunID,
		"mode":     r.Mode,
		"location": r.Location,
	}
}

// Publisher sends results over Socket.IO.
type Publisher struct {
	opts    Options
	baseURL string
	path    string
}

// New validates the options and returns a publisher.
func New(opts Options) (*Publisher, error) {
	if opts.Event == "" {
		return nil, fmt.Errorf("%w: event name is required", ErrInvalidOptions)
	}
	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse URL: %w", ErrInvalidOptions, err)
	}
	switch parsedURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("%w: unsupported URL scheme %q", ErrInvalidOptions, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: URL %q has no host", ErrInvalidOptions, opts.URL)
	}
	if opts.Namespace == "" {
		opts.Namespace = "/"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	return &Publisher{
		opts:    opts,
		baseURL: fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host),
		path:    parsedURL.Path,
	}, nil
}

// Publish connects, emits every result and disconnects.
func (p *Publisher) Publish(ctx context.Context, results ...Result) error {
	logger := ctxlog.FromContext(ctx).With("url", p.baseURL, "namespace", p.opts.Namespace, "event", p.opts.Event)
	logger.Debug("Publishing results.", "count", len(results))

	var isConnected atomic.Bool
	done := make(chan error, 1)
	finish := func(err error) {
		select {
		case done <- err:
		default:
		}
	}

	opCtx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	opts := socket.DefaultOptions()
	if p.path != "" && p.path != "/" {
		opts.SetPath(p.path)
	}
	if p.opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(p.baseURL, opts)
	io := manager.Socket(p.opts.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	io.On(types.EventName("connect"), func(...any) {
		isConnected.Store(true)
		logger.Info("Connected to result sink", "sid", io.Id())
		for _, r := range results {
			io.Emit(p.opts.Event, r.payload())
		}
		if p.opts.AwaitEvent == "" {
			finish(nil)
		}
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		if len(errs) > 0 {
			if err, ok := errs[0].(error); ok {
				finish(fmt.Errorf("failed to connect: %w", err))
				return
			}
		}
		finish(errors.New("failed to connect"))
	})

	if p.opts.AwaitEvent != "" {
		io.On(types.EventName(p.opts.AwaitEvent), func(...any) {
			finish(nil)
		})
	}

	io.Connect()

	select {
	case <-opCtx.Done():
		if isConnected.Load() {
			return fmt.Errorf("%w: connected but no %q event arrived", ErrTimeout, p.opts.AwaitEvent)
		}
		return fmt.Errorf("%w: waiting for initial connection", ErrTimeout)
	case err := <-done:
		if err == nil {
			logger.Info("Results published.", "count", len(results))
		}
		return err
	}
}
