// Package table runs an engine behind a single loop goroutine so callers on
// any goroutine can submit commands safely.
package table

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/lazharichir/blackjack/game"
)

// ErrSessionClosed is returned by Submit once the session has stopped
var ErrSessionClosed = errors.New("session closed")

const (
	pending int32 = iota
	claimed
	abandoned
)

type request struct {
	ctx   context.Context
	cmd   game.Command
	reply chan response
	state atomic.Int32
}

// claim marks the request as taken by the loop. It fails once the caller
// has given up on it.
func (r *request) claim() bool {
	return r.state.CompareAndSwap(pending, claimed)
}

// abandon withdraws the request. It fails once the loop has claimed it, in
// which case the caller must wait for the reply.
func (r *request) abandon() bool {
	return r.state.CompareAndSwap(pending, abandoned)
}

type response struct {
	view game.View
	err  error
}

// Session owns one Engine and applies submitted commands one at a time
type Session struct {
	engine   *game.Engine
	logger   *log.Logger
	requests chan *request
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	viewLock sync.RWMutex
	view     game.View

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewSession wraps engine. The session takes ownership: nothing else may
// call the engine once Start has run.
func NewSession(engine *game.Engine, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		engine:   engine,
		logger:   logger.WithPrefix("session"),
		requests: make(chan *request, 16),
		ctx:      ctx,
		cancel:   cancel,
		view:     engine.View(),
	}
}

// Start begins the loop goroutine
func (s *Session) Start() {
	s.startOnce.Do(func() {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runLoop()
		}()
	})
}

// Stop ends the session and waits for the loop to exit. The engine emits its
// session-end signal on the way out.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.wg.Wait()
	})
}

// Submit applies cmd and returns the resulting view. Rejected commands
// return the unchanged view alongside the error. A command whose ctx ends
// before the loop picks it up is never applied.
func (s *Session) Submit(ctx context.Context, cmd game.Command) (game.View, error) {
	if err := ctx.Err(); err != nil {
		return s.View(), err
	}
	if s.ctx.Err() != nil {
		return s.View(), ErrSessionClosed
	}
	req := &request{ctx: ctx, cmd: cmd, reply: make(chan response, 1)}

	select {
	case s.requests <- req:
	case <-s.ctx.Done():
		return s.View(), ErrSessionClosed
	case <-ctx.Done():
		return s.View(), ctx.Err()
	}

	select {
	case resp := <-req.reply:
		return resp.view, resp.err
	case <-s.ctx.Done():
		if req.abandon() {
			return s.View(), ErrSessionClosed
		}
	case <-ctx.Done():
		if req.abandon() {
			return s.View(), ctx.Err()
		}
	}
	// the loop claimed it first and always replies
	resp := <-req.reply
	return resp.view, resp.err
}

// View returns the state after the last applied command
func (s *Session) View() game.View {
	s.viewLock.RLock()
	defer s.viewLock.RUnlock()
	return s.view
}

// SessionID identifies the wrapped engine
func (s *Session) SessionID() string {
	return s.engine.SessionID()
}

// runLoop is the only goroutine touching the engine
func (s *Session) runLoop() {
	for {
		select {
		case <-s.ctx.Done():
			s.engine.End()
			s.publish()
			return
		case req := <-s.requests:
			if !req.claim() {
				s.logger.Debug("skipped abandoned", "command", req.cmd.CommandName())
				continue
			}
			if err := req.ctx.Err(); err != nil {
				s.logger.Debug("skipped", "command", req.cmd.CommandName(), "err", err)
				req.reply <- response{view: s.View(), err: err}
				continue
			}
			req.reply <- s.handle(req.cmd)
		}
	}
}

func (s *Session) handle(cmd game.Command) response {
	err := s.engine.Execute(cmd)
	switch {
	case err == nil:
		s.logger.Debug("applied", "command", cmd.CommandName(), "state", s.engine.State())
	case game.IsRejection(err):
		s.logger.Debug("rejected", "command", cmd.CommandName(), "err", err)
	default:
		s.logger.Warn("command failed", "command", cmd.CommandName(), "err", err)
		err = fmt.Errorf("failed to execute %s: %w", cmd.CommandName(), err)
	}
	return response{view: s.publish(), err: err}
}

func (s *Session) publish() game.View {
	v := s.engine.View()
	s.viewLock.Lock()
	s.view = v
	s.viewLock.Unlock()
	return v
}
