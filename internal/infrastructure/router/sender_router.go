package router

import (
	"strings"
	"sync"

	"guesthouse-ops-service/internal/usecase"
	"guesthouse-ops-service/pkg/logger"
)

// SenderRouter resolves a notification channel to the sender serving it.
// Resolutions are memoized per normalized channel and reset on every registration.
type SenderRouter struct {
	mu       sync.RWMutex
	senders  []usecase.SenderHandler
	resolved map[string]usecase.SenderHandler
	logger   logger.Logger
}

// NewSenderRouter creates a new sender router
func NewSenderRouter(logger logger.Logger) *SenderRouter {
	return &SenderRouter{
		resolved: make(map[string]usecase.SenderHandler),
		logger:   logger,
	}
}

// Register adds a sender; earlier registrations win on overlapping channels
func (r *SenderRouter) Register(sender usecase.SenderHandler) {
	if sender == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.senders = append(r.senders, sender)
	r.resolved = make(map[string]usecase.SenderHandler)
	r.logger.Info("Registered sender", "sender", sender, "position", len(r.senders))
}

// GetHandler returns the sender for channel, or nil when none serves it
func (r *SenderRouter) GetHandler(channel string) usecase.SenderHandler {
	key := strings.ToLower(strings.TrimSpace(channel))

	r.mu.RLock()
	sender, ok := r.resolved[key]
	r.mu.RUnlock()
	if ok {
		return sender
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, candidate := range r.senders {
		if candidate.CanHandle(key) {
			sender = candidate
			break
		}
	}
	r.resolved[key] = sender
	if sender == nil {
		r.logger.Warn("No sender registered for channel", "channel", channel)
	}
	return sender
}

// Len returns the number of registered senders
func (r *SenderRouter) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.senders)
}
