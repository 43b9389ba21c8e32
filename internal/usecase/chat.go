package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"CTPConsole/internal/domain/models"
)

// ChatSession wraps the chat command with an append-only conversation
// transcript. The transcript lives only for the session; it is never
// truncated or persisted.
type ChatSession struct {
	cmd *Command[models.ChatRequest, models.ChatResponse]

	mu      sync.Mutex
	turns   []models.ChatTurn
	pending bool
}

// NewChatSession creates an empty session over the given command.
func NewChatSession(cmd *Command[models.ChatRequest, models.ChatResponse]) *ChatSession {
	return &ChatSession{cmd: cmd}
}

// Ask sends one assistant query. The user turn is recorded before the
// call and the answer appended when it arrives; a blank query is a
// validation failure and records nothing. Returns false when ignored
// because a previous ask is still in flight.
func (s *ChatSession) Ask(ctx context.Context, text string) bool {
	q := strings.TrimSpace(text)

	if q == "" {
		// Let the command surface the validation failure.
		return s.cmd.Submit(ctx, models.ChatRequest{Q: ""})
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return false
	}
	s.pending = true
	s.turns = append(s.turns, models.ChatTurn{
		Role: models.RoleUser,
		Text: q,
		At:   time.Now(),
	})
	s.mu.Unlock()

	ok := s.cmd.Submit(ctx, models.ChatRequest{Q: q})
	state := s.cmd.State()

	s.mu.Lock()
	s.pending = false
	if ok && state.Status == StatusSucceeded {
		s.turns = append(s.turns, models.ChatTurn{
			Role: models.RoleAssistant,
			Text: state.Result.Answer,
			At:   time.Now(),
		})
	}
	s.mu.Unlock()

	return ok
}

// Turns returns a copy of the transcript in order.
func (s *ChatSession) Turns() []models.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// State exposes the underlying command lifecycle.
func (s *ChatSession) State() CommandState[models.ChatRequest, models.ChatResponse] {
	return s.cmd.State()
}

// Pending reports whether an ask is in flight.
func (s *ChatSession) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
