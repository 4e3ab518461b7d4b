package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ideax-social/feedcore/pkg/internal/models"
	"github.com/spf13/viper"
)

const (
	defaultReplyDelay  = 1500 * time.Millisecond
	replyPreviewLength = 48
)

// ConversationStore owns the two-party message threads of the acting
// user. Threads stay sorted by most recent activity; sending a message
// schedules a simulated reply from the other participant after a short
// delay.
type ConversationStore struct {
	Notifier

	mu            sync.Mutex
	currentUser   models.User
	conversations []models.Conversation
	activeID      string

	replyDelay time.Duration
	timers     map[string]*time.Timer
	closed     bool
}

func NewConversationStore(currentUser models.User) *ConversationStore {
	delay := viper.GetDuration("messaging.reply_delay")
	if delay <= 0 {
		delay = defaultReplyDelay
	}
	return &ConversationStore{
		currentUser: currentUser,
		replyDelay:  delay,
		timers:      make(map[string]*time.Timer),
	}
}

// StartConversation opens (or re-activates) the thread with the given
// user. At most one conversation exists per participant pair; starting
// one with an existing partner reuses it. Talking to yourself is
// ignored.
func (s *ConversationStore) StartConversation(user models.User) (models.Conversation, bool) {
	s.mu.Lock()
	if user.ID == s.currentUser.ID {
		s.mu.Unlock()
		return models.Conversation{}, false
	}

	for _, conv := range s.conversations {
		if conv.Has(user.ID) {
			s.activeID = conv.ID
			s.mu.Unlock()
			s.publish()
			return conv, true
		}
	}

	conv := models.Conversation{
		ID:           uuid.NewString(),
		Participants: [2]models.User{s.currentUser, user},
	}
	s.conversations = append([]models.Conversation{conv}, s.conversations...)
	s.activeID = conv.ID
	s.mu.Unlock()

	s.publish()
	return conv, true
}

// SendMessage appends a message from the acting user to the target
// thread, resorts the list by latest activity and schedules the
// simulated reply. The reply resolves the conversation by id when the
// timer fires, never via a captured snapshot.
func (s *ConversationStore) SendMessage(conversationID, text string) (models.Message, error) {
	s.mu.Lock()

	idx := s.indexOf(conversationID)
	if idx < 0 {
		s.mu.Unlock()
		return models.Message{}, fmt.Errorf("unable to find conversation: %s", conversationID)
	}

	msg := models.Message{
		ID:        uuid.NewString(),
		Text:      text,
		SenderID:  s.currentUser.ID,
		Timestamp: time.Now(),
	}
	s.conversations[idx].Messages = append(s.conversations[idx].Messages, msg)
	s.resort()

	if !s.closed {
		if prev, ok := s.timers[conversationID]; ok {
			prev.Stop()
		}
		s.timers[conversationID] = time.AfterFunc(s.replyDelay, func() {
			s.deliverReply(conversationID, text)
		})
	}
	s.mu.Unlock()

	s.publish()
	return msg, nil
}

// deliverReply appends the simulated reply from the other participant.
// The conversation is looked up fresh so list reordering between send
// and delivery cannot misroute it.
func (s *ConversationStore) deliverReply(conversationID, original string) {
	s.mu.Lock()
	delete(s.timers, conversationID)

	if s.closed {
		s.mu.Unlock()
		return
	}
	idx := s.indexOf(conversationID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	other := s.conversations[idx].Other(s.currentUser.ID)
	reply := models.Message{
		ID:        uuid.NewString(),
		Text:      fmt.Sprintf("That's interesting! Tell me more about \"%s\"", messagePreview(original)),
		SenderID:  other.ID,
		Timestamp: time.Now(),
	}
	s.conversations[idx].Messages = append(s.conversations[idx].Messages, reply)
	s.resort()
	s.mu.Unlock()

	s.publish()
}

// SelectConversation marks a thread as the active one; an empty id
// clears the selection.
func (s *ConversationStore) SelectConversation(conversationID string) {
	s.mu.Lock()
	s.activeID = conversationID
	s.mu.Unlock()
	s.publish()
}

// ActiveConversation returns a copy of the currently selected thread.
func (s *ConversationStore) ActiveConversation() (models.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(s.activeID)
	if idx < 0 {
		return models.Conversation{}, false
	}
	return s.copyAt(idx), true
}

// Conversations returns a snapshot copy of the thread list.
func (s *ConversationStore) Conversations() []models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Conversation, len(s.conversations))
	for idx := range s.conversations {
		out[idx] = s.copyAt(idx)
	}
	return out
}

// Close stops every pending reply timer. Replies already in flight are
// dropped on delivery.
func (s *ConversationStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *ConversationStore) indexOf(conversationID string) int {
	if len(conversationID) == 0 {
		return -1
	}
	for idx := range s.conversations {
		if s.conversations[idx].ID == conversationID {
			return idx
		}
	}
	return -1
}

func (s *ConversationStore) copyAt(idx int) models.Conversation {
	conv := s.conversations[idx]
	messages := make([]models.Message, len(conv.Messages))
	copy(messages, conv.Messages)
	conv.Messages = messages
	return conv
}

// resort orders threads by latest activity, newest first. The sort is
// stable so threads with identical timestamps keep their relative order;
// empty threads sort behind every active one.
func (s *ConversationStore) resort() {
	sort.SliceStable(s.conversations, func(i, j int) bool {
		return s.conversations[i].LastActivity().After(s.conversations[j].LastActivity())
	})
}

func messagePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= replyPreviewLength {
		return text
	}
	return string(runes[:replyPreviewLength]) + "…"
}
