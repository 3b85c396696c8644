// Package storage keeps per-channel encounter state (crafting progress and the
// security level of the system being sliced) on top of the JSON datastore.
package storage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/keshon/swrpg-bot/datastore"
	"github.com/keshon/swrpg-bot/internal/display"
)

// DefaultSecurity is the security level of a freshly encountered system.
const DefaultSecurity = display.Average

// ErrNoTemplate is returned when a crafting step needs a template first.
var ErrNoTemplate = errors.New("no crafting template selected")

// CraftTemplate is the item a channel is currently crafting.
type CraftTemplate struct {
	Name       string             `json:"name"`
	Difficulty display.Difficulty `json:"difficulty"`
	Price      int                `json:"price"`
	Rarity     int                `json:"rarity"`
}

// Session is the state of one channel's encounter.
type Session struct {
	CraftMode     display.CraftingMode `json:"craft_mode"`
	Template      *CraftTemplate       `json:"template,omitempty"`
	SecurityLevel display.Difficulty   `json:"security_level"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// NewSession returns the state of a channel nobody has played in yet.
func NewSession() Session {
	return Session{CraftMode: display.CraftNone, SecurityLevel: DefaultSecurity}
}

// RequireTemplate returns the template being crafted or ErrNoTemplate.
func (s Session) RequireTemplate() (*CraftTemplate, error) {
	if s.Template == nil {
		return nil, ErrNoTemplate
	}
	return s.Template, nil
}

// Storage is the session repository.
type Storage struct {
	ds  *datastore.DataStore
	mu  sync.Mutex
	now func() time.Time
}

// New opens the store at filePath. autosave <= 0 disables periodic flushing;
// state is still written on Close.
func New(filePath string, autosave time.Duration) (*Storage, error) {
	cfg := datastore.DefaultConfig(filePath)
	cfg.AutoSaveInterval = autosave
	ds, err := datastore.NewWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return &Storage{ds: ds, now: time.Now}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Storage) Close() error {
	return s.ds.Close()
}

func sessionKey(channelID string) string { return "session:" + channelID }

// Session returns the state for channelID, or a fresh one.
func (s *Storage) Session(channelID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(channelID)
}

func (s *Storage) load(channelID string) (Session, error) {
	sess := NewSession()
	if _, err := s.ds.Get(sessionKey(channelID), &sess); err != nil {
		return NewSession(), err
	}
	return sess, nil
}

// Update applies fn to the channel's session and persists the result. Nothing
// is written when fn fails.
func (s *Storage) Update(channelID string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.load(channelID)
	if err != nil {
		return sess, err
	}
	if err := fn(&sess); err != nil {
		return sess, err
	}
	sess.UpdatedAt = s.now().UTC()
	if err := s.ds.Put(sessionKey(channelID), sess); err != nil {
		return sess, fmt.Errorf("save session %s: %w", channelID, err)
	}
	return sess, nil
}

// SetCraftMode starts a crafting session in mode, dropping any template.
func (s *Storage) SetCraftMode(channelID string, mode display.CraftingMode) (Session, error) {
	return s.Update(channelID, func(sess *Session) error {
		sess.CraftMode = mode
		sess.Template = nil
		return nil
	})
}

// SetTemplate records the template being crafted.
func (s *Storage) SetTemplate(channelID string, tpl CraftTemplate) (Session, error) {
	return s.Update(channelID, func(sess *Session) error {
		sess.Template = &tpl
		return nil
	})
}

// AdjustSecurity moves the security level by delta, clamped to 0..5.
func (s *Storage) AdjustSecurity(channelID string, delta int) (Session, error) {
	return s.Update(channelID, func(sess *Session) error {
		sess.SecurityLevel = display.Clamp(int(sess.SecurityLevel) + delta)
		return nil
	})
}

// ResetSecurity puts the security level back to DefaultSecurity.
func (s *Storage) ResetSecurity(channelID string) (Session, error) {
	return s.Update(channelID, func(sess *Session) error {
		sess.SecurityLevel = DefaultSecurity
		return nil
	})
}
