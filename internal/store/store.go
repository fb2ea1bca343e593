package store

import (
	"sync"

	"github.com/gookit/event"
	"github.com/printdeck/printdeck/internal/eventType"
)

// ContextMenuType enumerates the dashboard context menus a plugin may extend.
type ContextMenuType string

const (
	ContextMenuJobFileList ContextMenuType = "jobFileList"
)

// ContextMenuItem is the payload of the registerPluginContextMenuItem mutation.
type ContextMenuItem struct {
	Name            string          `json:"name"`
	Path            string          `json:"path,omitempty"`
	Icon            string          `json:"icon"`
	Action          string          `json:"action"`
	ContextMenuType ContextMenuType `json:"contextMenuType"`
}

// InjectedComponent is the payload of the injectComponent mutation. Component
// is opaque to the host; it is handed to the dashboard for rendering.
type InjectedComponent struct {
	Name      string `json:"name"`
	Component any    `json:"component"`
}

// UIState is a snapshot of all UI injections committed so far.
type UIState struct {
	ContextMenuItems []ContextMenuItem   `json:"contextMenuItems"`
	Components       []InjectedComponent `json:"components"`
}

// Store accumulates UI injections from plugins and forwards each mutation to
// connected dashboard sessions. Mutations are fire-and-forget: they are never
// validated and never fail.
type Store struct {
	mu         sync.RWMutex
	menuItems  []ContextMenuItem
	components []InjectedComponent
	hub        *Hub
}

func NewStore(hub *Hub) *Store {
	return &Store{hub: hub}
}

// Browser-facing mutation names. The internal event bus carries the dotted
// eventType equivalents.
const (
	MutationRegisterContextMenuItem = "uiInjection/registerPluginContextMenuItem"
	MutationInjectComponent         = "uiInjection/injectComponent"
)

// RegisterPluginContextMenuItem commits a uiInjection/registerPluginContextMenuItem mutation.
func (s *Store) RegisterPluginContextMenuItem(item ContextMenuItem) {
	s.mu.Lock()
	s.menuItems = append(s.menuItems, item)
	s.mu.Unlock()

	s.commit(eventType.UiInjectionRegisterContextMenuItem, MutationRegisterContextMenuItem, item)
}

// InjectComponent commits a uiInjection/injectComponent mutation.
func (s *Store) InjectComponent(component InjectedComponent) {
	s.mu.Lock()
	s.components = append(s.components, component)
	s.mu.Unlock()

	s.commit(eventType.UiInjectionInjectComponent, MutationInjectComponent, component)
}

// Snapshot returns a copy of the current injection state.
func (s *Store) Snapshot() UIState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return UIState{
		ContextMenuItems: append([]ContextMenuItem(nil), s.menuItems...),
		Components:       append([]InjectedComponent(nil), s.components...),
	}
}

func (s *Store) commit(eventName, mutation string, payload any) {
	event.Async(eventName, event.M{"payload": payload})
	if s.hub != nil {
		s.hub.Broadcast(Mutation{Name: mutation, Payload: payload})
	}
}
