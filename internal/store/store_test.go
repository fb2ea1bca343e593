package store

import (
	"testing"
	"time"

	"github.com/gookit/event"
	"github.com/printdeck/printdeck/internal/eventType"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPluginContextMenuItem(t *testing.T) {
	s := NewStore(nil)

	item := ContextMenuItem{
		Name:            "Edit with G-Code Viewer",
		Icon:            "mdi-video-3d",
		Action:          "view3d",
		ContextMenuType: ContextMenuJobFileList,
	}
	s.RegisterPluginContextMenuItem(item)

	state := s.Snapshot()
	require.Len(t, state.ContextMenuItems, 1)
	assert.Equal(t, item, state.ContextMenuItems[0])
	assert.Empty(t, state.Components)
}

func TestInjectComponent(t *testing.T) {
	s := NewStore(nil)

	s.InjectComponent(InjectedComponent{Name: "height-map-panel", Component: map[string]any{"tag": "height-map"}})
	s.InjectComponent(InjectedComponent{Name: "osk", Component: "on-screen-keyboard"})

	state := s.Snapshot()
	require.Len(t, state.Components, 2)
	assert.Equal(t, "height-map-panel", state.Components[0].Name)
	assert.Equal(t, "osk", state.Components[1].Name)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(nil)
	s.RegisterPluginContextMenuItem(ContextMenuItem{Name: "a", ContextMenuType: ContextMenuJobFileList})

	state := s.Snapshot()
	state.ContextMenuItems[0].Name = "mutated"

	assert.Equal(t, "a", s.Snapshot().ContextMenuItems[0].Name)
}

func TestCommitBroadcastsEvent(t *testing.T) {
	s := NewStore(nil)

	got := make(chan string, 8)
	event.On(eventType.UiInjectionRegisterContextMenuItem, event.ListenerFunc(func(e event.Event) error {
		if item, ok := e.Get("payload").(ContextMenuItem); ok {
			select {
			case got <- item.Name:
			default:
			}
		}
		return nil
	}))

	s.RegisterPluginContextMenuItem(ContextMenuItem{Name: "from-event", ContextMenuType: ContextMenuJobFileList})

	deadline := time.After(2 * time.Second)
	for {
		select {
		case name := <-got:
			if name == "from-event" {
				return
			}
		case <-deadline:
			t.Fatalf("timeout waiting for mutation event")
		}
	}
}
