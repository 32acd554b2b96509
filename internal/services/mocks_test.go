package services

import (
	"context"
	"encoding/json"

	"github.com/globalmarket/backend/internal/models"
	"github.com/globalmarket/backend/internal/notify"
)

// fakeStore records gateway calls and keeps a deep copy of the last saved
// state, like the real store does by serializing immediately.
type fakeStore struct {
	loadState models.PersistedState
	saved     models.PersistedState
	saves     int
	clears    int
}

func (f *fakeStore) Load(ctx context.Context) models.PersistedState {
	return f.loadState
}

func (f *fakeStore) Save(ctx context.Context, state models.PersistedState) {
	blob, err := json.Marshal(state)
	if err != nil {
		return
	}
	var copied models.PersistedState
	if err := json.Unmarshal(blob, &copied); err != nil {
		return
	}
	f.saved = copied
	f.saves++
}

func (f *fakeStore) Clear(ctx context.Context) {
	f.saved = models.PersistedState{}
	f.clears++
}

// fakeNotifier collects everything sent to the notification surface.
type fakeNotifier struct {
	notes []notify.Notification
}

func (f *fakeNotifier) Notify(message, severity string) {
	f.notes = append(f.notes, notify.Notification{Message: message, Severity: severity})
}

func (f *fakeNotifier) last() notify.Notification {
	if len(f.notes) == 0 {
		return notify.Notification{}
	}
	return f.notes[len(f.notes)-1]
}
