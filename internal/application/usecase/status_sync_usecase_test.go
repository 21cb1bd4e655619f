// internal/application/usecase/status_sync_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "wingx/internal/domain/order"
)

// fakeWatcher lets tests push snapshots by hand.
type fakeWatcher struct {
	handler      orderdom.SnapshotHandler
	unsubscribed bool
	err          error
}

func (w *fakeWatcher) OnSnapshot(ctx context.Context, orderID string, h orderdom.SnapshotHandler) (func(), error) {
	if w.err != nil {
		return nil, w.err
	}
	w.handler = h
	return func() { w.unsubscribed = true }, nil
}

func (w *fakeWatcher) push(status orderdom.Status, reason string) {
	w.handler(orderdom.Snapshot{
		Order:  orderdom.Order{ID: "ord1", Status: status, RejectionReason: reason},
		Exists: true,
		At:     time.Now(),
	}, nil)
}

func TestStatusSync_DisplayMapping(t *testing.T) {
	cases := []struct {
		status orderdom.Status
		want   DisplayStatus
	}{
		{orderdom.StatusPendingVerification, DisplayPending},
		{orderdom.StatusPendiente, DisplayPending},
		{orderdom.StatusPaid, DisplayPaid},
		{orderdom.StatusShipped, DisplayPaid},
		{orderdom.StatusRejected, DisplayRejected},
		{orderdom.Status("garbage"), DisplayPending},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DisplayFor(tc.status), "status %q", tc.status)
	}
}

func TestStatusSync_CelebrateFiresOnceOnPaidEdge(t *testing.T) {
	w := &fakeWatcher{}
	uc := NewStatusSyncUsecase(w)

	var updates []StatusUpdate
	unsub, err := uc.Watch(context.Background(), "ord1", func(u StatusUpdate) {
		updates = append(updates, u)
	})
	require.NoError(t, err)
	defer unsub()

	w.push(orderdom.StatusPendingVerification, "")
	w.push(orderdom.StatusPaid, "")
	w.push(orderdom.StatusPaid, "")

	require.Len(t, updates, 3)
	assert.False(t, updates[0].Celebrate)
	assert.True(t, updates[1].Celebrate, "transition into paid celebrates")
	assert.False(t, updates[2].Celebrate, "repeat paid snapshot stays quiet")
}

func TestStatusSync_FirstPaidSnapshotCelebrates(t *testing.T) {
	w := &fakeWatcher{}
	uc := NewStatusSyncUsecase(w)

	var updates []StatusUpdate
	unsub, err := uc.Watch(context.Background(), "ord1", func(u StatusUpdate) {
		updates = append(updates, u)
	})
	require.NoError(t, err)
	defer unsub()

	w.push(orderdom.StatusPaid, "")
	w.push(orderdom.StatusPaid, "")

	require.Len(t, updates, 2)
	assert.Equal(t, DisplayPaid, updates[0].Display)
	assert.True(t, updates[0].Celebrate, "loading into paid is a transition too")
	assert.False(t, updates[1].Celebrate, "repeat paid snapshot stays quiet")
}

func TestStatusSync_ErrorDegradesToPending(t *testing.T) {
	w := &fakeWatcher{}
	uc := NewStatusSyncUsecase(w)

	var updates []StatusUpdate
	unsub, err := uc.Watch(context.Background(), "ord1", func(u StatusUpdate) {
		updates = append(updates, u)
	})
	require.NoError(t, err)
	defer unsub()

	w.handler(orderdom.Snapshot{}, errors.New("stream broken"))

	require.Len(t, updates, 1)
	assert.Equal(t, DisplayPending, updates[0].Display)
}

func TestStatusSync_MissingOrderShowsPending(t *testing.T) {
	w := &fakeWatcher{}
	uc := NewStatusSyncUsecase(w)

	var updates []StatusUpdate
	unsub, err := uc.Watch(context.Background(), "ord1", func(u StatusUpdate) {
		updates = append(updates, u)
	})
	require.NoError(t, err)
	defer unsub()

	w.handler(orderdom.Snapshot{Exists: false}, nil)

	require.Len(t, updates, 1)
	assert.Equal(t, DisplayPending, updates[0].Display)
}

func TestStatusSync_RejectionReasonFlowsThrough(t *testing.T) {
	w := &fakeWatcher{}
	uc := NewStatusSyncUsecase(w)

	var last StatusUpdate
	unsub, err := uc.Watch(context.Background(), "ord1", func(u StatusUpdate) { last = u })
	require.NoError(t, err)
	defer unsub()

	w.push(orderdom.StatusRejected, orderdom.DefaultRejectionReason)

	assert.Equal(t, DisplayRejected, last.Display)
	assert.Equal(t, orderdom.DefaultRejectionReason, last.RejectionReason)
}
