package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gunktools/gunk/internal/rules"
	"github.com/gunktools/gunk/internal/scan"
	"github.com/gunktools/gunk/internal/sweep"
)

func testModel(t *testing.T) Model {
	t.Helper()
	m := New(context.Background(), t.TempDir(), rules.Default())
	t.Cleanup(m.baseCancel)
	return m
}

func entry(path string, size int64) scan.Entry {
	return scan.Entry{Path: path, Size: size, ModTime: time.Now()}
}

func TestDeleteResultRemovesOnlyDeletedItems(t *testing.T) {
	m := testModel(t)
	m.items.Add(entry("/x/gone.log", 10))
	m.items.Add(entry("/x/stuck", 20))
	m.items.Add(entry("/x/broken.tmp", 5))
	m.refreshRows()

	m.deleting = true
	m.deleteQueue = []string{"/x/gone.log", "/x/stuck", "/x/broken.tmp"}

	m.applyDeleteResult(sweep.Result{Path: "/x/gone.log", Outcome: sweep.Deleted})
	assert.Nil(t, m.items.Get("/x/gone.log"), "deleted entries leave the list")
	assert.Equal(t, int64(10), m.freedBytes)

	m.applyDeleteResult(sweep.Result{
		Path: "/x/stuck", Outcome: sweep.PartiallyDeleted, Reason: "locked contents",
	})
	require.NotNil(t, m.items.Get("/x/stuck"), "partially deleted entries stay listed")

	m.applyDeleteResult(sweep.Result{
		Path: "/x/broken.tmp", Outcome: sweep.Failed, Reason: "permission denied",
	})
	require.NotNil(t, m.items.Get("/x/broken.tmp"), "failed entries stay listed")

	assert.Equal(t, 2, m.items.Len())
	assert.Equal(t, 2, m.deleteFailed)
	assert.Equal(t, int64(10), m.freedBytes, "only deleted entries count as freed")
	assert.False(t, m.deleting, "exhausted queue ends the batch")
}

func TestRescanCollisionRetriesInsteadOfFailing(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(scanFailedMsg{id: m.scanID, err: scan.ErrScanActive})
	next := updated.(Model)
	assert.True(t, next.scanning, "an active-worker collision is not a scan failure")
	assert.NoError(t, next.scanErr)
	assert.NotNil(t, cmd, "a retry must be scheduled")

	updated, _ = next.Update(scanFailedMsg{id: next.scanID, err: errors.New("boom")})
	next = updated.(Model)
	assert.False(t, next.scanning)
	assert.Error(t, next.scanErr, "real start failures are still surfaced")
}

func TestStatusViewMarksFullSelection(t *testing.T) {
	m := testModel(t)
	m.scanning = false
	m.items.Add(entry("/x/a.log", 1))
	m.items.Add(entry("/x/b.log", 2))
	m.refreshRows()

	assert.Contains(t, m.statusView(), "Selected: all")

	m.items.Toggle("/x/a.log")
	assert.Contains(t, m.statusView(), "Selected: 1")
}
