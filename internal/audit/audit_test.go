package audit

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/consultorio/internal/models"
	"github.com/BruksfildServices01/consultorio/internal/testutil"
)

func TestDispatcher_WritesAndDrainsOnClose(t *testing.T) {
	db := testutil.NewDB(t)
	doc := testutil.CreatePhysician(t, db, "a@x.com", "12345678", "hash")

	d := NewDispatcher(New(db), zerolog.Nop())
	d.Dispatch(Event{PhysicianID: Uint(doc.ID), Action: ActionLogin, Entity: "physician", EntityID: Uint(doc.ID)})
	d.Dispatch(Event{PhysicianID: Uint(doc.ID), Action: ActionPatientCreated, Metadata: map[string]string{"name": "Ana"}})
	d.Close()

	var rows []models.AuditLog
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, ActionLogin, rows[0].Action)
	assert.JSONEq(t, `{"name":"Ana"}`, rows[1].Metadata)

	// depois de fechado, eventos são ignorados
	d.Dispatch(Event{Action: ActionLogout})
	d.Close()
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: ActionLogin})
	d.Close()
}

func TestLogger_ListScopedAndFiltered(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	a := testutil.CreatePhysician(t, db, "a@x.com", "12345678", "hash")
	b := testutil.CreatePhysician(t, db, "b@x.com", "87654321", "hash")

	l := New(db)
	require.NoError(t, l.Log(ctx, Event{PhysicianID: Uint(a.ID), Action: ActionLogin}))
	require.NoError(t, l.Log(ctx, Event{PhysicianID: Uint(a.ID), Action: ActionPatientCreated}))
	require.NoError(t, l.Log(ctx, Event{PhysicianID: Uint(a.ID), Action: ActionPatientCreated}))
	require.NoError(t, l.Log(ctx, Event{PhysicianID: Uint(b.ID), Action: ActionLogin}))

	logs, total, err := l.List(ctx, a.ID, Filter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 2)

	logs, total, err = l.List(ctx, a.ID, Filter{Action: ActionLogin, Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, logs, 1)
	assert.Equal(t, a.ID, *logs[0].PhysicianID)

	future := time.Now().Add(time.Hour)
	_, total, err = l.List(ctx, a.ID, Filter{From: &future, Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.Zero(t, total)
}
