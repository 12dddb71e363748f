package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/testutil"
)

func TestDispatcherWritesEventsOnClose(t *testing.T) {
	db := testutil.NewDB(t)
	d := audit.NewDispatcher(audit.New(db), logger.Nop(), 16)

	userID := "7b0c0e0a-3b7e-4a53-9d0f-1c1b2f7e4a10"
	d.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: "abc",
		Metadata: map[string]string{"name": "Haircut"},
	})
	d.Dispatch(audit.Event{Action: "category_deleted", Entity: "category"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Close(ctx))

	var logs []models.AuditLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)

	assert.Equal(t, "service_created", logs[0].Action)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, userID, *logs[0].UserID)
	assert.JSONEq(t, `{"name":"Haircut"}`, logs[0].Metadata)

	assert.Nil(t, logs[1].UserID)
	assert.Empty(t, logs[1].Metadata)
}

func TestDispatchAfterCloseIsIgnored(t *testing.T) {
	db := testutil.NewDB(t)
	d := audit.NewDispatcher(audit.New(db), logger.Nop(), 1)

	require.NoError(t, d.Close(context.Background()))
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() {
		d.Dispatch(audit.Event{Action: "late"})
	})

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestNilDispatcher(t *testing.T) {
	var d *audit.Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(audit.Event{Action: "noop"})
	})
}
