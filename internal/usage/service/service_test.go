package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wattwiselabs/wattwise/internal/clock"
	usagedomain "github.com/wattwiselabs/wattwise/internal/usage/domain"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 {
	return &v
}

func newTestService(t *testing.T) (usagedomain.Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&usagedomain.Record{}, &usagedomain.Survey{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node, Clock: clock.SystemClock{}})
	return svc, node
}

func TestLogAndListByUser(t *testing.T) {
	svc, node := newTestService(t)
	ctx := context.Background()

	userID := node.Generate().String()
	applianceID := node.Generate().String()

	rec, err := svc.Log(ctx, usagedomain.LogRequest{
		User:       userID,
		Appliance:  applianceID,
		UsageHours: floatPtr(3.5),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.5, rec.UsageHours)
	assert.False(t, rec.RecordedAt.IsZero())

	rows, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	other, err := svc.ListByUser(ctx, node.Generate().String())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestLogMissingFields(t *testing.T) {
	svc, node := newTestService(t)
	ctx := context.Background()

	_, err := svc.Log(ctx, usagedomain.LogRequest{
		Appliance:  node.Generate().String(),
		UsageHours: floatPtr(1),
	})
	assert.ErrorIs(t, err, usagedomain.ErrMissingFields)

	_, err = svc.Log(ctx, usagedomain.LogRequest{
		User:      node.Generate().String(),
		Appliance: node.Generate().String(),
	})
	assert.ErrorIs(t, err, usagedomain.ErrMissingFields)
}

func TestSubmitSurvey(t *testing.T) {
	svc, node := newTestService(t)
	ctx := context.Background()
	userID := node.Generate().String()

	sv, err := svc.SubmitSurvey(ctx, usagedomain.SurveyRequest{
		User:   userID,
		People: 4,
		Month:  7,
		Appliances: []uadomain.ApplianceHours{
			{Name: "Ceiling Fan", HoursPerDay: 8},
		},
	})
	require.NoError(t, err)
	assert.False(t, sv.SubmittedAt.IsZero())

	rows, err := svc.ListSurveysByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].People)

	_, err = svc.SubmitSurvey(ctx, usagedomain.SurveyRequest{User: userID, People: 2, Month: 13})
	assert.ErrorIs(t, err, usagedomain.ErrInvalidMonth)
}
