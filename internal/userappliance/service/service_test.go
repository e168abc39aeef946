package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (uadomain.Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&uadomain.Record{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node}), node
}

func TestUpsertThenGetRoundTrip(t *testing.T) {
	svc, node := newTestService(t)
	ctx := context.Background()
	userID := node.Generate().String()

	first, err := svc.Upsert(ctx, userID, uadomain.UpsertRequest{
		Location: "Colombo",
		Appliances: []uadomain.ApplianceHours{
			{Name: "Refrigerator (200-300L)", HoursPerDay: 24},
			{Name: "Ceiling Fan", HoursPerDay: 6},
		},
	})
	require.NoError(t, err)
	assert.Len(t, first.Appliances, 2)

	// Second write fully replaces the list; no merge residue.
	second, err := svc.Upsert(ctx, userID, uadomain.UpsertRequest{
		Appliances: []uadomain.ApplianceHours{
			{Name: "Laptop", HoursPerDay: 5},
		},
	})
	require.NoError(t, err)
	require.Len(t, second.Appliances, 1)
	assert.Equal(t, "Laptop", second.Appliances[0].Name)
	// Empty location leaves the previous value in place.
	assert.Equal(t, "Colombo", second.Location)

	got, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got.Appliances, 1)
	assert.Equal(t, "Laptop", got.Appliances[0].Name)
	assert.Empty(t, got.Message)
}

func TestGetWithoutRecordReturnsEmptyState(t *testing.T) {
	svc, node := newTestService(t)

	got, err := svc.Get(context.Background(), node.Generate().String())
	require.NoError(t, err)
	assert.Empty(t, got.Appliances)
	assert.NotEmpty(t, got.Message)
}

func TestDeleteTwice(t *testing.T) {
	svc, node := newTestService(t)
	ctx := context.Background()
	userID := node.Generate().String()

	_, err := svc.Upsert(ctx, userID, uadomain.UpsertRequest{
		Location:   "Galle",
		Appliances: []uadomain.ApplianceHours{{Name: "Iron", HoursPerDay: 0.5}},
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Galle", deleted.Location)
	require.Len(t, deleted.Appliances, 1)

	_, err = svc.Delete(ctx, userID)
	assert.ErrorIs(t, err, uadomain.ErrRecordNotFound)
}

func TestUpsertInvalidUserID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Upsert(context.Background(), "not-an-id", uadomain.UpsertRequest{})
	assert.ErrorIs(t, err, uadomain.ErrInvalidUserID)
}
