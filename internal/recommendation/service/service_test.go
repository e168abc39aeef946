package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	recdomain "github.com/wattwiselabs/wattwise/internal/recommendation/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (recdomain.Service, *snowflake.Node, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&recdomain.Recommendation{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node}), node, db
}

func TestUpsertSameMonthOverwrites(t *testing.T) {
	svc, node, db := newTestService(t)
	ctx := context.Background()
	userID := node.Generate().String()

	_, err := svc.Upsert(ctx, recdomain.UpsertRequest{
		User: userID, Month: 8, Year: 2025,
		HoursPerDay: map[string]float64{"Ceiling Fan": 6},
	})
	require.NoError(t, err)

	rec, err := svc.Upsert(ctx, recdomain.UpsertRequest{
		User: userID, Month: 8, Year: 2025,
		HoursPerDay: map[string]float64{"Ceiling Fan": 4.5, "Laptop": 5},
	})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 4.5, rec.HoursPerDay.Data()["Ceiling Fan"])

	var count int64
	require.NoError(t, db.Model(&recdomain.Recommendation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertDifferentMonthsCoexist(t *testing.T) {
	svc, node, db := newTestService(t)
	ctx := context.Background()
	userID := node.Generate().String()

	_, err := svc.Upsert(ctx, recdomain.UpsertRequest{
		User: userID, Month: 7, Year: 2025,
		HoursPerDay: map[string]float64{"Iron": 0.5},
	})
	require.NoError(t, err)

	_, err = svc.Upsert(ctx, recdomain.UpsertRequest{
		User: userID, Month: 8, Year: 2025,
		HoursPerDay: map[string]float64{"Iron": 0.25},
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&recdomain.Recommendation{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	latest, err := svc.GetLatestByUser(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 8, latest.Month)
}

func TestGetLatestWithoutRecord(t *testing.T) {
	svc, node, _ := newTestService(t)

	rec, err := svc.GetLatestByUser(context.Background(), node.Generate().String())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestUpsertValidation(t *testing.T) {
	svc, node, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, recdomain.UpsertRequest{
		User: node.Generate().String(), Month: 8, Year: 2025,
	})
	assert.ErrorIs(t, err, recdomain.ErrMissingFields)

	_, err = svc.Upsert(ctx, recdomain.UpsertRequest{
		User: node.Generate().String(), Month: 0, Year: 2025,
		HoursPerDay: map[string]float64{"Iron": 1},
	})
	assert.ErrorIs(t, err, recdomain.ErrInvalidMonth)
}
