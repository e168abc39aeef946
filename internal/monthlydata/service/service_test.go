package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mddomain "github.com/wattwiselabs/wattwise/internal/monthlydata/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) mddomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&mddomain.MonthlyData{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node})
}

func TestBulkUpsertReplacesByMonth(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.BulkUpsert(ctx, []mddomain.UploadRow{
		{Month: 4, MonthName: "April", AvgTempC: 28.7, RainyDays: 14, PublicHolidays: 3},
		{Month: 5, MonthName: "May", AvgTempC: 28.5, RainyDays: 17, PublicHolidays: 2},
	})
	require.NoError(t, err)

	// Same month again with corrected figures.
	_, err = svc.BulkUpsert(ctx, []mddomain.UploadRow{
		{Month: 4, MonthName: "April", AvgTempC: 29.1, RainyDays: 12, PublicHolidays: 3},
	})
	require.NoError(t, err)

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byMonth := map[int]mddomain.MonthlyData{}
	for _, row := range rows {
		byMonth[row.Month] = row
	}
	assert.Equal(t, 29.1, byMonth[4].AvgTempC)
	assert.Equal(t, 12, byMonth[4].RainyDays)
}

func TestBulkUpsertRejectsBadMonth(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.BulkUpsert(context.Background(), []mddomain.UploadRow{
		{Month: 13, MonthName: "Undecimber"},
	})
	assert.ErrorIs(t, err, mddomain.ErrInvalidMonth)
}
