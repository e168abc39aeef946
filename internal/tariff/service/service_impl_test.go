package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) tariffdomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tariffdomain.Tariff{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node})
}

func TestUploadThenComputeFromStored(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	count, err := svc.UploadBlocks(ctx, []tariffdomain.UploadRow{
		{Scheme: tariffdomain.SchemeHigh, Block: "0-30", KwhFrom: 0, KwhTo: floatPtr(30), EnergyLkrPerKwh: 10, FixedLkr: 200},
		{Scheme: tariffdomain.SchemeHigh, Block: "30-60", KwhFrom: 30, KwhTo: floatPtr(60), EnergyLkrPerKwh: 15, FixedLkr: 200},
		{Scheme: tariffdomain.SchemeHigh, Block: "60+", KwhFrom: 60, KwhTo: nil, EnergyLkrPerKwh: 20, FixedLkr: 200},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	comp, err := svc.ComputeFromStored(ctx, tariffdomain.SchemeHigh, 90)
	require.NoError(t, err)
	assert.Equal(t, 1550.0, comp.TotalLkr)
}

func TestComputeFromStoredEmptyTable(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ComputeFromStored(context.Background(), tariffdomain.SchemeLow, 10)
	assert.ErrorIs(t, err, tariffdomain.ErrEmptyTariffTable)
}

func TestUploadRejectsUnknownScheme(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UploadBlocks(context.Background(), []tariffdomain.UploadRow{
		{Scheme: "mystery", Block: "0-30", KwhFrom: 0, EnergyLkrPerKwh: 10},
	})
	assert.ErrorIs(t, err, tariffdomain.ErrUnknownScheme)
}

func TestListByScheme(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UploadBlocks(ctx, []tariffdomain.UploadRow{
		{Scheme: tariffdomain.SchemeLow, Block: "0-30", KwhFrom: 0, KwhTo: floatPtr(30), EnergyLkrPerKwh: 8, FixedLkr: 120},
		{Scheme: tariffdomain.SchemeHigh, Block: "0-60", KwhFrom: 0, KwhTo: floatPtr(60), EnergyLkrPerKwh: 12, FixedLkr: 400},
	})
	require.NoError(t, err)

	low, err := svc.List(ctx, tariffdomain.SchemeLow)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "0-30", low[0].Block)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
