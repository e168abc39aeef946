package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	forecastdomain "github.com/wattwiselabs/wattwise/internal/forecast/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (forecastdomain.Service, *snowflake.Node, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&forecastdomain.Forecast{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node}), node, db
}

func samplePredictions() *forecastdomain.Predictions {
	return &forecastdomain.Predictions{
		ThisMonth: forecastdomain.MonthPrediction{PredictedKwh: 120.5, PredictedBillLkr: 3450.75},
		NextMonth: forecastdomain.MonthPrediction{PredictedKwh: 131.2, PredictedBillLkr: 3720.0},
	}
}

func TestAddPreservesNestedShape(t *testing.T) {
	svc, node, _ := newTestService(t)

	resp, err := svc.Add(context.Background(), forecastdomain.CreateRequest{
		User:        node.Generate().String(),
		Month:       8,
		Year:        2025,
		Predictions: samplePredictions(),
	})
	require.NoError(t, err)
	assert.Equal(t, 120.5, resp.Predictions.ThisMonth.PredictedKwh)
	assert.Equal(t, 3720.0, resp.Predictions.NextMonth.PredictedBillLkr)
	assert.Equal(t, "svm-v1", resp.ModelVersion)
}

func TestListByUserNewestFirst(t *testing.T) {
	svc, node, db := newTestService(t)
	ctx := context.Background()
	userID := node.Generate().String()

	first, err := svc.Add(ctx, forecastdomain.CreateRequest{
		User: userID, Month: 8, Year: 2025, Predictions: samplePredictions(),
	})
	require.NoError(t, err)

	second, err := svc.Add(ctx, forecastdomain.CreateRequest{
		User: userID, Month: 8, Year: 2025, Predictions: samplePredictions(),
	})
	require.NoError(t, err)

	// Separate the two creation timestamps deterministically.
	require.NoError(t, db.Model(&forecastdomain.Forecast{}).
		Where("id = ?", second.ID).
		Update("created_at", time.Now().Add(time.Minute)).Error)

	rows, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
}

func TestAddMissingFields(t *testing.T) {
	svc, node, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, forecastdomain.CreateRequest{
		User: node.Generate().String(), Month: 8, Year: 2025,
	})
	assert.ErrorIs(t, err, forecastdomain.ErrMissingFields)

	_, err = svc.Add(ctx, forecastdomain.CreateRequest{
		Month: 8, Year: 2025, Predictions: samplePredictions(),
	})
	assert.ErrorIs(t, err, forecastdomain.ErrMissingFields)
}
