package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	billdomain "github.com/wattwiselabs/wattwise/internal/bill/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (billdomain.Service, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&billdomain.Bill{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(ServiceParam{DB: db, Log: zap.NewNop(), GenID: node}), node
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestAddAndListByUser(t *testing.T) {
	svc, node := newTestService(t)
	ctx := context.Background()
	userID := node.Generate().String()

	bill, err := svc.Add(ctx, billdomain.CreateRequest{
		User: userID, Month: intPtr(8), Year: intPtr(2025),
		TotalConsumption: floatPtr(90), TotalAmount: floatPtr(1550),
		TariffRate: 20,
	})
	require.NoError(t, err)
	assert.False(t, bill.Paid)

	bills, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, 1550.0, bills[0].TotalAmount)

	other, err := svc.ListByUser(ctx, node.Generate().String())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAddRequiresAllFields(t *testing.T) {
	svc, node := newTestService(t)
	ctx := context.Background()
	userID := node.Generate().String()

	_, err := svc.Add(ctx, billdomain.CreateRequest{
		User: userID, Month: intPtr(8), Year: intPtr(2025),
		TotalAmount: floatPtr(1550),
	})
	assert.ErrorIs(t, err, billdomain.ErrMissingFields)

	// Zero is a legitimate value, only absence fails.
	_, err = svc.Add(ctx, billdomain.CreateRequest{
		User: userID, Month: intPtr(1), Year: intPtr(2025),
		TotalConsumption: floatPtr(0), TotalAmount: floatPtr(0),
	})
	assert.NoError(t, err)
}

func TestAddRejectsBadUserID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), billdomain.CreateRequest{
		User: "not-an-id", Month: intPtr(8), Year: intPtr(2025),
		TotalConsumption: floatPtr(10), TotalAmount: floatPtr(100),
	})
	assert.ErrorIs(t, err, billdomain.ErrInvalidUserID)
}
