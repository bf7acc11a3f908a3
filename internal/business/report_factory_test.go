package business

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/datafactory/internal/entity"
	"erp/datafactory/pkg/errs"
)

// memReportStore 内存版日报存储
type memReportStore struct {
	rows    []*entity.SaleReportFakeData
	failErr error
}

func (s *memReportStore) CreateReportRow(ctx context.Context, row *entity.SaleReportFakeData) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.rows = append(s.rows, row)
	return nil
}

func reportPeriodSpec() *PeriodSpec {
	return &PeriodSpec{
		StartTime:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndTime:              time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local),
		DataCount:            10,
		MinSingleOrderAmount: 100,
		MaxSingleOrderAmount: 6600,
		MinSingleOrderCount:  1,
		MaxSingleOrderCount:  50,
	}
}

func TestReportFactoryProduceOne(t *testing.T) {
	store := &memReportStore{}
	f := NewReportFactory(store, NewSampler(11), 2, nopLogger{})
	spec := reportPeriodSpec()

	for i := 0; i < 1000; i++ {
		require.NoError(t, f.ProduceOne(context.Background(), spec))
	}
	require.Len(t, store.rows, 1000)

	for _, row := range store.rows {
		assert.Equal(t, int64(2), row.BranchId)
		assert.False(t, row.Date.Before(spec.StartTime))
		assert.False(t, row.Date.After(spec.EndTime))
		assert.Equal(t, 0, row.Date.Hour())

		assert.GreaterOrEqual(t, row.Count, 1)
		assert.Less(t, row.Count, 50)

		amount := row.OrderAmount
		assert.True(t, amount.GreaterThanOrEqual(decimal.NewFromInt(100)))
		assert.True(t, amount.LessThan(decimal.NewFromInt(6600)))

		// 核销额 = 订单额 - [10,30)，毛利 = 订单额 - [15,20)
		chargeDiff := amount.Sub(row.ChargeOff)
		assert.True(t, chargeDiff.GreaterThanOrEqual(decimal.NewFromInt(10)))
		assert.True(t, chargeDiff.LessThan(decimal.NewFromInt(30)))

		profitDiff := amount.Sub(row.GrossProfit)
		assert.True(t, profitDiff.GreaterThanOrEqual(decimal.NewFromInt(15)))
		assert.True(t, profitDiff.LessThan(decimal.NewFromInt(20)))
	}
}

func TestReportFactoryStoreError(t *testing.T) {
	store := &memReportStore{failErr: errs.Fatal("插入失败")}
	f := NewReportFactory(store, NewSampler(11), 2, nopLogger{})

	err := f.ProduceOne(context.Background(), reportPeriodSpec())
	require.Error(t, err)
	assert.False(t, errs.IsRecoverable(err))
}
