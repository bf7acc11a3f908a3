package business

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"erp/datafactory/internal/entity"
	"erp/datafactory/pkg/logger"
)

// ReportFactory 销售日报合成器：直接生成预聚合的日报行，无明细、无对账。
type ReportFactory struct {
	store    ReportStore
	sampler  *Sampler
	branchID int64
	logger   logger.Logger
}

// NewReportFactory 创建日报合成器
func NewReportFactory(store ReportStore, sampler *Sampler, branchID int64, log logger.Logger) *ReportFactory {
	return &ReportFactory{
		store:    store,
		sampler:  sampler,
		branchID: branchID,
		logger:   log,
	}
}

// ProduceOne 生成一条日报行。
// 核销额 = 订单额 - [10,30) 随机数，毛利 = 订单额 - [15,20) 随机数。
func (f *ReportFactory) ProduceOne(ctx context.Context, spec *PeriodSpec) error {
	date := f.sampler.Date(spec.StartTime, spec.EndTime)
	orderAmount := f.sampler.Int(spec.MinSingleOrderAmount, spec.MaxSingleOrderAmount)

	row := &entity.SaleReportFakeData{
		BranchId:    f.branchID,
		Date:        date,
		Count:       f.sampler.Int(spec.MinSingleOrderCount, spec.MaxSingleOrderCount),
		OrderAmount: decimal.NewFromInt(int64(orderAmount)),
		ChargeOff:   decimal.NewFromInt(int64(orderAmount - f.sampler.Int(10, 30))),
		GrossProfit: decimal.NewFromInt(int64(orderAmount - f.sampler.Int(15, 20))),
	}

	if err := f.store.CreateReportRow(ctx, row); err != nil {
		return fmt.Errorf("新增日报行失败: %w", err)
	}

	return nil
}
