package business

import (
	"context"
	"time"

	"erp/datafactory/internal/entity"
)

// PeriodSpec 单个周期的生成参数（由配置文档映射而来，批次内只读）
type PeriodSpec struct {
	StartTime            time.Time
	EndTime              time.Time
	DataCount            int
	MaxDetailCount       int
	MaxGoodsNum          int
	MinSingleOrderAmount int
	MaxSingleOrderAmount int
	MinSingleOrderCount  int
	MaxSingleOrderCount  int
}

// Producer 单条记录生产接口（订单工厂与日报工厂的公共抽象）
type Producer interface {
	// ProduceOne 生成并落库一条记录；可恢复错误由调用方记录后跳过
	ProduceOne(ctx context.Context, spec *PeriodSpec) error
}

// OrderStore 订单持久化接口
type OrderStore interface {
	// CreateOrder 插入订单主表，返回生成的订单 Id
	CreateOrder(ctx context.Context, order *entity.Orders) (int64, error)
	// CreateOrderDetails 批量插入订单明细
	CreateOrderDetails(ctx context.Context, details []*entity.OrderDetail) error
	// ReconcileOrder 按已提交明细重算订单汇总字段（两段式，见 mysql 实现）
	ReconcileOrder(ctx context.Context, orderID int64) error
}

// ReportStore 销售日报持久化接口
type ReportStore interface {
	CreateReportRow(ctx context.Context, row *entity.SaleReportFakeData) error
}
