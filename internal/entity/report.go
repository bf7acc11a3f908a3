package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleReportFakeData 销售日报压测数据行（直接生成聚合值，无明细）
type SaleReportFakeData struct {
	Id          int64           `gorm:"column:Id;primaryKey;autoIncrement"`
	BranchId    int64           `gorm:"column:BranchId;not null"`
	Date        time.Time       `gorm:"column:Date;not null;index:idx_date"`
	Count       int             `gorm:"column:Count"`
	OrderAmount decimal.Decimal `gorm:"column:OrderAmount;type:decimal(20,4)"`
	ChargeOff   decimal.Decimal `gorm:"column:ChargeOff;type:decimal(20,4)"`
	GrossProfit decimal.Decimal `gorm:"column:GrossProfit;type:decimal(20,4)"`
}

// TableName 指定表名
func (SaleReportFakeData) TableName() string {
	return "SaleReportFakeData"
}
