package mysql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"erp/datafactory/internal/entity"
)

const detailInsertBatchSize = 200

// 第一段对账：按已提交明细重算订单汇总字段。
// MySQL 不允许 UPDATE 目标表出现在子查询中，故通过派生表连接；
// 毛利中的集团收款修正项 Σ((Amount-2*TaxAmount)*GroupReceivePercent/100)
// 因比例是订单级常量，可整体提出为 Σ(Amount-2*TaxAmount) 再乘比例。
const reconcileSumSQL = `
UPDATE Orders o
LEFT JOIN (
    SELECT OrderId,
           SUM(Amount)                          AS SumAmount,
           SUM(TaxAmount)                       AS SumTax,
           SUM(NoTaxAmount)                     AS SumNoTax,
           SUM(Amount - TaxAmount - AC * Num)   AS BaseProfit,
           SUM(Amount - TaxAmount - TaxAmount)  AS GroupBase,
           COUNT(*)                             AS RowCnt
    FROM OrderDetail
    WHERE OrderId = ?
    GROUP BY OrderId
) d ON d.OrderId = o.Id
SET o.SumMoney    = IFNULL(d.SumAmount, 0),
    o.ChargeOff   = IFNULL(d.SumAmount, 0),
    o.TaxMoney    = IFNULL(d.SumTax, 0),
    o.NoTaxMoney  = IFNULL(d.SumNoTax, 0),
    o.OrderAmount = IFNULL(d.SumAmount, 0) + o.Freight,
    o.GrossProfit = ROUND(IFNULL(d.BaseProfit, 0) - IFNULL(d.GroupBase, 0) * o.GroupReceivePercent / 100, 4),
    o.RowNum      = IFNULL(d.RowCnt, 0),
    o.UpdateTime  = NOW()
WHERE o.Id = ?`

// 第二段对账：毛利率的分母必须取第一段刚写入的 NoTaxMoney，
// 两段顺序是硬约束，不能合并成一条语句。
const reconcilePercentSQL = `
UPDATE Orders
SET GrossProfitPercent = GrossProfit / (CASE WHEN NoTaxMoney = 0 THEN 1 ELSE NoTaxMoney END)
WHERE Id = ?`

// CreateOrder 插入订单主表，返回生成的订单 Id
func (s *Store) CreateOrder(ctx context.Context, order *entity.Orders) (int64, error) {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return 0, fmt.Errorf("insert order failed: %w", err)
	}
	return order.Id, nil
}

// CreateOrderDetails 批量插入订单明细
func (s *Store) CreateOrderDetails(ctx context.Context, details []*entity.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(details, detailInsertBatchSize).Error; err != nil {
		return fmt.Errorf("insert order details failed: %w", err)
	}
	return nil
}

// ReconcileOrder 两段式对账（一个事务内顺序执行两条参数化语句）
func (s *Store) ReconcileOrder(ctx context.Context, orderID int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(reconcileSumSQL, orderID, orderID).Error; err != nil {
			return fmt.Errorf("reconcile sums failed: %w", err)
		}
		if err := tx.Exec(reconcilePercentSQL, orderID).Error; err != nil {
			return fmt.Errorf("reconcile percent failed: %w", err)
		}
		return nil
	})
}
