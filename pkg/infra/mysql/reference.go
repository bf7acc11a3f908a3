package mysql

import (
	"context"
	"fmt"

	"erp/datafactory/internal/business"
	"erp/datafactory/internal/entity"
)

// 商品池取销量前 3000 的在售商品
const goodsPoolLimit = 3000

// LoadReference 加载参考主数据快照（批次启动时调用一次）。
// 商品按网点过滤（含公共网点 1）并按销量倒序取前 goodsPoolLimit 条；
// 客户与部门由会员视图在内存中分组派生。
func (s *Store) LoadReference(ctx context.Context, branchID int64) (*business.Reference, error) {
	var goods []entity.Goods
	err := s.db.WithContext(ctx).
		Where("IsEnable = ? AND (BranchId = ? OR BranchId = ?)", true, branchID, 1).
		Order("SaleNumber DESC").
		Limit(goodsPoolLimit).
		Find(&goods).Error
	if err != nil {
		return nil, fmt.Errorf("load goods failed: %w", err)
	}

	var userIds []int64
	err = s.db.WithContext(ctx).
		Model(&entity.SysUserView{}).
		Where("BranchId = ?", branchID).
		Where("DeptName LIKE ? OR DeptName LIKE ?", "%大客户销售事业部%", "%总经办%").
		Pluck("Id", &userIds).Error
	if err != nil {
		return nil, fmt.Errorf("load ops users failed: %w", err)
	}

	var salesIds []int64
	err = s.db.WithContext(ctx).
		Model(&entity.SysUserView{}).
		Where("BranchId = ?", branchID).
		Where("IsSales = ?", true).
		Pluck("Id", &salesIds).Error
	if err != nil {
		return nil, fmt.Errorf("load sales users failed: %w", err)
	}

	var members []entity.MemberView
	err = s.db.WithContext(ctx).
		Where("CustomerId > 0 AND DeptId > 0 AND BranchId = ?", branchID).
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("load members failed: %w", err)
	}

	return business.NewReference(goods, userIds, salesIds, members), nil
}
