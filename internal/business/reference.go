package business

import (
	"fmt"

	"erp/datafactory/internal/entity"
	"erp/datafactory/pkg/errs"
)

type memberKey struct {
	customerID int64
	deptID     int64
}

// Reference 参考主数据快照。
// 批次启动时加载一次，此后只读，可被全部 Worker 安全共享。
type Reference struct {
	Goods       []entity.Goods
	GoodsIds    []int64
	UserIds     []int64
	SalesIds    []int64
	Members     []entity.MemberView
	Customers   []entity.Customer
	CustomerIds []int64
	Depts       []entity.Dept

	goodsByID       map[int64]*entity.Goods
	customerIdx     map[int64]int
	deptIdx         map[int64]int
	deptIdsByCust   map[int64][]int64
	memberByCustDep map[memberKey]*entity.MemberView
}

// NewReference 构建参考数据快照。
// 客户与部门由会员视图分组派生（同一键保留首次出现的行）。
func NewReference(goods []entity.Goods, userIds, salesIds []int64, members []entity.MemberView) *Reference {
	r := &Reference{
		Goods:           goods,
		UserIds:         userIds,
		SalesIds:        salesIds,
		Members:         members,
		goodsByID:       make(map[int64]*entity.Goods, len(goods)),
		customerIdx:     make(map[int64]int),
		deptIdx:         make(map[int64]int),
		deptIdsByCust:   make(map[int64][]int64),
		memberByCustDep: make(map[memberKey]*entity.MemberView),
	}

	r.GoodsIds = make([]int64, 0, len(goods))
	for i := range goods {
		g := &r.Goods[i]
		r.GoodsIds = append(r.GoodsIds, g.Id)
		if _, ok := r.goodsByID[g.Id]; !ok {
			r.goodsByID[g.Id] = g
		}
	}

	for i := range members {
		m := &r.Members[i]

		if _, ok := r.customerIdx[m.CustomerId]; !ok {
			r.Customers = append(r.Customers, entity.Customer{Id: m.CustomerId, Name: m.CustomerName})
			r.customerIdx[m.CustomerId] = len(r.Customers) - 1
			r.CustomerIds = append(r.CustomerIds, m.CustomerId)
		}

		if _, ok := r.deptIdx[m.DeptId]; !ok {
			r.Depts = append(r.Depts, entity.Dept{Id: m.DeptId, Name: m.DeptName, CustomerId: m.CustomerId})
			r.deptIdx[m.DeptId] = len(r.Depts) - 1
			r.deptIdsByCust[m.CustomerId] = append(r.deptIdsByCust[m.CustomerId], m.DeptId)
		}

		key := memberKey{customerID: m.CustomerId, deptID: m.DeptId}
		if _, ok := r.memberByCustDep[key]; !ok {
			r.memberByCustDep[key] = m
		}
	}

	return r
}

// Check 校验各数据池非空（任一为空视为致命启动错误）
func (r *Reference) Check() error {
	if len(r.GoodsIds) == 0 {
		return errs.Fatal("商品池为空")
	}
	if len(r.UserIds) == 0 {
		return errs.Fatal("运营用户池为空")
	}
	if len(r.SalesIds) == 0 {
		return errs.Fatal("销售用户池为空")
	}
	if len(r.CustomerIds) == 0 {
		return errs.Fatal("客户池为空")
	}
	return nil
}

// GoodsByID 按 Id 查找商品
func (r *Reference) GoodsByID(id int64) *entity.Goods {
	return r.goodsByID[id]
}

// CustomerByID 按 Id 查找客户
func (r *Reference) CustomerByID(id int64) *entity.Customer {
	idx, ok := r.customerIdx[id]
	if !ok {
		return nil
	}
	return &r.Customers[idx]
}

// DeptByID 按 Id 查找部门
func (r *Reference) DeptByID(id int64) *entity.Dept {
	idx, ok := r.deptIdx[id]
	if !ok {
		return nil
	}
	return &r.Depts[idx]
}

// DeptIdsOf 返回某客户下的部门 Id 列表
func (r *Reference) DeptIdsOf(customerID int64) []int64 {
	return r.deptIdsByCust[customerID]
}

// MemberOf 按 (客户, 部门) 查找会员
func (r *Reference) MemberOf(customerID, deptID int64) *entity.MemberView {
	return r.memberByCustDep[memberKey{customerID: customerID, deptID: deptID}]
}

// String 摘要（用于启动日志）
func (r *Reference) String() string {
	return fmt.Sprintf("goods=%d users=%d sales=%d customers=%d depts=%d members=%d",
		len(r.GoodsIds), len(r.UserIds), len(r.SalesIds), len(r.CustomerIds), len(r.Depts), len(r.Members))
}
