package entity

import "github.com/shopspring/decimal"

// Goods 商品主数据（只读参考数据）
type Goods struct {
	Id         int64           `gorm:"column:Id;primaryKey"`
	BranchId   int64           `gorm:"column:BranchId"`
	Price      decimal.Decimal `gorm:"column:Price;type:decimal(20,4)"`
	InPrice    decimal.Decimal `gorm:"column:InPrice;type:decimal(20,4)"`
	Unit       string          `gorm:"column:Unit;type:varchar(16)"`
	SaleNumber int             `gorm:"column:SaleNumber"`
	IsEnable   bool            `gorm:"column:IsEnable"`
}

// TableName 指定表名
func (Goods) TableName() string {
	return "Goods"
}

// SysUserView 系统用户视图（审批/运营用户与销售用户的来源）
type SysUserView struct {
	Id       int64  `gorm:"column:Id"`
	BranchId int64  `gorm:"column:BranchId"`
	DeptName string `gorm:"column:DeptName"`
	IsSales  bool   `gorm:"column:IsSales"`
}

// TableName 指定表名
func (SysUserView) TableName() string {
	return "View_Sys_Users"
}

// MemberView 会员视图（展开的客户-部门-会员关系）
type MemberView struct {
	Id           int64  `gorm:"column:Id"`
	BranchId     int64  `gorm:"column:BranchId"`
	CustomerId   int64  `gorm:"column:CustomerId"`
	CustomerName string `gorm:"column:CustomerName"`
	DeptId       int64  `gorm:"column:DeptId"`
	DeptName     string `gorm:"column:DeptName"`
	RealName     string `gorm:"column:RealName"`
	Telphone     string `gorm:"column:Telphone"`
	Mobile       string `gorm:"column:Mobile"`
	Province     string `gorm:"column:Province"`
	City         string `gorm:"column:City"`
	Area         string `gorm:"column:Area"`
	Address      string `gorm:"column:Address"`
}

// TableName 指定表名
func (MemberView) TableName() string {
	return "View_Member"
}

// Customer 客户（由会员视图按 CustomerId 分组派生）
type Customer struct {
	Id   int64
	Name string
}

// Dept 客户部门（由会员视图按 CustomerId+DeptId 分组派生）
type Dept struct {
	Id         int64
	Name       string
	CustomerId int64
}
