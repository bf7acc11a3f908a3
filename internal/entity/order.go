package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orders 订单主表实体（生成的订单全部为终态订单）
type Orders struct {
	Id          int64  `gorm:"column:Id;primaryKey;autoIncrement"`
	BranchId    int64  `gorm:"column:BranchId;not null;index:idx_branch"`
	RawOrderId  int64  `gorm:"column:RawOrderId"`
	RawBranchId int64  `gorm:"column:RawBranchId"`
	Guid        string `gorm:"column:Guid;type:varchar(64)"`

	// 客户与收货信息
	CustomerId int64  `gorm:"column:CustomerId;not null;index:idx_customer"`
	Customer   string `gorm:"column:Customer;type:varchar(128)"`
	DeptId     int64  `gorm:"column:DeptId"`
	DeptName   string `gorm:"column:DeptName;type:varchar(128)"`
	MemberId   int64  `gorm:"column:MemberId"`
	RealName   string `gorm:"column:RealName;type:varchar(64)"`
	Telphone   string `gorm:"column:Telphone;type:varchar(32)"`
	Address    string `gorm:"column:Address;type:varchar(255)"`

	// 业务归属
	SalesId     int64  `gorm:"column:SalesId"`
	UserId      int64  `gorm:"column:UserId"`
	ApplyId     int64  `gorm:"column:ApplyId"`
	LogisticsId int64  `gorm:"column:LogisticsId"`
	ServiceId   int64  `gorm:"column:ServiceId"`
	Memo        string `gorm:"column:Memo;type:varchar(255)"`

	// 单据分类与状态（生成数据固定为已完成链路）
	OrderType       string `gorm:"column:OrderType;type:varchar(32)"`
	PayType         string `gorm:"column:PayType;type:varchar(32)"`
	InvoiceType     string `gorm:"column:InvoiceType;type:varchar(32)"`
	PayStatus       string `gorm:"column:PayStatus;type:varchar(16)"`
	QuotationStatus string `gorm:"column:QuotationStatus;type:varchar(16)"`
	ServiceStatus   string `gorm:"column:ServiceStatus;type:varchar(16)"`
	PurchaseStatus  string `gorm:"column:PurchaseStatus;type:varchar(16)"`
	StoreStatus     string `gorm:"column:StoreStatus;type:varchar(16)"`
	DeliveryStatus  string `gorm:"column:DeliveryStatus;type:varchar(16)"`
	ConfirmStatus   string `gorm:"column:ConfirmStatus;type:varchar(16)"`
	AuditStatus     int    `gorm:"column:AuditStatus"`
	AuditReason     int    `gorm:"column:AuditReason"`

	// 金额字段（对账后由明细汇总重算）
	SumMoney            decimal.Decimal `gorm:"column:SumMoney;type:decimal(20,4)"`
	OrderAmount         decimal.Decimal `gorm:"column:OrderAmount;type:decimal(20,4)"`
	TaxMoney            decimal.Decimal `gorm:"column:TaxMoney;type:decimal(20,4)"`
	NoTaxMoney          decimal.Decimal `gorm:"column:NoTaxMoney;type:decimal(20,4)"`
	GrossProfit         decimal.Decimal `gorm:"column:GrossProfit;type:decimal(20,4)"`
	GrossProfitPercent  decimal.Decimal `gorm:"column:GrossProfitPercent;type:decimal(20,4)"`
	ChargeOff           decimal.Decimal `gorm:"column:ChargeOff;type:decimal(20,4)"`
	Balance             decimal.Decimal `gorm:"column:Balance;type:decimal(20,4)"`
	PayAmount           decimal.Decimal `gorm:"column:PayAmount;type:decimal(20,4)"`
	Freight             decimal.Decimal `gorm:"column:Freight;type:decimal(20,4)"`
	GroupReceivePercent decimal.Decimal `gorm:"column:GroupReceivePercent;type:decimal(20,4)"`
	Point               int             `gorm:"column:Point"`
	RowNum              int             `gorm:"column:RowNum"`
	IsInvoice           int             `gorm:"column:IsInvoice"`
	SaveNum             int             `gorm:"column:SaveNum"`
	PrintNum            int             `gorm:"column:PrintNum"`
	PackageNum          int             `gorm:"column:PackageNum"`

	// 时间字段（未发生的环节使用 1900-01-01 哨兵值）
	OrderTime          time.Time `gorm:"column:OrderTime"`
	PlanDate           time.Time `gorm:"column:PlanDate"`
	UpdateTime         time.Time `gorm:"column:UpdateTime"`
	DeliveryFinishTime time.Time `gorm:"column:DeliveryFinishTime"`
	PrintTime          time.Time `gorm:"column:PrintTime"`
	StoreFinishTime    time.Time `gorm:"column:StoreFinishTime"`
	ArchivedTime       time.Time `gorm:"column:ArchivedTime"`
	FinishDate         time.Time `gorm:"column:FinishDate"`
	ServiceFinishTime  time.Time `gorm:"column:ServiceFinishTime"`
	PurchaseFinishTime time.Time `gorm:"column:PurchaseFinishTime"`
	ConfirmFinishTime  time.Time `gorm:"column:ConfirmFinishTime"`

	// 标记位
	IsEmergency         bool `gorm:"column:IsEmergency"`
	IsShowAmountInPrint bool `gorm:"column:IsShowAmountInPrint"`
	IsEnable            bool `gorm:"column:IsEnable"`
	IsInner             bool `gorm:"column:IsInner"`
	IsDelete            bool `gorm:"column:IsDelete"`
	IsStorage           bool `gorm:"column:IsStorage"`
	IsCopied            bool `gorm:"column:IsCopied"`
	IsArchive           bool `gorm:"column:IsArchive"`
	IsChecked           bool `gorm:"column:IsChecked"`
	GroupChecked        bool `gorm:"column:GroupChecked"`
	IsConfirm           bool `gorm:"column:IsConfirm"`
	Checkout            bool `gorm:"column:Checkout"`
}

// TableName 指定表名
func (Orders) TableName() string {
	return "Orders"
}

// OrderDetail 订单明细实体
type OrderDetail struct {
	Id      int64 `gorm:"column:Id;primaryKey;autoIncrement"`
	OrderId int64 `gorm:"column:OrderId;not null;index:idx_order"`
	GoodsId int64 `gorm:"column:GoodsId;not null"`

	Num         int             `gorm:"column:Num"`
	Price       decimal.Decimal `gorm:"column:Price;type:decimal(20,4)"`
	AC          decimal.Decimal `gorm:"column:AC;type:decimal(20,4)"`
	AFC         decimal.Decimal `gorm:"column:AFC;type:decimal(20,4)"`
	Amount      decimal.Decimal `gorm:"column:Amount;type:decimal(20,4)"`
	Discount    decimal.Decimal `gorm:"column:Discount;type:decimal(20,4)"`
	TaxRate     decimal.Decimal `gorm:"column:TaxRate;type:decimal(10,4)"`
	TaxAmount   decimal.Decimal `gorm:"column:TaxAmount;type:decimal(20,4)"`
	NoTaxAmount decimal.Decimal `gorm:"column:NoTaxAmount;type:decimal(20,4)"`
	NoTaxPrice  decimal.Decimal `gorm:"column:NoTaxPrice;type:decimal(20,4)"`

	GrossProfit        decimal.Decimal `gorm:"column:GrossProfit;type:decimal(20,4)"`
	GrossProfitPercent string          `gorm:"column:GrossProfitPercent;type:varchar(16)"`

	// 展示字段（与下单时的数量/单价/金额保持一致的副本）
	DisplayNum        int             `gorm:"column:DisplayNum"`
	DisplayUnit       string          `gorm:"column:DisplayUnit;type:varchar(16)"`
	DisplayPrice      decimal.Decimal `gorm:"column:DisplayPrice;type:decimal(20,4)"`
	DisplayAmount     decimal.Decimal `gorm:"column:DisplayAmount;type:decimal(20,4)"`
	DisplayNoTaxPrice decimal.Decimal `gorm:"column:DisplayNoTaxPrice;type:decimal(20,4)"`

	Point              int   `gorm:"column:Point"`
	PickNum            int   `gorm:"column:PickNum"`
	RefundNum          int   `gorm:"column:RefundNum"`
	OldOrderId         int64 `gorm:"column:OldOrderId"`
	IsGift             bool  `gorm:"column:IsGift"`
	IsTotalPriceModel  bool  `gorm:"column:IsTotalPriceModel"`
	IsCustomGoods      bool  `gorm:"column:IsCustomGoods"`
	AntiCounterfeiting bool  `gorm:"column:AntiCounterfeiting"`
	IsComment          bool  `gorm:"column:IsComment"`
}

// TableName 指定表名
func (OrderDetail) TableName() string {
	return "OrderDetail"
}
