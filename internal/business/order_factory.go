package business

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"erp/datafactory/internal/business/finance"
	"erp/datafactory/internal/entity"
	"erp/datafactory/pkg/errs"
	"erp/datafactory/pkg/logger"
)

// 订单金额封顶策略：累计金额到达 maxOrderAmount 后停止加行，
// 允许最后一行带来的溢出不超过 orderAmountOverflow。
var (
	maxOrderAmount      = decimal.NewFromInt(6600)
	orderAmountOverflow = decimal.NewFromInt(1000)
	defaultTaxRate      = decimal.NewFromFloat(0.130)
	defaultDiscount     = decimal.NewFromInt(1)
)

// 未发生环节的时间哨兵值
var sentinelTime = time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local)

// OrderFactory 订单合成器：按参考数据采样生成订单主表 + 明细，
// 落库后触发汇总对账。
type OrderFactory struct {
	store    OrderStore
	ref      *Reference
	sampler  *Sampler
	branchID int64
	logger   logger.Logger
}

// NewOrderFactory 创建订单合成器（每个 Worker 一个实例，采样器不共享）
func NewOrderFactory(store OrderStore, ref *Reference, sampler *Sampler, branchID int64, log logger.Logger) *OrderFactory {
	return &OrderFactory{
		store:    store,
		ref:      ref,
		sampler:  sampler,
		branchID: branchID,
		logger:   log,
	}
}

// ProduceOne 生成一条订单记录。
// 流程：采样客户 → 客户下部门 → 会员 → 日期/销售/运营用户 → 插入主表 →
// 按封顶策略生成明细 → 对账。任一步的可恢复错误只丢弃本条记录。
func (f *OrderFactory) ProduceOne(ctx context.Context, spec *PeriodSpec) error {
	customerID, err := f.sampler.PickOne(f.ref.CustomerIds)
	if err != nil {
		return err
	}
	customer := f.ref.CustomerByID(customerID)
	if customer == nil {
		return errs.Recoverable(fmt.Sprintf("客户不存在: %d", customerID))
	}

	deptID, err := f.sampler.PickOne(f.ref.DeptIdsOf(customerID))
	if err != nil {
		return errs.Recoverable(fmt.Sprintf("客户无可用部门: %d", customerID))
	}
	dept := f.ref.DeptByID(deptID)
	if dept == nil {
		return errs.Recoverable(fmt.Sprintf("部门不存在: %d", deptID))
	}

	member := f.ref.MemberOf(customerID, deptID)
	if member == nil {
		return errs.Recoverable(fmt.Sprintf("未找到会员: customer=%d dept=%d", customerID, deptID))
	}

	orderTime := f.sampler.Date(spec.StartTime, spec.EndTime)
	salesID, err := f.sampler.PickOne(f.ref.SalesIds)
	if err != nil {
		return err
	}
	userID, err := f.sampler.PickOne(f.ref.UserIds)
	if err != nil {
		return err
	}

	order := f.buildOrder(customer, dept, member, orderTime, salesID, userID)
	orderID, err := f.store.CreateOrder(ctx, order)
	if err != nil {
		return fmt.Errorf("新增订单失败: %w", err)
	}
	if orderID <= 0 {
		// 插入未返回有效主键，放弃本条记录，不再生成明细和对账
		return errs.Recoverable(fmt.Sprintf("订单主键无效: %d", orderID))
	}
	f.logger.Debugf(ctx, "[OrderFactory] 新增订单 %d-%d, orderId=%d", f.branchID, customer.Id, orderID)

	details := f.buildOrderDetails(orderID, spec)
	if err := f.store.CreateOrderDetails(ctx, details); err != nil {
		return fmt.Errorf("新增订单明细失败: orderId=%d: %w", orderID, err)
	}

	if err := f.store.ReconcileOrder(ctx, orderID); err != nil {
		return fmt.Errorf("订单汇总对账失败: orderId=%d: %w", orderID, err)
	}

	return nil
}

// buildOrder 构造订单主表记录。
// 状态字段固定为已完结链路的枚举值，金额字段清零等待对账回填。
func (f *OrderFactory) buildOrder(customer *entity.Customer, dept *entity.Dept, member *entity.MemberView,
	orderTime time.Time, salesID, userID int64) *entity.Orders {
	telphone := member.Telphone
	if telphone == "" {
		telphone = member.Mobile
	}

	return &entity.Orders{
		BranchId:    f.branchID,
		RawOrderId:  0,
		RawBranchId: f.branchID,
		Guid:        uuid.NewString(),

		CustomerId: customer.Id,
		Customer:   customer.Name,
		DeptId:     dept.Id,
		DeptName:   dept.Name,
		MemberId:   member.Id,
		RealName:   member.RealName,
		Telphone:   telphone,
		Address:    member.Province + member.City + member.Area + member.Address,

		SalesId:   salesID,
		UserId:    userID,
		ServiceId: 1001,
		Memo:      "20210721add",

		OrderType:       "销售开单",
		PayType:         "在线支付",
		InvoiceType:     "普通发票",
		PayStatus:       "已支付",
		QuotationStatus: "完成",
		ServiceStatus:   "未处理",
		PurchaseStatus:  "未处理",
		StoreStatus:     "已完成",
		DeliveryStatus:  "已完成",
		ConfirmStatus:   "已确认",

		SumMoney:            decimal.Zero,
		OrderAmount:         decimal.Zero,
		TaxMoney:            decimal.Zero,
		NoTaxMoney:          decimal.Zero,
		GrossProfit:         decimal.Zero,
		GrossProfitPercent:  decimal.Zero,
		ChargeOff:           decimal.Zero,
		Balance:             decimal.Zero,
		PayAmount:           decimal.Zero,
		Freight:             decimal.Zero,
		GroupReceivePercent: decimal.Zero,

		OrderTime:          orderTime,
		PlanDate:           orderTime.AddDate(0, 0, 1), // 配送日期
		UpdateTime:         orderTime,
		DeliveryFinishTime: sentinelTime,
		PrintTime:          sentinelTime,
		StoreFinishTime:    sentinelTime,
		ArchivedTime:       sentinelTime,
		FinishDate:         sentinelTime,
		ServiceFinishTime:  sentinelTime,
		PurchaseFinishTime: sentinelTime,
		ConfirmFinishTime:  sentinelTime,

		IsEnable:  true,
		IsConfirm: true,
	}
}

// buildOrderDetails 按封顶策略生成订单明细。
// 候选商品为有放回抽取的多重集；首行数量取 [1, maxGoodsNum)，
// 后续行数量按剩余额度自适应收窄，累计金额最多溢出 orderAmountOverflow。
func (f *OrderFactory) buildOrderDetails(orderID int64, spec *PeriodSpec) []*entity.OrderDetail {
	picked := f.sampler.PickMulti(f.ref.GoodsIds, spec.MaxDetailCount)
	details := make([]*entity.OrderDetail, 0, len(picked))
	amountNum := decimal.Zero

	for i, goodsID := range picked {
		goods := f.ref.GoodsByID(goodsID)
		if goods == nil {
			continue
		}

		// 已触顶则停止加行
		if amountNum.GreaterThanOrEqual(maxOrderAmount) {
			break
		}

		var num int
		if i == 0 || goods.Price.IsZero() {
			num = f.sampler.Int(1, spec.MaxGoodsNum)
		} else {
			// 按剩余额度收窄数量上限，后续行趋向小数量
			room := int(maxOrderAmount.Sub(amountNum).Div(goods.Price).IntPart())
			if room < 1 {
				room = 1
			}
			num = f.sampler.Int(1, room)
		}

		amount := finance.LineAmount(goods.Price, num)
		if i > 0 && amount.Add(amountNum).GreaterThan(maxOrderAmount.Add(orderAmountOverflow)) {
			break
		}

		noTaxAmount := finance.NoTaxAmount(amount, defaultTaxRate)
		taxAmount := finance.TaxAmount(amount, noTaxAmount)
		noTaxPrice := finance.NoTaxAmount(goods.Price, defaultTaxRate)

		unit := goods.Unit
		if unit == "" {
			unit = "个"
		}

		details = append(details, &entity.OrderDetail{
			OrderId:            orderID,
			GoodsId:            goods.Id,
			Num:                num,
			Price:              goods.Price,
			AC:                 goods.InPrice,
			AFC:                goods.InPrice,
			Amount:             amount,
			Discount:           defaultDiscount,
			TaxRate:            defaultTaxRate,
			TaxAmount:          taxAmount,
			NoTaxAmount:        noTaxAmount,
			NoTaxPrice:         noTaxPrice,
			GrossProfit:        finance.GrossProfit(amount, taxAmount, goods.InPrice, num),
			GrossProfitPercent: finance.GrossProfitPercent(amount, taxAmount, goods.InPrice, num),
			DisplayNum:         num,
			DisplayUnit:        unit,
			DisplayPrice:       goods.Price,
			DisplayAmount:      amount,
			DisplayNoTaxPrice:  noTaxPrice,
		})

		amountNum = amountNum.Add(amount)
	}

	return details
}
