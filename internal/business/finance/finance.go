// Package finance 金额计算（纯函数，无 I/O）。
// 所有舍入均为四舍五入远离零（与 decimal.Round 的语义一致），
// 金额保留 4 位，毛利率中间值先 6 位再 4 位，最终百分数保留 2 位，
// 该舍入级联不可简化，否则与历史数据对不上。
package finance

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// LineAmount 计算明细金额：round4(单价 × 数量)
func LineAmount(price decimal.Decimal, num int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(num))).Round(4)
}

// NoTaxAmount 计算不含税额：round4(金额 / (1 + 税率))
func NoTaxAmount(amount, taxRate decimal.Decimal) decimal.Decimal {
	return amount.Div(one.Add(taxRate)).Round(4)
}

// TaxAmount 计算税额：round4(金额 - 不含税额)
func TaxAmount(amount, noTaxAmount decimal.Decimal) decimal.Decimal {
	return amount.Sub(noTaxAmount).Round(4)
}

// GrossProfit 计算单品毛利：round4(金额 - 税额 - 进价 × 数量)
func GrossProfit(amount, taxAmount, ac decimal.Decimal, num int) decimal.Decimal {
	return amount.Sub(taxAmount).Sub(ac.Mul(decimal.NewFromInt(int64(num)))).Round(4)
}

// GrossProfitPercent 计算单品毛利率展示值。
// 金额为 0 时返回字面量 "0"；否则按 round6 → round4 → ×100 → round2 级联
// 计算百分数并追加百分号。
func GrossProfitPercent(amount, taxAmount, ac decimal.Decimal, num int) string {
	if amount.IsZero() {
		return "0"
	}

	numerator := amount.Sub(taxAmount).Sub(ac.Mul(decimal.NewFromInt(int64(num))))
	denominator := amount.Sub(taxAmount)
	p := numerator.Div(denominator).Round(6)
	p = p.Round(4)
	return p.Mul(hundred).Round(2).StringFixed(2) + "%"
}

// Summary 订单级汇总结果（与 mysql 对账 SQL 的算术保持一致）
type Summary struct {
	SumMoney    decimal.Decimal
	TaxMoney    decimal.Decimal
	NoTaxMoney  decimal.Decimal
	GrossProfit decimal.Decimal
	RowNum      int
}

// SummaryLine 参与汇总的明细字段子集
type SummaryLine struct {
	Amount      decimal.Decimal
	TaxAmount   decimal.Decimal
	NoTaxAmount decimal.Decimal
	AC          decimal.Decimal
	Num         int
}

// Summarize 按明细汇总订单金额字段。
// 毛利 = round4(Σ(金额 - 税额 - 进价×数量 - (金额 - 2×税额) × 集团收款比例/100))，
// 生成数据的 groupReceivePercent 固定为 0，但该修正项必须保留。
func Summarize(lines []SummaryLine, groupReceivePercent decimal.Decimal) Summary {
	sum := Summary{
		SumMoney:    decimal.Zero,
		TaxMoney:    decimal.Zero,
		NoTaxMoney:  decimal.Zero,
		GrossProfit: decimal.Zero,
	}

	profit := decimal.Zero
	for _, l := range lines {
		sum.SumMoney = sum.SumMoney.Add(l.Amount)
		sum.TaxMoney = sum.TaxMoney.Add(l.TaxAmount)
		sum.NoTaxMoney = sum.NoTaxMoney.Add(l.NoTaxAmount)

		lineProfit := l.Amount.Sub(l.TaxAmount).Sub(l.AC.Mul(decimal.NewFromInt(int64(l.Num))))
		adjust := l.Amount.Sub(l.TaxAmount.Mul(two)).Mul(groupReceivePercent).Div(hundred)
		profit = profit.Add(lineProfit).Sub(adjust)

		sum.RowNum++
	}
	sum.GrossProfit = profit.Round(4)

	return sum
}

// GrossProfitPercentOf 第二段对账：毛利率 = 毛利 / 不含税总额。
// 分母必须取第一段刚写入的 NoTaxMoney，为 0 时退化为除以 1。
func GrossProfitPercentOf(sum Summary) decimal.Decimal {
	denominator := sum.NoTaxMoney
	if denominator.IsZero() {
		denominator = one
	}
	return sum.GrossProfit.Div(denominator)
}
