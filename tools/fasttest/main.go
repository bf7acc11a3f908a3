package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"erp/datafactory/internal/business"
	"erp/datafactory/internal/business/finance"
	"erp/datafactory/internal/entity"
	"erp/datafactory/pkg/config"
	"erp/datafactory/pkg/infra/mysql"
	"erp/datafactory/pkg/logger"
)

var (
	configPath = flag.String("config", "./config/setting.json", "配置文件路径")
	skipDB     = flag.Bool("skip-db", false, "跳过数据库操作（仅测试生成逻辑）")
	count      = flag.Int("count", 1, "每个周期生成的记录条数")
)

func main() {
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("  FastTest - DataFactory 快速测试工具")
	fmt.Println("========================================")

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Config validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Config loaded: %s, flag=%d\n", cfg.App.Name, cfg.Factory.Flag)

	zapLogger, err := logger.NewZapLogger("warn")
	if err != nil {
		fmt.Printf("❌ Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx := context.Background()
	sampler := business.NewSampler(time.Now().UnixNano())

	// 2. 初始化存储与参考数据
	var store business.OrderStore
	var ref *business.Reference

	if *skipDB {
		fmt.Println("⚠️  Skip-DB mode: 使用内存存储和内置参考数据")
		store = newMemoryStore()
		ref = builtinReference()
	} else {
		dbStore, err := mysql.NewStore(cfg.MySQL.DSN)
		if err != nil {
			fmt.Printf("❌ Failed to create store: %v\n", err)
			os.Exit(1)
		}
		defer dbStore.Close()

		ref, err = dbStore.LoadReference(ctx, cfg.Factory.BranchId)
		if err != nil {
			fmt.Printf("❌ Failed to load reference data: %v\n", err)
			os.Exit(1)
		}
		store = dbStore
		fmt.Println("✅ Database initialized")
	}

	if err := ref.Check(); err != nil {
		fmt.Printf("❌ Reference data check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Reference data: %s\n", ref)

	// 3. 逐周期生成记录
	factory := business.NewOrderFactory(store, ref, sampler, cfg.Factory.BranchId, zapLogger)

	successCount := 0
	failureCount := 0

	for i := range cfg.Factory.OperateMsgList {
		m := &cfg.Factory.OperateMsgList[i]
		start, end, _ := m.Period()
		spec := &business.PeriodSpec{
			StartTime:      start,
			EndTime:        end,
			DataCount:      *count,
			MaxDetailCount: m.MaxDetailCount,
			MaxGoodsNum:    m.MaxGoodsNum,
		}

		for j := 0; j < *count; j++ {
			startTime := time.Now()
			err := factory.ProduceOne(ctx, spec)
			duration := time.Since(startTime)

			if err != nil {
				fmt.Printf("❌ FAILED [period %d, record %d]: %v (%v)\n", i+1, j+1, err, duration)
				failureCount++
			} else {
				fmt.Printf("✅ PASSED [period %d, record %d] (%v)\n", i+1, j+1, duration)
				successCount++
			}
		}
	}

	// 4. 输出测试汇总
	fmt.Println("\n========================================")
	fmt.Println("  Test Summary")
	fmt.Println("========================================")
	fmt.Printf("Passed: %d ✅\n", successCount)
	fmt.Printf("Failed: %d ❌\n", failureCount)

	if failureCount > 0 {
		os.Exit(1)
	}
}

// memoryStore 内存实现（skip-db 模式下代替 MySQL，打印生成结果）
type memoryStore struct {
	nextID  int64
	details map[int64][]*entity.OrderDetail
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		nextID:  1,
		details: make(map[int64][]*entity.OrderDetail),
	}
}

func (m *memoryStore) CreateOrder(_ context.Context, order *entity.Orders) (int64, error) {
	order.Id = m.nextID
	m.nextID++
	fmt.Printf("  Order: id=%d customer=%s dept=%s time=%s\n",
		order.Id, order.Customer, order.DeptName, order.OrderTime.Format("2006-01-02"))
	return order.Id, nil
}

func (m *memoryStore) CreateOrderDetails(_ context.Context, details []*entity.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	m.details[details[0].OrderId] = details
	for _, d := range details {
		fmt.Printf("    Detail: goods=%d num=%d amount=%s tax=%s profit=%s (%s)\n",
			d.GoodsId, d.Num, d.Amount, d.TaxAmount, d.GrossProfit, d.GrossProfitPercent)
	}
	return nil
}

func (m *memoryStore) ReconcileOrder(_ context.Context, orderID int64) error {
	lines := make([]finance.SummaryLine, 0, len(m.details[orderID]))
	for _, d := range m.details[orderID] {
		lines = append(lines, finance.SummaryLine{
			Amount:      d.Amount,
			TaxAmount:   d.TaxAmount,
			NoTaxAmount: d.NoTaxAmount,
			AC:          d.AC,
			Num:         d.Num,
		})
	}

	sum := finance.Summarize(lines, decimal.Zero)
	percent := finance.GrossProfitPercentOf(sum)
	fmt.Printf("  Reconciled: rows=%d sum=%s tax=%s noTax=%s profit=%s percent=%s\n",
		sum.RowNum, sum.SumMoney, sum.TaxMoney, sum.NoTaxMoney, sum.GrossProfit, percent)
	return nil
}

// builtinReference skip-db 模式的内置参考数据
func builtinReference() *business.Reference {
	goods := []entity.Goods{
		{Id: 1, Price: decimal.NewFromInt(100), InPrice: decimal.NewFromInt(60), Unit: "个"},
		{Id: 2, Price: decimal.NewFromInt(250), InPrice: decimal.NewFromInt(180), Unit: "箱"},
		{Id: 3, Price: decimal.NewFromInt(400), InPrice: decimal.NewFromInt(320), Unit: ""},
	}
	members := []entity.MemberView{
		{
			Id: 11, CustomerId: 101, CustomerName: "测试客户", DeptId: 201, DeptName: "测试部门",
			RealName: "张三", Mobile: "13800000000", Province: "上海市", City: "上海市", Area: "浦东新区", Address: "测试路1号",
		},
	}
	return business.NewReference(goods, []int64{301}, []int64{401}, members)
}
