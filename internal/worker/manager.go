package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"

	"erp/datafactory/internal/business"
	"erp/datafactory/pkg/config"
	"erp/datafactory/pkg/infra/mysql"
	"erp/datafactory/pkg/infra/redis"
	"erp/datafactory/pkg/logger"
)

// Manager 生成任务调度器。
// 加载一次参考数据，按模式把总量切分给固定数量的 Worker 并发执行，
// 全部 Worker 结束后汇报耗时与产量（join 语义，无取消支持）。
type Manager struct {
	cfg      *config.Config
	store    *mysql.Store
	notifier *redis.Notifier // 可选，nil 时不发送完成通知
	produced *atomic.Int64
	failed   *atomic.Int64
	wg       sync.WaitGroup
	logger   logger.Logger
}

// NewManager 创建 Manager
func NewManager(cfg *config.Config, store *mysql.Store, notifier *redis.Notifier, log logger.Logger) *Manager {
	return &Manager{
		cfg:      cfg,
		store:    store,
		notifier: notifier,
		produced: atomic.NewInt64(0),
		failed:   atomic.NewInt64(0),
		logger:   log,
	}
}

// Run 执行一次完整批次
func (m *Manager) Run(ctx context.Context) error {
	ctx = context.WithValue(ctx, "flag", m.cfg.Factory.Flag)
	start := time.Now()

	specs, err := periodSpecs(m.cfg)
	if err != nil {
		return err
	}

	workers, err := m.loadWorkers(ctx, specs)
	if err != nil {
		return fmt.Errorf("failed to load workers: %w", err)
	}

	m.logger.Infof(ctx, "[Manager] 开始执行, workers=%d, periods=%d", len(workers), len(specs))

	// 启动全部 Worker（每个 Worker 独立 goroutine），阻塞直到全部结束
	for _, w := range workers {
		w := w
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			w.Run(ctx)
		}()
	}
	m.wg.Wait()

	duration := time.Since(start)
	m.logger.Infof(ctx, "[Manager] 执行结束, produced=%d, failed=%d, duration=%v",
		m.produced.Load(), m.failed.Load(), duration)

	m.notifyRunComplete(ctx, duration)

	return nil
}

// Produced 已成功生成的记录数
func (m *Manager) Produced() int64 {
	return m.produced.Load()
}

// Failed 生成失败（已跳过）的记录数
func (m *Manager) Failed() int64 {
	return m.failed.Load()
}

// loadWorkers 构建 Worker 列表。
// 订单模式加载参考数据快照并校验数据池；日报模式不依赖参考数据。
// 每个 Worker 拿到独立种子的采样器和独立的存储会话。
func (m *Manager) loadWorkers(ctx context.Context, specs []business.PeriodSpec) ([]*Worker, error) {
	factory := m.cfg.Factory
	seedBase := time.Now().UnixNano()

	switch factory.Flag {
	case config.FlagOrders:
		ref, err := m.store.LoadReference(ctx, factory.BranchId)
		if err != nil {
			return nil, fmt.Errorf("load reference data failed: %w", err)
		}
		if err := ref.Check(); err != nil {
			return nil, err
		}
		m.logger.Infof(ctx, "[Manager] 参考数据加载完成: %s", ref)

		workers := make([]*Worker, 0, factory.OrderWorkers)
		for i := 0; i < factory.OrderWorkers; i++ {
			sampler := business.NewSampler(seedBase + int64(i))
			producer := business.NewOrderFactory(m.store.Session(), ref, sampler, factory.BranchId, m.logger)
			workers = append(workers, NewWorker(i, producer, specs, factory.OrderWorkers, m.produced, m.failed, m.logger))
		}
		return workers, nil

	case config.FlagSaleReport:
		workers := make([]*Worker, 0, factory.ReportWorkers)
		for i := 0; i < factory.ReportWorkers; i++ {
			sampler := business.NewSampler(seedBase + int64(i))
			producer := business.NewReportFactory(m.store.Session(), sampler, factory.BranchId, m.logger)
			workers = append(workers, NewWorker(i, producer, specs, factory.ReportWorkers, m.produced, m.failed, m.logger))
		}
		return workers, nil

	default:
		return nil, fmt.Errorf("unknown factory flag: %d", factory.Flag)
	}
}

// notifyRunComplete 发送批次完成通知（失败只记日志，不影响批次结果）
func (m *Manager) notifyRunComplete(ctx context.Context, duration time.Duration) {
	if m.notifier == nil || m.cfg.Redis.Channel == "" {
		return
	}

	runID, _ := ctx.Value("run_id").(string)
	notification := &redis.RunNotification{
		RunID:      runID,
		Flag:       m.cfg.Factory.Flag,
		BranchId:   m.cfg.Factory.BranchId,
		Produced:   m.produced.Load(),
		Failed:     m.failed.Load(),
		DurationMs: duration.Milliseconds(),
		Timestamp:  time.Now().Unix(),
	}

	if err := m.notifier.PublishRunComplete(ctx, m.cfg.Redis.Channel, notification); err != nil {
		m.logger.Warnf(ctx, "[Manager] 完成通知发送失败: %v", err)
	}
}

// periodSpecs 把配置文档中的周期参数映射为业务层快照
func periodSpecs(cfg *config.Config) ([]business.PeriodSpec, error) {
	specs := make([]business.PeriodSpec, 0, len(cfg.Factory.OperateMsgList))
	for i := range cfg.Factory.OperateMsgList {
		m := &cfg.Factory.OperateMsgList[i]
		start, end, err := m.Period()
		if err != nil {
			return nil, fmt.Errorf("operate_msg[%d]: %w", i, err)
		}
		specs = append(specs, business.PeriodSpec{
			StartTime:            start,
			EndTime:              end,
			DataCount:            m.DataCount,
			MaxDetailCount:       m.MaxDetailCount,
			MaxGoodsNum:          m.MaxGoodsNum,
			MinSingleOrderAmount: m.MinSingleOrderAmount,
			MaxSingleOrderAmount: m.MaxSingleOrderAmount,
			MinSingleOrderCount:  m.MinSingleOrderCount,
			MaxSingleOrderCount:  m.MaxSingleOrderCount,
		})
	}
	return specs, nil
}
