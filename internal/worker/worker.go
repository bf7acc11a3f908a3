package worker

import (
	"context"

	"go.uber.org/atomic"

	"erp/datafactory/internal/business"
	"erp/datafactory/pkg/errs"
	"erp/datafactory/pkg/logger"
)

// Worker 一个并发生成单元。
// 持有自己的生产器（含独立采样器与独立会话），遍历全部周期参数，
// 每个周期生成 DataCount / workerCount 条记录。
type Worker struct {
	id          int
	producer    business.Producer
	specs       []business.PeriodSpec
	workerCount int
	produced    *atomic.Int64
	failed      *atomic.Int64
	logger      logger.Logger
}

// NewWorker 创建 Worker 实例
func NewWorker(id int, producer business.Producer, specs []business.PeriodSpec, workerCount int,
	produced, failed *atomic.Int64, log logger.Logger) *Worker {
	return &Worker{
		id:          id,
		producer:    producer,
		specs:       specs,
		workerCount: workerCount,
		produced:    produced,
		failed:      failed,
		logger:      log,
	}
}

// Run 执行本 Worker 的生成份额。
// 单条记录的错误记录后跳过；逃逸到循环外的 panic 只终止本 Worker，
// 兄弟 Worker 不受影响（本 Worker 剩余份额不再生成，无重试）。
func (w *Worker) Run(ctx context.Context) {
	ctx = context.WithValue(ctx, "worker_id", w.id)

	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorf(ctx, "[Worker-%d] panic, 终止本 Worker: %v", w.id, r)
		}
	}()

	w.logger.Infof(ctx, "[Worker-%d] Started", w.id)

	for i := range w.specs {
		spec := &w.specs[i]
		share := spec.DataCount / w.workerCount

		for j := 0; j < share; j++ {
			if err := w.producer.ProduceOne(ctx, spec); err != nil {
				w.failed.Inc()
				if errs.IsRecoverable(err) {
					w.logger.Warnf(ctx, "[Worker-%d] 跳过本条记录: %v", w.id, err)
				} else {
					w.logger.Errorf(ctx, "[Worker-%d] 生成失败: %v", w.id, err)
				}
				continue
			}
			w.produced.Inc()
		}
	}

	w.logger.Infof(ctx, "[Worker-%d] Finished", w.id)
}
