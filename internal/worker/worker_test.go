package worker

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"

	"erp/datafactory/internal/business"
	"erp/datafactory/pkg/errs"
)

type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

// stubProducer 按调用序号返回预置结果
type stubProducer struct {
	mu       sync.Mutex
	calls    int
	failAt   map[int]error // 第 n 次调用（从 1 起）返回的错误
	panicAt  int           // 第 n 次调用 panic，0 表示不 panic
	workerID []int
}

func (p *stubProducer) ProduceOne(ctx context.Context, spec *business.PeriodSpec) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if id, ok := ctx.Value("worker_id").(int); ok {
		p.workerID = append(p.workerID, id)
	}
	if p.panicAt > 0 && p.calls == p.panicAt {
		panic("boom")
	}
	if err, ok := p.failAt[p.calls]; ok {
		return err
	}
	return nil
}

func specsOf(counts ...int) []business.PeriodSpec {
	specs := make([]business.PeriodSpec, 0, len(counts))
	for _, c := range counts {
		specs = append(specs, business.PeriodSpec{DataCount: c})
	}
	return specs
}

func TestWorkerRunShare(t *testing.T) {
	producer := &stubProducer{}
	produced, failed := atomic.NewInt64(0), atomic.NewInt64(0)

	// 两个周期分别 100 和 50 条，10 个 Worker，本 Worker 份额 10+5
	w := NewWorker(3, producer, specsOf(100, 50), 10, produced, failed, nopLogger{})
	w.Run(context.Background())

	assert.Equal(t, 15, producer.calls)
	assert.Equal(t, int64(15), produced.Load())
	assert.Equal(t, int64(0), failed.Load())
	for _, id := range producer.workerID {
		assert.Equal(t, 3, id)
	}
}

func TestWorkerRunCountsFailures(t *testing.T) {
	producer := &stubProducer{failAt: map[int]error{
		2: errs.Recoverable("跳过"),
		5: errs.Fatal("插入失败"),
	}}
	produced, failed := atomic.NewInt64(0), atomic.NewInt64(0)

	w := NewWorker(0, producer, specsOf(100), 10, produced, failed, nopLogger{})
	w.Run(context.Background())

	// 可恢复与不可恢复错误都只丢弃当前这条，循环继续
	assert.Equal(t, 10, producer.calls)
	assert.Equal(t, int64(8), produced.Load())
	assert.Equal(t, int64(2), failed.Load())
}

func TestWorkerRunRecoversPanic(t *testing.T) {
	producer := &stubProducer{panicAt: 4}
	produced, failed := atomic.NewInt64(0), atomic.NewInt64(0)

	w := NewWorker(0, producer, specsOf(100), 10, produced, failed, nopLogger{})

	// panic 被 Run 自己吞掉，调用方不受影响，剩余份额放弃
	assert.NotPanics(t, func() { w.Run(context.Background()) })
	assert.Equal(t, 4, producer.calls)
	assert.Equal(t, int64(3), produced.Load())
}

func TestWorkerRunZeroShare(t *testing.T) {
	producer := &stubProducer{}
	produced, failed := atomic.NewInt64(0), atomic.NewInt64(0)

	// 总量小于并发数时份额向下取整为 0，本 Worker 不生成
	w := NewWorker(0, producer, specsOf(5), 10, produced, failed, nopLogger{})
	w.Run(context.Background())

	assert.Equal(t, 0, producer.calls)
	assert.Equal(t, int64(0), produced.Load())
}
