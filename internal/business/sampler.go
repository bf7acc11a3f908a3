package business

import (
	"math/rand"
	"time"

	"erp/datafactory/pkg/errs"
)

// Sampler 随机采样工具。
// 每个 Worker 在启动时持有一个独立种子的实例，避免多个 Worker
// 共享同一随机源产生的锁竞争和重复序列；实例本身不是并发安全的。
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler 创建采样器
func NewSampler(seed int64) *Sampler {
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// Int 返回 [min, max) 内的均匀随机整数；max <= min 时直接返回 min
func (s *Sampler) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rnd.Intn(max-min)
}

// Date 返回 [start, end] 闭区间内按天均匀分布的日期（截断到日）
func (s *Sampler) Date(start, end time.Time) time.Time {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)
	if !endDay.After(startDay) {
		return startDay
	}

	span := int(endDay.Sub(startDay).Hours() / 24)
	offset := s.Int(0, span+1)
	return startDay.AddDate(0, 0, offset)
}

// PickOne 从列表中均匀抽取一个元素
func (s *Sampler) PickOne(ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, errs.Recoverable("候选列表为空")
	}
	return ids[s.rnd.Intn(len(ids))], nil
}

// PickMulti 抽取大小为 [1, maxSize) 的随机多重集（有放回，允许重复）
func (s *Sampler) PickMulti(ids []int64, maxSize int) []int64 {
	if len(ids) == 0 {
		return nil
	}

	n := s.Int(1, maxSize)
	out := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ids[s.rnd.Intn(len(ids))])
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
