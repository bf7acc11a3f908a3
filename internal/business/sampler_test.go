package business

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/datafactory/pkg/errs"
)

func TestSamplerInt(t *testing.T) {
	s := NewSampler(1)

	for i := 0; i < 10000; i++ {
		v := s.Int(5, 10)
		assert.GreaterOrEqual(t, v, 5)
		assert.Less(t, v, 10)
	}

	// 区间为空时返回 min
	assert.Equal(t, 3, s.Int(3, 3))
	assert.Equal(t, 5, s.Int(5, 2))
}

func TestSamplerDate(t *testing.T) {
	s := NewSampler(2)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)

	seenFirst, seenLast := false, false
	for i := 0; i < 10000; i++ {
		d := s.Date(start, end)
		assert.False(t, d.Before(start), "date %s before %s", d, start)
		assert.False(t, d.After(end), "date %s after %s", d, end)
		assert.Equal(t, 0, d.Hour())
		if d.Equal(start) {
			seenFirst = true
		}
		if d.Equal(end) {
			seenLast = true
		}
	}
	// 闭区间两端都可被采到
	assert.True(t, seenFirst)
	assert.True(t, seenLast)

	// 区间内带时分秒也截断到日
	d := s.Date(time.Date(2024, 5, 1, 13, 30, 0, 0, time.Local), time.Date(2024, 5, 1, 18, 0, 0, 0, time.Local))
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), d)
}

func TestSamplerPickOne(t *testing.T) {
	s := NewSampler(3)

	_, err := s.PickOne(nil)
	require.Error(t, err)
	assert.True(t, errs.IsRecoverable(err))

	v, err := s.PickOne([]int64{42})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	ids := []int64{1, 2, 3}
	for i := 0; i < 1000; i++ {
		v, err := s.PickOne(ids)
		require.NoError(t, err)
		assert.Contains(t, ids, v)
	}
}

func TestSamplerPickMulti(t *testing.T) {
	s := NewSampler(4)
	ids := []int64{7, 8, 9}

	for i := 0; i < 1000; i++ {
		picked := s.PickMulti(ids, 5)
		assert.GreaterOrEqual(t, len(picked), 1)
		assert.Less(t, len(picked), 5)
		for _, v := range picked {
			assert.Contains(t, ids, v)
		}
	}

	// 有放回抽取：单元素列表也能抽出重复的多重集
	picked := s.PickMulti([]int64{5}, 4)
	for _, v := range picked {
		assert.Equal(t, int64(5), v)
	}

	// 空列表返回空
	assert.Empty(t, s.PickMulti(nil, 5))
}
