package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverable(t *testing.T) {
	err := Recoverable("参考数据未命中")
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, "参考数据未命中", err.Error())
	assert.True(t, err.Recoverable)

	detailed := RecoverableWithDetails("插入失败", "duplicate key")
	assert.True(t, detailed.Recoverable)
	assert.Equal(t, "duplicate key", detailed.DevDetails)
}

func TestFatal(t *testing.T) {
	err := Fatal("商品池为空")
	assert.Equal(t, 500, err.Code)
	assert.False(t, err.Recoverable)
}

func TestIsRecoverable(t *testing.T) {
	assert.True(t, IsRecoverable(Recoverable("跳过")))
	assert.False(t, IsRecoverable(Fatal("终止")))
	assert.False(t, IsRecoverable(errors.New("普通错误")))
	assert.False(t, IsRecoverable(nil))

	// fmt.Errorf %w 包装后仍能识别
	wrapped := fmt.Errorf("新增订单失败: %w", Recoverable("跳过"))
	assert.True(t, IsRecoverable(wrapped))

	deep := fmt.Errorf("外层: %w", fmt.Errorf("内层: %w", Fatal("终止")))
	assert.False(t, IsRecoverable(deep))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	// 已是 *Error 时原样返回（包装层被剥掉）
	original := Recoverable("跳过")
	wrapped := Wrap(fmt.Errorf("外层: %w", original))
	require.NotNil(t, wrapped)
	assert.Same(t, original, wrapped)

	// 未知错误按不可恢复处理
	unknown := Wrap(errors.New("连接超时"))
	require.NotNil(t, unknown)
	assert.Equal(t, 500, unknown.Code)
	assert.False(t, unknown.Recoverable)
}
