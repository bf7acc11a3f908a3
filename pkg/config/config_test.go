package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingJSON = `{
  "app": {"name": "erp-datafactory", "env": "test", "log_level": "debug"},
  "mysql": {"dsn": "root:root@tcp(127.0.0.1:3306)/erp?parseTime=True"},
  "redis": {"addr": "", "channel": "datafactory_run_complete"},
  "factory": {
    "flag": 1,
    "branch_id": 2,
    "operate_msg_list": [
      {
        "star_time": "2024-01-01",
        "end_time": "2024-03-31",
        "data_count": 100000,
        "max_detail_count": 10,
        "max_goods_num": 5,
        "min_single_order_amount": 100,
        "max_single_order_amount": 6600,
        "min_single_order_count": 1,
        "max_single_order_count": 50
      }
    ]
  }
}`

func writeSetting(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setting.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeSetting(t, settingJSON))
	require.NoError(t, err)

	assert.Equal(t, "erp-datafactory", cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, FlagOrders, cfg.Factory.Flag)
	assert.Equal(t, int64(2), cfg.Factory.BranchId)
	// 未配置并发数时取默认值
	assert.Equal(t, DefaultOrderWorkers, cfg.Factory.OrderWorkers)
	assert.Equal(t, DefaultReportWorkers, cfg.Factory.ReportWorkers)

	require.Len(t, cfg.Factory.OperateMsgList, 1)
	msg := cfg.Factory.OperateMsgList[0]
	assert.Equal(t, 100000, msg.DataCount)
	assert.Equal(t, 10, msg.MaxDetailCount)
	assert.Equal(t, 5, msg.MaxGoodsNum)

	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestOperateMsgPeriod(t *testing.T) {
	msg := OperateMsg{StarTime: "2024-01-01", EndTime: "2024-03-31"}
	start, end, err := msg.Period()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), end)

	msg.EndTime = "2024/03/31"
	_, _, err = msg.Period()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeSetting(t, settingJSON))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Factory.Flag = 3
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Factory.BranchId = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.MySQL.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Factory.OrderWorkers = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Factory.OperateMsgList = nil
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Factory.OperateMsgList[0].EndTime = "2023-12-31"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Factory.OperateMsgList[0].DataCount = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Factory.OperateMsgList[0].MaxGoodsNum = 0
	assert.Error(t, cfg.Validate())

	// 订单模式不校验日报的金额/笔数区间
	cfg = base()
	cfg.Factory.OperateMsgList[0].MaxSingleOrderAmount = 0
	assert.NoError(t, cfg.Validate())

	// 日报模式下区间必须有效
	cfg = base()
	cfg.Factory.Flag = FlagSaleReport
	cfg.Factory.OperateMsgList[0].MaxSingleOrderAmount = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Factory.Flag = FlagSaleReport
	cfg.Factory.OperateMsgList[0].MaxSingleOrderCount = 1
	assert.Error(t, cfg.Validate())
}
