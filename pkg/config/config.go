package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// 生成模式
const (
	FlagOrders     = 1 // 生成订单 + 明细
	FlagSaleReport = 2 // 生成销售日报行
)

// 默认并发数（与历史数据量约定保持整除关系）
const (
	DefaultOrderWorkers  = 100
	DefaultReportWorkers = 10
)

const dateLayout = "2006-01-02"

// Config 全局配置
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	MySQL   MySQLConfig   `mapstructure:"mysql"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Factory FactoryConfig `mapstructure:"factory"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// MySQLConfig MySQL 配置
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig Redis 配置（可选，addr 为空时不发送完成通知）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// FactoryConfig 数据工厂配置
type FactoryConfig struct {
	Flag           int          `mapstructure:"flag"`
	BranchId       int64        `mapstructure:"branch_id"`
	OrderWorkers   int          `mapstructure:"order_workers"`
	ReportWorkers  int          `mapstructure:"report_workers"`
	OperateMsgList []OperateMsg `mapstructure:"operate_msg_list"`
}

// OperateMsg 单个周期的生成参数
type OperateMsg struct {
	StarTime             string `mapstructure:"star_time"` // 开始日期 yyyy-MM-dd
	EndTime              string `mapstructure:"end_time"`  // 结束日期 yyyy-MM-dd
	DataCount            int    `mapstructure:"data_count"`
	MaxDetailCount       int    `mapstructure:"max_detail_count"`
	MaxGoodsNum          int    `mapstructure:"max_goods_num"`
	MinSingleOrderAmount int    `mapstructure:"min_single_order_amount"`
	MaxSingleOrderAmount int    `mapstructure:"max_single_order_amount"`
	MinSingleOrderCount  int    `mapstructure:"min_single_order_count"`
	MaxSingleOrderCount  int    `mapstructure:"max_single_order_count"`
}

// Period 解析周期的起止日期
func (m *OperateMsg) Period() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, m.StarTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse star_time failed: %w", err)
	}
	end, err := time.Parse(dateLayout, m.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse end_time failed: %w", err)
	}
	return start, end, nil
}

// Load 加载配置文件（JSON 格式 setting 文档）
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("json")

	viper.SetDefault("app.name", "erp-datafactory")
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("factory.order_workers", DefaultOrderWorkers)
	viper.SetDefault("factory.report_workers", DefaultReportWorkers)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.Factory.Flag != FlagOrders && c.Factory.Flag != FlagSaleReport {
		return fmt.Errorf("factory.flag must be %d or %d", FlagOrders, FlagSaleReport)
	}
	if c.Factory.BranchId <= 0 {
		return fmt.Errorf("factory.branch_id is required")
	}
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql.dsn is required")
	}
	if c.Factory.OrderWorkers <= 0 || c.Factory.ReportWorkers <= 0 {
		return fmt.Errorf("worker counts must be positive")
	}
	if len(c.Factory.OperateMsgList) == 0 {
		return fmt.Errorf("at least one operate_msg is required")
	}

	for i := range c.Factory.OperateMsgList {
		m := &c.Factory.OperateMsgList[i]
		start, end, err := m.Period()
		if err != nil {
			return fmt.Errorf("operate_msg[%d]: %w", i, err)
		}
		if end.Before(start) {
			return fmt.Errorf("operate_msg[%d]: end_time before star_time", i)
		}
		if m.DataCount <= 0 {
			return fmt.Errorf("operate_msg[%d]: data_count must be positive", i)
		}
		if m.MaxDetailCount < 1 || m.MaxGoodsNum < 1 {
			return fmt.Errorf("operate_msg[%d]: max_detail_count and max_goods_num must be >= 1", i)
		}
		if c.Factory.Flag == FlagSaleReport {
			if m.MaxSingleOrderAmount <= m.MinSingleOrderAmount {
				return fmt.Errorf("operate_msg[%d]: max_single_order_amount must exceed min", i)
			}
			if m.MaxSingleOrderCount <= m.MinSingleOrderCount {
				return fmt.Errorf("operate_msg[%d]: max_single_order_count must exceed min", i)
			}
		}
	}

	return nil
}
