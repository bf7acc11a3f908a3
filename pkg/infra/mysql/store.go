package mysql

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store 数据访问对象（订单、明细、日报与参考数据共用一个连接池）
type Store struct {
	db *gorm.DB
}

// NewStore 创建 Store 实例
func NewStore(dsn string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Store{
		db: db,
	}, nil
}

// Session 派生一个独立会话的 Store（每个 Worker 一个，底层共享连接池）
func (s *Store) Session() *Store {
	return &Store{
		db: s.db.Session(&gorm.Session{NewDB: true}),
	}
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
