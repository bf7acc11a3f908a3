package mysql

import (
	"context"
	"fmt"

	"erp/datafactory/internal/entity"
)

// CreateReportRow 插入一条销售日报行
func (s *Store) CreateReportRow(ctx context.Context, row *entity.SaleReportFakeData) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert sale report row failed: %w", err)
	}
	return nil
}
