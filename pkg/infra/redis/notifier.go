package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Notifier Redis 发布客户端（批次完成通知）
type Notifier struct {
	client *redis.Client
}

// NewNotifier 创建 Notifier 实例
func NewNotifier(addr, password string, db int) (*Notifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Notifier{
		client: client,
	}, nil
}

// RunNotification 批次完成通知消息
type RunNotification struct {
	RunID      string `json:"run_id"`
	Flag       int    `json:"flag"` // 1 订单 / 2 销售日报
	BranchId   int64  `json:"branch_id"`
	Produced   int64  `json:"produced"`
	Failed     int64  `json:"failed"`
	DurationMs int64  `json:"duration_ms"`
	Timestamp  int64  `json:"timestamp"`
}

// PublishRunComplete 发布批次完成通知
func (n *Notifier) PublishRunComplete(ctx context.Context, channel string, notification *RunNotification) error {
	msgJSON, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := n.client.Publish(ctx, channel, msgJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// Subscribe 订阅频道（用于测试）
func (n *Notifier) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return n.client.Subscribe(ctx, channel)
}

// Close 关闭 Redis 连接
func (n *Notifier) Close() error {
	return n.client.Close()
}
