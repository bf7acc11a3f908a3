package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"erp/datafactory/internal/worker"
	"erp/datafactory/pkg/config"
	"erp/datafactory/pkg/infra/mysql"
	"erp/datafactory/pkg/infra/redis"
	"erp/datafactory/pkg/logger"
)

var (
	configPath = flag.String("config", "./config/setting.json", "配置文件路径")
)

func main() {
	flag.Parse()

	log.Println("========================================")
	log.Println("  ERP DataFactory Starting...")
	log.Println("========================================")

	// 1. 加载配置（配置缺失是致命错误，不进行任何生成）
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("没有配置文件:", err)
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	log.Printf("Config loaded: %s, flag: %d, branch: %d, log_level: %s\n",
		cfg.App.Name, cfg.Factory.Flag, cfg.Factory.BranchId, cfg.App.LogLevel)

	// 2. 初始化 Logger
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. 初始化存储
	store, err := mysql.NewStore(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	// 4. 可选的完成通知
	var notifier *redis.Notifier
	if cfg.Redis.Addr != "" {
		notifier, err = redis.NewNotifier(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to create notifier: %v", err)
		}
		defer notifier.Close()
	}

	// 5. 执行批次（阻塞直到全部 Worker 结束）
	ctx := context.WithValue(context.Background(), "run_id", uuid.NewString())
	mgr := worker.NewManager(cfg, store, notifier, zapLogger)
	if err := mgr.Run(ctx); err != nil {
		log.Fatalf("Manager run failed: %v", err)
	}

	log.Println("========================================")
	log.Printf("  执行结束: produced=%d, failed=%d\n", mgr.Produced(), mgr.Failed())
	log.Println("========================================")

	// 6. 等待手动确认后退出（两种模式均退出码 0）
	fmt.Println("按回车键退出...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
