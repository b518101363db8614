package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	analyticssvc "arts_crm/internal/api/analytics/service"
	"arts_crm/internal/global"
	"arts_crm/internal/logger"
	"arts_crm/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Khởi tạo logger với cấu hình mặc định
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Log thông tin khởi tạo bằng logger mới
	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// initCoordinator tạo trigger coordinator của analytics: aggregator cập nhật
// giving + RFM của contact, rollup service cập nhật campaign và pledge.
// Một instance duy nhất dùng chung cho API (transactions, analytics) và worker.
func initCoordinator() *analyticssvc.TriggerCoordinator {
	log := logger.GetAppLogger()

	aggregator, err := analyticssvc.NewGivingAggregator()
	if err != nil {
		log.Fatalf("Failed to create giving aggregator: %v", err)
	}
	rollup, err := analyticssvc.NewRollupService()
	if err != nil {
		log.Fatalf("Failed to create rollup service: %v", err)
	}

	return analyticssvc.NewTriggerCoordinator(aggregator, rollup, rollup)
}

// main_thread khởi tạo và chạy Fiber server
func main_thread(coordinator *analyticssvc.TriggerCoordinator) {
	// Khởi tạo app với cấu hình
	app := InitFiberApp(coordinator)

	// Khởi động server với cấu hình listen
	cfg := global.MongoDB_ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper function để resolve đường dẫn từ thư mục gốc dự án
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		// Tìm thư mục chứa config/env
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		// Resolve đường dẫn certificate và key
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		// Kiểm tra file certificate và key tồn tại
		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		// Load certificate và key
		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		// Tạo listener với TLS
		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		// Cấu hình TLS
		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		// Wrap listener với TLS
		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		// Khởi động server với TLS listener
		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		// Khởi động server HTTP thông thường
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo trigger coordinator (dùng chung cho API và worker)
	coordinator := initCoordinator()

	log := logger.GetAppLogger()

	// Khởi tạo và chạy Segment Refresh Worker (background worker)
	cfg := global.MongoDB_ServerConfig
	interval := time.Duration(cfg.SegmentRefresh_IntervalMinutes) * time.Minute
	refreshWorker, err := worker.NewSegmentRefreshWorker(coordinator, interval, cfg.SegmentRefresh_BatchSize, cfg.SegmentRefresh_Mode)
	if err != nil {
		log.WithError(err).Error("Failed to create segment refresh worker, continuing without worker")
	} else {
		// Tạo context với cancel để có thể dừng worker khi cần
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Chạy worker trong goroutine riêng với recover
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(map[string]interface{}{
						"panic": r,
					}).Error("📊 [SEGMENT_REFRESH] Worker goroutine panic")
				}
			}()

			refreshWorker.Start(ctx)
			log.Warn("📊 [SEGMENT_REFRESH] Worker đã dừng (có thể do context cancelled)")
		}()

		log.Info("📊 [SEGMENT_REFRESH] Segment Refresh Worker started successfully")
	}

	// Chạy Fiber server trên main thread
	main_thread(coordinator)
}
