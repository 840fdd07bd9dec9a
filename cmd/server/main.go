package main

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authsvc "github.com/munkhjinod/erxes-api/internal/api/auth/service"
	deliverysvc "github.com/munkhjinod/erxes-api/internal/api/delivery/service"
	"github.com/munkhjinod/erxes-api/internal/delivery"
	"github.com/munkhjinod/erxes-api/internal/delivery/channels"
	"github.com/munkhjinod/erxes-api/internal/global"
	"github.com/munkhjinod/erxes-api/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// startDeliveryWorker khởi động worker gửi thông báo email chạy nền.
// Nếu SMTP chưa được cấu hình thì bỏ qua, thông báo vẫn được lưu trong app
func startDeliveryWorker(ctx context.Context) {
	log := logger.GetAppLogger()

	emailChannel := channels.NewEmailChannel(global.MongoDB_ServerConfig)
	if emailChannel == nil {
		log.Info("SMTP chưa được cấu hình, bỏ qua delivery worker")
		return
	}

	queueService, err := deliverysvc.NewDeliveryQueueService()
	if err != nil {
		log.WithError(err).Error("Failed to create delivery queue service, continuing without delivery worker")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.WithError(err).Error("Failed to create user service, continuing without delivery worker")
		return
	}

	resolveEmail := func(ctx context.Context, userID primitive.ObjectID) (string, error) {
		user, err := userService.FindOneById(ctx, userID)
		if err != nil {
			return "", err
		}
		return user.Email, nil
	}

	worker := delivery.NewWorker(queueService, emailChannel, resolveEmail)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("Delivery worker goroutine panic")
			}
		}()

		log.Info("Starting delivery worker...")
		worker.Start(ctx)
		log.Warn("Delivery worker stopped")
	}()
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.MongoDB_ServerConfig
	log := logger.GetAppLogger()

	log.WithFields(map[string]interface{}{
		"address": cfg.Address,
	}).Info("Starting server with HTTP")

	if err := app.Listen(cfg.Address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
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

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Khởi động worker gửi thông báo chạy nền
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startDeliveryWorker(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}
