package routes

import (
	"rentmag/controllers"
	middlewares "rentmag/middleware"
	"rentmag/services"
	"rentmag/services/logger"
	"rentmag/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires services and controllers onto the router. The invoice
// service is returned so the cron job can reuse the same instance.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *services.InvoiceService {
	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	notifier := notification.NewDispatcher(notification.DispatcherOptions{
		Mailer: notification.NewSMTPMailer(),
		Logger: appLogger,
	})

	ledgerService := services.NewLedgerService(services.LedgerServiceOptions{
		Logger: appLogger,
	})
	familyService := services.NewFamilyService(services.FamilyServiceOptions{
		DB:       db,
		Logger:   appLogger,
		Ledger:   ledgerService,
		Notifier: notifier,
	})
	roomService := services.NewRoomService(services.RoomServiceOptions{
		DB:     db,
		Logger: appLogger,
		Redis:  redisCli,
	})
	invoiceService := services.NewInvoiceService(services.InvoiceServiceOptions{
		DB:       db,
		Logger:   appLogger,
		Ledger:   ledgerService,
		Notifier: notifier,
		Feed:     notification.NewMelodyService(m),
		Redis:    redisCli,
	})
	authService := services.NewAuthService(services.AuthServiceOptions{
		DB:     db,
		Logger: appLogger,
	})

	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService, familyService)
	familyController := controllers.NewFamilyController(familyService)
	invoiceController := controllers.NewInvoiceController(invoiceService, familyService)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.GET("/auth/profile", middlewares.AuthMiddleware(), authController.Profile)

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(), roomController.CreateRoom)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(), roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(), roomController.DeleteRoom)
	v1.POST("/rooms/:id/family", middlewares.AuthMiddleware(), roomController.AddFamilyToRoom)

	v1.GET("/families", familyController.GetFamilies)
	v1.GET("/families/:id", familyController.GetFamilyDetail)
	v1.POST("/families", middlewares.AuthMiddleware(), familyController.CreateFamily)
	v1.PUT("/families/:id/room", middlewares.AuthMiddleware(), familyController.AssignRoom)
	v1.PUT("/families/:id/changeRoom", middlewares.AuthMiddleware(), familyController.ChangeRoom)

	v1.GET("/invoices", middlewares.AuthMiddleware(), invoiceController.GetInvoices)
	v1.POST("/invoices/generate", middlewares.AuthMiddleware(), invoiceController.GenerateInvoice)
	v1.PUT("/invoices/:id/status", middlewares.AuthMiddleware(), invoiceController.UpdateInvoiceStatus)

	return invoiceService
}
