// Package router - Đăng ký route cho domain events.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	eventhdl "arts_crm/internal/api/events/handler"
	"arts_crm/internal/api/middleware"
	apirouter "arts_crm/internal/api/router"
)

// attendanceConfig: đăng ký qua InsertOne đã override; status đổi qua
// check-in/cancel/no-show để rollup chạy, không update/delete tự do.
var attendanceConfig = apirouter.CRUDConfig{
	InsOne: true,
	Find:   true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	UpdOne: true, UpdById: true,
	Count: true, Distinct: true, Exists: true,
}

// Register đăng ký các route /events và /event-attendances lên group v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	eventHandler, err := eventhdl.NewEventHandler()
	if err != nil {
		return fmt.Errorf("khởi tạo events router: %w", err)
	}
	attendanceHandler, err := eventhdl.NewAttendanceHandler(eventHandler.EventService)
	if err != nil {
		return fmt.Errorf("khởi tạo events router: %w", err)
	}

	auth := middleware.AuthMiddleware()

	r.RegisterCRUDRoutes(v1, "/events", eventHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/events", "GET", "/roi/:id",
		[]fiber.Handler{auth}, eventHandler.HandleROI)
	apirouter.RegisterRouteWithMiddleware(v1, "/events", "POST", "/recalculate/:id",
		[]fiber.Handler{auth}, eventHandler.HandleRecalculate)

	r.RegisterCRUDRoutes(v1, "/event-attendances", attendanceHandler, attendanceConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/event-attendances", "POST", "/check-in/:id",
		[]fiber.Handler{auth}, attendanceHandler.HandleCheckIn)
	apirouter.RegisterRouteWithMiddleware(v1, "/event-attendances", "POST", "/cancel/:id",
		[]fiber.Handler{auth}, attendanceHandler.HandleCancel)
	apirouter.RegisterRouteWithMiddleware(v1, "/event-attendances", "POST", "/no-show/:id",
		[]fiber.Handler{auth}, attendanceHandler.HandleNoShow)

	return nil
}
