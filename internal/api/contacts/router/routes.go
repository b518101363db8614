// Package router - Đăng ký route cho domain contacts.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contacthdl "arts_crm/internal/api/contacts/handler"
	"arts_crm/internal/api/middleware"
	apirouter "arts_crm/internal/api/router"
)

// Register đăng ký các route /contacts lên group v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	h, err := contacthdl.NewContactHandler()
	if err != nil {
		return fmt.Errorf("khởi tạo contacts router: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/contacts", h, apirouter.ReadWriteConfig)

	auth := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/contacts", "GET", "/segment-counts",
		[]fiber.Handler{auth}, h.HandleSegmentCounts)
	apirouter.RegisterRouteWithMiddleware(v1, "/contacts", "GET", "/by-segment/:segment",
		[]fiber.Handler{auth}, h.HandleFindBySegment)

	return nil
}
