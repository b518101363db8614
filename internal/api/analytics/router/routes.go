// Package router - Đăng ký route cho domain analytics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "arts_crm/internal/api/analytics/handler"
	analyticssvc "arts_crm/internal/api/analytics/service"
	"arts_crm/internal/api/middleware"
	apirouter "arts_crm/internal/api/router"
)

// Register trả về RegisterFunc cho domain analytics. coordinator dùng chung
// instance với transactions (wire ở cmd/server).
func Register(coordinator *analyticssvc.TriggerCoordinator) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		h, err := analyticshdl.NewAnalyticsHandler(coordinator)
		if err != nil {
			return fmt.Errorf("khởi tạo analytics router: %w", err)
		}

		auth := middleware.AuthMiddleware()

		apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/recalculate-contact/:id",
			[]fiber.Handler{auth}, h.HandleRecalculateContact)
		apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/recalculate-all",
			[]fiber.Handler{auth}, h.HandleRecalculateAll)
		apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/recalculate-campaign/:id",
			[]fiber.Handler{auth}, h.HandleRecalculateCampaign)
		apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/dashboard",
			[]fiber.Handler{auth}, h.HandleDashboard)

		return nil
	}
}
