// Package router - Đăng ký route cho domain communications.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	communicationhdl "arts_crm/internal/api/communications/handler"
	"arts_crm/internal/api/middleware"
	apirouter "arts_crm/internal/api/router"
)

// Register đăng ký các route email campaign và unsubscribe lên group v1.
//
// Tracking và unsubscribe là route công khai (email client và link trong
// email không mang token). Middleware trong Fiber match theo prefix nên các
// route công khai phải nằm dưới prefix riêng (/email-track, /unsubscribe),
// không chung prefix với các route đã gắn auth.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	campaignHandler, err := communicationhdl.NewEmailCampaignHandler()
	if err != nil {
		return fmt.Errorf("khởi tạo communications router: %w", err)
	}
	subscriptionHandler, err := communicationhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("khởi tạo communications router: %w", err)
	}

	auth := middleware.AuthMiddleware()

	r.RegisterCRUDRoutes(v1, "/email-campaigns", campaignHandler, apirouter.ReadWriteConfig)
	apirouter.RegisterRouteWithMiddleware(v1, "/email-campaigns", "POST", "/mark-sent/:id",
		[]fiber.Handler{auth}, campaignHandler.HandleMarkSent)
	apirouter.RegisterRouteWithMiddleware(v1, "/email-campaigns", "GET", "/rates/:id",
		[]fiber.Handler{auth}, campaignHandler.HandleRates)

	// Route công khai
	apirouter.RegisterRouteWithMiddleware(v1, "/email-track", "POST", "/:id/:metric",
		nil, campaignHandler.HandleRecordEngagement)
	apirouter.RegisterRouteWithMiddleware(v1, "/unsubscribe", "GET", "/:token",
		nil, subscriptionHandler.HandleUnsubscribe)

	apirouter.RegisterRouteWithMiddleware(v1, "/communications", "POST", "/unsubscribe-token/:contactId",
		[]fiber.Handler{auth}, subscriptionHandler.HandleEnsureToken)
	apirouter.RegisterRouteWithMiddleware(v1, "/communications", "POST", "/send-receipt/:receiptId",
		[]fiber.Handler{auth}, subscriptionHandler.HandleSendReceipt)

	return nil
}
