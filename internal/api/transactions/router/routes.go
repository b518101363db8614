// Package router - Đăng ký route cho domain transactions.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"arts_crm/internal/api/middleware"
	apirouter "arts_crm/internal/api/router"
	transactionhdl "arts_crm/internal/api/transactions/handler"
	transactionsvc "arts_crm/internal/api/transactions/service"
)

// transactionConfig: giao dịch là bất biến — không update/upsert qua CRUD
// (status đổi qua /update-status), xóa chỉ qua delete-by-id đã override để
// báo coordinator.
var transactionConfig = apirouter.CRUDConfig{
	InsOne: true,
	Find:   true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	DelById: true,
	Count:   true, Distinct: true, Exists: true,
}

// pledgeConfig: tạo qua InsertOne đã override (ép trạng thái active); không
// insert-many/upsert để tránh lách khởi tạo.
var pledgeConfig = apirouter.CRUDConfig{
	InsOne: true,
	Find:   true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	UpdOne: true, UpdById: true, FindUpd: true,
	DelById: true,
	Count:   true, Distinct: true, Exists: true,
}

// recurringConfig: như pledge — tạo qua InsertOne override.
var recurringConfig = apirouter.CRUDConfig{
	InsOne: true,
	Find:   true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	UpdOne: true, UpdById: true, FindUpd: true,
	DelById: true,
	Count:   true, Distinct: true, Exists: true,
}

// Register trả về RegisterFunc cho domain transactions. notifier là trigger
// coordinator của analytics, wire ở cmd/server.
func Register(notifier transactionsvc.ChangeNotifier) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		txHandler, err := transactionhdl.NewTransactionHandler(notifier)
		if err != nil {
			return fmt.Errorf("khởi tạo transactions router: %w", err)
		}
		campaignHandler, err := transactionhdl.NewCampaignHandler()
		if err != nil {
			return fmt.Errorf("khởi tạo transactions router: %w", err)
		}
		pledgeHandler, err := transactionhdl.NewPledgeHandler()
		if err != nil {
			return fmt.Errorf("khởi tạo transactions router: %w", err)
		}
		recurringHandler, err := transactionhdl.NewRecurringDonationHandler(txHandler.TransactionService)
		if err != nil {
			return fmt.Errorf("khởi tạo transactions router: %w", err)
		}
		receiptHandler, err := transactionhdl.NewTaxReceiptHandler(txHandler.TransactionService)
		if err != nil {
			return fmt.Errorf("khởi tạo transactions router: %w", err)
		}

		auth := middleware.AuthMiddleware()

		r.RegisterCRUDRoutes(v1, "/transactions", txHandler, transactionConfig)
		apirouter.RegisterRouteWithMiddleware(v1, "/transactions", "PUT", "/update-status/:id",
			[]fiber.Handler{auth}, txHandler.HandleUpdateStatus)
		apirouter.RegisterRouteWithMiddleware(v1, "/transactions", "GET", "/by-contact/:contactId",
			[]fiber.Handler{auth}, txHandler.HandleFindByContact)

		r.RegisterCRUDRoutes(v1, "/campaigns", campaignHandler, apirouter.ReadWriteConfig)
		apirouter.RegisterRouteWithMiddleware(v1, "/campaigns", "GET", "/progress/:id",
			[]fiber.Handler{auth}, campaignHandler.HandleProgress)

		r.RegisterCRUDRoutes(v1, "/pledges", pledgeHandler, pledgeConfig)

		r.RegisterCRUDRoutes(v1, "/recurring-donations", recurringHandler, recurringConfig)
		apirouter.RegisterRouteWithMiddleware(v1, "/recurring-donations", "POST", "/process-payment/:id",
			[]fiber.Handler{auth}, recurringHandler.HandleProcessPayment)
		apirouter.RegisterRouteWithMiddleware(v1, "/recurring-donations", "GET", "/due",
			[]fiber.Handler{auth}, recurringHandler.HandleFindDue)

		r.RegisterCRUDRoutes(v1, "/tax-receipts", receiptHandler, apirouter.ReadOnlyConfig)
		apirouter.RegisterRouteWithMiddleware(v1, "/tax-receipts", "POST", "/issue",
			[]fiber.Handler{auth}, receiptHandler.HandleIssueReceipt)

		return nil
	}
}
