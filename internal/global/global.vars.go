// Package global giữ các biến dùng chung toàn ứng dụng: cấu hình server,
// kết nối MongoDB, validator và các registry.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"arts_crm/config"
	"arts_crm/internal/registry"
)

// ColNames chứa tên các collection MongoDB của hệ thống
type ColNames struct {
	Contacts           string // Danh bạ nhà hảo tâm / người liên hệ
	Transactions       string // Giao dịch (donation, membership, ticket, ...)
	Campaigns          string // Chiến dịch gây quỹ
	Pledges            string // Cam kết đóng góp
	RecurringDonations string // Đóng góp định kỳ
	TaxReceipts        string // Biên nhận thuế
	EmailCampaigns     string // Chiến dịch email
	Events             string // Sự kiện
	EventAttendances   string // Tham dự sự kiện
}

var (
	// Validate là validator singleton dùng cho toàn bộ handler
	Validate *validator.Validate

	// MongoDB_Session là client MongoDB dùng chung
	MongoDB_Session *mongo.Client

	// MongoDB_ServerConfig là cấu hình server đã load từ env
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_ColNames chứa tên các collection, gán trong cmd/server/init.go
	MongoDB_ColNames ColNames

	// RegistryCollections registry các *mongo.Collection theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()

	// RegistryDatabase registry các *mongo.Database theo tên
	RegistryDatabase = registry.NewRegistry[*mongo.Database]()
)
