package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"arts_crm/config"
	commmodels "arts_crm/internal/api/communications/models"
	contactmodels "arts_crm/internal/api/contacts/models"
	eventmodels "arts_crm/internal/api/events/models"
	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/database"
	"arts_crm/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Contacts = "contacts"
	global.MongoDB_ColNames.Transactions = "transactions"
	global.MongoDB_ColNames.Campaigns = "campaigns"
	global.MongoDB_ColNames.Pledges = "pledges"
	global.MongoDB_ColNames.RecurringDonations = "recurring_donations"
	global.MongoDB_ColNames.TaxReceipts = "tax_receipts"
	global.MongoDB_ColNames.EmailCampaigns = "email_campaigns"
	global.MongoDB_ColNames.Events = "events"
	global.MongoDB_ColNames.EventAttendances = "event_attendances"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection (theo tag `index` trong model)
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Contacts), contactmodels.Contact{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Transactions), txmodels.Transaction{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Campaigns), txmodels.Campaign{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Pledges), txmodels.Pledge{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.RecurringDonations), txmodels.RecurringDonation{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.TaxReceipts), txmodels.TaxReceipt{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.EmailCampaigns), commmodels.EmailCampaign{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Events), eventmodels.Event{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.EventAttendances), eventmodels.EventAttendance{})

	// Các index compound phức tạp cho truy vấn aggregate (không định nghĩa được qua tag)
	if err := database.CreateDonorAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create donor analytics indexes: %v", err)
	}
	logrus.Info("Created indexes")
}
