// Package database - Index bổ sung cho donor analytics (compound phức tạp) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"arts_crm/internal/global"
)

// CreateDonorAdditionalIndexes tạo các index bổ sung cho các truy vấn aggregate của analytics.
// Gọi sau CreateIndexes cho từng collection.
func CreateDonorAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// transactions: (contactId, type, status) — aggregate giving của contact
	transactions := db.Collection(global.MongoDB_ColNames.Transactions)
	if _, err := transactions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "contactId", Value: 1},
			{Key: "type", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("transaction_contact_type_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// transactions: (campaignId, status) — rollup chiến dịch
	if _, err := transactions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "campaignId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("transaction_campaign_status").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// transactions: (contactId, campaignId, transactionDate) — tính amountPaid của pledge
	if _, err := transactions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "contactId", Value: 1},
			{Key: "campaignId", Value: 1},
			{Key: "transactionDate", Value: 1},
		},
		Options: options.Index().SetName("transaction_contact_campaign_date").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// contacts: (donationCount, lastDonationAt) — batch rescoring của worker
	contacts := db.Collection(global.MongoDB_ColNames.Contacts)
	if _, err := contacts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "donationCount", Value: 1},
			{Key: "lastDonationAt", Value: 1},
		},
		Options: options.Index().SetName("contact_donationcount_lastdonation"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// pledges: (contactId, campaignId, status) — tìm pledge liên quan khi transaction đổi trạng thái
	pledges := db.Collection(global.MongoDB_ColNames.Pledges)
	if _, err := pledges.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "contactId", Value: 1},
			{Key: "campaignId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("pledge_contact_campaign_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// event_attendances: (eventId, status) — rollup sự kiện
	attendances := db.Collection(global.MongoDB_ColNames.EventAttendances)
	if _, err := attendances.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "eventId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("event_attendance_event_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// tax_receipts: (receiptYear, receiptSequence) unique — đảm bảo số biên nhận không trùng
	receipts := db.Collection(global.MongoDB_ColNames.TaxReceipts)
	if _, err := receipts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "receiptYear", Value: 1},
			{Key: "receiptSequence", Value: 1},
		},
		Options: options.Index().SetName("tax_receipt_year_sequence_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
