package models

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaxReceipt lưu biên nhận thuế cho một giao dịch donation (tax_receipts).
// Collection này do hệ thống ghi (IssueReceipt), API chỉ đọc.
type TaxReceipt struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	ContactID     primitive.ObjectID `json:"contactId" bson:"contactId" index:"single:1"`
	TransactionID primitive.ObjectID `json:"transactionId" bson:"transactionId" index:"unique"`

	// Năm phát hành và số thứ tự trong năm; receiptNumber = "YYYY-NNNNNN"
	ReceiptYear     int    `json:"receiptYear" bson:"receiptYear" index:"single:1"`
	ReceiptSequence int    `json:"receiptSequence" bson:"receiptSequence"`
	ReceiptNumber   string `json:"receiptNumber" bson:"receiptNumber" index:"unique"`

	// Số tiền giao dịch gốc
	Amount float64 `json:"amount" bson:"amount"`

	// Giá trị hàng hóa/dịch vụ nhận lại (quid pro quo), trừ khỏi phần khấu trừ
	QuidProQuoAmount float64 `json:"quidProQuoAmount" bson:"quidProQuoAmount"`

	// Phần được khấu trừ thuế = max(0, amount − quidProQuoAmount)
	DeductibleAmount float64 `json:"deductibleAmount" bson:"deductibleAmount"`

	// Unix ms thời điểm phát hành
	IssuedAt int64 `json:"issuedAt" bson:"issuedAt"`

	// Unix ms thời điểm gửi email biên nhận; 0 = chưa gửi
	EmailSentAt int64 `json:"emailSentAt,omitempty" bson:"emailSentAt,omitempty"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// FormatReceiptNumber tạo số biên nhận dạng "YYYY-NNNNNN".
func FormatReceiptNumber(year, sequence int) string {
	return fmt.Sprintf("%d-%06d", year, sequence)
}

// DeductibleAmount tính phần khấu trừ thuế, không bao giờ âm.
func DeductibleAmount(amount, quidProQuo float64) float64 {
	return math.Max(0, amount-quidProQuo)
}
