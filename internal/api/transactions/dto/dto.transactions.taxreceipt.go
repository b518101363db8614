package dto

// TaxReceiptIssueInput dữ liệu cho POST /tax-receipts/issue.
// Biên nhận chỉ phát hành cho giao dịch donation đã completed.
type TaxReceiptIssueInput struct {
	TransactionID    string  `json:"transactionId" validate:"required,mongodb"`
	QuidProQuoAmount float64 `json:"quidProQuoAmount,omitempty" validate:"omitempty,gte=0"`
}
