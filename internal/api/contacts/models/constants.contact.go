package models

// Loại contact
const (
	ContactTypeIndividual   = "individual"   // Cá nhân
	ContactTypeOrganization = "organization" // Tổ chức
	ContactTypeFoundation   = "foundation"   // Quỹ tài trợ
)

// Donor segment — nhãn phân loại donor tính từ điểm RFM.
// Giá trị được ghi bởi analytics, không bao giờ do người dùng ghi trực tiếp.
const (
	SegmentChampions      = "champions"       // R≥4, F≥4, M≥4
	SegmentLoyalCustomers = "loyal_customers" // R≥4, F≥3, M≥3
	SegmentNewCustomers   = "new_customers"   // R≥4, F≤2
	SegmentAtRisk         = "at_risk"         // R≤2, F≥3, M≥3
	SegmentNeedsAttention = "needs_attention" // còn lại
)

// AllSegments liệt kê các segment hợp lệ (dùng cho filter/validate).
var AllSegments = []string{
	SegmentChampions,
	SegmentLoyalCustomers,
	SegmentNewCustomers,
	SegmentAtRisk,
	SegmentNeedsAttention,
}
