// Package models - Contact thuộc domain contacts (collection contacts).
// Lưu donor/constituent của tổ chức, kèm các trường analytics cached
// (totalLifetimeGiving, donationCount, lastDonationAt, rfmScore, donorSegment).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact lưu một donor/constituent (contacts).
type Contact struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName" index:"single:1"`
	Email     string `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`

	// individual | organization | foundation
	ContactType string `json:"contactType" bson:"contactType" index:"single:1"`

	// Tên tổ chức khi contactType != individual
	OrganizationName string `json:"organizationName,omitempty" bson:"organizationName,omitempty"`

	// Address dạng map tự do (street, city, state, postalCode, country)
	Address map[string]interface{} `json:"address,omitempty" bson:"address,omitempty"`

	// Preferences: kênh liên hệ ưa thích, chương trình quan tâm, ...
	Preferences map[string]interface{} `json:"preferences,omitempty" bson:"preferences,omitempty"`

	Tags  []string `json:"tags,omitempty" bson:"tags,omitempty"`
	Notes string   `json:"notes,omitempty" bson:"notes,omitempty"`

	// Email marketing
	EmailOptOut bool `json:"emailOptOut" bson:"emailOptOut"`

	// Token trong link unsubscribe, cấp lần đầu khi gửi email marketing
	UnsubscribeToken string `json:"-" bson:"unsubscribeToken,omitempty" index:"unique,sparse"`

	// ===== Các trường analytics cached =====
	// CHỈ được ghi bởi analytics (GivingAggregator / RFMScorer), không bao giờ
	// do user ghi trực tiếp. Luôn tính lại được từ transactions — là cache,
	// không phải nguồn sự thật.

	// Tổng giá trị donation đã hoàn tất (USD)
	TotalLifetimeGiving float64 `json:"totalLifetimeGiving" bson:"totalLifetimeGiving"`

	// Số donation đã hoàn tất
	DonationCount int `json:"donationCount" bson:"donationCount" index:"single:1"`

	// Unix ms của donation gần nhất; 0 = chưa có donation nào
	LastDonationAt int64 `json:"lastDonationAt,omitempty" bson:"lastDonationAt,omitempty" index:"single:-1"`

	// Chuỗi 3 chữ số "RFM", mỗi chữ số 1-5; rỗng = chưa tính
	RfmScore string `json:"rfmScore,omitempty" bson:"rfmScore,omitempty"`

	// champions | loyal_customers | new_customers | at_risk | needs_attention; rỗng = chưa tính
	DonorSegment string `json:"donorSegment,omitempty" bson:"donorSegment,omitempty" index:"single:1"`

	// Metadata
	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
