// Package dto - DTO cho domain contacts.
package dto

// ContactCreateInput dữ liệu tạo contact mới.
// Các trường analytics (totalLifetimeGiving, rfmScore, ...) không nhận từ client.
type ContactCreateInput struct {
	FirstName        string                 `json:"firstName" validate:"required"`
	LastName         string                 `json:"lastName" validate:"required"`
	Email            string                 `json:"email,omitempty" validate:"omitempty,email"`
	Phone            string                 `json:"phone,omitempty"`
	ContactType      string                 `json:"contactType" validate:"required,oneof=individual organization foundation"`
	OrganizationName string                 `json:"organizationName,omitempty"`
	Address          map[string]interface{} `json:"address,omitempty"`
	Preferences      map[string]interface{} `json:"preferences,omitempty"`
	Tags             []string               `json:"tags,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
	EmailOptOut      bool                   `json:"emailOptOut,omitempty"`
}

// ContactUpdateInput dữ liệu cập nhật contact (partial update).
type ContactUpdateInput struct {
	FirstName        string                 `json:"firstName,omitempty"`
	LastName         string                 `json:"lastName,omitempty"`
	Email            string                 `json:"email,omitempty" validate:"omitempty,email"`
	Phone            string                 `json:"phone,omitempty"`
	ContactType      string                 `json:"contactType,omitempty" validate:"omitempty,oneof=individual organization foundation"`
	OrganizationName string                 `json:"organizationName,omitempty"`
	Address          map[string]interface{} `json:"address,omitempty"`
	Preferences      map[string]interface{} `json:"preferences,omitempty"`
	Tags             []string               `json:"tags,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
	EmailOptOut      bool                   `json:"emailOptOut,omitempty"`
}
