package communicationsvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "arts_crm/internal/api/base/service"
	contactmodels "arts_crm/internal/api/contacts/models"
	contactsvc "arts_crm/internal/api/contacts/service"
	"arts_crm/internal/global"
)

// SubscriptionService quản lý opt-out email marketing qua token unsubscribe
// per-contact. Token cấp một lần (uuid), nhúng vào link trong email.
type SubscriptionService struct {
	contactService *contactsvc.ContactService
}

// NewSubscriptionService tạo SubscriptionService mới.
func NewSubscriptionService() (*SubscriptionService, error) {
	contactService, err := contactsvc.NewContactService()
	if err != nil {
		return nil, fmt.Errorf("tạo ContactService: %w", err)
	}
	return &SubscriptionService{contactService: contactService}, nil
}

// EnsureUnsubscribeToken trả về token unsubscribe của contact, cấp mới nếu
// chưa có. Token đã cấp không bao giờ đổi để link trong email cũ còn dùng được.
func (s *SubscriptionService) EnsureUnsubscribeToken(ctx context.Context, contactID primitive.ObjectID) (string, error) {
	contact, err := s.contactService.FindOneById(ctx, contactID)
	if err != nil {
		return "", err
	}
	if contact.UnsubscribeToken != "" {
		return contact.UnsubscribeToken, nil
	}

	token := uuid.NewString()
	_, err = s.contactService.UpdateById(ctx, contactID, &basesvc.UpdateData{Set: bson.M{
		"unsubscribeToken": token,
	}})
	if err != nil {
		return "", err
	}
	return token, nil
}

// UnsubscribeURL tạo link unsubscribe đầy đủ từ token.
func (s *SubscriptionService) UnsubscribeURL(token string) string {
	return fmt.Sprintf("%s/unsubscribe/%s", global.MongoDB_ServerConfig.FrontendURL, token)
}

// Unsubscribe đánh dấu opt-out cho contact sở hữu token. Idempotent — click
// link nhiều lần cho cùng kết quả.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, token string) (contactmodels.Contact, error) {
	contact, err := s.contactService.FindOne(ctx, bson.M{"unsubscribeToken": token}, nil)
	if err != nil {
		return contact, err
	}
	if contact.EmailOptOut {
		return contact, nil
	}
	return s.contactService.UpdateById(ctx, contact.ID, &basesvc.UpdateData{Set: bson.M{
		"emailOptOut": true,
	}})
}
