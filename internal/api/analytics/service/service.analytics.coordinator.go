package analyticssvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/logger"
	"arts_crm/internal/utility"
)

// ContactRecalculator tính lại aggregate giving và điểm RFM của contact.
type ContactRecalculator interface {
	RecalculateContactGiving(ctx context.Context, contactID primitive.ObjectID) error
	ScoreContact(ctx context.Context, contactID primitive.ObjectID) error
	DonorContactIds(ctx context.Context) ([]primitive.ObjectID, error)
}

// CampaignRecalculator rollup các trường derived của campaign.
type CampaignRecalculator interface {
	RecalculateCampaign(ctx context.Context, campaignID primitive.ObjectID) error
}

// PledgeRecalculator rollup các pledge của một cặp contact+campaign.
type PledgeRecalculator interface {
	RecalculatePledgesFor(ctx context.Context, contactID, campaignID primitive.ObjectID) error
}

// TriggerCoordinator quyết định, sau mỗi mutation giao dịch, phép tính lại
// nào phải chạy và theo thứ tự nào: aggregate trước, chấm điểm ngay sau
// (điểm đọc output tươi của aggregate), rollup campaign/pledge độc lập với
// đơn vị contact. Giữ tham chiếu trực tiếp tới các recalculator — không có
// hook ngầm qua registry.
//
// Mọi lỗi recompute đều được log rồi nuốt: recompute thất bại không bao giờ
// làm fail mutation đã kích hoạt nó (chạy lại được qua recalculate-all).
type TriggerCoordinator struct {
	contacts  ContactRecalculator
	campaigns CampaignRecalculator
	pledges   PledgeRecalculator

	// khóa theo contactID.Hex(): hai donation đồng thời vào cùng contact
	// không được đua nhau ghi điểm cũ
	locks *utility.KeyedMutex
}

// NewTriggerCoordinator tạo TriggerCoordinator với các recalculator được
// inject tường minh.
func NewTriggerCoordinator(contacts ContactRecalculator, campaigns CampaignRecalculator, pledges PledgeRecalculator) *TriggerCoordinator {
	return &TriggerCoordinator{
		contacts:  contacts,
		campaigns: campaigns,
		pledges:   pledges,
		locks:     utility.NewKeyedMutex(),
	}
}

// OnTransactionChanged nhận một mutation giao dịch. Chỉ mutation đi qua ranh
// giới completed (vào hoặc ra) mới kích hoạt tính lại; còn lại bỏ qua.
func (tc *TriggerCoordinator) OnTransactionChanged(ctx context.Context, change txmodels.TransactionChange) {
	if !change.CrossesCountedBoundary() {
		return
	}

	if err := tc.RecalculateContact(ctx, change.ContactID); err != nil {
		logger.WithModule("analytics").WithError(err).Warnf(
			"⚠️ Tính lại contact %s thất bại sau mutation giao dịch %s",
			change.ContactID.Hex(), change.TransactionID.Hex())
	}

	if change.CampaignID.IsZero() {
		return
	}
	if err := tc.campaigns.RecalculateCampaign(ctx, change.CampaignID); err != nil {
		logger.WithModule("analytics").WithError(err).Warnf(
			"⚠️ Rollup campaign %s thất bại", change.CampaignID.Hex())
	}
	if err := tc.pledges.RecalculatePledgesFor(ctx, change.ContactID, change.CampaignID); err != nil {
		logger.WithModule("analytics").WithError(err).Warnf(
			"⚠️ Rollup pledge cho contact %s / campaign %s thất bại",
			change.ContactID.Hex(), change.CampaignID.Hex())
	}
}

// RecalculateContact chạy đơn vị aggregate+score của một contact dưới khóa
// per-contact. Hai lần gọi đồng thời cho cùng contact được tuần tự hóa; kết
// quả cuối là của lần commit sau (last-writer-wins trên dữ liệu sống).
func (tc *TriggerCoordinator) RecalculateContact(ctx context.Context, contactID primitive.ObjectID) error {
	key := contactID.Hex()
	tc.locks.Lock(key)
	defer tc.locks.Unlock(key)

	if err := tc.contacts.RecalculateContactGiving(ctx, contactID); err != nil {
		return err
	}
	return tc.contacts.ScoreContact(ctx, contactID)
}

// RecalculateCampaign rollup một campaign theo yêu cầu (route thủ công).
func (tc *TriggerCoordinator) RecalculateCampaign(ctx context.Context, campaignID primitive.ObjectID) error {
	return tc.campaigns.RecalculateCampaign(ctx, campaignID)
}

// BatchResult là kết quả của một lần recalculate hàng loạt.
type BatchResult struct {
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	FailedIds []string `json:"failedIds,omitempty"`
}

// Giới hạn số id lỗi giữ lại trong kết quả batch, tránh phình log/response.
const maxFailedIds = 10

// RecalculateAllContacts chạy lại đơn vị aggregate+score cho mọi contact có
// donationCount > 0, cộng thêm extraIds (ví dụ contact vừa bị refund hết về
// 0 donation). An toàn khi chạy song song với trigger per-contact nhờ khóa
// theo contact; lỗi từng contact được ghi nhận, không dừng batch.
func (tc *TriggerCoordinator) RecalculateAllContacts(ctx context.Context, extraIds ...primitive.ObjectID) (BatchResult, error) {
	result := BatchResult{}

	ids, err := tc.contacts.DonorContactIds(ctx)
	if err != nil {
		return result, err
	}

	seen := make(map[primitive.ObjectID]bool, len(ids)+len(extraIds))
	all := make([]primitive.ObjectID, 0, len(ids)+len(extraIds))
	for _, id := range append(ids, extraIds...) {
		if !seen[id] {
			seen[id] = true
			all = append(all, id)
		}
	}

	for _, id := range all {
		if err := tc.RecalculateContact(ctx, id); err != nil {
			result.Failed++
			if len(result.FailedIds) < maxFailedIds {
				result.FailedIds = append(result.FailedIds, id.Hex())
			}
			logger.WithModule("analytics").WithError(err).Warnf(
				"⚠️ Batch rescoring: contact %s thất bại", id.Hex())
			continue
		}
		result.Processed++
	}

	logger.WithModule("analytics").Infof(
		"🔄 Batch rescoring xong: %d thành công, %d thất bại", result.Processed, result.Failed)
	return result, nil
}
