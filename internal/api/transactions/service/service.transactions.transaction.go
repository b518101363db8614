// Package transactionsvc - Service cho domain transactions.
package transactionsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "arts_crm/internal/api/base/service"
	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/utility"
)

// ChangeNotifier nhận thông báo khi một transaction thay đổi qua ranh giới
// "được tính vào aggregate". Trigger coordinator của analytics implement
// interface này; notifier tự nuốt lỗi recompute nên method không trả error.
type ChangeNotifier interface {
	OnTransactionChanged(ctx context.Context, change txmodels.TransactionChange)
}

// TransactionService xử lý logic nghiệp vụ giao dịch, gồm state machine
// chuyển trạng thái và việc báo cho coordinator khi mutation cần tính lại.
type TransactionService struct {
	*basesvc.BaseServiceMongoImpl[txmodels.Transaction]
	notifier ChangeNotifier
}

// NewTransactionService tạo TransactionService mới. notifier có thể nil
// (khi đó mutation không kích hoạt tính lại — dùng cho test/tool nội bộ).
func NewTransactionService(notifier ChangeNotifier) (*TransactionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Transactions, common.ErrNotFound)
	}
	return &TransactionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[txmodels.Transaction](coll),
		notifier:             notifier,
	}, nil
}

func (s *TransactionService) notify(ctx context.Context, change txmodels.TransactionChange) {
	if s.notifier == nil || !change.CrossesCountedBoundary() {
		return
	}
	s.notifier.OnTransactionChanged(ctx, change)
}

// CreateTransaction tạo giao dịch mới. Status mặc định pending,
// transactionDate mặc định now. Nếu tạo thẳng ở completed thì báo coordinator.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx txmodels.Transaction) (txmodels.Transaction, error) {
	if tx.Status == "" {
		tx.Status = txmodels.TxStatusPending
	}
	if !txmodels.IsValidStatus(tx.Status) {
		return tx, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái giao dịch '%s' không hợp lệ", tx.Status),
			common.StatusBadRequest, nil)
	}
	if tx.TransactionDate == 0 {
		tx.TransactionDate = utility.CurrentTimeInMilli()
	}

	created, err := s.InsertOne(ctx, tx)
	if err != nil {
		return created, err
	}

	s.notify(ctx, txmodels.TransactionChange{
		TransactionID: created.ID,
		ContactID:     created.ContactID,
		CampaignID:    created.CampaignID,
		Type:          created.Type,
		OldStatus:     "",
		NewStatus:     created.Status,
	})
	return created, nil
}

// UpdateStatus chuyển trạng thái giao dịch theo state machine. Chuyển không
// hợp lệ trả lỗi BIZ; chuyển hợp lệ được persist rồi báo coordinator nếu đi
// qua ranh giới completed.
func (s *TransactionService) UpdateStatus(ctx context.Context, id primitive.ObjectID, newStatus string) (txmodels.Transaction, error) {
	tx, err := s.FindOneById(ctx, id)
	if err != nil {
		return tx, err
	}

	if tx.Status == newStatus {
		return tx, nil
	}
	if !txmodels.CanTransition(tx.Status, newStatus) {
		return tx, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển trạng thái giao dịch từ '%s' sang '%s'", tx.Status, newStatus),
			common.StatusBadRequest, nil)
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: bson.M{"status": newStatus}})
	if err != nil {
		return updated, err
	}

	s.notify(ctx, txmodels.TransactionChange{
		TransactionID: updated.ID,
		ContactID:     updated.ContactID,
		CampaignID:    updated.CampaignID,
		Type:          updated.Type,
		OldStatus:     tx.Status,
		NewStatus:     newStatus,
	})
	return updated, nil
}

// DeleteTransaction xóa giao dịch. Nếu giao dịch đang được tính vào aggregate
// thì báo coordinator để trừ lại.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id primitive.ObjectID) error {
	tx, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DeleteById(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, txmodels.TransactionChange{
		TransactionID: tx.ID,
		ContactID:     tx.ContactID,
		CampaignID:    tx.CampaignID,
		Type:          tx.Type,
		OldStatus:     tx.Status,
		NewStatus:     "",
	})
	return nil
}

// FindByContact trả về các giao dịch của một contact, mới nhất trước.
func (s *TransactionService) FindByContact(ctx context.Context, contactID primitive.ObjectID) ([]txmodels.Transaction, error) {
	return s.Find(ctx, bson.M{"contactId": contactID}, nil)
}

// FindByCampaign trả về các giao dịch gắn với một campaign.
func (s *TransactionService) FindByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]txmodels.Transaction, error) {
	return s.Find(ctx, bson.M{"campaignId": campaignID}, nil)
}
