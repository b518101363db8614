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

// RecurringDonationService quản lý lịch đóng góp định kỳ. Thu một kỳ sẽ tạo
// giao dịch donation completed qua TransactionService, nhờ đó analytics được
// kích hoạt như mọi donation khác.
type RecurringDonationService struct {
	*basesvc.BaseServiceMongoImpl[txmodels.RecurringDonation]
	transactionService *TransactionService
}

// NewRecurringDonationService tạo RecurringDonationService mới.
func NewRecurringDonationService(transactionService *TransactionService) (*RecurringDonationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.RecurringDonations)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.RecurringDonations, common.ErrNotFound)
	}
	return &RecurringDonationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[txmodels.RecurringDonation](coll),
		transactionService:   transactionService,
	}, nil
}

// CreateRecurringDonation tạo lịch mới ở trạng thái active. startDate mặc
// định now, nextPaymentDate = startDate (kỳ đầu thu ngay khi đến lịch).
func (s *RecurringDonationService) CreateRecurringDonation(ctx context.Context, rec txmodels.RecurringDonation) (txmodels.RecurringDonation, error) {
	rec.Status = txmodels.RecurringStatusActive
	rec.PaymentCount = 0
	rec.TotalCollected = 0
	rec.LastPaymentDate = 0
	if rec.StartDate == 0 {
		rec.StartDate = utility.CurrentTimeInMilli()
	}
	if rec.NextPaymentDate == 0 {
		rec.NextPaymentDate = rec.StartDate
	}
	return s.InsertOne(ctx, rec)
}

// ProcessRecurringPayment thu một kỳ của lịch: tạo giao dịch donation
// completed (kích hoạt tính lại aggregate của contact) rồi tiến con trỏ lịch
// và các counter.
func (s *RecurringDonationService) ProcessRecurringPayment(ctx context.Context, id primitive.ObjectID) (txmodels.RecurringDonation, error) {
	rec, err := s.FindOneById(ctx, id)
	if err != nil {
		return rec, err
	}
	if rec.Status != txmodels.RecurringStatusActive {
		return rec, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Lịch đóng góp đang ở trạng thái '%s', chỉ thu được khi active", rec.Status),
			common.StatusBadRequest, nil)
	}

	now := utility.CurrentTimeInMilli()
	next, err := txmodels.NextPaymentTime(rec.NextPaymentDate, rec.Frequency)
	if err != nil {
		return rec, common.NewError(common.ErrCodeBusinessState, err.Error(), common.StatusBadRequest, nil)
	}

	_, err = s.transactionService.CreateTransaction(ctx, txmodels.Transaction{
		ContactID:       rec.ContactID,
		CampaignID:      rec.CampaignID,
		Amount:          rec.Amount,
		Type:            txmodels.TxTypeDonation,
		Status:          txmodels.TxStatusCompleted,
		TransactionDate: now,
		PaymentMethod:   rec.PaymentMethod,
	})
	if err != nil {
		return rec, fmt.Errorf("tạo giao dịch cho kỳ thu: %w", err)
	}

	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: bson.M{
		"paymentCount":    rec.PaymentCount + 1,
		"totalCollected":  rec.TotalCollected + rec.Amount,
		"lastPaymentDate": now,
		"nextPaymentDate": next,
	}})
}

// FindDue trả về các lịch active đã đến kỳ thu (nextPaymentDate ≤ now).
func (s *RecurringDonationService) FindDue(ctx context.Context, nowMilli int64) ([]txmodels.RecurringDonation, error) {
	return s.Find(ctx, bson.M{
		"status":          txmodels.RecurringStatusActive,
		"nextPaymentDate": bson.M{"$lte": nowMilli},
	}, nil)
}
