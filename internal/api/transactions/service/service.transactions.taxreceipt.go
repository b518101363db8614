package transactionsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "arts_crm/internal/api/base/service"
	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
	"arts_crm/internal/utility"
)

// TaxReceiptService phát hành biên nhận thuế cho giao dịch donation đã
// completed. Số biên nhận tuần tự theo năm phát hành ("YYYY-NNNNNN").
type TaxReceiptService struct {
	*basesvc.BaseServiceMongoImpl[txmodels.TaxReceipt]
	transactionService *TransactionService
}

// NewTaxReceiptService tạo TaxReceiptService mới.
func NewTaxReceiptService(transactionService *TransactionService) (*TaxReceiptService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TaxReceipts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.TaxReceipts, common.ErrNotFound)
	}
	return &TaxReceiptService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[txmodels.TaxReceipt](coll),
		transactionService:   transactionService,
	}, nil
}

// nextSequence trả về số thứ tự kế tiếp trong năm (bắt đầu từ 1).
func (s *TaxReceiptService) nextSequence(ctx context.Context, year int) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "receiptSequence", Value: -1}})
	last, err := s.FindOne(ctx, bson.M{"receiptYear": year}, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return last.ReceiptSequence + 1, nil
}

// IssueReceipt phát hành biên nhận cho một giao dịch. Mỗi giao dịch chỉ có
// một biên nhận; phần khấu trừ = max(0, amount − quidProQuo).
func (s *TaxReceiptService) IssueReceipt(ctx context.Context, transactionID primitive.ObjectID, quidProQuo float64) (txmodels.TaxReceipt, error) {
	var receipt txmodels.TaxReceipt

	tx, err := s.transactionService.FindOneById(ctx, transactionID)
	if err != nil {
		return receipt, fmt.Errorf("tìm giao dịch %s: %w", transactionID.Hex(), err)
	}
	if !txmodels.IsCountableDonation(tx.Type, tx.Status) {
		return receipt, common.NewError(common.ErrCodeBusinessOperation,
			"Chỉ phát hành biên nhận cho giao dịch donation đã completed",
			common.StatusBadRequest, nil)
	}

	exists, err := s.DocumentExists(ctx, bson.M{"transactionId": transactionID})
	if err != nil {
		return receipt, err
	}
	if exists {
		return receipt, common.NewError(common.ErrCodeBusinessOperation,
			fmt.Sprintf("Giao dịch %s đã có biên nhận", transactionID.Hex()),
			common.StatusConflict, nil)
	}

	now := utility.CurrentTimeInMilli()
	year := time.UnixMilli(now).UTC().Year()
	seq, err := s.nextSequence(ctx, year)
	if err != nil {
		return receipt, err
	}

	receipt = txmodels.TaxReceipt{
		ContactID:        tx.ContactID,
		TransactionID:    tx.ID,
		ReceiptYear:      year,
		ReceiptSequence:  seq,
		ReceiptNumber:    txmodels.FormatReceiptNumber(year, seq),
		Amount:           tx.Amount,
		QuidProQuoAmount: quidProQuo,
		DeductibleAmount: txmodels.DeductibleAmount(tx.Amount, quidProQuo),
		IssuedAt:         now,
	}
	return s.InsertOne(ctx, receipt)
}

// MarkEmailSent ghi nhận thời điểm đã gửi email biên nhận.
func (s *TaxReceiptService) MarkEmailSent(ctx context.Context, id primitive.ObjectID) (txmodels.TaxReceipt, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{Set: bson.M{
		"emailSentAt": utility.CurrentTimeInMilli(),
	}})
}

// FindByContact trả về các biên nhận của một contact.
func (s *TaxReceiptService) FindByContact(ctx context.Context, contactID primitive.ObjectID) ([]txmodels.TaxReceipt, error) {
	return s.Find(ctx, bson.M{"contactId": contactID}, nil)
}
