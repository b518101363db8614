// Package analyticssvc - Test trigger coordinator với các recalculator giả.
package analyticssvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	txmodels "arts_crm/internal/api/transactions/models"
)

// fakeRecalculators ghi lại thứ tự các lời gọi để kiểm tra ordering.
type fakeRecalculators struct {
	calls      []string
	givingErr  error
	scoreErr   error
	donorIds   []primitive.ObjectID
}

func (f *fakeRecalculators) RecalculateContactGiving(ctx context.Context, contactID primitive.ObjectID) error {
	f.calls = append(f.calls, "giving:"+contactID.Hex())
	return f.givingErr
}

func (f *fakeRecalculators) ScoreContact(ctx context.Context, contactID primitive.ObjectID) error {
	f.calls = append(f.calls, "score:"+contactID.Hex())
	return f.scoreErr
}

func (f *fakeRecalculators) DonorContactIds(ctx context.Context) ([]primitive.ObjectID, error) {
	return f.donorIds, nil
}

func (f *fakeRecalculators) RecalculateCampaign(ctx context.Context, campaignID primitive.ObjectID) error {
	f.calls = append(f.calls, "campaign:"+campaignID.Hex())
	return nil
}

func (f *fakeRecalculators) RecalculatePledgesFor(ctx context.Context, contactID, campaignID primitive.ObjectID) error {
	f.calls = append(f.calls, "pledges:"+contactID.Hex())
	return nil
}

func newTestCoordinator() (*TriggerCoordinator, *fakeRecalculators) {
	f := &fakeRecalculators{}
	return NewTriggerCoordinator(f, f, f), f
}

// Aggregate phải chạy xong trước khi chấm điểm — điểm đọc output của aggregate.
func TestCoordinator_AggregateBeforeScore(t *testing.T) {
	tc, f := newTestCoordinator()
	contactID := primitive.NewObjectID()
	campaignID := primitive.NewObjectID()

	tc.OnTransactionChanged(context.Background(), txmodels.TransactionChange{
		TransactionID: primitive.NewObjectID(),
		ContactID:     contactID,
		CampaignID:    campaignID,
		Type:          txmodels.TxTypeDonation,
		OldStatus:     txmodels.TxStatusPending,
		NewStatus:     txmodels.TxStatusCompleted,
	})

	assert.Equal(t, []string{
		"giving:" + contactID.Hex(),
		"score:" + contactID.Hex(),
		"campaign:" + campaignID.Hex(),
		"pledges:" + contactID.Hex(),
	}, f.calls, "thứ tự phải là giving → score → campaign → pledges")
}

// Mutation không đi qua ranh giới completed thì không kích hoạt gì.
func TestCoordinator_IgnoresNonBoundaryChange(t *testing.T) {
	tc, f := newTestCoordinator()

	tc.OnTransactionChanged(context.Background(), txmodels.TransactionChange{
		TransactionID: primitive.NewObjectID(),
		ContactID:     primitive.NewObjectID(),
		OldStatus:     txmodels.TxStatusPending,
		NewStatus:     txmodels.TxStatusProcessing,
	})

	assert.Empty(t, f.calls, "pending → processing không được kích hoạt tính lại")
}

// Giao dịch không gắn campaign chỉ tính lại đơn vị contact.
func TestCoordinator_SkipsCampaignWhenUnset(t *testing.T) {
	tc, f := newTestCoordinator()
	contactID := primitive.NewObjectID()

	tc.OnTransactionChanged(context.Background(), txmodels.TransactionChange{
		TransactionID: primitive.NewObjectID(),
		ContactID:     contactID,
		OldStatus:     "",
		NewStatus:     txmodels.TxStatusCompleted,
	})

	assert.Equal(t, []string{
		"giving:" + contactID.Hex(),
		"score:" + contactID.Hex(),
	}, f.calls)
}

// Lỗi recompute contact được nuốt, campaign/pledge vẫn chạy tiếp.
func TestCoordinator_SwallowsContactError(t *testing.T) {
	tc, f := newTestCoordinator()
	f.givingErr = errors.New("mongo down")
	campaignID := primitive.NewObjectID()

	// Không panic, không trả lỗi ra ngoài
	tc.OnTransactionChanged(context.Background(), txmodels.TransactionChange{
		TransactionID: primitive.NewObjectID(),
		ContactID:     primitive.NewObjectID(),
		CampaignID:    campaignID,
		OldStatus:     txmodels.TxStatusCompleted,
		NewStatus:     txmodels.TxStatusRefunded,
	})

	assert.Contains(t, f.calls, "campaign:"+campaignID.Hex(),
		"campaign rollup vẫn phải chạy dù recompute contact lỗi")
}

// RecalculateContact dừng ở aggregate nếu aggregate lỗi — không chấm điểm
// trên dữ liệu cũ.
func TestCoordinator_RecalculateContact_StopsOnGivingError(t *testing.T) {
	tc, f := newTestCoordinator()
	f.givingErr = errors.New("mongo down")
	contactID := primitive.NewObjectID()

	err := tc.RecalculateContact(context.Background(), contactID)
	assert.Error(t, err)
	assert.Equal(t, []string{"giving:" + contactID.Hex()}, f.calls,
		"không được chấm điểm khi aggregate thất bại")
}

func TestCoordinator_RecalculateAllContacts(t *testing.T) {
	tc, f := newTestCoordinator()
	id1 := primitive.NewObjectID()
	id2 := primitive.NewObjectID()
	f.donorIds = []primitive.ObjectID{id1, id2}

	result, err := tc.RecalculateAllContacts(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Failed)
	// Mỗi contact một cặp giving+score
	assert.Len(t, f.calls, 4)
}

// extraIds được gộp và khử trùng lặp với danh sách donor.
func TestCoordinator_RecalculateAllContacts_ExtraIdsDeduped(t *testing.T) {
	tc, f := newTestCoordinator()
	id1 := primitive.NewObjectID()
	id2 := primitive.NewObjectID()
	f.donorIds = []primitive.ObjectID{id1}

	result, err := tc.RecalculateAllContacts(context.Background(), id1, id2)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Processed, "id1 trùng chỉ được xử lý một lần")
}
