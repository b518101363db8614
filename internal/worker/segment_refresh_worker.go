// Package worker - SegmentRefreshWorker chấm lại điểm RFM và segment của
// donor theo chu kỳ. Điểm Recency giảm dần theo thời gian dù không có mutation
// nào — không chạy lại định kỳ thì segment sẽ sai dần.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	analyticssvc "arts_crm/internal/api/analytics/service"
	contactsvc "arts_crm/internal/api/contacts/service"
	"arts_crm/internal/logger"
)

// SegmentRefreshWorker worker rescoring donor segment định kỳ.
//
// Hai chế độ:
//   - full: Duyệt tất cả contact có donationCount >= 1, rescoring từng batch.
//     Dùng cho chạy hàng ngày — đảm bảo toàn bộ segment cập nhật.
//   - smart: Chỉ xử lý contact có lastDonationAt quanh các ngưỡng recency
//     (90, 180, 365, 730 ngày ±5). Giảm tải vì chỉ những contact đó mới có
//     thể đổi điểm R khi thời gian trôi.
type SegmentRefreshWorker struct {
	contactService *contactsvc.ContactService
	coordinator    *analyticssvc.TriggerCoordinator
	interval       time.Duration // Khoảng thời gian giữa các lần chạy (vd: 24h)
	batchSize      int           // Số contact tối đa mỗi batch (vd: 200)
	mode           string        // "full" hoặc "smart"
}

// NewSegmentRefreshWorker tạo worker mới.
//
// Tham số:
//   - coordinator: trigger coordinator dùng chung với API (khóa per-contact
//     đảm bảo an toàn khi chạy song song với mutation)
//   - interval: Khoảng cách giữa các lần chạy (mặc định: 24h)
//   - batchSize: Số contact tối đa mỗi batch (mặc định: 200)
//   - mode: "full" hoặc "smart"
func NewSegmentRefreshWorker(coordinator *analyticssvc.TriggerCoordinator, interval time.Duration, batchSize int, mode string) (*SegmentRefreshWorker, error) {
	contactService, err := contactsvc.NewContactService()
	if err != nil {
		return nil, err
	}
	if interval < time.Hour {
		interval = 24 * time.Hour
	}
	if batchSize <= 0 {
		batchSize = 200
	}
	if mode != contactsvc.SegmentRefreshModeFull && mode != contactsvc.SegmentRefreshModeSmart {
		mode = contactsvc.SegmentRefreshModeSmart
	}
	return &SegmentRefreshWorker{
		contactService: contactService,
		coordinator:    coordinator,
		interval:       interval,
		batchSize:      batchSize,
		mode:           mode,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *SegmentRefreshWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
		"mode":      w.mode,
	}).Info("📊 [SEGMENT_REFRESH] Starting Segment Refresh Worker...")

	// Chạy ngay lần đầu sau 1 phút (tránh chạy lúc startup)
	time.Sleep(time.Minute)

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [SEGMENT_REFRESH] Segment Refresh Worker stopped")
			return
		case <-ticker.C:
			w.runBatch(ctx, log)
		}
	}
}

// runBatch chạy một đợt rescoring: lấy batch contact → aggregate+score từng
// người qua coordinator.
func (w *SegmentRefreshWorker) runBatch(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("📊 [SEGMENT_REFRESH] Panic khi xử lý, sẽ tiếp tục lần chạy tiếp theo")
		}
	}()

	skip := 0
	totalProcessed := 0

	for {
		ids, err := w.contactService.ListContactIdsForSegmentRefresh(ctx, w.mode, w.batchSize, skip)
		if err != nil {
			log.WithError(err).Error("📊 [SEGMENT_REFRESH] Lỗi lấy danh sách contact cần rescoring")
			return
		}
		if len(ids) == 0 {
			break
		}

		processed := 0
		for _, id := range ids {
			if err := w.coordinator.RecalculateContact(ctx, id); err != nil {
				log.WithError(err).WithFields(map[string]interface{}{
					"contactId": id.Hex(),
				}).Warn("📊 [SEGMENT_REFRESH] Rescoring thất bại, bỏ qua")
				continue
			}
			processed++
		}
		totalProcessed += processed

		if processed > 0 {
			log.WithFields(map[string]interface{}{
				"batchProcessed": processed,
				"batchSize":      len(ids),
				"totalProcessed": totalProcessed,
			}).Info("📊 [SEGMENT_REFRESH] Đã cập nhật donor segment")
		}

		// Chế độ smart: chỉ 1 batch (ít contact gần ngưỡng). Full: tiếp tục đến hết.
		if w.mode == contactsvc.SegmentRefreshModeSmart || len(ids) < w.batchSize {
			break
		}
		skip += w.batchSize
	}
}
