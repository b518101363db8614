package communicationsvc

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	contactmodels "arts_crm/internal/api/contacts/models"
	txmodels "arts_crm/internal/api/transactions/models"
	"arts_crm/internal/common"
	"arts_crm/internal/global"
)

// ReceiptMailer gửi email biên nhận thuế qua SMTP. Không cấu hình SMTP_HOST
// thì mailer tắt — gọi gửi sẽ trả lỗi nghiệp vụ thay vì panic.
type ReceiptMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewReceiptMailer tạo ReceiptMailer từ cấu hình SMTP trong env.
func NewReceiptMailer() *ReceiptMailer {
	cfg := global.MongoDB_ServerConfig
	if cfg == nil || cfg.SMTP_Host == "" {
		return &ReceiptMailer{}
	}
	return &ReceiptMailer{
		dialer: gomail.NewDialer(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_Username, cfg.SMTP_Password),
		from:   cfg.SMTP_From,
	}
}

// Enabled cho biết mailer có cấu hình SMTP hay không.
func (m *ReceiptMailer) Enabled() bool {
	return m.dialer != nil
}

// SendTaxReceipt gửi email biên nhận thuế tới contact. Contact phải có email.
func (m *ReceiptMailer) SendTaxReceipt(receipt txmodels.TaxReceipt, contact contactmodels.Contact) error {
	if !m.Enabled() {
		return common.NewError(common.ErrCodeBusinessOperation,
			"Chưa cấu hình SMTP, không thể gửi email biên nhận",
			common.StatusServiceUnavailable, nil)
	}
	if contact.Email == "" {
		return common.NewError(common.ErrCodeBusinessOperation,
			"Contact không có địa chỉ email",
			common.StatusBadRequest, nil)
	}

	issuedDate := time.UnixMilli(receipt.IssuedAt).UTC().Format("02/01/2006")
	body := fmt.Sprintf(
		"Xin chào %s %s,\n\n"+
			"Cảm ơn bạn đã đóng góp. Biên nhận thuế của bạn:\n\n"+
			"  Số biên nhận:     %s\n"+
			"  Ngày phát hành:   %s\n"+
			"  Số tiền:          $%.2f\n"+
			"  Phần khấu trừ:    $%.2f\n\n"+
			"Vui lòng giữ email này cho hồ sơ khai thuế của bạn.\n",
		contact.FirstName, contact.LastName,
		receipt.ReceiptNumber, issuedDate,
		receipt.Amount, receipt.DeductibleAmount,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", contact.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Biên nhận thuế %s", receipt.ReceiptNumber))
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("gửi email biên nhận %s: %w", receipt.ReceiptNumber, err)
	}
	return nil
}
