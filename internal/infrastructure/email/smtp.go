package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/sellora-inc/sellora/internal/domain/subscription"
	"github.com/sellora-inc/sellora/internal/domain/tenant"
	"github.com/sellora-inc/sellora/internal/domain/user"
	"github.com/sellora-inc/sellora/internal/shared/constants"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPNotifier delivers plan-change notices to a tenant's active admins over
// SMTP. Delivery is best-effort; callers treat failures as non-fatal.
type SMTPNotifier struct {
	config   SMTPConfig
	dialer   *gomail.Dialer
	userRepo user.Repository
	logger   logger.Interface
}

func NewSMTPNotifier(config SMTPConfig, userRepo user.Repository, logger logger.Interface) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPNotifier{
		config:   config,
		dialer:   dialer,
		userRepo: userRepo,
		logger:   logger,
	}
}

// NotifyPlanChanged emails every active tenant admin about the plan change.
// oldPlan is nil for an initial assignment.
func (s *SMTPNotifier) NotifyPlanChanged(ctx context.Context, tn *tenant.Tenant, oldPlan, newPlan *subscription.Plan) error {
	recipients, err := s.adminEmails(ctx, tn.ID())
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		s.logger.Debugw("no active admins to notify", "tenant_id", tn.ID())
		return nil
	}

	var subject, intro string
	if oldPlan == nil {
		subject = fmt.Sprintf("Your %s subscription is active", newPlan.Name())
		intro = fmt.Sprintf("Your organization %s has been subscribed to the %s plan.", tn.Name(), newPlan.Name())
	} else {
		subject = fmt.Sprintf("Your plan changed to %s", newPlan.Name())
		intro = fmt.Sprintf("Your organization %s has moved from the %s plan to the %s plan.",
			tn.Name(), oldPlan.Name(), newPlan.Name())
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription Update</h2>
			<p>%s</p>
			<p>The new plan's features and limits are already in effect.</p>
			<p>If you didn't expect this change, please contact support.</p>
		</body>
		</html>
	`, intro)

	plainBody := fmt.Sprintf(`
Subscription Update

%s

The new plan's features and limits are already in effect.

If you didn't expect this change, please contact support.
	`, intro)

	for _, to := range recipients {
		if err := s.sendEmail(to, subject, htmlBody, plainBody); err != nil {
			return fmt.Errorf("failed to send plan change email to %s: %w", to, err)
		}
	}

	s.logger.Infow("plan change notification sent",
		"tenant_id", tn.ID(),
		"recipients", len(recipients),
	)
	return nil
}

func (s *SMTPNotifier) adminEmails(ctx context.Context, tenantID uint) ([]string, error) {
	users, err := s.userRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant users: %w", err)
	}

	var emails []string
	for _, u := range users {
		if u.IsActive() && u.Role() == constants.RoleTenantAdmin {
			emails = append(emails, u.Email())
		}
	}
	return emails, nil
}

func (s *SMTPNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}
