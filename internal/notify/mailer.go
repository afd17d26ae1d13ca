package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"cinema-ebooking/internal/data/entity"
	"cinema-ebooking/pkg/monitoring"
	"cinema-ebooking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mailer delivers emails over plain SMTP.
type Mailer struct {
	config      utils.SMTPConfig
	frontendURL string
	log         *zap.Logger
}

func NewMailer(config utils.SMTPConfig, frontendURL string, log *zap.Logger) *Mailer {
	return &Mailer{
		config:      config,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		log:         log.With(zap.String("component", "mailer")),
	}
}

func (m *Mailer) SendVerification(user *entity.User, token uuid.UUID) {
	link := fmt.Sprintf("%s/verify-email?token=%s", m.frontendURL, token.String())
	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Thanks for signing up. Confirm your email address to activate your account:</p>
		<p><a href="%s">Verify my email</a></p>
		<p>This link expires in 24 hours. If you did not create an account, ignore this email.</p>`,
		user.DisplayName(), link)

	m.send("verification", user.Email, "Verify your email address", body)
}

func (m *Mailer) SendPasswordReset(user *entity.User, token uuid.UUID) {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token.String())
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>We received a request to reset your password. Click the link below to choose a new one:</p>
		<p><a href="%s">Reset my password</a></p>
		<p>This link expires in 1 hour. If you did not request a reset, your account is safe and you can ignore this email.</p>`,
		user.DisplayName(), link)

	m.send("password_reset", user.Email, "Reset your password", body)
}

func (m *Mailer) SendProfileUpdated(user *entity.User) {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your profile information was just updated.</p>
		<p>If you did not make this change, reset your password immediately.</p>`,
		user.DisplayName())

	m.send("profile_updated", user.Email, "Your profile was updated", body)
}

func (m *Mailer) SendBookingConfirmation(user *entity.User, details BookingEmail) {
	body := fmt.Sprintf(`
		<h2>Booking confirmed!</h2>
		<p>Hi %s, your tickets are booked.</p>
		<ul>
			<li>Order: <strong>%s</strong></li>
			<li>Movie: %s</li>
			<li>Showtime: %s</li>
			<li>Seats: %s</li>
			<li>Total: $%s</li>
		</ul>
		<p>Enjoy the movie!</p>`,
		user.DisplayName(),
		details.OrderID,
		details.MovieTitle,
		details.StartsAt.Format("Mon, 02 Jan 2006 15:04"),
		strings.Join(details.Seats, ", "),
		details.Total.StringFixed(2))

	m.send("booking_confirmation", user.Email, "Booking confirmed: "+details.OrderID, body)
}

func (m *Mailer) SendBookingCancellation(user *entity.User, details BookingEmail) {
	body := fmt.Sprintf(`
		<h2>Booking cancelled</h2>
		<p>Hi %s, your booking <strong>%s</strong> for %s has been cancelled and the seats released.</p>`,
		user.DisplayName(),
		details.OrderID,
		details.MovieTitle)

	m.send("booking_cancellation", user.Email, "Booking cancelled: "+details.OrderID, body)
}

func (m *Mailer) send(kind, to, subject, htmlBody string) {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	msg := strings.Join([]string{
		"From: " + m.config.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg))
	monitoring.EmailSent(kind, err)

	if err != nil {
		m.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("kind", kind),
			zap.String("to", to),
		)
		return
	}

	m.log.Info("Email sent", zap.String("kind", kind), zap.String("to", to))
}
