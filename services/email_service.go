// File: /services/email_service.go
package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"treebook-api/config"
)

// EmailService delivers password-reset mail. Reset tokens live in memory
// with a short expiry; a restart invalidates outstanding tokens, which is
// acceptable for this flow.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer

	resetTokens map[string]ResetToken
	mutex       sync.RWMutex
}

type ResetToken struct {
	Token     string
	Email     string
	ExpiresAt time.Time
	Used      bool
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	service := &EmailService{
		config:      cfg,
		dialer:      dialer,
		resetTokens: make(map[string]ResetToken),
	}

	go service.cleanupExpiredTokens()

	return service
}

func (es *EmailService) generateResetToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// SendPasswordReset generates a reset token for the address and mails it.
// The token is returned so tests can complete the flow without SMTP.
func (es *EmailService) SendPasswordReset(email, name string) (string, error) {
	token := es.generateResetToken()

	es.mutex.Lock()
	es.resetTokens[email] = ResetToken{
		Token:     token,
		Email:     email,
		ExpiresAt: time.Now().Add(30 * time.Minute),
		Used:      false,
	}
	es.mutex.Unlock()

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Reset your password")
	m.SetBody("text/html", fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Someone requested a password reset for your account. Use the token
		below to choose a new password. It expires in 30 minutes.</p>
		<p><strong>%s</strong></p>
		<p>If you didn't request this, you can ignore this email.</p>
	`, name, token))

	if err := es.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send password reset email: %w", err)
	}

	return token, nil
}

// ConsumeResetToken validates and burns a reset token for the address.
func (es *EmailService) ConsumeResetToken(email, token string) bool {
	es.mutex.Lock()
	defer es.mutex.Unlock()

	stored, ok := es.resetTokens[email]
	if !ok || stored.Used || stored.Token != token || time.Now().After(stored.ExpiresAt) {
		return false
	}

	stored.Used = true
	es.resetTokens[email] = stored
	return true
}

func (es *EmailService) cleanupExpiredTokens() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		es.mutex.Lock()
		for email, token := range es.resetTokens {
			if time.Now().After(token.ExpiresAt) || token.Used {
				delete(es.resetTokens, email)
			}
		}
		es.mutex.Unlock()
	}
}
