package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/MKhiriev/thingsfree/internal/adapter"
	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/internal/store"
	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/nyaruka/phonenumbers"
)

// verificationService implements [VerificationService].
//
// Security codes are never stored: a session keeps the HMAC of
// "phone:code" keyed with the application hash key.
type verificationService struct {
	sessions store.VerificationSessionRepository
	users    store.UserRepository
	gateway  adapter.SMSGateway

	hashKey    string
	appName    string
	template   string
	codeLength int
	ttl        time.Duration
	region     string

	now func() time.Time

	logger *logger.Logger
}

func NewVerificationService(sessions store.VerificationSessionRepository, users store.UserRepository,
	gateway adapter.SMSGateway, cfg config.App, logger *logger.Logger) VerificationService {
	return &verificationService{
		sessions:   sessions,
		users:      users,
		gateway:    gateway,
		hashKey:    cfg.HashKey,
		appName:    cfg.Name,
		template:   cfg.Verification.MessageTemplate,
		codeLength: cfg.Verification.CodeLength,
		ttl:        cfg.Verification.SessionTTL,
		region:     cfg.PhoneRegion,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *verificationService) NormalizePhoneNumber(raw string) (string, error) {
	return NormalizePhoneNumber(raw, s.region)
}

// NormalizePhoneNumber parses raw, using region for numbers without the
// international prefix, and returns the valid number in E.164 form.
func NormalizePhoneNumber(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhoneNumber
	}

	number, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return "", ErrInvalidPhoneNumber
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}

// Issue validates the number, makes sure no account owns it yet, replaces the
// session of the number and sends the code. A failed send keeps the session.
func (s *verificationService) Issue(ctx context.Context, phoneNumber string) (string, error) {
	log := logger.FromContext(ctx)

	phone, err := s.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return "", err
	}

	used, err := s.users.PhoneNumberExists(ctx, phone)
	if err != nil {
		return "", fmt.Errorf("error checking phone number: %w", err)
	}
	if used {
		return "", ErrPhoneAlreadyUsed
	}

	code, err := generateSecurityCode(s.codeLength)
	if err != nil {
		return "", fmt.Errorf("error generating security code: %w", err)
	}

	session := models.VerificationSession{
		PhoneNumber:  phone,
		CodeHash:     s.hashCode(phone, code),
		SessionToken: utils.NewToken(),
		CreatedAt:    s.now().UTC(),
	}
	if err = s.sessions.UpsertSession(ctx, session); err != nil {
		return "", fmt.Errorf("error saving verification session: %w", err)
	}

	if err = s.gateway.Send(ctx, phone, s.message(code)); err != nil {
		log.Err(err).Str("phone_number", phone).Msg("error in sending verification code")
		return "", fmt.Errorf("%w: %w", ErrSMSSendingFailed, err)
	}

	log.Info().Str("phone_number", phone).Msg("security code sent")
	return session.SessionToken, nil
}

// Verify is a pure check and may be repeated until the session expires or
// is replaced.
func (s *verificationService) Verify(ctx context.Context, req models.VerificationRequest) (models.VerificationSession, error) {
	phone, err := s.NormalizePhoneNumber(req.PhoneNumber)
	if err != nil {
		return models.VerificationSession{}, ErrInvalidSecurityCode
	}

	session, err := s.sessions.GetSession(ctx, phone)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.VerificationSession{}, ErrInvalidSecurityCode
	}
	if err != nil {
		return models.VerificationSession{}, fmt.Errorf("error loading verification session: %w", err)
	}

	if session.IsExpired(s.now(), s.ttl) {
		return models.VerificationSession{}, ErrInvalidSecurityCode
	}

	tokenOK := utils.EqualHashes(session.SessionToken, req.SessionToken)
	codeOK := utils.EqualHashes(session.CodeHash, s.hashCode(phone, req.SecurityCode))
	if !tokenOK || !codeOK {
		return models.VerificationSession{}, ErrInvalidSecurityCode
	}

	return session, nil
}

func (s *verificationService) hashCode(phone, code string) string {
	return utils.HashString(phone+":"+code, s.hashKey)
}

func (s *verificationService) message(code string) string {
	return strings.NewReplacer("{app}", s.appName, "{security_code}", code).Replace(s.template)
}

// generateSecurityCode returns n uniformly random decimal digits.
func generateSecurityCode(n int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)

	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", n, v), nil
}
