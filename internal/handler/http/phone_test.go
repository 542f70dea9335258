package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/thingsfree/internal/service"
	"github.com/MKhiriev/thingsfree/internal/validators"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	testPhone        = "+79604566768"
	verificationBody = `{"phone_number":"+79604566768","security_code":"123456","session_token":"session"}`
)

func testVerificationRequest() models.VerificationRequest {
	return models.VerificationRequest{
		PhoneNumber:  testPhone,
		SecurityCode: "123456",
		SessionToken: "session",
	}
}

// ── phone/register ───────────────────────────────────────────────────────────

func TestRegisterPhone(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		issueErr   error
		callsIssue bool
		wantStatus int
	}{
		{name: "session issued", body: `{"phone_number":"+79604566768"}`, callsIssue: true, wantStatus: StatusOK},
		{name: "malformed phone", body: `{"phone_number":"abc"}`, callsIssue: true, issueErr: service.ErrInvalidPhoneNumber, wantStatus: StatusInvalidPhoneNumber},
		{name: "missing phone", body: `{}`, wantStatus: StatusInvalidPhoneNumber},
		{name: "empty body", body: "", wantStatus: StatusInvalidPhoneNumber},
		{name: "phone used", body: `{"phone_number":"+79604566768"}`, callsIssue: true, issueErr: service.ErrPhoneAlreadyUsed, wantStatus: StatusPhoneAlreadyUsed},
		{name: "gateway failure", body: `{"phone_number":"+79604566768"}`, callsIssue: true, issueErr: service.ErrSMSSendingFailed, wantStatus: StatusSMSSendingFailed},
		{name: "invalid json", body: `{"phone_number":`, wantStatus: StatusMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.callsIssue {
				m.verification.EXPECT().Issue(gomock.Any(), gomock.Any()).Return("session", tt.issueErr)
			}

			rr := serve(h, http.MethodPost, "/api/v1/phone/register/", tt.body, nil)

			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.wantStatus, env.Status)
			if tt.wantStatus == StatusOK {
				assert.Equal(t, "session", decodeBody[models.SessionTokenBody](t, env).SessionToken)
			}
		})
	}
}

// ── phone/verify ─────────────────────────────────────────────────────────────

func TestVerifyPhone(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		verifyErr   error
		callsVerify bool
		wantStatus  int
	}{
		{name: "valid triple", body: verificationBody, callsVerify: true, wantStatus: StatusOK},
		{name: "wrong code", body: verificationBody, callsVerify: true, verifyErr: service.ErrInvalidSecurityCode, wantStatus: StatusInvalidSecurityCode},
		{name: "non numeric code", body: `{"phone_number":"+79604566768","security_code":"12a456","session_token":"session"}`, wantStatus: StatusInvalidSecurityCode},
		{name: "missing token", body: `{"phone_number":"+79604566768","security_code":"123456"}`, wantStatus: StatusInvalidSecurityCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.callsVerify {
				m.verification.EXPECT().
					Verify(gomock.Any(), testVerificationRequest()).
					Return(models.VerificationSession{}, tt.verifyErr)
			}

			rr := serve(h, http.MethodPost, "/api/v1/phone/verify/", tt.body, nil)

			assert.Equal(t, tt.wantStatus, decodeEnvelope(t, rr).Status)
		})
	}
}

// ── phone/signup ─────────────────────────────────────────────────────────────

func TestSignup(t *testing.T) {
	const body = `{"phone_number":"+79604566768","security_code":"123456","session_token":"session","username":"ivan","password":"secret-pass"}`

	tests := []struct {
		name        string
		body        string
		signupErr   error
		callsSignup bool
		wantStatus  int
		wantMessage string
	}{
		{name: "created", body: body, callsSignup: true, wantStatus: StatusCreated},
		{name: "invalid code", body: body, callsSignup: true, signupErr: service.ErrInvalidSecurityCode, wantStatus: StatusInvalidSecurityCode},
		{
			name:        "field errors are aggregated",
			body:        body,
			callsSignup: true,
			signupErr: validators.FieldErrors{
				"username": {"A user with that username already exists."},
				"password": {"password is a required field."},
			},
			wantStatus:  StatusInvalidData,
			wantMessage: "password is a required field. A user with that username already exists.",
		},
		{name: "storage failure", body: body, callsSignup: true, signupErr: service.ErrUserCreation, wantStatus: StatusUserCreationError},
		{name: "verification fields missing", body: `{"username":"ivan","password":"secret-pass"}`, wantStatus: StatusInvalidSecurityCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.callsSignup {
				m.users.EXPECT().
					Signup(gomock.Any(), models.SignupRequest{
						VerificationRequest: testVerificationRequest(),
						Username:            "ivan",
						Password:            "secret-pass",
					}).
					Return(models.User{UserID: uuid.New()}, tt.signupErr)
			}

			rr := serve(h, http.MethodPost, "/api/v1/phone/signup/", tt.body, nil)

			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.wantStatus, env.Status)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeBody[models.Message](t, env).Message)
			}
		})
	}
}

// ── phone/bind ───────────────────────────────────────────────────────────────

func TestBindPhone(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		bindErr    error
		wantStatus int
	}{
		{name: "bound", wantStatus: StatusOK},
		{name: "invalid code", bindErr: service.ErrInvalidSecurityCode, wantStatus: StatusInvalidSecurityCode},
		{name: "number owned by another user", bindErr: service.ErrPhoneAlreadyUsed, wantStatus: StatusPhoneAlreadyUsed},
		{name: "update failure", bindErr: service.ErrUserUpdate, wantStatus: StatusUserUpdateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			expectAuthenticated(m, userID)
			// the authenticated user is passed explicitly
			m.users.EXPECT().
				BindPhoneNumber(gomock.Any(), userID, testVerificationRequest()).
				Return(models.User{UserID: userID, PhoneNumber: testPhone}, tt.bindErr)

			rr := serve(h, http.MethodPost, "/api/v1/phone/bind/", verificationBody, bearer())

			assert.Equal(t, tt.wantStatus, decodeEnvelope(t, rr).Status)
		})
	}
}

func TestBindPhone_Unauthenticated(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h, http.MethodPost, "/api/v1/phone/bind/", verificationBody, nil)

	assert.Equal(t, StatusNotAuthenticated, decodeEnvelope(t, rr).Status)
}

func TestBindPhone_UnexpectedError(t *testing.T) {
	h, m := newTestHandler(t)
	userID := uuid.New()
	expectAuthenticated(m, userID)
	m.users.EXPECT().
		BindPhoneNumber(gomock.Any(), userID, gomock.Any()).
		Return(models.User{}, errors.New("connection reset"))

	rr := serve(h, http.MethodPost, "/api/v1/phone/bind/", verificationBody, bearer())

	env := decodeEnvelope(t, rr)
	assert.Equal(t, StatusUnknownError, env.Status)
	assert.Equal(t, "Unknown error.", decodeBody[models.Message](t, env).Message)
}
