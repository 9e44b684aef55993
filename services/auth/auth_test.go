package auth

import (
	"errors"
	"testing"

	"medtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// -------- test fakes --------

type fakeCredentialRepo struct {
	records map[string]*models.UserCredential

	getErr error
	setErr error
}

func newFakeCredentialRepo() *fakeCredentialRepo {
	return &fakeCredentialRepo{records: make(map[string]*models.UserCredential)}
}

func (f *fakeCredentialRepo) GetByEmail(email string) (*models.UserCredential, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cred, ok := f.records[email]
	if !ok {
		return nil, nil
	}
	copied := *cred
	return &copied, nil
}

func (f *fakeCredentialRepo) Create(cred *models.UserCredential) error {
	f.records[cred.Email] = cred
	return nil
}

func (f *fakeCredentialRepo) SetOTP(email, otp string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.records[email].OTP = &otp
	return nil
}

func (f *fakeCredentialRepo) ClearOTP(email string) error {
	f.records[email].OTP = nil
	f.records[email].Verified = true
	return nil
}

func (f *fakeCredentialRepo) SetFCMToken(email, token string) error {
	f.records[email].FCMToken = token
	return nil
}

type fakeMailer struct {
	sent    []string
	sendErr error
}

func (f *fakeMailer) SendOTP(to, otp string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, otp)
	return nil
}

func seededService(t *testing.T) (*DefaultAuthService, *fakeCredentialRepo, *fakeMailer) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newFakeCredentialRepo()
	repo.records["jane@example.com"] = &models.UserCredential{
		Email:        "jane@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: string(hash),
	}

	m := &fakeMailer{}
	return &DefaultAuthService{Repo: repo, Mailer: m}, repo, m
}

// -------- signup --------

func TestSignup(t *testing.T) {
	repo := newFakeCredentialRepo()
	svc := &DefaultAuthService{Repo: repo, Mailer: &fakeMailer{}}

	profile, err := svc.Signup(SignupRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		DOB:       "1990-04-01",
		MobileNo:  "5550001",
		Password:  "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", profile.Email)

	stored := repo.records["jane@example.com"]
	require.NotNil(t, stored)
	assert.Nil(t, stored.OTP)
	assert.False(t, stored.Verified)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _ := seededService(t)

	_, err := svc.Signup(SignupRequest{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Password: "x",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

// -------- login / OTP issue --------

func TestRequestLogin(t *testing.T) {
	svc, repo, m := seededService(t)

	err := svc.RequestLogin("jane@example.com", "hunter22")
	require.NoError(t, err)

	stored := repo.records["jane@example.com"].OTP
	require.NotNil(t, stored)
	assert.Len(t, *stored, 6)
	require.Len(t, m.sent, 1)
	assert.Equal(t, *stored, m.sent[0], "mailed code must be the stored code")
}

func TestRequestLoginUnknownUser(t *testing.T) {
	svc, _, _ := seededService(t)
	assert.ErrorIs(t, svc.RequestLogin("nobody@example.com", "x"), ErrNotFound)
}

func TestRequestLoginWrongPassword(t *testing.T) {
	svc, repo, _ := seededService(t)
	assert.ErrorIs(t, svc.RequestLogin("jane@example.com", "wrong"), ErrInvalidCredential)
	assert.Nil(t, repo.records["jane@example.com"].OTP, "no challenge on failed password")
}

func TestRequestLoginDeliveryFailureKeepsOTP(t *testing.T) {
	svc, repo, m := seededService(t)
	m.sendErr = errors.New("smtp down")

	err := svc.RequestLogin("jane@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	// The stored code stays in place; a retried login overwrites it anyway.
	assert.NotNil(t, repo.records["jane@example.com"].OTP)
}

func TestRequestLoginOverwritesPriorCode(t *testing.T) {
	svc, repo, _ := seededService(t)

	require.NoError(t, svc.RequestLogin("jane@example.com", "hunter22"))
	first := *repo.records["jane@example.com"].OTP

	require.NoError(t, svc.RequestLogin("jane@example.com", "hunter22"))
	second := *repo.records["jane@example.com"].OTP

	if first == second {
		// Astronomically unlikely with uniform codes; treat as a failure so
		// a broken constant generator cannot pass.
		t.Fatalf("second login issued the same code %q", first)
	}

	// The first code is dead after reissue.
	assert.ErrorIs(t, svc.VerifyOTP("jane@example.com", first), ErrInvalidCode)
	// The second still works.
	assert.NoError(t, svc.VerifyOTP("jane@example.com", second))
}

// -------- verification --------

func TestVerifyOTP(t *testing.T) {
	svc, repo, _ := seededService(t)
	require.NoError(t, svc.RequestLogin("jane@example.com", "hunter22"))
	code := *repo.records["jane@example.com"].OTP

	require.NoError(t, svc.VerifyOTP("jane@example.com", code))

	stored := repo.records["jane@example.com"]
	assert.Nil(t, stored.OTP, "code must be consumed")
	assert.True(t, stored.Verified)
}

func TestVerifyOTPSingleUse(t *testing.T) {
	svc, repo, _ := seededService(t)
	require.NoError(t, svc.RequestLogin("jane@example.com", "hunter22"))
	code := *repo.records["jane@example.com"].OTP

	require.NoError(t, svc.VerifyOTP("jane@example.com", code))

	// Immediate replay of the consumed code fails.
	assert.ErrorIs(t, svc.VerifyOTP("jane@example.com", code), ErrInvalidCode)
}

func TestVerifyOTPWrongCodeLeavesChallenge(t *testing.T) {
	svc, repo, _ := seededService(t)
	require.NoError(t, svc.RequestLogin("jane@example.com", "hunter22"))
	code := *repo.records["jane@example.com"].OTP

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	assert.ErrorIs(t, svc.VerifyOTP("jane@example.com", wrong), ErrInvalidCode)

	// The challenge stays outstanding; the right code still verifies.
	assert.NoError(t, svc.VerifyOTP("jane@example.com", code))
}

func TestVerifyOTPNoChallenge(t *testing.T) {
	svc, _, _ := seededService(t)
	assert.ErrorIs(t, svc.VerifyOTP("jane@example.com", "123456"), ErrInvalidCode)
}

func TestVerifyOTPUnknownUser(t *testing.T) {
	svc, _, _ := seededService(t)
	assert.ErrorIs(t, svc.VerifyOTP("nobody@example.com", "123456"), ErrNotFound)
}

// -------- profile --------

func TestFetchProfile(t *testing.T) {
	svc, _, _ := seededService(t)

	profile, err := svc.FetchProfile("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.FirstName)
	assert.Equal(t, "Doe", profile.LastName)
}

func TestFetchProfileUnknownUser(t *testing.T) {
	svc, _, _ := seededService(t)
	_, err := svc.FetchProfile("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetFCMToken(t *testing.T) {
	svc, repo, _ := seededService(t)

	require.NoError(t, svc.SetFCMToken("jane@example.com", "token-1"))
	assert.Equal(t, "token-1", repo.records["jane@example.com"].FCMToken)

	assert.ErrorIs(t, svc.SetFCMToken("nobody@example.com", "t"), ErrNotFound)
}
