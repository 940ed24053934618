package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"

	"paybill/internal/platform/crypto"
)

const totpIssuer = "Paybill Admin"

type Service struct {
	store    *Store
	sealer   *crypto.Sealer
	secret   string
	tokenTTL time.Duration
}

func NewService(store *Store, sealer *crypto.Sealer, secret string, tokenTTL time.Duration) *Service {
	return &Service{store: store, sealer: sealer, secret: secret, tokenTTL: tokenTTL}
}

// Login checks the password (and the TOTP code when the account has MFA
// enabled) and issues a signed token.
func (s *Service) Login(ctx context.Context, username, password, mfaCode string) (string, User, error) {
	username = strings.TrimSpace(username)
	u, err := s.store.ByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return "", User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", User{}, err
	}
	if err := CheckPassword(u.PasswordHash, password); err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if u.MFAEnabled {
		if mfaCode == "" {
			return "", User{}, ErrMFARequired
		}
		secret, err := s.mfaSecret(u)
		if err != nil || secret == "" || !totp.Validate(mfaCode, secret) {
			return "", User{}, ErrMFAInvalid
		}
	}

	token, err := GenerateToken(s.secret, Claims{UserID: u.ID, Username: u.Username, Role: u.Role, ShalarthID: u.ShalarthID}, s.tokenTTL)
	if err != nil {
		return "", User{}, err
	}
	return token, u, nil
}

// RegisterTeacher creates a teacher login bound to a Shalarth ID.
func (s *Service) RegisterTeacher(ctx context.Context, username, password, shalarthID string) (User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}
	return s.store.Create(ctx, User{
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		Role:         RoleTeacher,
		ShalarthID:   strings.TrimSpace(shalarthID),
	})
}

// BeginMFASetup provisions a new TOTP secret for the user and stores it
// sealed. MFA stays disabled until the user confirms a code via EnableMFA.
func (s *Service) BeginMFASetup(ctx context.Context, userID, username string) (secret, otpauthURL string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{Issuer: totpIssuer, AccountName: username})
	if err != nil {
		return "", "", err
	}
	sealed, err := s.sealer.Seal([]byte(key.Secret()))
	if err != nil {
		return "", "", err
	}
	if err := s.store.UpdateMFASecret(ctx, userID, sealed); err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// EnableMFA turns MFA on once the user proves they hold the secret.
func (s *Service) EnableMFA(ctx context.Context, userID, code string) error {
	sealed, err := s.store.MFASecret(ctx, userID)
	if err != nil {
		return err
	}
	plain, err := s.sealer.Open(sealed)
	if err != nil {
		return ErrMFAInvalid
	}
	if len(plain) == 0 || !totp.Validate(code, string(plain)) {
		return ErrMFAInvalid
	}
	return s.store.SetMFAEnabled(ctx, userID, true)
}

func (s *Service) DisableMFA(ctx context.Context, userID string) error {
	if err := s.store.SetMFAEnabled(ctx, userID, false); err != nil {
		return err
	}
	return s.store.UpdateMFASecret(ctx, userID, nil)
}

// ChangePassword re-checks the current password before replacing it.
func (s *Service) ChangePassword(ctx context.Context, userID, username, current, next string) error {
	u, err := s.store.ByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u.ID != userID {
		return ErrInvalidCredentials
	}
	if err := CheckPassword(u.PasswordHash, current); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, userID, hash)
}

func (s *Service) mfaSecret(u User) (string, error) {
	plain, err := s.sealer.Open(u.MFASecretEnc)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
