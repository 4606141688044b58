package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"SocialMedia/models"
)

type AccountService struct {
	accounts AccountStore
	log      logrus.FieldLogger
}

func NewAccountService(accounts AccountStore, log logrus.FieldLogger) *AccountService {
	return &AccountService{accounts: accounts, log: log.WithField("service", "account")}
}

// CreateAccount validates the candidate, checks the username is free and inserts
// it once. The returned account carries the generated account_id.
//
// The username check and the insert are separate statements; a concurrent
// registration of the same name loses at the unique index and surfaces as
// ErrAccountCreateFailed.
func (s *AccountService) CreateAccount(ctx context.Context, candidate *models.Account) (*models.Account, error) {
	if candidate == nil {
		return nil, ErrInvalidAccount
	}
	if err := validateStruct(candidate, ErrInvalidAccount); err != nil {
		s.log.WithField("username", candidate.Username).WithError(err).Info("account creation rejected")
		return nil, err
	}
	if s.accounts.FindByUsername(ctx, candidate.Username) != nil {
		s.log.WithField("username", candidate.Username).Info("account creation rejected: username taken")
		return nil, ErrUsernameTaken
	}

	created := s.accounts.Insert(ctx, candidate)
	if created == nil {
		s.log.WithField("username", candidate.Username).Warn("account insert failed")
		return nil, ErrAccountCreateFailed
	}
	return created, nil
}

// MatchLogin returns the stored account whose username and password equal the
// candidate's. Every failure, including an unknown username, is ErrInvalidCredentials.
func (s *AccountService) MatchLogin(ctx context.Context, candidate *models.Account) (*models.Account, error) {
	if candidate == nil || validate.Struct(candidate) != nil {
		return nil, ErrInvalidCredentials
	}
	stored := s.accounts.FindByUsername(ctx, candidate.Username)
	if stored == nil ||
		stored.Username != candidate.Username ||
		stored.Password != candidate.Password {
		return nil, ErrInvalidCredentials
	}
	return stored, nil
}

func (s *AccountService) GetAccountByUsername(ctx context.Context, username string) *models.Account {
	return s.accounts.FindByUsername(ctx, username)
}

func (s *AccountService) ListAccounts(ctx context.Context) []models.Account {
	return s.accounts.FindAll(ctx)
}
