package storage

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"SocialMedia/models"
)

// AccountStore runs parameterized queries against the Account table. Query
// failures are logged and reported as absent rows; callers cannot tell a
// missing account from an unavailable database.
type AccountStore struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

func NewAccountStore(db *gorm.DB, log logrus.FieldLogger) *AccountStore {
	return &AccountStore{db: db, log: log.WithField("table", models.Account{}.TableName())}
}

func (s *AccountStore) FindAll(ctx context.Context) []models.Account {
	accounts := []models.Account{}
	if err := s.db.WithContext(ctx).Order("account_id").Find(&accounts).Error; err != nil {
		s.fail("find_all", err)
		return []models.Account{}
	}
	return accounts
}

func (s *AccountStore) FindByID(ctx context.Context, id int) *models.Account {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("account_id = ?", id).First(&account).Error; err != nil {
		s.fail("find_by_id", err)
		return nil
	}
	return &account
}

func (s *AccountStore) FindByUsername(ctx context.Context, username string) *models.Account {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		s.fail("find_by_username", err)
		return nil
	}
	return &account
}

// Insert stores username and password and returns the row with its generated id.
// Any id on the argument is ignored.
func (s *AccountStore) Insert(ctx context.Context, account *models.Account) *models.Account {
	row := models.Account{Username: account.Username, Password: account.Password}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		s.fail("insert", err)
		return nil
	}
	return &row
}

func (s *AccountStore) UpdatePassword(ctx context.Context, id int, password string) int64 {
	res := s.db.WithContext(ctx).Model(&models.Account{}).Where("account_id = ?", id).Update("password", password)
	if res.Error != nil {
		s.fail("update_password", res.Error)
		return 0
	}
	return res.RowsAffected
}

func (s *AccountStore) DeleteByID(ctx context.Context, id int) int64 {
	res := s.db.WithContext(ctx).Where("account_id = ?", id).Delete(&models.Account{})
	if res.Error != nil {
		s.fail("delete_by_id", res.Error)
		return 0
	}
	return res.RowsAffected
}

func (s *AccountStore) fail(op string, err error) {
	logFailure(s.log, op, err)
}

// logFailure records a storage error. Not-found is the normal empty result and is
// only logged at debug.
func logFailure(log logrus.FieldLogger, op string, err error) {
	entry := log.WithField("op", op).WithError(err)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry.Debug("no rows")
		return
	}
	entry.Error("storage query failed")
}
