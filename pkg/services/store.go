//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../../mocks/mock_store.go -package=mocks
package services

import (
	"context"

	"SocialMedia/models"
)

// AccountStore is the Account table accessor. Lookups return nil and lists
// return an empty slice when nothing is found or the query failed.
type AccountStore interface {
	FindAll(ctx context.Context) []models.Account
	FindByID(ctx context.Context, id int) *models.Account
	FindByUsername(ctx context.Context, username string) *models.Account
	Insert(ctx context.Context, account *models.Account) *models.Account
	UpdatePassword(ctx context.Context, id int, password string) int64
	DeleteByID(ctx context.Context, id int) int64
}

// MessageStore is the Message table accessor, with the same conventions as AccountStore.
type MessageStore interface {
	FindAll(ctx context.Context) []models.Message
	FindByID(ctx context.Context, id int) *models.Message
	FindByPostedBy(ctx context.Context, accountID int) []models.Message
	Insert(ctx context.Context, message *models.Message) *models.Message
	UpdateText(ctx context.Context, id int, text string) int64
	DeleteByID(ctx context.Context, id int) int64
}
