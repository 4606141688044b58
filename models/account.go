package models

// Account is a registered user. Password is kept in cleartext; hashing is out of scope.
type Account struct {
	AccountID int    `gorm:"column:account_id;primaryKey;autoIncrement" json:"account_id"`
	Username  string `gorm:"column:username;size:255;uniqueIndex;not null" json:"username" validate:"required"`
	Password  string `gorm:"column:password;size:255;not null" json:"password" validate:"min=4"`
}

func (Account) TableName() string { return "Account" }
