package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"SocialMedia/models"
	"SocialMedia/pkg/services"
)

// Register handler
func Register(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.Account
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		created, err := accounts.CreateAccount(c.Request.Context(), &body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": failureMessage(err)})
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

// Login handler. Unknown usernames and wrong passwords get the same response.
func Login(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.Account
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}

		account, err := accounts.MatchLogin(c.Request.Context(), &body)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

type publicAccount struct {
	AccountID int    `json:"account_id"`
	Username  string `json:"username"`
}

// ListAccounts returns every account without its password.
func ListAccounts(accounts *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := accounts.ListAccounts(c.Request.Context())
		c.JSON(http.StatusOK, lo.Map(all, func(a models.Account, _ int) publicAccount {
			return publicAccount{AccountID: a.AccountID, Username: a.Username}
		}))
	}
}
