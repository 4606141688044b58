package account

import (
	"SocialMedia/controllers"
	"SocialMedia/pkg/services"

	"github.com/gin-gonic/gin"
)

// Register registers account routes: /register, /login, /accounts
func Register(r gin.IRoutes, accounts *services.AccountService, limit gin.HandlerFunc) {
	r.POST("/register", limit, controllers.Register(accounts))
	r.POST("/login", limit, controllers.Login(accounts))
	r.GET("/accounts", controllers.ListAccounts(accounts))
}
