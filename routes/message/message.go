package message

import (
	"SocialMedia/controllers"
	"SocialMedia/pkg/services"

	"github.com/gin-gonic/gin"
)

// Register registers message routes. Writes go through the rate limiter.
func Register(r gin.IRoutes, messages *services.MessageService, limit gin.HandlerFunc) {
	r.POST("/messages", limit, controllers.CreateMessage(messages))
	r.GET("/messages", controllers.ListMessages(messages))
	r.GET("/messages/:message_id", controllers.GetMessage(messages))
	r.PATCH("/messages/:message_id", limit, controllers.UpdateMessage(messages))
	r.DELETE("/messages/:message_id", controllers.DeleteMessage(messages))
	r.GET("/accounts/:account_id/messages", controllers.ListAccountMessages(messages))
}
