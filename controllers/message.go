package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"SocialMedia/models"
	"SocialMedia/pkg/services"
	utils "SocialMedia/pkg/utills"
)

func CreateMessage(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body models.Message
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		created, err := messages.CreateMessage(c.Request.Context(), &body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": failureMessage(err)})
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func ListMessages(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, messages.ListMessages(c.Request.Context()))
	}
}

// GetMessage answers 200 with an empty body when the message does not exist.
func GetMessage(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ParseID(c.Param("message_id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
			return
		}

		message := messages.GetMessage(c.Request.Context(), id)
		if message == nil {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusOK, message)
	}
}

func UpdateMessage(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ParseID(c.Param("message_id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
			return
		}
		var body struct {
			MessageText string `json:"message_text"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request"})
			return
		}

		updated, err := messages.UpdateMessageText(c.Request.Context(), id, body.MessageText)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": failureMessage(err)})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteMessage echoes the deleted message, or answers 200 with an empty body
// when there was nothing to delete.
func DeleteMessage(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ParseID(c.Param("message_id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
			return
		}

		deleted := messages.DeleteMessage(c.Request.Context(), id)
		if deleted == nil {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}

func ListAccountMessages(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ParseID(c.Param("account_id"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
			return
		}
		c.JSON(http.StatusOK, messages.ListMessagesByAccount(c.Request.Context(), id))
	}
}
