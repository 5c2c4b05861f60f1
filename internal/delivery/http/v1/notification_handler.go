package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
	messageUC      domain.MessageUsecase
}

// NewNotificationHandler registers notification and message routes
func NewNotificationHandler(protected *gin.RouterGroup, notificationUC domain.NotificationUsecase, messageUC domain.MessageUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC, messageUC: messageUC}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("/:userId", handler.List)
		notifications.GET("/:userId/unread", handler.UnreadCount)
		notifications.PUT("/:id/read", handler.MarkRead)
		notifications.DELETE("/:id", handler.Delete)
		notifications.POST("", handler.Create)
	}

	messages := protected.Group("/messages")
	{
		messages.POST("", handler.SendMessage)
		messages.GET("", handler.ListMessages)
	}
}

// ListNotifications godoc
// @Summary      Notifications, newest first
// @Tags         notifications
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response{data=[]domain.Notification}
// @Failure      403     {object}  response.Response
// @Router       /notifications/{userId} [get]
// @Security     BearerAuth
func (h *NotificationHandler) List(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.notificationUC.List(c.Request.Context(), middleware.ActorFrom(c), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications retrieved", list)
}

// UnreadCount godoc
// @Summary      Number of unread notifications
// @Tags         notifications
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /notifications/{userId}/unread [get]
// @Security     BearerAuth
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.Error(err)
		return
	}

	count, err := h.notificationUC.UnreadCount(c.Request.Context(), middleware.ActorFrom(c), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unread count retrieved", gin.H{"count": count})
}

// MarkRead godoc
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/read [put]
// @Security     BearerAuth
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.notificationUC.MarkRead(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification marked as read", nil)
}

// DeleteNotification godoc
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id} [delete]
// @Security     BearerAuth
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.notificationUC.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification deleted", nil)
}

// CreateNotification godoc
// @Summary      Send a notification to a user
// @Description  Employers and admins only. type defaults to info.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      domain.NotificationInput  true  "Notification"
// @Success      201   {object}  response.Response{data=domain.Notification}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /notifications [post]
// @Security     BearerAuth
func (h *NotificationHandler) Create(c *gin.Context) {
	var input domain.NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("user_id must be an integer and message is required"))
		return
	}

	n, err := h.notificationUC.Send(c.Request.Context(), middleware.ActorFrom(c), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Notification created", n)
}

// SendMessage godoc
// @Summary      Message a candidate
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      domain.MessageInput  true  "Message"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /messages [post]
// @Security     BearerAuth
func (h *NotificationHandler) SendMessage(c *gin.Context) {
	var input domain.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("candidateId and message are required"))
		return
	}

	msg, err := h.messageUC.Send(c.Request.Context(), middleware.ActorFrom(c), &input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message sent successfully", gin.H{"messageId": msg.ID, "message": msg})
}

// ListMessages godoc
// @Summary      Messages sent or received by the caller
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Message}
// @Router       /messages [get]
// @Security     BearerAuth
func (h *NotificationHandler) ListMessages(c *gin.Context) {
	list, err := h.messageUC.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Messages retrieved", list)
}
