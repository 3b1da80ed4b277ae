package service

import (
	"net/http"
	"time"

	midsec "conectify/middleware/security"
	"conectify/logger"
	"conectify/module/messaging/model"
	"conectify/module/messaging/store"
	"conectify/service/chat"
	"conectify/service/events"
	errs "conectify/tools/errs"
	ids "conectify/tools/ids"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Handler serves the durable messaging surface. Persistence always happens
// first; live relay, notification creation, and event publishing are
// best-effort side effects that never fail the request.
type Handler struct {
	store  store.Store
	relay  *chat.Relay
	events *events.Publisher
}

func NewHandler(s store.Store, relay *chat.Relay, pub *events.Publisher) *Handler {
	return &Handler{store: s, relay: relay, events: pub}
}

type sendMessageReq struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	Type       string `json:"type"`
}

// SendMessage handles POST /api/messages.
func (h *Handler) SendMessage(c *gin.Context) {
	caller, ok := midsec.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail(err.Error()))
		return
	}
	// senderId in the body is optional; when present it must be the caller.
	if req.SenderID != "" && req.SenderID != caller {
		c.JSON(http.StatusForbidden, errs.ErrNoPermission.WithDetail("senderId does not match token"))
		return
	}
	if req.ReceiverID == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail("receiverId and content are required"))
		return
	}
	if req.Type == "" {
		req.Type = model.MsgTypeText
	}

	m := &model.Message{
		ServerMsgID: ids.GenerateString(),
		SenderID:    caller,
		ReceiverID:  req.ReceiverID,
		Content:     req.Content,
		Type:        req.Type,
		IsRead:      false,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.store.InsertMessage(c.Request.Context(), m); err != nil {
		logger.Errorf("[messages] insert failed sender=%s receiver=%s err=%v", caller, req.ReceiverID, err)
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}

	h.afterSend(c, m)
	c.JSON(http.StatusOK, m)
}

// afterSend runs the non-durable side effects of a message send. Each one
// logs and continues on failure; the message is already stored.
func (h *Handler) afterSend(c *gin.Context, m *model.Message) {
	n := &model.Notification{
		NotificationID: ids.GenerateString(),
		UserID:         m.ReceiverID,
		Kind:           model.NotificationKindMessage,
		Title:          "New message",
		Body:           m.Content,
		RelatedID:      m.ServerMsgID,
		IsRead:         false,
		CreatedAt:      m.CreatedAt,
	}
	if err := h.store.InsertNotification(c.Request.Context(), n); err != nil {
		logger.Infof("[messages] notification insert failed msg=%s err=%v", m.ServerMsgID, err)
	} else {
		h.events.NotificationCreated(n)
	}

	if h.relay != nil {
		h.relay.Deliver(m.ReceiverID, m)
	}
	h.events.MessageCreated(m)
}

// ListMessages handles GET /api/messages/:otherUserId. The caller is always
// one side of the history, so cross-user reads cannot be expressed.
func (h *Handler) ListMessages(c *gin.Context) {
	caller, ok := midsec.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
		return
	}
	other := c.Param("otherUserId")
	if other == "" {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail("otherUserId is required"))
		return
	}

	msgs, err := h.store.ListBetween(c.Request.Context(), caller, other)
	if err != nil {
		logger.Errorf("[messages] list failed caller=%s other=%s err=%v", caller, other, err)
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}
	if msgs == nil {
		msgs = []*model.Message{}
	}
	c.JSON(http.StatusOK, msgs)
}

// ListConversations handles GET /api/conversations: per correspondent, the
// newest unread message and the unread count, computed by scanning the
// caller's unread set on every request.
func (h *Handler) ListConversations(c *gin.Context) {
	caller, ok := midsec.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
		return
	}

	unread, err := h.store.ListUnread(c.Request.Context(), caller)
	if err != nil {
		logger.Errorf("[conversations] list unread failed user=%s err=%v", caller, err)
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, SummarizeUnread(unread))
}

type markReadReq struct {
	SenderID string `json:"senderId"`
}

// MarkConversationRead handles POST /api/messages/read: marks everything
// the given sender sent to the caller as read. Idempotent.
func (h *Handler) MarkConversationRead(c *gin.Context) {
	caller, ok := midsec.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
		return
	}
	var req markReadReq
	if err := c.ShouldBindJSON(&req); err != nil || req.SenderID == "" {
		c.JSON(http.StatusBadRequest, errs.ErrArgs.WithDetail("senderId is required"))
		return
	}

	n, err := h.store.MarkConversationRead(c.Request.Context(), caller, req.SenderID)
	if err != nil {
		logger.Errorf("[messages] mark read failed reader=%s sender=%s err=%v", caller, req.SenderID, err)
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}

// ListNotifications handles GET /api/notifications, newest first.
func (h *Handler) ListNotifications(c *gin.Context) {
	caller, ok := midsec.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
		return
	}

	notifs, err := h.store.ListNotifications(c.Request.Context(), caller)
	if err != nil {
		logger.Errorf("[notifications] list failed user=%s err=%v", caller, err)
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}
	if notifs == nil {
		notifs = []*model.Notification{}
	}
	c.JSON(http.StatusOK, notifs)
}

// MarkNotificationRead handles POST /api/notifications/:id/read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	caller, ok := midsec.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errs.ErrTokenInvalid)
		return
	}
	id := c.Param("id")

	err := h.store.MarkNotificationRead(c.Request.Context(), caller, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, errs.ErrNotFound)
		return
	}
	if err != nil {
		logger.Errorf("[notifications] mark read failed user=%s id=%s err=%v", caller, id, err)
		c.JSON(http.StatusInternalServerError, errs.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
