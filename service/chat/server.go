package chat

import (
	"net"
	"net/http"
	"time"

	"conectify/logger"
	storage "conectify/service/storage"
	decode "conectify/tools/decode"
	"conectify/tools/safe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendQueueSize  = 256
	maxFrameBytes  = 1 << 20 // 1MB
	presenceTTL    = 2 * time.Minute
	presenceRenews = presenceTTL / 2
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server owns the live channel: it upgrades connections, registers them by
// user id, and feeds inbound frames to the relay.
type Server struct {
	conns *ConnManager
	relay *Relay
}

func NewServer(conns *ConnManager, relay *Relay) *Server {
	return &Server{conns: conns, relay: relay}
}

func (s *Server) ConnMgr() *ConnManager { return s.conns }
func (s *Server) Relay() *Relay         { return s.relay }

// HandleWS serves GET /ws?userId=<id>. One long-lived connection per
// client; a reconnect under the same user id replaces the previous one.
func (s *Server) HandleWS(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.String(http.StatusBadRequest, "userId required")
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Infof("[WS] upgrade failed user=%s err=%v", userID, err)
		return
	}

	client := NewClient(uuid.NewString(), userID, ws, sendQueueSize)
	s.conns.Register(client)
	if storage.Enabled() {
		if err := storage.PresenceOnline(userID, s.conns.GwID(), presenceTTL); err != nil {
			logger.Infof("[WS] presence online user=%s err=%v", userID, err)
		}
	}
	logger.Infof("[WS] connected user=%s conn=%s", userID, client.ConnID)

	safe.Go(client.writePump)
	ws.SetReadLimit(maxFrameBytes)

	lastRenew := time.Now()
	for {
		mt, data, rerr := ws.ReadMessage()
		if rerr != nil {
			if websocket.IsCloseError(rerr,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Infof("[WS] peer closed user=%s conn=%s", userID, client.ConnID)
			} else if ne, ok := rerr.(net.Error); ok && ne.Timeout() {
				logger.Infof("[WS] read timeout user=%s conn=%s err=%v", userID, client.ConnID, rerr)
			} else {
				logger.Infof("[WS] read err user=%s conn=%s err=%v", userID, client.ConnID, rerr)
			}
			break
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}

		frame, perr := ParseLiveFrame(data)
		if perr != nil {
			// Fire-and-forget transport: nothing to report back to.
			sample := data
			if len(sample) > 256 {
				sample = sample[:256]
			}
			logger.Infof("[WS] drop malformed frame conn=%s err=%v sample=%q", client.ConnID, perr, sample)
			continue
		}

		switch frame.Kind() {
		case KindMessage:
			if p, derr := decode.DecodeMap[MessagePayload](frame.Data); derr == nil {
				logger.Infof("[WS] relay message from=%s to=%s", p.SenderID, frame.ReceiverID)
			}
			s.relay.Deliver(frame.ReceiverID, frame.Data)
		default:
			logger.Infof("[WS] ignore frame type=%q conn=%s", frame.Type, client.ConnID)
		}

		if storage.Enabled() && time.Since(lastRenew) > presenceRenews {
			_ = storage.PresenceOnline(userID, s.conns.GwID(), presenceTTL)
			lastRenew = time.Now()
		}
	}

	s.conns.Unregister(client)
	if storage.Enabled() {
		if err := storage.PresenceOffline(userID); err != nil {
			logger.Infof("[WS] presence offline user=%s err=%v", userID, err)
		}
	}
	logger.Infof("[WS] disconnected user=%s conn=%s", userID, client.ConnID)
}
