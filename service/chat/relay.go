package chat

import "conectify/logger"

// Relay attempts best-effort live delivery of a chat payload. If the
// receiver has no open connection the frame is simply not delivered; the
// durable copy lives in the message store, written by the HTTP path.
type Relay struct {
	conns *ConnManager
}

func NewRelay(conns *ConnManager) *Relay { return &Relay{conns: conns} }

// Deliver forwards a new_message event to receiverID's registered
// connection, if any. Never returns an error to the caller: an absent or
// closed receiver is a normal outcome, and a serialization failure only
// affects the live copy.
func (r *Relay) Deliver(receiverID string, data any) {
	if receiverID == "" {
		return
	}
	c, ok := r.conns.Lookup(receiverID)
	if !ok || !c.IsOpen() {
		return
	}

	out, err := BuildNewMessage(data)
	if err != nil {
		logger.Errorf("[Relay] marshal new_message for user=%s: %v", receiverID, err)
		return
	}
	if !c.enqueue(out) {
		logger.Infof("[Relay] drop frame for user=%s conn=%s (queue full or closed)", receiverID, c.ConnID)
	}
}
