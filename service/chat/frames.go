package chat

import "encoding/json"

// Live-channel frame type tags.
const (
	FrameTypeMessage    = "message"     // client -> server
	FrameTypeNewMessage = "new_message" // server -> client
)

type FrameKind int

const (
	KindUnknown FrameKind = iota
	KindMessage
)

// LiveFrame is the inbound envelope: {"type","receiverId","data"}. Data is
// carried opaquely; the relay forwards it without reshaping.
type LiveFrame struct {
	Type       string         `json:"type"`
	ReceiverID string         `json:"receiverId"`
	Data       map[string]any `json:"data"`
}

// Kind maps the loose type tag onto the variants the gateway understands;
// everything else is KindUnknown and gets ignored.
func (f *LiveFrame) Kind() FrameKind {
	switch f.Type {
	case FrameTypeMessage:
		return KindMessage
	default:
		return KindUnknown
	}
}

func ParseLiveFrame(raw []byte) (*LiveFrame, error) {
	frame := &LiveFrame{}
	if err := json.Unmarshal(raw, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

// MessagePayload is the loosely-typed shape clients put in Data. Decoded
// only for logging; the relay never validates or rewrites the payload.
type MessagePayload struct {
	SenderID string `json:"senderId"`
	Content  string `json:"content"`
	Type     string `json:"type"`
}

// BuildNewMessage builds the outbound frame delivered to the receiver.
func BuildNewMessage(data any) ([]byte, error) {
	return json.Marshal(map[string]any{
		"type": FrameTypeNewMessage,
		"data": data,
	})
}
