package events

import (
	"encoding/json"

	"conectify/logger"
	"conectify/module/messaging/model"

	"github.com/nats-io/nats.go"
)

// Integration-feed subjects consumed by sibling services.
const (
	SubjectMessageCreated      = "conectify.messages.created"
	SubjectNotificationCreated = "conectify.notifications.created"
)

// Publisher emits fire-and-forget domain events over NATS. A nil Publisher
// is a valid no-op, so call sites never branch on configuration.
type Publisher struct {
	nc *nats.Conn
}

// Connect returns nil (publishing disabled) when url is empty.
func Connect(url string) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}
	nc, err := nats.Connect(url, nats.Name("conectify-gateway"))
	if err != nil {
		return nil, err
	}
	return &Publisher{nc: nc}, nil
}

func (p *Publisher) Close() {
	if p != nil && p.nc != nil {
		p.nc.Close()
	}
}

func (p *Publisher) MessageCreated(m *model.Message) {
	p.publish(SubjectMessageCreated, m)
}

func (p *Publisher) NotificationCreated(n *model.Notification) {
	p.publish(SubjectNotificationCreated, n)
}

func (p *Publisher) publish(subject string, v any) {
	if p == nil || p.nc == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("[events] marshal %s: %v", subject, err)
		return
	}
	if err := p.nc.Publish(subject, data); err != nil {
		logger.Infof("[events] publish %s failed: %v", subject, err)
	}
}
