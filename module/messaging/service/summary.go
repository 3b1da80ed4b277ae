package service

import "conectify/module/messaging/model"

// SummarizeUnread groups a caller's unread messages (newest first, as
// returned by Store.ListUnread) by sender. Each group keeps its newest
// message as the conversation preview; groups come out ordered by the
// recency of that preview.
func SummarizeUnread(unread []*model.Message) []*model.ConversationSummary {
	index := make(map[string]*model.ConversationSummary)
	out := make([]*model.ConversationSummary, 0)

	for _, m := range unread {
		s, ok := index[m.SenderID]
		if !ok {
			s = &model.ConversationSummary{UserID: m.SenderID, LastMessage: m}
			index[m.SenderID] = s
			out = append(out, s)
		}
		s.UnreadCount++
	}
	return out
}
