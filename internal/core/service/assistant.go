package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
	"github.com/alizaidi-dev/tripbudget/internal/core/port"
)

const systemPrompt = `You are a helpful travel planning assistant. You provide advice on:
- Travel destinations and recommendations
- Budget planning and money-saving tips
- Best times to visit locations
- Local customs, culture, and etiquette
- Packing tips and travel essentials
- Safety and health advice
- Transportation and accommodation suggestions
- Food and dining recommendations

Keep responses concise, practical, and friendly. Provide specific examples when possible.
If you don't know something, admit it and suggest reliable resources.`

// maxHistoryMessages bounds how much prior conversation is forwarded to
// the model.
const maxHistoryMessages = 10

// AssistantService answers travel questions through the hosted chat model
// and degrades to a keyword-routed canned advisor when the model is not
// configured or the call fails.
type AssistantService struct {
	model  port.ChatModel
	logger *zap.Logger
}

func NewAssistantService(model port.ChatModel, logger *zap.Logger) *AssistantService {
	return &AssistantService{model: model, logger: logger}
}

func (s *AssistantService) Reply(ctx context.Context, message string, history []domain.ChatMessage) domain.ChatReply {
	if !s.model.Enabled() {
		return domain.ChatReply{Content: fallbackReply(message), Fallback: true}
	}

	messages := make([]domain.ChatMessage, 0, maxHistoryMessages+2)
	messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleSystem, Content: systemPrompt})

	recent := history
	if len(recent) > maxHistoryMessages {
		recent = recent[len(recent)-maxHistoryMessages:]
	}
	for _, msg := range recent {
		if msg.Role == domain.ChatRoleUser || msg.Role == domain.ChatRoleAssistant {
			messages = append(messages, msg)
		}
	}
	messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: message})

	content, err := s.model.Complete(ctx, messages)
	if err != nil {
		s.logger.Warn("chat model call failed, using fallback", zap.Error(err))
		return domain.ChatReply{Content: fallbackReply(message), Fallback: true}
	}

	return domain.ChatReply{Content: content}
}

// fallbackTopic is one keyword class of the canned advisor. Classes are
// checked in order; the first hit wins.
type fallbackTopic struct {
	keywords []string
	reply    string
}

var fallbackTopics = []fallbackTopic{
	{
		keywords: []string{"budget", "cost", "expensive", "cheap", "price"},
		reply: `Budget travel tips:
- Research average costs for your destination in advance
- Book flights and accommodation 2-3 months ahead
- Travel during off-peak seasons (20-40% savings)
- Use public transportation instead of taxis
- Eat at local restaurants away from tourist areas
- Set a daily spending limit and track expenses`,
	},
	{
		keywords: []string{"where", "recommend", "destination", "visit", "travel to"},
		reply: `Popular destinations by interest:
- Culture & history: Rome, Kyoto, Cairo
- Nature & adventure: New Zealand, Costa Rica, Iceland
- Beach & relaxation: Maldives, Bali, the Greek Islands
What type of experience are you looking for?`,
	},
	{
		keywords: []string{"pack", "luggage", "bring", "carry"},
		reply: `Packing essentials: passport and copies, cards plus some local
currency, travel insurance documents, medications, a universal adapter
and a power bank. Roll clothes, use packing cubes, and wear your
bulkiest items on travel day.`,
	},
	{
		keywords: []string{"safe", "safety", "danger", "security"},
		reply: `Safety basics: research your destination, register with your
embassy, get travel insurance, keep copies of documents, use ATMs in
secure locations, and avoid displaying valuables. Trust your instincts.`,
	},
	{
		keywords: []string{"when", "time", "season", "weather"},
		reply: `Choosing when to go: peak season means crowds and higher prices,
shoulder season is the usual sweet spot, and off-season saves 20-40% at
the cost of some closures. Check the climate and local festival calendar
for your destination.`,
	},
	{
		keywords: []string{"food", "eat", "restaurant", "cuisine"},
		reply: `Eating well on the road: try street food, ask locals for
recommendations, pick busy restaurants, and note that lunch menus are
usually cheaper than dinner. Research tipping customs before you arrive.`,
	},
}

const fallbackDefault = `I can help with destinations, budget planning, packing,
timing, safety, and food. For personalized AI responses, configure an
API key for the hosted model. What aspect of travel planning can I help
you with?`

func fallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, topic := range fallbackTopics {
		for _, kw := range topic.keywords {
			if strings.Contains(lower, kw) {
				return topic.reply
			}
		}
	}
	return fallbackDefault
}
