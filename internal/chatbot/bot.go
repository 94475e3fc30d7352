// Package chatbot answers compliance questions over the regulatory
// catalog, falling back to a lazily-loaded generative engine for
// free-form conversation.
package chatbot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/knowledge"
	"github.com/greenstamp/greenstamp/internal/model"
)

// qaThreshold accepts a knowledge-base answer only above this confidence
const qaThreshold = 0.7

var complianceKeywords = []string{
	"requirement", "regulation", "compliance", "report",
	"standard", "framework", "guideline", "rule",
}

var regulationKeywords = []string{"gri", "sasb", "tcfd", "esg"}

// commonQuestion pairs an indexed question with the canned answer served
// when QA matching scores it above the threshold
type commonQuestion struct {
	question string
	answer   string
}

var commonQuestions = []commonQuestion{
	{"What are the main ESG reporting requirements?", "Core ESG reporting covers emissions, workforce and governance disclosures under GRI, SASB or TCFD."},
	{"How often should we report ESG metrics?", "Most frameworks expect annual ESG disclosure, with material changes reported as they occur."},
	{"What framework should we use for ESG reporting?", "GRI suits broad stakeholder reporting, SASB financial materiality, TCFD climate risk. Many reporters combine them."},
	{"How to start ESG reporting?", "Start with a materiality assessment, pick a framework, then collect baseline metrics for one reporting period."},
	{"What documents are needed for compliance?", "Compliance needs metric records, policy documents, board minutes on oversight, and third-party assurance where required."},
	{"How to verify ESG data?", "Verify ESG data through internal controls, audit trails and independent external assurance."},
}

// Bot routes each message to one of three handlers: knowledge-base QA for
// compliance phrasing, catalog lookup for framework names, generative
// fallback for everything else. The generator loads on first use only.
type Bot struct {
	base         *knowledge.Base
	qa           inference.QuestionAnswerer
	loadGen      func() (inference.Generator, error)
	genOnce      sync.Once
	gen          inference.Generator
	genErr       error
	historyLimit int

	mu      sync.Mutex
	history map[string][]model.ChatMessage
}

// New creates a bot. loadGen is called at most once, on the first message
// that needs free-form generation.
func New(base *knowledge.Base, qa inference.QuestionAnswerer, loadGen func() (inference.Generator, error), historyLimit int) *Bot {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &Bot{
		base:         base,
		qa:           qa,
		loadGen:      loadGen,
		historyLimit: historyLimit,
		history:      make(map[string][]model.ChatMessage),
	}
}

// Respond answers one user message and records both sides of the
// exchange in the user's history
func (b *Bot) Respond(ctx context.Context, userID, message string) (model.ChatReply, error) {
	b.record(userID, model.ChatMessage{Role: "user", Message: message, Timestamp: time.Now().UTC()})

	reply, err := b.route(ctx, message)
	if err != nil {
		return model.ChatReply{}, err
	}

	b.record(userID, model.ChatMessage{Role: "bot", Message: reply.Message, Timestamp: time.Now().UTC()})
	return reply, nil
}

// History returns a copy of the user's conversation log
func (b *Bot) History(userID string) []model.ChatMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]model.ChatMessage, len(b.history[userID]))
	copy(out, b.history[userID])
	return out
}

func (b *Bot) record(userID string, msg model.ChatMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log := append(b.history[userID], msg)
	if len(log) > b.historyLimit {
		log = log[len(log)-b.historyLimit:]
	}
	b.history[userID] = log
}

func (b *Bot) route(ctx context.Context, message string) (model.ChatReply, error) {
	lower := strings.ToLower(message)

	if containsAny(lower, complianceKeywords) {
		return b.answerCompliance(ctx, message)
	}
	if containsAny(lower, regulationKeywords) {
		return b.answerRegulation(ctx, lower, message)
	}
	return b.converse(ctx, message)
}

// answerCompliance matches the message against the indexed common
// questions and serves the canned answer of the best match, if it clears
// the threshold
func (b *Bot) answerCompliance(ctx context.Context, message string) (model.ChatReply, error) {
	var best commonQuestion
	bestScore := 0.0

	for _, cq := range commonQuestions {
		answer, err := b.qa.Answer(ctx, message, cq.question)
		if err != nil {
			return model.ChatReply{}, err
		}
		if answer.Score > bestScore {
			bestScore = answer.Score
			best = cq
		}
	}

	if bestScore > qaThreshold {
		return model.ChatReply{
			Message:    best.answer,
			Type:       "compliance",
			Confidence: bestScore,
		}, nil
	}

	return b.converse(ctx, message)
}

// answerRegulation serves the catalog entry for the first framework named
// in the message
func (b *Bot) answerRegulation(ctx context.Context, lower, message string) (model.ChatReply, error) {
	for _, fw := range b.base.Frameworks() {
		if !strings.Contains(lower, strings.ToLower(fw.ID)) {
			continue
		}

		var sb strings.Builder
		sb.WriteString(fw.ID + ": " + fw.Description + "\nKey requirements:")
		for _, req := range fw.Requirements {
			sb.WriteString("\n- " + req.Title)
		}
		return model.ChatReply{
			Message:    sb.String(),
			Type:       "regulation",
			Regulation: fw.ID,
		}, nil
	}

	// Generic esg mention without a framework name
	return b.converse(ctx, message)
}

func (b *Bot) converse(ctx context.Context, message string) (model.ChatReply, error) {
	b.genOnce.Do(func() {
		b.gen, b.genErr = b.loadGen()
	})
	if b.genErr != nil {
		return model.ChatReply{}, b.genErr
	}

	text, err := b.gen.Generate(ctx, message)
	if err != nil {
		return model.ChatReply{}, err
	}
	return model.ChatReply{Message: text, Type: "conversation"}, nil
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
