package application

import (
	"regexp"
	"strings"

	"github.com/bnema/peerchat-cli/internal/domain"
)

var (
	bracketTokenPattern   = regexp.MustCompile(`\[([^\]]+)\]`)
	leadingBracketPattern = regexp.MustCompile(`^\s*\[[^\]]+\]\s*`)
	addressTokenPattern   = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+:\d+$`)
)

// attributionStage resolves a message or declines it so the next stage runs.
type attributionStage func(record domain.InboundMessage, resolver AddressResolver) (domain.AttributedMessage, bool)

var attributionPipeline = []attributionStage{
	attributeBroadcast,
	attributeFromDirectory,
	attributeFromBracketTokens,
	attributeRaw,
}

// Attribute recovers the logical sender and the readable content of an
// inbound message. It never fails: the last stage always accepts.
func Attribute(record domain.InboundMessage, resolver AddressResolver) domain.AttributedMessage {
	for _, stage := range attributionPipeline {
		if message, ok := stage(record, resolver); ok {
			return message
		}
	}
	return domain.AttributedMessage{Sender: record.SenderAddress, Content: record.Text}
}

func attributeBroadcast(record domain.InboundMessage, _ AddressResolver) (domain.AttributedMessage, bool) {
	if !strings.HasPrefix(record.Text, domain.BroadcastMarker) {
		return domain.AttributedMessage{}, false
	}

	rest := strings.TrimPrefix(record.Text, domain.BroadcastMarker)
	sender := record.SenderAddress
	content := strings.TrimSpace(rest)

	if open := strings.Index(rest, "["); open >= 0 {
		if length := strings.Index(rest[open+1:], "]"); length > 0 {
			closing := open + 1 + length
			sender = rest[open+1 : closing]
			content = strings.TrimSpace(rest[closing+1:])
		}
	}

	return domain.AttributedMessage{
		Sender:      sender,
		Content:     stripLeadingBracket(content),
		IsBroadcast: true,
	}, true
}

func attributeFromDirectory(record domain.InboundMessage, resolver AddressResolver) (domain.AttributedMessage, bool) {
	if resolver == nil {
		return domain.AttributedMessage{}, false
	}

	username, ok := resolver.Resolve(record.SenderAddress)
	if !ok || username == "" {
		return domain.AttributedMessage{}, false
	}

	content := strings.TrimSpace(strings.ReplaceAll(record.Text, "["+username+"]", ""))
	return domain.AttributedMessage{
		Sender:  username,
		Content: stripLeadingBracket(content),
	}, true
}

func attributeFromBracketTokens(record domain.InboundMessage, _ AddressResolver) (domain.AttributedMessage, bool) {
	tokens := bracketTokens(record.Text)
	if len(tokens) == 0 {
		return domain.AttributedMessage{}, false
	}

	for _, token := range tokens {
		if isAddressToken(token) {
			continue
		}
		content := strings.TrimSpace(strings.Replace(record.Text, "["+token+"]", "", 1))
		return domain.AttributedMessage{
			Sender:  token,
			Content: stripLeadingBracket(content),
		}, true
	}

	// Every token is address-shaped: the first one is still taken as the
	// sender name instead of falling back to the raw sender address.
	return domain.AttributedMessage{
		Sender:  tokens[0],
		Content: strings.TrimSpace(stripLeadingBracket(record.Text)),
	}, true
}

func attributeRaw(record domain.InboundMessage, _ AddressResolver) (domain.AttributedMessage, bool) {
	return domain.AttributedMessage{
		Sender:  record.SenderAddress,
		Content: stripLeadingBracket(record.Text),
	}, true
}

func bracketTokens(text string) []string {
	matches := bracketTokenPattern.FindAllStringSubmatch(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		tokens = append(tokens, match[1])
	}
	return tokens
}

func isAddressToken(token string) bool {
	return addressTokenPattern.MatchString(token)
}

func stripLeadingBracket(content string) string {
	return leadingBracketPattern.ReplaceAllString(content, "")
}
