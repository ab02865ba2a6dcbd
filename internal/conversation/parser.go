// Package conversation provides intent parsing and user notification implementations.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches typed commands to intents using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// patternRule maps a command pattern to an intent. When the pattern has a
// capture group, the first group becomes the payload.
type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(?:search|s|find)\s+(.+)$`), domain.IntentSearch},
		{regexp.MustCompile(`(?i)^(?:next|n|>)$`), domain.IntentNextPage},
		{regexp.MustCompile(`(?i)^(?:prev|previous|p|<)$`), domain.IntentPrevPage},
		{regexp.MustCompile(`(?i)^(?:page|pg)\s+(\d+)$`), domain.IntentGoToPage},
		{regexp.MustCompile(`(?i)^(?:open|o|pick|select)\s+(\S+)$`), domain.IntentOpenRecipe},
		{regexp.MustCompile(`^(#\d+)$`), domain.IntentOpenRecipe},
		{regexp.MustCompile(`(?i)^(?:show|recipe|r)$`), domain.IntentShowRecipe},
		{regexp.MustCompile(`(?i)^(?:\+|more|inc|increase)$`), domain.IntentIncrease},
		{regexp.MustCompile(`(?i)^(?:-|less|dec|decrease)$`), domain.IntentDecrease},
		{regexp.MustCompile(`(?i)^(?:add|shop|buy)$`), domain.IntentAddToList},
		{regexp.MustCompile(`(?i)^(?:list|ls|cart)$`), domain.IntentShowList},
		{regexp.MustCompile(`(?i)^(?:remove|rm|delete|del)\s+(\S+)$`), domain.IntentRemoveItem},
		{regexp.MustCompile(`(?i)^(?:count|set)\s+(\S+\s+\S+)$`), domain.IntentSetCount},
		{regexp.MustCompile(`(?i)^(?:like|unlike|fav|love)$`), domain.IntentToggleLike},
		{regexp.MustCompile(`(?i)^(?:likes|favs|favorites|favourites)$`), domain.IntentShowLikes},
		{regexp.MustCompile(`(?i)^(?:help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(?:quit|exit|q|bye)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts user input into an intent. Input that matches no command
// is returned as IntentUnknown with the input as payload.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.Join(strings.Fields(input), " ")
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if len(m) > 1 {
			intent.Payload = m[1]
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

// Help lists the commands Parse understands.
const Help = `Commands:
  search <query>     find recipes (alias: s)
  next / prev        move through result pages
  page <n>           jump to a result page
  open <id|#n>       open a recipe by ID or by its number on the page (or just #n)
  show               show the open recipe again
  + / -              one serving more / less
  add                add the recipe's ingredients to the shopping list
  list               show the shopping list
  remove <item>      remove an item (#n, or ID prefix)
  count <item> <n>   set an item's count
  like               like or unlike the open recipe
  likes              show liked recipes
  help               show this help
  quit               exit`
