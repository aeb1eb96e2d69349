package sahayata

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/sahayata/internal/domain/search/query"
)

// Search ranks catalog schemes for a free-text message. Unknown languages
// are searched as English; limit 0 means the default of 10.
func (c *Client) Search(ctx context.Context, message string, lang Language, limit int) ([]Match, error) {
	done := c.obs.track("search")
	out, err := c.search(ctx, message, lang, limit)
	done(err)
	return out, err
}

func (c *Client) search(ctx context.Context, message string, lang Language, limit int) ([]Match, error) {
	q, err := query.New(message, string(lang), limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	ms, err := c.svc.Search.Search(ctx, &q)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return fromMatches(ms), nil
}

// Chat answers a message with a localized reply listing the best matches.
// A store failure yields the localized apology, not an error.
func (c *Client) Chat(ctx context.Context, message string, lang Language) (Reply, error) {
	done := c.obs.track("chat")
	r, err := c.svc.Chat.Answer(ctx, message, string(lang))
	done(err)
	if err != nil {
		return Reply{}, fmt.Errorf("chat: %w", err)
	}
	return Reply{
		Message:  r.Message,
		Matches:  fromMatches(r.Schemes),
		Language: Language(r.Language),
	}, nil
}
