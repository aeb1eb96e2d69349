package sahayata

import (
	"context"
	"fmt"
)

// Scheme returns one record or ErrSchemeNotFound.
func (c *Client) Scheme(ctx context.Context, id int64) (Scheme, error) {
	done := c.obs.track("get_scheme")
	s, err := c.svc.Catalog.Get(ctx, id)
	done(err)
	if err != nil {
		return Scheme{}, fmt.Errorf("scheme: %w", err)
	}
	return fromScheme(&s), nil
}

// ByCategory lists schemes whose category contains name, ordered by id.
// limit 0 means 50; the maximum is 100.
func (c *Client) ByCategory(ctx context.Context, name string, limit int) ([]Scheme, error) {
	done := c.obs.track("by_category")
	ss, err := c.svc.Catalog.ByCategory(ctx, name, limit)
	done(err)
	if err != nil {
		return nil, fmt.Errorf("by category: %w", err)
	}
	return fromSchemes(ss), nil
}

// Find is a plain containment lookup on localized names and descriptions,
// ordered by id. limit 0 means 20; the maximum is 100.
func (c *Client) Find(ctx context.Context, text string, lang Language, limit int) ([]Scheme, error) {
	done := c.obs.track("find")
	ss, err := c.svc.Catalog.Search(ctx, text, string(lang), limit)
	done(err)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	return fromSchemes(ss), nil
}

// Statistics counts schemes by origin and category.
func (c *Client) Statistics(ctx context.Context) (Statistics, error) {
	done := c.obs.track("statistics")
	st, err := c.svc.Catalog.Statistics(ctx)
	done(err)
	if err != nil {
		return Statistics{}, fmt.Errorf("statistics: %w", err)
	}
	cats := make([]CategoryCount, len(st.Categories))
	for i, cc := range st.Categories {
		cats[i] = CategoryCount{Name: cc.Name, Count: cc.Count}
	}
	return Statistics{Total: st.Total, State: st.State, Central: st.Central, Categories: cats}, nil
}
