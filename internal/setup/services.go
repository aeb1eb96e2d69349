package setup

import (
	"fmt"

	"github.com/kailas-cloud/sahayata/internal/config"
	"github.com/kailas-cloud/sahayata/internal/domain/keyword"
	cataloguc "github.com/kailas-cloud/sahayata/internal/usecase/catalog"
	chatuc "github.com/kailas-cloud/sahayata/internal/usecase/chat"
	eligibilityuc "github.com/kailas-cloud/sahayata/internal/usecase/eligibility"
	healthuc "github.com/kailas-cloud/sahayata/internal/usecase/health"
	"github.com/kailas-cloud/sahayata/internal/usecase/reply"
	searchuc "github.com/kailas-cloud/sahayata/internal/usecase/search"
)

// Services are the usecases built over one catalog backend.
type Services struct {
	Search      *searchuc.Service
	Chat        *chatuc.Service
	Eligibility *eligibilityuc.Service
	Catalog     *cataloguc.Service
	Health      *healthuc.Service
}

// NewServices builds the immutable taxonomy, weight and template tables once
// and shares them across every request.
func NewServices(b *Backend, cfg config.SearchConfig) (*Services, error) {
	taxonomy := keyword.Default()
	composer, err := reply.NewComposer(taxonomy, reply.DefaultTemplates())
	if err != nil {
		return nil, fmt.Errorf("build composer: %w", err)
	}

	search := searchuc.New(b.Catalog, keyword.NewExtractor(taxonomy), searchuc.NewScorer(searchuc.DefaultWeights()))
	return &Services{
		Search:      search,
		Chat:        chatuc.New(search, composer, chatuc.WithSearchLimit(cfg.Limit), chatuc.WithShown(cfg.Shown)),
		Eligibility: eligibilityuc.New(b.Catalog, eligibilityuc.DefaultRubric()),
		Catalog:     cataloguc.New(b.Catalog),
		Health:      healthuc.New(b.Pinger, b.Driver),
	}, nil
}
