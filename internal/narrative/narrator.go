package narrative

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/paddock-edge/internal/config"
	"github.com/yourusername/paddock-edge/internal/metrics"
	"github.com/yourusername/paddock-edge/internal/models"
)

// Narrator generates and caches per-race narratives. Disabled or failing
// generation degrades to an empty narrative so the quantitative pipeline
// never stalls on the collaborator.
type Narrator struct {
	client  *Client
	cache   *gocache.Cache
	enabled bool
	logger  *logrus.Logger
}

// NewNarrator builds a narrator from app config.
func NewNarrator(cfg *config.Config, log *logrus.Logger) *Narrator {
	if log == nil {
		log = logrus.New()
	}

	ttl := time.Duration(cfg.Narrative.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}

	n := &Narrator{
		cache:   gocache.New(ttl, 2*ttl),
		enabled: cfg.Narrative.Enabled,
		logger:  log,
	}
	if n.enabled {
		n.client = NewClient(ClientConfig{
			URL:         cfg.Narrative.URL,
			APIKey:      cfg.Narrative.APIKey,
			Model:       cfg.Narrative.Model,
			Temperature: cfg.Narrative.Temperature,
			MaxTokens:   cfg.Narrative.MaxTokens,
			Timeout:     cfg.NarrativeTimeout(),
		})
	}
	return n
}

// Enabled reports whether narrative generation is configured.
func (n *Narrator) Enabled() bool {
	return n.enabled
}

// RaceNarrative returns the narrative for one ranked race, generating and
// caching it on the first request. Failures return an empty string.
func (n *Narrator) RaceNarrative(ctx context.Context, date, track string, raceNo int, ranked []models.HorseAnalysis) string {
	if !n.enabled || len(ranked) == 0 {
		return ""
	}

	key := cacheKey(date, track, raceNo)
	if cached, found := n.cache.Get(key); found {
		metrics.RecordNarrativeRequest("cached")
		return cached.(string)
	}

	text, err := n.client.Generate(ctx, BuildPrompt(raceNo, "", ranked))
	if err != nil {
		metrics.RecordNarrativeRequest("failed")
		n.logger.WithError(err).WithField("race_no", raceNo).Warn("Narrative generation failed")
		return ""
	}

	metrics.RecordNarrativeRequest("generated")
	n.cache.Set(key, text, gocache.DefaultExpiration)
	return text
}

func cacheKey(date, track string, raceNo int) string {
	return fmt.Sprintf("%s_%s_%d", date, track, raceNo)
}
