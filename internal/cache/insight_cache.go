package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsecheck/internal/model"
)

// InsightCache holds computed analytics per survey so repeat dashboard loads
// do not re-run the pipeline. Entries are replaced wholesale on refresh;
// there is no partial invalidation because derived artifacts have no
// independent identity.
type InsightCache interface {
	GetThemes(ctx context.Context, surveyID string) ([]model.ThemeInsight, error)
	SetThemes(ctx context.Context, surveyID string, themes []model.ThemeInsight) error

	GetQuality(ctx context.Context, surveyID string) (*model.AggregateQualityMetrics, error)
	SetQuality(ctx context.Context, surveyID string, quality *model.AggregateQualityMetrics) error

	GetNLP(ctx context.Context, surveyID string) (*model.NLPAnalysis, error)
	SetNLP(ctx context.Context, surveyID string, analysis *model.NLPAnalysis) error

	GetCulture(ctx context.Context, surveyID string) (*model.CulturalMap, error)
	SetCulture(ctx context.Context, surveyID string, culture *model.CulturalMap) error

	Invalidate(ctx context.Context, surveyID string) error
}

type insightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCache creates a redis-backed insight cache.
func NewInsightCache(client *redis.Client) InsightCache {
	return &insightCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *insightCache) themesKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:insights:themes", surveyID)
}

func (c *insightCache) qualityKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:insights:quality", surveyID)
}

func (c *insightCache) nlpKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:insights:nlp", surveyID)
}

func (c *insightCache) cultureKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:insights:culture", surveyID)
}

func (c *insightCache) GetThemes(ctx context.Context, surveyID string) ([]model.ThemeInsight, error) {
	data, err := c.client.Get(ctx, c.themesKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var themes []model.ThemeInsight
	if err := json.Unmarshal([]byte(data), &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

func (c *insightCache) SetThemes(ctx context.Context, surveyID string, themes []model.ThemeInsight) error {
	data, err := json.Marshal(themes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.themesKey(surveyID), data, c.ttl).Err()
}

func (c *insightCache) GetQuality(ctx context.Context, surveyID string) (*model.AggregateQualityMetrics, error) {
	data, err := c.client.Get(ctx, c.qualityKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var quality model.AggregateQualityMetrics
	if err := json.Unmarshal([]byte(data), &quality); err != nil {
		return nil, err
	}
	return &quality, nil
}

func (c *insightCache) SetQuality(ctx context.Context, surveyID string, quality *model.AggregateQualityMetrics) error {
	data, err := json.Marshal(quality)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.qualityKey(surveyID), data, c.ttl).Err()
}

func (c *insightCache) GetNLP(ctx context.Context, surveyID string) (*model.NLPAnalysis, error) {
	data, err := c.client.Get(ctx, c.nlpKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analysis model.NLPAnalysis
	if err := json.Unmarshal([]byte(data), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *insightCache) SetNLP(ctx context.Context, surveyID string, analysis *model.NLPAnalysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.nlpKey(surveyID), data, c.ttl).Err()
}

func (c *insightCache) GetCulture(ctx context.Context, surveyID string) (*model.CulturalMap, error) {
	data, err := c.client.Get(ctx, c.cultureKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var culture model.CulturalMap
	if err := json.Unmarshal([]byte(data), &culture); err != nil {
		return nil, err
	}
	return &culture, nil
}

func (c *insightCache) SetCulture(ctx context.Context, surveyID string, culture *model.CulturalMap) error {
	data, err := json.Marshal(culture)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.cultureKey(surveyID), data, c.ttl).Err()
}

func (c *insightCache) Invalidate(ctx context.Context, surveyID string) error {
	return c.client.Del(ctx,
		c.themesKey(surveyID),
		c.qualityKey(surveyID),
		c.nlpKey(surveyID),
		c.cultureKey(surveyID),
	).Err()
}
