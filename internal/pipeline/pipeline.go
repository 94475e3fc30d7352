// Package pipeline wires extraction, the six analysis stages and the
// result cache into one orchestrator. Stages run concurrently against
// the same extracted text; the first stage error aborts the whole run.
package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/phuslu/log"

	"github.com/greenstamp/greenstamp/internal/analyze"
	"github.com/greenstamp/greenstamp/internal/cache"
	"github.com/greenstamp/greenstamp/internal/extract"
	"github.com/greenstamp/greenstamp/internal/inference"
	"github.com/greenstamp/greenstamp/internal/knowledge"
	"github.com/greenstamp/greenstamp/internal/model"
	"github.com/greenstamp/greenstamp/internal/worker"
)

// Pipeline orchestrates the complete document analysis
type Pipeline struct {
	source     *extract.Source
	summarizer *analyze.Summarizer
	sentiment  *analyze.SentimentAnalyzer
	topics     *analyze.TopicClassifier
	metrics    *analyze.MetricExtractor
	compliance *analyze.ComplianceAnalyzer
	risks      *analyze.RiskIdentifier
	base       *knowledge.Base
	engine     inference.Engine
	cache      cache.Cache
	cacheTTL   time.Duration
	config     *model.Config
}

// New creates a pipeline from the given configuration
func New(cfg *model.Config) (*Pipeline, error) {
	raw, err := inference.NewEngine(cfg.Inference, cfg.Proxy)
	if err != nil {
		return nil, err
	}

	limiter := worker.NewLimiter(cfg.Limiter.RequestsPerSecond, cfg.Limiter.Burst)
	engine := inference.NewLimitedEngine(raw, limiter)
	base := knowledge.NewBase()
	provider := engine.Name()

	var c cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			c = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.TTL)
		}
	}

	return &Pipeline{
		source:     extract.NewSource(),
		summarizer: analyze.NewSummarizer(engine, provider),
		sentiment:  analyze.NewSentimentAnalyzer(engine, provider),
		topics:     analyze.NewTopicClassifier(engine, provider),
		metrics:    analyze.NewMetricExtractor(),
		compliance: analyze.NewComplianceAnalyzer(engine, base, provider),
		risks:      analyze.NewRiskIdentifier(engine, provider),
		base:       base,
		engine:     engine,
		cache:      c,
		cacheTTL:   cfg.Cache.TTL,
		config:     cfg,
	}, nil
}

// KnowledgeBase exposes the regulatory catalog the pipeline analyzes
// against
func (p *Pipeline) KnowledgeBase() *knowledge.Base {
	return p.base
}

// Engine exposes the configured inference engine
func (p *Pipeline) Engine() inference.Engine {
	return p.engine
}

// AnalyzeText runs all six analysis stages over already-extracted text.
// Stages run concurrently; results are identical regardless of finish
// order, and on multiple failures the earliest stage in the fixed order
// summary, sentiment, topics, metrics, compliance, risks wins.
func (p *Pipeline) AnalyzeText(ctx context.Context, text model.ExtractedText) (*model.AnalysisResult, error) {
	key := cache.CacheKey(string(text))
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var cached model.AnalysisResult
			if err := json.Unmarshal(data, &cached); err == nil {
				log.Debug().Str("key", key).Msg("analysis cache hit")
				return &cached, nil
			}
			// Corrupt entry: drop it and recompute
			_ = p.cache.Delete(key)
		}
	}

	result := &model.AnalysisResult{}
	errs := make([]error, 6)

	var wg sync.WaitGroup
	wg.Add(6)
	go func() {
		defer wg.Done()
		result.Summary, errs[0] = p.summarizer.Summarize(ctx, text)
	}()
	go func() {
		defer wg.Done()
		result.Sentiment, errs[1] = p.sentiment.Analyze(ctx, text)
	}()
	go func() {
		defer wg.Done()
		result.Topics, errs[2] = p.topics.Classify(ctx, text)
	}()
	go func() {
		defer wg.Done()
		result.Metrics, errs[3] = p.metrics.Extract(ctx, text)
	}()
	go func() {
		defer wg.Done()
		result.Compliance, errs[4] = p.compliance.Analyze(ctx, text)
	}()
	go func() {
		defer wg.Done()
		result.Risks, errs[5] = p.risks.Identify(ctx, text)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result.Timestamp = time.Now().UTC()

	if p.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := p.cache.Set(key, data, p.cacheTTL); err != nil {
				log.Warn().Err(err).Msg("analysis cache write failed")
			}
		}
	}

	return result, nil
}

// AnalyzeDocument extracts text from the document and analyzes it
func (p *Pipeline) AnalyzeDocument(ctx context.Context, doc model.Document) (*model.AnalysisResult, error) {
	text, err := p.source.Extract(ctx, doc)
	if err != nil {
		return nil, err
	}
	return p.AnalyzeText(ctx, text)
}

// AnalyzeFile reads, extracts and analyzes a document from disk
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.AnalysisResult, error) {
	text, err := p.source.ExtractFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.AnalyzeText(ctx, text)
}

// ExtractText exposes extraction without analysis
func (p *Pipeline) ExtractText(ctx context.Context, doc model.Document) (model.ExtractedText, error) {
	return p.source.Extract(ctx, doc)
}

// ExtractMetrics runs only the metric stage
func (p *Pipeline) ExtractMetrics(ctx context.Context, text model.ExtractedText) (model.MetricBundle, error) {
	return p.metrics.Extract(ctx, text)
}

// AnalyzeCompliance runs only the compliance stage
func (p *Pipeline) AnalyzeCompliance(ctx context.Context, text model.ExtractedText) (model.ComplianceResult, error) {
	return p.compliance.Analyze(ctx, text)
}
