package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/match-edge/internal/analysis"
)

// ResponseCache provides in-memory caching of analysis responses keyed by a
// hash of the request body. Identical parameters always produce identical
// results, so cached responses are exact, not stale approximations.
type ResponseCache struct {
	cache *cache.Cache
}

// NewResponseCache creates a response cache with the given TTL.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{cache: cache.New(ttl, ttl*2)}
}

// Get retrieves a cached analysis for the request, if present.
func (rc *ResponseCache) Get(req *AnalysisRequest) (*analysis.MatchAnalysis, bool) {
	key, err := requestKey(req)
	if err != nil {
		return nil, false
	}
	if cached, found := rc.cache.Get(key); found {
		if result, ok := cached.(*analysis.MatchAnalysis); ok {
			return result, true
		}
	}
	return nil, false
}

// Set stores an analysis response for the request.
func (rc *ResponseCache) Set(req *AnalysisRequest, result *analysis.MatchAnalysis) {
	key, err := requestKey(req)
	if err != nil {
		return
	}
	rc.cache.Set(key, result, cache.DefaultExpiration)
}

func requestKey(req *AnalysisRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
