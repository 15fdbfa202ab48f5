// Package mock is the fallback engine for environments without a configured
// vision model. It simulates an assessment instead of looking at the image.
package mock

import (
	"context"
	"math/rand"
	"sync"

	"food-checker/api/internal/assess"
	"food-checker/api/internal/catalog"
)

// riskRate is the simulated probability that an image contains a food to
// avoid.
const riskRate = 0.3

type Engine struct {
	cat catalog.Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

func New(cat catalog.Catalog, src rand.Source) *Engine {
	return &Engine{
		cat: cat,
		rng: rand.New(src),
	}
}

func (e *Engine) Name() string { return "mock" }

// Assess ignores the image and draws a random verdict: with probability
// riskRate one catalog category chosen uniformly, otherwise the safe_food
// reassurance.
func (e *Engine) Assess(_ context.Context, _ string) (assess.Result, error) {
	e.mu.Lock()
	risky := e.rng.Float64() < riskRate
	var cat catalog.Category
	if risky {
		cat = e.cat[e.rng.Intn(len(e.cat))]
	}
	e.mu.Unlock()

	if risky {
		return assess.Result{
			Safe:         false,
			DetectedFood: assess.CategoryID(cat.ID),
			Message:      cat.Message,
			Details:      cat.Details,
		}, nil
	}
	return assess.Result{
		Safe:         true,
		DetectedFood: assess.CategoryID("safe_food"),
		Message:      assess.MessageSafe,
	}, nil
}
