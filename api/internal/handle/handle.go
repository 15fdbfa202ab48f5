package handle

import (
	"food-checker/api/internal/assess"
	"food-checker/api/internal/catalog"
)

type Handle struct {
	engine assess.Engine
	cat    catalog.Catalog
}

func New(engine assess.Engine, cat catalog.Catalog) *Handle {
	return &Handle{
		engine: engine,
		cat:    cat,
	}
}
