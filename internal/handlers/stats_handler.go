package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idenegocios/barbershop-directory/internal/cache"
	"github.com/idenegocios/barbershop-directory/internal/httperr"
	"github.com/idenegocios/barbershop-directory/internal/httpresp"
	"github.com/idenegocios/barbershop-directory/internal/usecase/stats"
)

const statsCacheKey = "directory:stats"

type StatsHandler struct {
	uc    *stats.GetStats
	cache *cache.Cache
}

func NewStatsHandler(uc *stats.GetStats, c *cache.Cache) *StatsHandler {
	return &StatsHandler{uc: uc, cache: c}
}

func (h *StatsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if b, ok := h.cache.Get(ctx, statsCacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	overview, err := h.uc.Execute(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro interno do servidor")
		return
	}

	if h.cache.Enabled() {
		payload := gin.H{"success": true, "data": overview}
		if b, err := json.Marshal(payload); err == nil {
			h.cache.Set(ctx, statsCacheKey, b)
		}
	}

	httpresp.OK(c, overview)
}
