package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/idenegocios/barbershop-directory/internal/audit"
	domain "github.com/idenegocios/barbershop-directory/internal/domain/directory"
	"github.com/idenegocios/barbershop-directory/internal/httperr"
	"github.com/idenegocios/barbershop-directory/internal/httpresp"
	"github.com/idenegocios/barbershop-directory/internal/validators"
)

type BarbershopHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBarbershopHandler(repo domain.Repository, audit *audit.Dispatcher) *BarbershopHandler {
	return &BarbershopHandler{repo: repo, audit: audit}
}

// --------- Handlers ---------

func (h *BarbershopHandler) List(c *gin.Context) {
	shops, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Erro interno do servidor")
		return
	}
	httpresp.List(c, shops)
}

func (h *BarbershopHandler) Get(c *gin.Context) {
	id := c.Param("id")

	shop, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_get_barbershop", "Erro interno do servidor")
		return
	}
	if shop == nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) Create(c *gin.Context) {
	var in domain.CreateBarbershopInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição")
		return
	}

	if errs := validators.ValidateCreateBarbershop(in); len(errs) > 0 {
		httperr.ValidationFailed(c, errs)
		return
	}

	shop, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "failed_to_create_barbershop", "Erro interno do servidor")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "barbershop_created",
		Entity:       "barbershop",
		EntityID:     shop.ID,
	})

	httpresp.Created(c, shop)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var in domain.UpdateBarbershopInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição")
		return
	}

	if errs := validators.ValidateUpdateBarbershop(in); len(errs) > 0 {
		httperr.ValidationFailed(c, errs)
		return
	}

	shop, err := h.repo.Update(c.Request.Context(), id, in)
	if err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro interno do servidor")
		return
	}
	if shop == nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "barbershop_updated",
		Entity:       "barbershop",
		EntityID:     shop.ID,
	})

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_barbershop", "Erro interno do servidor")
		return
	}
	if !deleted {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: id,
		Action:       "barbershop_deleted",
		Entity:       "barbershop",
		EntityID:     id,
	})

	c.JSON(200, gin.H{
		"success": true,
		"message": "Barbearia deletada com sucesso",
	})
}

func (h *BarbershopHandler) Search(c *gin.Context) {
	filters := parseSearchFilters(c)

	shops, err := h.repo.Search(c.Request.Context(), filters)
	if err != nil {
		httperr.Internal(c, "failed_to_search_barbershops", "Erro interno do servidor")
		return
	}
	httpresp.List(c, shops)
}

// Filtros vazios são descartados aqui; o repositório só enxerga o que
// realmente estreita o resultado.
func parseSearchFilters(c *gin.Context) domain.SearchFilters {
	filters := domain.SearchFilters{
		City:         strings.TrimSpace(c.Query("city")),
		State:        strings.TrimSpace(c.Query("state")),
		Neighborhood: strings.TrimSpace(c.Query("neighborhood")),
		PriceRange:   strings.TrimSpace(c.Query("priceRange")),
	}

	if raw := c.Query("rating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.Rating = &v
		}
	}

	if raw := c.Query("verified"); raw != "" {
		v := raw == "true"
		filters.Verified = &v
	}

	for _, s := range c.QueryArray("services") {
		if s = strings.TrimSpace(s); s != "" {
			filters.Services = append(filters.Services, s)
		}
	}
	for _, a := range c.QueryArray("amenities") {
		if a = strings.TrimSpace(a); a != "" {
			filters.Amenities = append(filters.Amenities, a)
		}
	}

	return filters
}
