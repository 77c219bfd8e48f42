package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/idenegocios/barbershop-directory/internal/audit"
	domain "github.com/idenegocios/barbershop-directory/internal/domain/directory"
	"github.com/idenegocios/barbershop-directory/internal/httperr"
	"github.com/idenegocios/barbershop-directory/internal/httpresp"
	"github.com/idenegocios/barbershop-directory/internal/validators"
)

type ReviewHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReviewHandler(repo domain.Repository, audit *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{repo: repo, audit: audit}
}

func (h *ReviewHandler) List(c *gin.Context) {
	barbershopID := c.Param("id")

	shop, err := h.repo.GetByID(c.Request.Context(), barbershopID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_barbershop", "Erro interno do servidor")
		return
	}
	if shop == nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	reviews, err := h.repo.ListReviews(c.Request.Context(), barbershopID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Erro interno do servidor")
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	barbershopID := c.Param("id")

	// Existência checada na borda; o repositório assume shop válido.
	shop, err := h.repo.GetByID(c.Request.Context(), barbershopID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_barbershop", "Erro interno do servidor")
		return
	}
	if shop == nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	var in domain.CreateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição")
		return
	}
	in.BarbershopID = barbershopID

	if errs := validators.ValidateReview(in); len(errs) > 0 {
		httperr.ValidationFailed(c, errs)
		return
	}

	review, err := h.repo.CreateReview(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "failed_to_create_review", "Erro interno do servidor")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		Action:       "review_created",
		Entity:       "review",
		EntityID:     review.ID,
	})

	httpresp.Created(c, review)
}
