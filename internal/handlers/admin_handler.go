package handlers

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/idenegocios/barbershop-directory/internal/audit"
	domain "github.com/idenegocios/barbershop-directory/internal/domain/directory"
	"github.com/idenegocios/barbershop-directory/internal/httperr"
	"github.com/idenegocios/barbershop-directory/internal/httpresp"
	"github.com/idenegocios/barbershop-directory/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	repo  domain.Repository
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(repo domain.Repository, db *gorm.DB, audit *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{repo: repo, db: db, audit: audit}
}

type VerifyBarbershopRequest struct {
	Verified *bool `json:"verified"`
}

// Verify é o único caminho que liga o flag verified — nunca o create.
func (h *AdminHandler) Verify(c *gin.Context) {
	id := c.Param("id")

	// Corpo vazio é aceito: o default é marcar como verificada.
	var req VerifyBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição")
		return
	}

	verified := true
	if req.Verified != nil {
		verified = *req.Verified
	}

	shop, err := h.repo.SetVerified(c.Request.Context(), id, verified)
	if err != nil {
		httperr.Internal(c, "failed_to_verify_barbershop", "Erro interno do servidor")
		return
	}
	if shop == nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "barbershop_verified",
		Entity:       "barbershop",
		EntityID:     shop.ID,
		Metadata:     gin.H{"verified": verified},
	})

	httpresp.OK(c, shop)
}

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	barbershopID := c.Query("barbershop_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	q := h.db.Model(&models.AuditLog{})

	if barbershopID != "" {
		q = q.Where("barbershop_id = ?", barbershopID)
	}

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs")
		return
	}

	httpresp.OK(c, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
