package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DocsHandler struct{}

func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// Get devolve a descrição estática da API consumida pelos clients.
func (h *DocsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":       "Barbershop Directory API",
		"version":     "1.0.0",
		"description": "API completa para diretório de barbearias",
		"baseUrl":     "/api",
		"endpoints": gin.H{
			"barbershops": gin.H{
				"GET /barbershops": gin.H{
					"description": "Lista todas as barbearias",
					"response":    "Array de barbearias com informações completas",
				},
				"POST /barbershops": gin.H{
					"description": "Cria uma nova barbearia",
					"body":        "Dados da barbearia (nome, endereço, contato, horários, serviços, etc.)",
					"response":    "Barbearia criada",
				},
				"GET /barbershops/{id}": gin.H{
					"description": "Busca barbearia por ID",
					"response":    "Dados completos da barbearia",
				},
				"PUT /barbershops/{id}": gin.H{
					"description": "Atualiza dados da barbearia",
					"body":        "Campos a serem atualizados",
					"response":    "Barbearia atualizada",
				},
				"DELETE /barbershops/{id}": gin.H{
					"description": "Remove barbearia",
					"response":    "Confirmação de remoção",
				},
				"GET /barbershops/search": gin.H{
					"description": "Busca barbearias com filtros",
					"queryParams": []string{
						"city - Filtrar por cidade",
						"state - Filtrar por estado",
						"neighborhood - Filtrar por bairro",
						"priceRange - low|medium|high",
						"services - Nome do serviço",
						"amenities - Nome da comodidade",
						"rating - Avaliação mínima",
						"verified - true|false",
					},
					"response": "Array de barbearias filtradas",
				},
			},
			"reviews": gin.H{
				"GET /barbershops/{id}/reviews": gin.H{
					"description": "Lista avaliações de uma barbearia",
					"response":    "Array de avaliações",
				},
				"POST /barbershops/{id}/reviews": gin.H{
					"description": "Adiciona avaliação à barbearia",
					"body":        "customerName, rating (1-5), comment",
					"response":    "Avaliação criada",
				},
			},
			"stats": gin.H{
				"GET /stats": gin.H{
					"description": "Estatísticas gerais do diretório",
					"response":    "Dados estatísticos (total de barbearias, avaliações, etc.)",
				},
			},
			"admin": gin.H{
				"POST /auth/login": gin.H{
					"description": "Login administrativo",
					"body":        "email, password",
					"response":    "Token JWT",
				},
				"PATCH /admin/barbershops/{id}/verify": gin.H{
					"description": "Marca barbearia como verificada (requer token admin)",
					"response":    "Barbearia atualizada",
				},
			},
		},
		"examples": gin.H{
			"createReview": gin.H{
				"customerName": "João Silva",
				"rating":       5,
				"comment":      "Excelente atendimento e corte perfeito!",
			},
		},
	})
}
