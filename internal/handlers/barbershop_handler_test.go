package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/idenegocios/barbershop-directory/internal/config"
	dbpkg "github.com/idenegocios/barbershop-directory/internal/db"
	"github.com/idenegocios/barbershop-directory/internal/routes"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "s3nh4-admin"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := dbpkg.Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        adminEmail,
		AdminPasswordHash: string(hash),
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func validShopPayload(name string) gin.H {
	return gin.H{
		"name":        name,
		"description": "Descrição longa o suficiente para o cadastro",
		"address": gin.H{
			"street":       "Rua das Flores",
			"number":       "123",
			"neighborhood": "Centro",
			"city":         "São Paulo",
			"state":        "SP",
			"zipCode":      "01234-567",
		},
		"contact": gin.H{"phone": "(11) 99999-9999"},
		"hours": gin.H{
			"monday": gin.H{"open": "08:00", "close": "18:00"},
		},
		"services": []gin.H{
			{"name": "Corte Masculino", "price": 25, "duration": 30, "category": "corte"},
		},
		"amenities":  []string{"Wi-Fi"},
		"priceRange": "medium",
	}
}

func createShop(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/barbershops", validShopPayload(name), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	return data["id"].(string)
}

// --------------------------------------------------
// Barbershops
// --------------------------------------------------

func TestListBarbershops_Empty(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/barbershops", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["total"])
	assert.Equal(t, []any{}, body["data"])
}

func TestCreateBarbershop(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/barbershops", validShopPayload("Barbearia Nova"), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Barbearia Nova", data["name"])
	assert.Equal(t, false, data["verified"])
	assert.Equal(t, float64(0), data["rating"])
	assert.Equal(t, float64(0), data["reviewCount"])
}

func TestCreateBarbershop_VerifiedIgnoredOnCreate(t *testing.T) {
	r := setupServer(t)

	payload := validShopPayload("Esperta")
	payload["verified"] = true
	payload["rating"] = 5.0

	w := doJSON(t, r, http.MethodPost, "/api/barbershops", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, false, data["verified"])
	assert.Equal(t, float64(0), data["rating"])
}

func TestCreateBarbershop_ValidationErrors(t *testing.T) {
	r := setupServer(t)

	payload := validShopPayload("X")
	payload["services"] = []gin.H{}

	w := doJSON(t, r, http.MethodPost, "/api/barbershops", payload, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["errors"])
}

func TestGetBarbershop_NotFound(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/barbershops/nao-existe", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "barbershop_not_found", decode(t, w)["error_code"])
}

func TestUpdateBarbershop_PartialMerge(t *testing.T) {
	r := setupServer(t)
	id := createShop(t, r, "Barbearia A")

	w := doJSON(t, r, http.MethodPut, "/api/barbershops/"+id,
		gin.H{"address": gin.H{"city": "Campinas"}}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	addr := data["address"].(map[string]any)
	assert.Equal(t, "Campinas", addr["city"])
	assert.Equal(t, "Rua das Flores", addr["street"])
	assert.Equal(t, "Barbearia A", data["name"])
}

func TestUpdateBarbershop_NotFound(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPut, "/api/barbershops/nao-existe",
		gin.H{"name": "Qualquer"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBarbershop(t *testing.T) {
	r := setupServer(t)
	id := createShop(t, r, "Barbearia A")

	w := doJSON(t, r, http.MethodDelete, "/api/barbershops/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Barbearia deletada com sucesso", decode(t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/barbershops/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/barbershops/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchBarbershops(t *testing.T) {
	r := setupServer(t)

	createShop(t, r, "Barbearia SP")

	other := validShopPayload("Barbearia Campinas")
	other["address"].(gin.H)["city"] = "Campinas"
	w := doJSON(t, r, http.MethodPost, "/api/barbershops", other, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/barbershops/search?city=campinas", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(1), body["total"])

	data := body["data"].([]any)
	shop := data[0].(map[string]any)
	assert.Equal(t, "Barbearia Campinas", shop["name"])

	// Filtro sem correspondência devolve lista vazia, nunca erro.
	w = doJSON(t, r, http.MethodGet, "/api/barbershops/search?city=inexistente", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["total"])
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func TestReviewFlow(t *testing.T) {
	r := setupServer(t)
	id := createShop(t, r, "Barbearia A")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/barbershops/%s/reviews", id),
		gin.H{"customerName": "João Silva", "rating": 5, "comment": "Atendimento excelente"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	review := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, id, review["barbershopId"])
	assert.Equal(t, float64(5), review["rating"])

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/barbershops/%s/reviews", id),
		gin.H{"customerName": "Maria", "rating": 4, "comment": "Muito bom mesmo"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// O agregado da barbearia reflete as duas avaliações.
	w = doJSON(t, r, http.MethodGet, "/api/barbershops/"+id, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(4.5), data["rating"])
	assert.Equal(t, float64(2), data["reviewCount"])

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/barbershops/%s/reviews", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["total"])
}

func TestCreateReview_UnknownBarbershop(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/barbershops/nao-existe/reviews",
		gin.H{"customerName": "João", "rating": 5, "comment": "Muito bom mesmo"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReview_InvalidRating(t *testing.T) {
	r := setupServer(t)
	id := createShop(t, r, "Barbearia A")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/barbershops/%s/reviews", id),
		gin.H{"customerName": "João", "rating": 6, "comment": "Muito bom mesmo"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decode(t, w)["errors"])
}

// --------------------------------------------------
// Stats & docs
// --------------------------------------------------

func TestStats(t *testing.T) {
	r := setupServer(t)
	createShop(t, r, "Barbearia A")

	w := doJSON(t, r, http.MethodGet, "/api/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["totalBarbershops"])
	assert.Equal(t, float64(0), data["verifiedBarbershops"])
	assert.NotNil(t, data["priceRangeDistribution"])
	assert.NotNil(t, data["topServices"])
}

func TestDocs(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/docs", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Barbershop Directory API", decode(t, w)["title"])
}

// --------------------------------------------------
// Auth & admin
// --------------------------------------------------

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"email": adminEmail, "password": adminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"email": adminEmail, "password": "errada"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decode(t, w)["error_code"])
}

func TestVerify_RequiresToken(t *testing.T) {
	r := setupServer(t)
	id := createShop(t, r, "Barbearia A")

	w := doJSON(t, r, http.MethodPatch, "/api/admin/barbershops/"+id+"/verify", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerify_Admin(t *testing.T) {
	r := setupServer(t)
	id := createShop(t, r, "Barbearia A")
	token := login(t, r)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/barbershops/"+id+"/verify", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, true, data["verified"])

	// Corpo explícito desliga o flag de volta.
	w = doJSON(t, r, http.MethodPatch, "/api/admin/barbershops/"+id+"/verify",
		gin.H{"verified": false}, token)
	require.Equal(t, http.StatusOK, w.Code)
	data = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, false, data["verified"])

	w = doJSON(t, r, http.MethodPatch, "/api/admin/barbershops/nao-existe/verify", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuditLogs(t *testing.T) {
	r := setupServer(t)
	createShop(t, r, "Barbearia A")
	token := login(t, r)

	// O dispatcher grava em background; espera o log da criação chegar.
	assert.Eventually(t, func() bool {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/audit-logs?action=barbershop_created", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			return false
		}
		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Total int64 `json:"total"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			return false
		}
		return body.Success && body.Data.Total >= 1
	}, 3*time.Second, 50*time.Millisecond)
}
