package directory

import (
	"context"

	"github.com/idenegocios/barbershop-directory/internal/models"
)

// Repository é o núcleo de acesso a dados do diretório. Ausência é
// representada por (nil, nil) — nunca por erro — para o handler
// distinguir 404 de falha de storage.
type Repository interface {
	// -------- Barbershop (leitura) --------
	ListAll(ctx context.Context) ([]models.Barbershop, error)

	GetByID(ctx context.Context, id string) (*models.Barbershop, error)

	Search(ctx context.Context, filters SearchFilters) ([]models.Barbershop, error)

	// -------- Barbershop (escrita) --------
	Create(ctx context.Context, in CreateBarbershopInput) (*models.Barbershop, error)

	Update(ctx context.Context, id string, in UpdateBarbershopInput) (*models.Barbershop, error)

	Delete(ctx context.Context, id string) (bool, error)

	SetVerified(ctx context.Context, id string, verified bool) (*models.Barbershop, error)

	// -------- Reviews --------
	ListReviews(ctx context.Context, barbershopID string) ([]models.Review, error)

	CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error)
}

// ServiceInput descreve um serviço vindo da request. ID vazio recebe um
// id novo; ID presente é preservado na substituição do conjunto.
type ServiceInput struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       float64                `json:"price"`
	Duration    int                    `json:"duration"`
	Category    models.ServiceCategory `json:"category"`
}

type CreateBarbershopInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Address     models.Address    `json:"address"`
	Contact     models.Contact    `json:"contact"`
	Hours       models.HoursMap   `json:"hours"`
	Services    []ServiceInput    `json:"services"`
	Amenities   []string          `json:"amenities"`
	Images      []string          `json:"images"`
	PriceRange  models.PriceRange `json:"priceRange"`
}

// Patches de merge campo a campo: somente sub-campos presentes mudam.
type AddressPatch struct {
	Street       *string  `json:"street"`
	Number       *string  `json:"number"`
	Neighborhood *string  `json:"neighborhood"`
	City         *string  `json:"city"`
	State        *string  `json:"state"`
	ZipCode      *string  `json:"zipCode"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
}

type ContactPatch struct {
	Phone     *string `json:"phone"`
	Whatsapp  *string `json:"whatsapp"`
	Email     *string `json:"email"`
	Website   *string `json:"website"`
	Instagram *string `json:"instagram"`
}

// UpdateBarbershopInput é o update parcial: ponteiro nil significa campo
// ausente. id, rating, reviewCount e createdAt não são representáveis
// aqui de propósito — não existem como campos settáveis.
type UpdateBarbershopInput struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Address     *AddressPatch      `json:"address"`
	Contact     *ContactPatch      `json:"contact"`
	Hours       *models.HoursMap   `json:"hours"`
	Services    *[]ServiceInput    `json:"services"`
	Amenities   *[]string          `json:"amenities"`
	Images      *[]string          `json:"images"`
	PriceRange  *models.PriceRange `json:"priceRange"`
}

// SearchFilters combina por AND; campo zero/nil é ignorado.
type SearchFilters struct {
	City         string
	State        string
	Neighborhood string
	PriceRange   string
	Rating       *float64
	Verified     *bool
	Services     []string
	Amenities    []string
}

func (f SearchFilters) Empty() bool {
	return f.City == "" && f.State == "" && f.Neighborhood == "" &&
		f.PriceRange == "" && f.Rating == nil && f.Verified == nil &&
		len(f.Services) == 0 && len(f.Amenities) == 0
}

type CreateReviewInput struct {
	BarbershopID string `json:"-"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}
