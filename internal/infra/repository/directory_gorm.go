package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/idenegocios/barbershop-directory/internal/domain/directory"
	"github.com/idenegocios/barbershop-directory/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop — leitura
// --------------------------------------------------

func (r *DirectoryGormRepository) ListAll(
	ctx context.Context,
) ([]models.Barbershop, error) {

	var shops []models.Barbershop
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Order("created_at DESC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *DirectoryGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	err := r.db.WithContext(ctx).
		Preload("Services").
		First(&shop, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Barbershop — busca com filtros
// --------------------------------------------------

func (r *DirectoryGormRepository) Search(
	ctx context.Context,
	f domain.SearchFilters,
) ([]models.Barbershop, error) {

	q := r.db.WithContext(ctx).Model(&models.Barbershop{})

	if f.City != "" {
		q = q.Where("LOWER(address_city) LIKE ?", like(f.City))
	}
	if f.State != "" {
		q = q.Where("LOWER(address_state) LIKE ?", like(f.State))
	}
	if f.Neighborhood != "" {
		q = q.Where("LOWER(address_neighborhood) LIKE ?", like(f.Neighborhood))
	}
	if f.PriceRange != "" {
		q = q.Where("price_range = ?", f.PriceRange)
	}
	if f.Rating != nil {
		q = q.Where("rating >= ?", *f.Rating)
	}
	if f.Verified != nil {
		q = q.Where("verified = ?", *f.Verified)
	}

	// Subquery no lugar de JOIN (compatível com SQLite e Postgres).
	if len(f.Services) > 0 {
		sub := r.db.Model(&models.Service{}).Select("barbershop_id")

		conds := make([]string, 0, len(f.Services))
		args := make([]any, 0, len(f.Services))
		for _, name := range f.Services {
			conds = append(conds, "LOWER(name) LIKE ?")
			args = append(args, like(name))
		}
		sub = sub.Where(strings.Join(conds, " OR "), args...)

		q = q.Where("id IN (?)", sub)
	}

	var shops []models.Barbershop
	if err := q.
		Preload("Services").
		Order("rating DESC, review_count DESC").
		Find(&shops).Error; err != nil {
		return nil, err
	}

	// Amenities ficam serializadas numa coluna de texto; o substring
	// match entrada a entrada é aplicado depois da hidratação.
	if len(f.Amenities) > 0 {
		filtered := shops[:0]
		for _, shop := range shops {
			if domain.MatchesAny(shop.Amenities, f.Amenities) {
				filtered = append(filtered, shop)
			}
		}
		shops = filtered
	}

	return shops, nil
}

func like(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// --------------------------------------------------
// Barbershop — escrita
// --------------------------------------------------

func (r *DirectoryGormRepository) Create(
	ctx context.Context,
	in domain.CreateBarbershopInput,
) (*models.Barbershop, error) {

	now := time.Now().UTC()

	shop := models.Barbershop{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Contact:     in.Contact,
		Hours:       in.Hours,
		Amenities:   in.Amenities,
		Images:      in.Images,
		PriceRange:  in.PriceRange,

		// Forçados na criação, independentemente do input.
		Verified:    false,
		Rating:      0,
		ReviewCount: 0,

		CreatedAt: now,
		UpdatedAt: now,
	}

	services := buildServices(shop.ID, in.Services)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Create(&shop).Error; err != nil {
			return err
		}
		if len(services) > 0 {
			if err := tx.Create(&services).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	shop.Services = services
	return &shop, nil
}

func (r *DirectoryGormRepository) Update(
	ctx context.Context,
	id string,
	in domain.UpdateBarbershopInput,
) (*models.Barbershop, error) {

	var shop models.Barbershop

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Services").
			First(&shop, "id = ?", id).Error; err != nil {
			return err
		}

		applyPatch(&shop, in)
		shop.UpdatedAt = time.Now().UTC()

		// rating e review_count pertencem ao recompute de CreateReview;
		// gravá-los aqui reintroduziria o valor lido, possivelmente velho.
		if err := tx.Omit("Services", "rating", "review_count").
			Save(&shop).Error; err != nil {
			return err
		}

		// services presente → o conjunto inteiro é apagado e recriado.
		if in.Services != nil {
			if err := tx.Where("barbershop_id = ?", id).
				Delete(&models.Service{}).Error; err != nil {
				return err
			}
			services := buildServices(id, *in.Services)
			if len(services) > 0 {
				if err := tx.Create(&services).Error; err != nil {
					return err
				}
			}
			shop.Services = services
		}
		return nil
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *DirectoryGormRepository) Delete(
	ctx context.Context,
	id string,
) (bool, error) {

	existed := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Filhos antes do pai: a FK de services/reviews aponta para a
		// barbearia e barraria o delete na ordem inversa.
		if err := tx.Where("barbershop_id = ?", id).
			Delete(&models.Service{}).Error; err != nil {
			return err
		}
		if err := tx.Where("barbershop_id = ?", id).
			Delete(&models.Review{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Barbershop{})
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}

func (r *DirectoryGormRepository) SetVerified(
	ctx context.Context,
	id string,
	verified bool,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	err := r.db.WithContext(ctx).
		Preload("Services").
		First(&shop, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	shop.Verified = verified
	shop.UpdatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).
		Omit("Services", "rating", "review_count").
		Save(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *DirectoryGormRepository) ListReviews(
	ctx context.Context,
	barbershopID string,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *DirectoryGormRepository) CreateReview(
	ctx context.Context,
	in domain.CreateReviewInput,
) (*models.Review, error) {

	review := models.Review{
		ID:           uuid.NewString(),
		BarbershopID: in.BarbershopID,
		CustomerName: in.CustomerName,
		Rating:       in.Rating,
		Comment:      in.Comment,
		CreatedAt:    time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock da linha da barbearia serializa submissões concorrentes
		// para o mesmo shop: insert + recompute viram uma unidade.
		var shop models.Barbershop
		if err := r.lockForUpdate(tx).
			First(&shop, "id = ?", in.BarbershopID).Error; err != nil {
			return err
		}

		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var agg struct {
			Count int64
			Sum   float64
		}
		if err := tx.Model(&models.Review{}).
			Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
			Where("barbershop_id = ?", in.BarbershopID).
			Scan(&agg).Error; err != nil {
			return err
		}

		// Defensivo: sem reviews não há média a gravar.
		if agg.Count == 0 {
			return nil
		}

		return tx.Model(&models.Barbershop{}).
			Where("id = ?", in.BarbershopID).
			Updates(map[string]any{
				"rating":       domain.RoundRating(agg.Sum, int(agg.Count)),
				"review_count": agg.Count,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// SQLite não aceita SELECT ... FOR UPDATE; lá a serialização vem do
// writer único do engine.
func (r *DirectoryGormRepository) lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func buildServices(barbershopID string, inputs []domain.ServiceInput) []models.Service {
	services := make([]models.Service, 0, len(inputs))
	for _, s := range inputs {
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}
		services = append(services, models.Service{
			ID:           id,
			BarbershopID: barbershopID,
			Name:         s.Name,
			Description:  s.Description,
			Price:        s.Price,
			Duration:     s.Duration,
			Category:     s.Category,
		})
	}
	return services
}

func applyPatch(shop *models.Barbershop, in domain.UpdateBarbershopInput) {
	if in.Name != nil {
		shop.Name = *in.Name
	}
	if in.Description != nil {
		shop.Description = *in.Description
	}
	if in.Hours != nil {
		shop.Hours = *in.Hours
	}
	if in.Amenities != nil {
		shop.Amenities = *in.Amenities
	}
	if in.Images != nil {
		shop.Images = *in.Images
	}
	if in.PriceRange != nil {
		shop.PriceRange = *in.PriceRange
	}

	// address e contact são merge campo a campo, nunca substituição.
	if in.Address != nil {
		a := in.Address
		if a.Street != nil {
			shop.Address.Street = *a.Street
		}
		if a.Number != nil {
			shop.Address.Number = *a.Number
		}
		if a.Neighborhood != nil {
			shop.Address.Neighborhood = *a.Neighborhood
		}
		if a.City != nil {
			shop.Address.City = *a.City
		}
		if a.State != nil {
			shop.Address.State = *a.State
		}
		if a.ZipCode != nil {
			shop.Address.ZipCode = *a.ZipCode
		}
		if a.Lat != nil {
			shop.Address.Lat = a.Lat
		}
		if a.Lng != nil {
			shop.Address.Lng = a.Lng
		}
	}
	if in.Contact != nil {
		c := in.Contact
		if c.Phone != nil {
			shop.Contact.Phone = *c.Phone
		}
		if c.Whatsapp != nil {
			shop.Contact.Whatsapp = *c.Whatsapp
		}
		if c.Email != nil {
			shop.Contact.Email = *c.Email
		}
		if c.Website != nil {
			shop.Contact.Website = *c.Website
		}
		if c.Instagram != nil {
			shop.Contact.Instagram = *c.Instagram
		}
	}
}

// Compile-time check
var _ domain.Repository = (*DirectoryGormRepository)(nil)
