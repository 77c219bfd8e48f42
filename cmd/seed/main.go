package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/idenegocios/barbershop-directory/internal/config"
	dbpkg "github.com/idenegocios/barbershop-directory/internal/db"
	domain "github.com/idenegocios/barbershop-directory/internal/domain/directory"
	infraRepo "github.com/idenegocios/barbershop-directory/internal/infra/repository"
	"github.com/idenegocios/barbershop-directory/internal/models"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Limpa dados antigos (ordem segura para as FKs).
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM barbershops")

	repo := infraRepo.NewDirectoryGormRepository(db)
	ctx := context.Background()

	log.Println("Creating sample barbershops...")
	for _, in := range sampleBarbershops() {
		shop, err := repo.Create(ctx, in)
		if err != nil {
			log.Fatalf("seed failed: %v", err)
		}

		// As amostras entram já verificadas.
		if _, err := repo.SetVerified(ctx, shop.ID, true); err != nil {
			log.Fatalf("seed failed: %v", err)
		}

		log.Printf("created %s (%s)", shop.Name, shop.ID)
	}

	log.Println("Seed done.")
}

func sampleBarbershops() []domain.CreateBarbershopInput {
	weekHours := func(open, close, friClose, satClose string, sundayOpen bool) models.HoursMap {
		h := models.HoursMap{
			"monday":    {Open: open, Close: close},
			"tuesday":   {Open: open, Close: close},
			"wednesday": {Open: open, Close: close},
			"thursday":  {Open: open, Close: close},
			"friday":    {Open: open, Close: friClose},
			"saturday":  {Open: "08:00", Close: satClose},
		}
		if sundayOpen {
			h["sunday"] = models.DayHours{Open: "10:00", Close: "16:00"}
		} else {
			h["sunday"] = models.DayHours{Open: "00:00", Close: "00:00", Closed: true}
		}
		return h
	}

	return []domain.CreateBarbershopInput{
		{
			Name:        "Barbearia Clássica",
			Description: "Tradição em cortes masculinos há mais de 20 anos",
			Address: models.Address{
				Street:       "Rua das Flores",
				Number:       "123",
				Neighborhood: "Centro",
				City:         "São Paulo",
				State:        "SP",
				ZipCode:      "01234-567",
			},
			Contact: models.Contact{
				Phone:     "(11) 99999-9999",
				Whatsapp:  "(11) 99999-9999",
				Instagram: "@barbeariaclassica",
			},
			Hours: weekHours("08:00", "18:00", "19:00", "17:00", false),
			Services: []domain.ServiceInput{
				{Name: "Corte Masculino", Description: "Corte tradicional", Price: 25, Duration: 30, Category: models.CategoryCorte},
				{Name: "Barba", Description: "Aparar e modelar barba", Price: 15, Duration: 20, Category: models.CategoryBarba},
				{Name: "Combo Corte + Barba", Description: "Corte completo", Price: 35, Duration: 45, Category: models.CategoryCombo},
			},
			Amenities:  []string{"Wi-Fi", "Ar Condicionado", "TV", "Café"},
			Images:     []string{"/barbearia-classica.png"},
			PriceRange: models.PriceRangeMedium,
		},
		{
			Name:        "Modern Barber Shop",
			Description: "Estilo moderno com técnicas tradicionais",
			Address: models.Address{
				Street:       "Avenida Paulista",
				Number:       "456",
				Neighborhood: "Bela Vista",
				City:         "São Paulo",
				State:        "SP",
				ZipCode:      "01310-100",
			},
			Contact: models.Contact{
				Phone:     "(11) 88888-8888",
				Whatsapp:  "(11) 88888-8888",
				Email:     "contato@modernbarber.com",
				Instagram: "@modernbarbershop",
			},
			Hours: weekHours("09:00", "19:00", "20:00", "18:00", true),
			Services: []domain.ServiceInput{
				{Name: "Corte Premium", Description: "Corte moderno personalizado", Price: 45, Duration: 40, Category: models.CategoryCorte},
				{Name: "Barba Premium", Description: "Barba com toalha quente", Price: 30, Duration: 30, Category: models.CategoryBarba},
				{Name: "Tratamento Capilar", Description: "Hidratação e tratamento", Price: 60, Duration: 60, Category: models.CategoryTratamento},
			},
			Amenities:  []string{"Wi-Fi", "Ar Condicionado", "Netflix", "Bebidas", "Estacionamento"},
			Images:     []string{"/barbearia-moderna.png"},
			PriceRange: models.PriceRangeHigh,
		},
	}
}
