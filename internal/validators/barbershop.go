package validators

import (
	"fmt"
	"strings"

	domain "github.com/idenegocios/barbershop-directory/internal/domain/directory"
)

// Validação de campo fica toda na borda HTTP; o repositório assume
// input já validado.

func ValidateCreateBarbershop(in domain.CreateBarbershopInput) []string {
	var errs []string

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, "Nome é obrigatório e deve ter pelo menos 2 caracteres")
	}

	if len(strings.TrimSpace(in.Description)) < 10 {
		errs = append(errs, "Descrição é obrigatória e deve ter pelo menos 10 caracteres")
	}

	a := in.Address
	if a.Street == "" || a.Number == "" || a.Neighborhood == "" ||
		a.City == "" || a.State == "" || a.ZipCode == "" {
		errs = append(errs, "Todos os campos do endereço são obrigatórios")
	} else if !IsZipCodeValid(a.ZipCode) {
		errs = append(errs, "CEP inválido")
	}

	if in.Contact.Phone == "" {
		errs = append(errs, "Telefone é obrigatório")
	} else if !IsPhoneValid(in.Contact.Phone) {
		errs = append(errs, "Telefone inválido")
	}

	if len(in.Hours) == 0 {
		errs = append(errs, "Horários de funcionamento são obrigatórios")
	}

	if len(in.Services) == 0 {
		errs = append(errs, "Pelo menos um serviço deve ser informado")
	} else {
		for i, s := range in.Services {
			if s.Name == "" || s.Price <= 0 || s.Duration <= 0 || !s.Category.IsValid() {
				errs = append(errs, fmt.Sprintf("Serviço %d: nome, preço, duração e categoria são obrigatórios", i+1))
			}
		}
	}

	if !in.PriceRange.IsValid() {
		errs = append(errs, "Faixa de preço deve ser: low, medium ou high")
	}

	return errs
}

func ValidateUpdateBarbershop(in domain.UpdateBarbershopInput) []string {
	var errs []string

	if in.Name != nil && len(strings.TrimSpace(*in.Name)) < 2 {
		errs = append(errs, "Nome deve ter pelo menos 2 caracteres")
	}

	if in.Description != nil && len(strings.TrimSpace(*in.Description)) < 10 {
		errs = append(errs, "Descrição deve ter pelo menos 10 caracteres")
	}

	if in.PriceRange != nil && !in.PriceRange.IsValid() {
		errs = append(errs, "Faixa de preço deve ser: low, medium ou high")
	}

	if in.Services != nil {
		for i, s := range *in.Services {
			if s.Name == "" || s.Price <= 0 || s.Duration <= 0 || !s.Category.IsValid() {
				errs = append(errs, fmt.Sprintf("Serviço %d: nome, preço, duração e categoria são obrigatórios", i+1))
			}
		}
	}

	return errs
}

func ValidateReview(in domain.CreateReviewInput) []string {
	var errs []string

	if len(strings.TrimSpace(in.CustomerName)) < 2 {
		errs = append(errs, "Nome do cliente é obrigatório")
	}

	if in.Rating < 1 || in.Rating > 5 {
		errs = append(errs, "Avaliação deve ser um número entre 1 e 5")
	}

	if len(strings.TrimSpace(in.Comment)) < 5 {
		errs = append(errs, "Comentário é obrigatório e deve ter pelo menos 5 caracteres")
	}

	return errs
}
