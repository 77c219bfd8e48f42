package validators

import "regexp"

var (
	// Aceita formatos brasileiros usuais: (11) 99999-9999, 11999999999.
	phoneRe = regexp.MustCompile(`^[\d\s()+-]{8,20}$`)

	// CEP: 01234-567 ou 01234567.
	zipRe = regexp.MustCompile(`^\d{5}-?\d{3}$`)
)

func IsPhoneValid(phone string) bool {
	return phoneRe.MatchString(phone)
}

func IsZipCodeValid(zip string) bool {
	return zipRe.MatchString(zip)
}
