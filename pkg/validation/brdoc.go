// Package validation implementa as validações de documentos brasileiros
// usadas pelo perfil do paciente: CPF com dígitos verificadores e número
// de celular no formato nacional.
package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var mobilePhonePattern = regexp.MustCompile(`^\(\d{2}\) ?9\d{4}-\d{4}$`)

// IsValidCPF valida estruturalmente um CPF de 11 dígitos, incluindo os
// dois dígitos verificadores. CPFs com todos os dígitos iguais são
// rejeitados apesar do checksum bater.
func IsValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	digits := make([]int, 11)
	allEqual := true
	for i, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			allEqual = false
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(digits, 9) == digits[9] && checkDigit(digits, 10) == digits[10]
}

// checkDigit calcula o dígito verificador na posição pos a partir dos
// pos primeiros dígitos.
func checkDigit(digits []int, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += digits[i] * (pos + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// IsValidMobilePhone valida um celular no formato "(DD) 9XXXX-XXXX",
// com ou sem espaço após o DDD.
func IsValidMobilePhone(phone string) bool {
	if len(phone) < 14 || len(phone) > 15 {
		return false
	}
	return mobilePhonePattern.MatchString(phone)
}

// RegisterGinValidators registra as tags "cpf" e "brphone" no engine de
// validação do gin, para uso em bindings de requisição.
func RegisterGinValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return IsValidCPF(fl.Field().String())
	})

	_ = v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		return IsValidMobilePhone(fl.Field().String())
	})
}
