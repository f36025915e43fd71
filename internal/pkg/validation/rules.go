package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/conexao/internal/app/models/dto"
)

// Validation rule patterns
var (
	// PhonePattern accepts Brazilian numbers such as "(11) 98765-4321" or "11987654321".
	PhonePattern = `^\(?\d{2}\)?\s?9?\d{4}-?\d{4}$`

	MaxFavorAmount = 10000.0
	MinHeadcount   = 2
	MaxHeadcount   = 50
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Phone *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
}

var registerOnce sync.Once

// RegisterWithGin installs the custom rules on gin's shared validator so
// ShouldBind enforces them. Safe to call more than once.
func RegisterWithGin() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		err = Register(v)
	})
	return err
}

// Register installs the custom rules on v.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(formFieldName)

	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		return fmt.Errorf("register phone rule: %w", err)
	}
	v.RegisterStructValidation(createFavorRules, dto.CreateFavorRequest{})
	return nil
}

func formFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func validatePhone(fl validator.FieldLevel) bool {
	return CompiledPatterns.Phone.MatchString(strings.TrimSpace(fl.Field().String()))
}

func createFavorRules(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(dto.CreateFavorRequest)
	if !ok {
		return
	}

	if req.Type == "paid" && (req.Amount <= 0 || req.Amount > MaxFavorAmount) {
		sl.ReportError(req.Amount, "amount", "Amount", "paidamount", "")
	}
	if req.Participation == "collective" && (req.Headcount < MinHeadcount || req.Headcount > MaxHeadcount) {
		sl.ReportError(req.Headcount, "headcount", "Headcount", "headcount", "")
	}
}

// FieldErrors turns a binding error into inline form messages. Errors that
// are not validator errors become a single message under the "form" key.
func FieldErrors(err error) *dto.ValidationErrors {
	out := dto.NewValidationErrors()
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.AddError("form", "Não foi possível ler o formulário.")
		return out
	}

	for _, fe := range verrs {
		out.AddError(fe.Field(), formatValidationError(fe))
	}
	return out
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Campo obrigatório."
	case "min":
		if e.Kind() == reflect.String {
			return "Use pelo menos " + e.Param() + " caracteres."
		}
		return "O valor mínimo é " + e.Param() + "."
	case "max":
		if e.Kind() == reflect.String {
			return "Use no máximo " + e.Param() + " caracteres."
		}
		return "O valor máximo é " + e.Param() + "."
	case "email":
		return "Informe um e-mail válido."
	case "oneof":
		return "Escolha uma das opções disponíveis."
	case "eqfield":
		return "As senhas não conferem."
	case "phone":
		return "Informe um telefone no formato (11) 98765-4321."
	case "paidamount":
		return fmt.Sprintf("Favores pagos precisam de um valor entre R$ 0,01 e R$ %.0f.", MaxFavorAmount)
	case "headcount":
		return fmt.Sprintf("Favores coletivos precisam de %d a %d participantes.", MinHeadcount, MaxHeadcount)
	default:
		return "Valor inválido."
	}
}
