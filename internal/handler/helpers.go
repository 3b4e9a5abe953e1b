package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/alencarrgabriel/GeradorRecibos/internal/apierror"
	"github.com/alencarrgabriel/GeradorRecibos/internal/docfiscal"
	"github.com/alencarrgabriel/GeradorRecibos/internal/middleware"
	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Brazilian fiscal document tags used by the registry DTOs.
	_ = validate.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return docfiscal.ValidCPF(fl.Field().String())
	})
	_ = validate.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return docfiscal.ValidCNPJ(fl.Field().String())
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondErro maps the service sentinel errors onto HTTP status codes.
// Anything unrecognized becomes a 500 handled by the error middleware.
func respondErro(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidacao):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	case errors.Is(err, service.ErrPermissao):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, service.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrConflito):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}

// atorFromContext builds the acting user from the validated JWT claims.
func atorFromContext(c *gin.Context) service.Ator {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return service.Ator{ID: id, Admin: claims.IsAdmin}
}

// parseIDParam reads and parses the ":id"-style path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return uuid.Nil, false
	}
	return id, true
}
