package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/Henrique42/mercado-api/internal/apierror"
	"github.com/Henrique42/mercado-api/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
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
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails; the
// caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.Error("Erro de validação: "+err.Error()))
		return false
	}
	return true
}

// bindQueryAndValidate does the same for query-string parameters.
func bindQueryAndValidate(c *gin.Context, q interface{}) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Parâmetro(s) inválido(s): "+err.Error()))
		return false
	}
	if err := validate.Struct(q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.Error("Erro de validação: "+err.Error()))
		return false
	}
	return true
}

// parseID parses the :id path param, writing the 400 response itself on
// failure, mirroring bindAndValidate.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("ID inválido."))
		return 0, false
	}
	return uint(id), true
}

// respondError maps a typed failure to its transport status; anything that
// is not an *apierror.Error comes out as a 500.
func respondError(c *gin.Context, err error) {
	c.JSON(apierror.Status(err), dto.Error(err.Error()))
}
