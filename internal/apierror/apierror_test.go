package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		kind     Kind
		status   int
		mensagem string
	}{
		{
			name:     "registro inexistente",
			err:      gorm.ErrRecordNotFound,
			kind:     KindNotFound,
			status:   http.StatusNotFound,
			mensagem: "Cliente não encontrado.",
		},
		{
			name:     "chave duplicada",
			err:      gorm.ErrDuplicatedKey,
			kind:     KindConflict,
			status:   http.StatusConflict,
			mensagem: "O cliente que você está tentando adicionar já existe.",
		},
		{
			name:     "violacao de chave estrangeira",
			err:      gorm.ErrForeignKeyViolated,
			kind:     KindConflict,
			status:   http.StatusConflict,
			mensagem: "Cliente com dados duplicados ou inválidos.",
		},
		{
			name:   "falha generica",
			err:    errors.New("connection reset"),
			kind:   KindInternal,
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromDB(tc.err, "cliente")
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.status, got.HTTPStatus())
			if tc.mensagem != "" {
				assert.Equal(t, tc.mensagem, got.Detail)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, Status(Conflict("já existe")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("não encontrado")))
	assert.Equal(t, http.StatusBadRequest, Status(BadRequest("inválido")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("qualquer outro")))
}
