package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// BindData binds the JSON request body to the struct passed in data.
// On failure, an error response has already been written.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusBadRequest, ErrInvalidBody)
		return ErrInvalidBody
	}

	return nil
}
