package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gcett/studentdir/internal/pkg/validation"
)

// RegisterValidators installs the directory's enum rules and client field
// names on gin's binding validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return validation.Configure(v)
}

// HandleBindError reports a request that could not be bound as a validation
// failure on its first offending field
func HandleBindError(c *gin.Context, err error) {
	HandleAPIError(c, validation.FromError(err))
}
