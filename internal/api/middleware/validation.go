package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"scribepad/internal/api/errors"
)

// ValidateRequest binds a JSON body into req. Missing required fields
// and malformed bodies both produce the uniform 400 the frontend
// expects.
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return errors.NewBadRequestError("All fields are required.")
		}
		return errors.NewBadRequestError("All fields are required.")
	}
	return nil
}
