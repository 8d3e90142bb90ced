package util

import "github.com/gin-gonic/gin"

// BindBody decodes the request body into T. Binding stops at JSON shape;
// semantic rules run through the validator afterwards.
func BindBody[T any](c *gin.Context) (T, error) {
	var body T

	err := c.ShouldBindJSON(&body)

	return body, err
}
