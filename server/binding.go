package repairshopserver

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
)

// bindStrict decodes the request body into target, rejecting unknown fields
// so update payloads cannot smuggle attributes outside the enumerated set.
func bindStrict(c *gin.Context, target any) error {
	if c.Request == nil || c.Request.Body == nil {
		return errors.New("request body is required")
	}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("request body must contain a single JSON document")
	}
	return nil
}
