package httperr

import (
	"net/http"

	"tickit/internal/domain/booking"
	"tickit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithValidation answers 400 with one detail entry per offending field.
func AbortWithValidation(c *gin.Context, err error, msg string) {
	var detail any
	if fields := ValidationDetail(err); fields != nil {
		detail = fields
	}
	AbortWithError(c, http.StatusBadRequest, err, msg, detail)
}

// ValidationDetail returns nil when err carries no field errors.
func ValidationDetail(err error) []FieldDetail {
	var verr *booking.ValidationError
	if !errs.As(err, &verr) || len(verr.Fields) == 0 {
		return nil
	}
	out := make([]FieldDetail, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, FieldDetail{Field: f.Field, Message: f.Message})
	}
	return out
}
