package errors

import "net/http"

var ErrContentRequired = &Exception{
	Message:    "content is required",
	StatusCode: http.StatusBadRequest,
}
