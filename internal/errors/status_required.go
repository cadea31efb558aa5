package errors

import "net/http"

var ErrStatusRequired = &Exception{
	Message:    "status is required",
	StatusCode: http.StatusBadRequest,
}
