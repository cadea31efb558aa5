package errors

import "net/http"

var ErrLogTextRequired = &Exception{
	Message:    "log text is required",
	StatusCode: http.StatusBadRequest,
}
