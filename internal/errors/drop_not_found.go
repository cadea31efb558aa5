package errors

import "net/http"

var ErrDropNotFound = &Exception{
	Message:    "drop not found",
	StatusCode: http.StatusNotFound,
}
