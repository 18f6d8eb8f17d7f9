package server

import (
	"errors"
	"net/http"
	"stegmsg/api"
	"stegmsg/internal/logging"
	stegImage "stegmsg/pkg/image"

	"github.com/gin-gonic/gin"
)

var (
	errRequestBodyDecode  = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errInvalidChannel     = api.Error{Code: "invalid_request", Error: "Channel must be one of red, green or blue"}
	errInvalidImage       = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errCapacityExceeded   = api.Error{Code: "capacity_exceeded", Error: "Message is too large for the supplied image"}
	errUnsupportedMessage = api.Error{Code: "unsupported_character", Error: "Message may only contain characters in the range U+0000 to U+00FF"}
	errMessageNotFound    = api.Error{Code: "message_not_found", Error: "No message found in the supplied image"}
	errEncode             = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
	errDecode             = api.Error{Code: "decode_error", Error: "An error occurred while decoding the image"}
)

// handleCodecError maps codec failures to a status code and error body. Failures caused by the request are
// logged as warnings, everything else as errors
func handleCodecError(ctx *gin.Context, logger *logging.Logger, err error, fallback api.Error) {
	status, body := http.StatusInternalServerError, fallback
	switch {
	case errors.Is(err, stegImage.ErrUnreadableSource):
		status, body = http.StatusBadRequest, errInvalidImage
	case errors.Is(err, stegImage.ErrCapacityExceeded):
		status, body = http.StatusBadRequest, errCapacityExceeded
	case errors.Is(err, stegImage.ErrUnsupportedCharacter):
		status, body = http.StatusBadRequest, errUnsupportedMessage
	case errors.Is(err, stegImage.ErrTerminatorNotFound):
		status, body = http.StatusNotFound, errMessageNotFound
	}

	if status == http.StatusInternalServerError {
		logger.WithError(err).Error("Error processing image")
	} else {
		logger.WithError(err).Warn("Rejected image request")
	}
	ctx.AbortWithStatusJSON(status, body)
}
