package server

import (
	"bytes"
	"net/http"
	"stegmsg/api"
	"stegmsg/internal/logging"
	"stegmsg/pkg/config"
	stegImage "stegmsg/pkg/image"
	"stegmsg/pkg/model"

	"github.com/gin-gonic/gin"
)

// DecodeImageHandler godoc
//
// @Summary Decode a message from an image
// @Description This endpoint will recover the message previously hidden in the supplied image. Errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeImageRequest true "Body with the image to decode"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(ctx *gin.Context) {
	var requestBody api.DecodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image decode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Warn("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	channel, err := config.ParseChannel(requestBody.Channel)
	if err != nil {
		logger.WithError(err).Warn("Invalid channel in request")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidChannel)
		return
	}

	message, stats, err := decodeMessage(requestBody.ImageToDecode, channel)
	if err != nil {
		handleCodecError(ctx, logger, err, errDecode)
		return
	}

	logger.With("stats", toHumanizedDecodeStats(stats)).Info("Image decoding was successful")

	ctx.JSON(http.StatusOK, api.DecodeImageResponse{Message: message})
}

func decodeMessage(rawImage []byte, channel config.Channel) (string, model.DecodeStats, error) {
	imageToDecode, _, err := stegImage.LoadImage(bytes.NewReader(rawImage))
	if err != nil {
		return "", model.DecodeStats{}, err
	}

	imageDecoder := stegImage.NewImageDecoder(imageToDecode, config.ImageDecodeConfig{Channel: channel})
	message, err := imageDecoder.DecodeMessage()
	return message, imageDecoder.Stats(), err
}
