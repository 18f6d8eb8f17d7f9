package server

import (
	"bytes"
	"image/png"
	"net/http"
	"stegmsg/api"
	"stegmsg/internal/logging"
	"stegmsg/pkg/config"
	stegImage "stegmsg/pkg/image"
	"stegmsg/pkg/model"

	"github.com/gin-gonic/gin"
)

// EncodeImageHandler godoc
//
// @Summary Encode a message into the supplied image
// @Description This endpoint will hide the supplied message in the least significant bits of the image, and return the encoded image as PNG. Errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.EncodeImageRequest true "Body with the image and the message to hide in it"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(ctx *gin.Context) {
	var requestBody api.EncodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image encode request")

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

	encodedImage, stats, err := encodeMessage(requestBody.ImageToEncode, requestBody.Message, channel)
	if err != nil {
		handleCodecError(ctx, logger, err, errEncode)
		return
	}

	logger.With("stats", toHumanizedEncodeStats(stats)).Info("Image encoding was successful")

	ctx.JSON(http.StatusOK, api.EncodeImageResponse{EncodedImage: encodedImage})
}

func encodeMessage(rawImage []byte, message string, channel config.Channel) ([]byte, model.EncodeStats, error) {
	imageToEncode, _, err := stegImage.LoadImage(bytes.NewReader(rawImage))
	if err != nil {
		return nil, model.EncodeStats{}, err
	}

	imageEncoder := stegImage.NewImageEncoder(imageToEncode, config.ImageEncodeConfig{
		Channel:             channel,
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
	})
	if err = imageEncoder.EncodeMessage(message); err != nil {
		return nil, imageEncoder.Stats(), err
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(rawImage))) // pre allocate with size of original, since it should be similar
	if err = imageEncoder.WriteEncodedPNG(encodedImageBuffer); err != nil {
		return nil, imageEncoder.Stats(), err
	}
	return encodedImageBuffer.Bytes(), imageEncoder.Stats(), nil
}
