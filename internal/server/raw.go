package server

import (
	"errors"
	"fmt"
	"net/http"
	"stegmsg/api/stegmsg/DecodeMessage"
	"stegmsg/api/stegmsg/EncodeMessage"
	"stegmsg/internal/logging"
	"stegmsg/pkg/config"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

const (
	flatbuffersContentType = "application/octet-stream"
)

var errShortFlatbuffer = errors.New("flatbuffers body is shorter than its root offset")

type rawImageRequest struct {
	image   []byte
	message string
	channel config.Channel
}

// recoverMalformedFlatbuffer turns the index panics raised by flatbuffers accessors on corrupt offsets into an error
func recoverMalformedFlatbuffer(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("malformed flatbuffers body: %v", r)
	}
}

func parseRawEncodeRequest(body []byte) (req rawImageRequest, err error) {
	defer recoverMalformedFlatbuffer(&err)
	if len(body) < flatbuffers.SizeUOffsetT {
		return req, errShortFlatbuffer
	}

	encodeRequest := EncodeMessage.GetRootAsMessageEncodeRequest(body, 0)
	req.image = encodeRequest.ImageToEncodeBytes()
	req.message = string(encodeRequest.Message())
	req.channel = config.Channel(encodeRequest.Channel())
	return req, nil
}

func parseRawDecodeRequest(body []byte) (req rawImageRequest, err error) {
	defer recoverMalformedFlatbuffer(&err)
	if len(body) < flatbuffers.SizeUOffsetT {
		return req, errShortFlatbuffer
	}

	decodeRequest := DecodeMessage.GetRootAsMessageDecodeRequest(body, 0)
	req.image = decodeRequest.ImageToDecodeBytes()
	req.channel = config.Channel(decodeRequest.Channel())
	return req, nil
}

// RawEncodeImageHandler is the flatbuffers counterpart of EncodeImageHandler. It avoids the base64 overhead of JSON
// for large images. Errors are still returned as JSON
func RawEncodeImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	requestBody, err := ctx.GetRawData()
	if err != nil {
		logger.Warn("Error reading flatbuffers request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	encodeRequest, err := parseRawEncodeRequest(requestBody)
	if err != nil {
		logger.WithError(err).Warn("Error parsing flatbuffers request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}
	if encodeRequest.channel > config.ChannelBlue {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidChannel)
		return
	}

	encodedImage, stats, err := encodeMessage(encodeRequest.image, encodeRequest.message, encodeRequest.channel)
	if err != nil {
		handleCodecError(ctx, logger, err, errEncode)
		return
	}
	logger.With("stats", toHumanizedEncodeStats(stats)).Info("Raw image encoding was successful")

	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage) + 64)
	encodedImageOffset := fbResponseBuilder.CreateByteVector(encodedImage)
	EncodeMessage.MessageEncodeResponseStart(fbResponseBuilder)
	EncodeMessage.MessageEncodeResponseAddEncodedImage(fbResponseBuilder, encodedImageOffset)
	response := EncodeMessage.MessageEncodeResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	ctx.Data(http.StatusOK, flatbuffersContentType, fbResponseBuilder.FinishedBytes())
}

// RawDecodeImageHandler is the flatbuffers counterpart of DecodeImageHandler
func RawDecodeImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	requestBody, err := ctx.GetRawData()
	if err != nil {
		logger.Warn("Error reading flatbuffers request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	decodeRequest, err := parseRawDecodeRequest(requestBody)
	if err != nil {
		logger.WithError(err).Warn("Error parsing flatbuffers request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}
	if decodeRequest.channel > config.ChannelBlue {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidChannel)
		return
	}

	message, stats, err := decodeMessage(decodeRequest.image, decodeRequest.channel)
	if err != nil {
		handleCodecError(ctx, logger, err, errDecode)
		return
	}
	logger.With("stats", toHumanizedDecodeStats(stats)).Info("Raw image decoding was successful")

	fbResponseBuilder := flatbuffers.NewBuilder(len(message) + 64)
	messageOffset := fbResponseBuilder.CreateString(message)
	DecodeMessage.MessageDecodeResponseStart(fbResponseBuilder)
	DecodeMessage.MessageDecodeResponseAddMessage(fbResponseBuilder, messageOffset)
	response := DecodeMessage.MessageDecodeResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)

	ctx.Data(http.StatusOK, flatbuffersContentType, fbResponseBuilder.FinishedBytes())
}
