package api

type EncodeImageRequest struct {
	ImageToEncode []byte `json:"image_to_encode" binding:"required"`
	Message       string `json:"message"`
	Channel       string `json:"channel,omitempty" example:"red"`
}

type EncodeImageResponse struct {
	EncodedImage []byte `json:"encoded_image"`
}
