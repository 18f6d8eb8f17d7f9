package api

type DecodeImageRequest struct {
	ImageToDecode []byte `json:"image_to_decode" binding:"required"`
	Channel       string `json:"channel,omitempty" example:"red"`
}

type DecodeImageResponse struct {
	Message string `json:"message"`
}
