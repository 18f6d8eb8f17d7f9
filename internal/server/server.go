package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stegmsg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

// StartServer godoc
// @title stegmsg API
// @version 1.0
// @description An API to hide text messages in images
// @BasePath /api/v1
func StartServer(port string) error {
	return NewRouter().Run(fmt.Sprintf(":%s", port))
}

// NewRouter registers the JSON API under /api/v1, the flatbuffers endpoints at the root and the swagger UI
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/encode/image", EncodeImageHandler)
	v1.POST("/decode/image", DecodeImageHandler)

	r.POST("/encode/image", RawEncodeImageHandler)
	r.POST("/decode/image", RawDecodeImageHandler)

	return r
}

type accessLogEntry struct {
	Timestamp      string `json:"timestamp"`
	StatusCode     int    `json:"status_code"`
	Latency        string `json:"latency"`
	LatencyRaw     int64  `json:"latency_raw"`
	RequestSize    string `json:"request_size"`
	RequestSizeRaw int    `json:"request_size_raw"`
	ClientIP       string `json:"client_ip"`
	Method         string `json:"method"`
	Path           string `json:"path"`
	Error          string `json:"error"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	bodySize := param.BodySize
	if bodySize < 0 {
		bodySize = 0
	}

	entry, err := json.Marshal(accessLogEntry{
		Timestamp:      param.TimeStamp.Format(RFC3339Millis),
		StatusCode:     param.StatusCode,
		Latency:        param.Latency.String(),
		LatencyRaw:     int64(param.Latency),
		RequestSize:    humanize.Bytes(uint64(bodySize)),
		RequestSizeRaw: param.BodySize,
		ClientIP:       param.ClientIP,
		Method:         param.Method,
		Path:           param.Path,
		Error:          param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(entry) + "\n"
}
