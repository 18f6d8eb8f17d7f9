package server

import (
	"stegmsg/pkg/model"

	"github.com/dustin/go-humanize"
)

type humanizedEncodeStats struct {
	model.EncodeStats
	SetupHuman               string `json:"setup_human"`
	DataEncodingHuman        string `json:"data_encoding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
	PayloadHuman             string `json:"payload_human"`
	CapacityHuman            string `json:"capacity_human"`
}

type humanizedDecodeStats struct {
	model.DecodeStats
	DataDecodingHuman string `json:"data_decoding_human"`
	ScannedHuman      string `json:"scanned_human"`
}

func toHumanizedEncodeStats(encodeStats model.EncodeStats) humanizedEncodeStats {
	return humanizedEncodeStats{
		EncodeStats:              encodeStats,
		SetupHuman:               encodeStats.Setup.String(),
		DataEncodingHuman:        encodeStats.DataEncoding.String(),
		OutputImageEncodingHuman: encodeStats.OutputImageEncoding.String(),
		PayloadHuman:             humanize.Bytes(uint64(encodeStats.BitsEmbedded / 8)),
		CapacityHuman:            humanize.Bytes(uint64(encodeStats.Capacity / 8)),
	}
}

func toHumanizedDecodeStats(decodeStats model.DecodeStats) humanizedDecodeStats {
	return humanizedDecodeStats{
		DecodeStats:       decodeStats,
		DataDecodingHuman: decodeStats.DataDecoding.String(),
		ScannedHuman:      humanize.Bytes(uint64(decodeStats.BitsScanned / 8)),
	}
}
