package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://verdeluxe.example")
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_PlantARURL(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://verdeluxe.example/")

	assert.Equal(t, "https://verdeluxe.example/plants/monstera-deliciosa/ar", svc.PlantARURL("monstera-deliciosa"))
}

func TestQRCodeService_GeneratePlantARQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://verdeluxe.example")

	qrBytes, err := svc.GeneratePlantARQR("fiddle-leaf-fig")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePlantARQR_DifferentSizes(t *testing.T) {
	svc128 := NewQRCodeService(128, "M", "https://verdeluxe.example")
	svc512 := NewQRCodeService(512, "M", "https://verdeluxe.example")

	small, err := svc128.GeneratePlantARQR("pothos")
	require.NoError(t, err)
	large, err := svc512.GeneratePlantARQR("pothos")
	require.NoError(t, err)

	smallCfg, err := png.DecodeConfig(bytes.NewReader(small))
	require.NoError(t, err)
	largeCfg, err := png.DecodeConfig(bytes.NewReader(large))
	require.NoError(t, err)

	assert.Equal(t, 128, smallCfg.Width)
	assert.Equal(t, 512, largeCfg.Width)
}

func TestQRCodeService_GeneratePlantARQR_EmptySlug(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://verdeluxe.example")

	_, err := svc.GeneratePlantARQR("")
	assert.Error(t, err)
}
