package service

// QRCodeService renders AR preview QR codes.
type QRCodeService interface {
	// GeneratePlantARQR returns a PNG that opens the AR preview page for slug.
	GeneratePlantARQR(slug string) ([]byte, error)

	// PlantARURL returns the URL encoded in the QR code.
	PlantARURL(slug string) string
}
