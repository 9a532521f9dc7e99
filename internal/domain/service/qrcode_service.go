package service

// QRCodeService renders and reads shareable station QR codes.
type QRCodeService interface {
	// GenerateStationQR renders a PNG QR code pointing to the station.
	GenerateStationQR(idEESS string) ([]byte, error)

	// ParseStationQR extracts the station IDEESS from decoded QR code content.
	ParseStationQR(qrData string) (string, error)
}
