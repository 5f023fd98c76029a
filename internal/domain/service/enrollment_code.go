package service

// Enrollment is what a device needs to start reporting to this service.
type Enrollment struct {
	ServerURL string `json:"server_url"`
	DeviceID  string `json:"device_id"`
	Token     string `json:"token"`
}

// EnrollmentCodeService renders enrollments as scannable codes and reads them back.
type EnrollmentCodeService interface {
	// GenerateEnrollmentQR encodes the enrollment as a PNG QR code
	GenerateEnrollmentQR(enrollment Enrollment) ([]byte, error)

	// ParseEnrollmentQR decodes the text payload scanned from a QR code
	ParseEnrollmentQR(qrData string) (Enrollment, error)
}
