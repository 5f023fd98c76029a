package qrcode

import (
	"encoding/json"

	"georemind/internal/domain/service"
	"georemind/internal/errors"

	"github.com/skip2/go-qrcode"
)

const enrollmentType = "device_enrollment"

type enrollmentCodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// enrollmentPayload is the JSON text carried by the QR code
type enrollmentPayload struct {
	Type string `json:"type"`
	service.Enrollment
}

// NewEnrollmentCodeService creates a QR code service for device enrollment
func NewEnrollmentCodeService(size int, errorCorrectionLevel string) service.EnrollmentCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &enrollmentCodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

func (s *enrollmentCodeService) GenerateEnrollmentQR(enrollment service.Enrollment) ([]byte, error) {
	if enrollment.DeviceID == "" || enrollment.Token == "" {
		return nil, errors.New("enrollment requires a device id and token")
	}

	jsonData, err := json.Marshal(enrollmentPayload{Type: enrollmentType, Enrollment: enrollment})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal enrollment")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *enrollmentCodeService) ParseEnrollmentQR(qrData string) (service.Enrollment, error) {
	var payload enrollmentPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return service.Enrollment{}, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if payload.Type != enrollmentType {
		return service.Enrollment{}, errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if payload.DeviceID == "" || payload.Token == "" {
		return service.Enrollment{}, errors.New("enrollment is missing the device id or token")
	}

	return payload.Enrollment, nil
}
