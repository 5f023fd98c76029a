package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"georemind/config"
	"georemind/internal/domain/repository"
	"georemind/internal/domain/service"
	"georemind/internal/errors"
	"georemind/internal/infra/auth"
	"georemind/internal/infra/persistence/postgres"
	"georemind/internal/infra/qrcode"
)

const (
	enrollmentQRSize  = 256
	enrollmentQRLevel = "M"
)

type tokenOptions struct {
	DeviceID  string
	ServerURL string
	QRPath    string
}

// runToken prints a device token and, when QRPath is set, also writes it as an enrollment QR code.
func runToken(w io.Writer, cfg *config.Config, opts tokenOptions) error {
	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateDeviceToken(opts.DeviceID)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, token); err != nil {
		return errors.WithStack(err)
	}

	if opts.QRPath == "" {
		return nil
	}

	png, err := qrcode.NewEnrollmentCodeService(enrollmentQRSize, enrollmentQRLevel).GenerateEnrollmentQR(service.Enrollment{
		ServerURL: opts.ServerURL,
		DeviceID:  opts.DeviceID,
		Token:     token,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.QRPath, png, 0o600); err != nil {
		return errors.Wrap(err, "failed to write enrollment QR code")
	}

	return nil
}

func runStatus(ctx context.Context, w io.Writer, cfg *config.Config, logger *slog.Logger, reminderID string) error {
	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	status, err := postgres.NewStatusRepository(db).FindStatus(ctx, reminderID)
	if errors.Is(err, repository.ErrStatusNotFound) {
		_, err = fmt.Fprintf(w, "%s: no status recorded\n", reminderID)

		return errors.WithStack(err)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s: %s\n", reminderID, status)

	return errors.WithStack(err)
}

func runMigrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	return postgres.Migrate(db.WithContext(ctx))
}
