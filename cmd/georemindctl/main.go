package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"georemind/config"
	"georemind/internal/errors"
)

// Supported subcommands:
// - token:   Issue a device token for the HTTP API
// - status:  Print the persisted status of a reminder
// - migrate: Create the status tables

func main() {
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	tokenDevice := tokenCmd.String("device", "", "Device id the token is issued for")
	tokenServer := tokenCmd.String("server", "", "Server URL embedded in the enrollment QR code")
	tokenQR := tokenCmd.String("qr", "", "Write an enrollment QR code PNG to this path")
	statusReminder := statusCmd.String("reminder", "", "Reminder id to look up")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := ctlFlags{
		Token: tokenFlags{
			cmd:    tokenCmd,
			device: tokenDevice,
			server: tokenServer,
			qr:     tokenQR,
		},
		Status: statusFlags{
			cmd:      statusCmd,
			reminder: statusReminder,
		},
		Migrate: migrateCmd,
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Token   tokenFlags
	Status  statusFlags
	Migrate *flag.FlagSet
}

type tokenFlags struct {
	cmd    *flag.FlagSet
	device *string
	server *string
	qr     *string
}

type statusFlags struct {
	cmd      *flag.FlagSet
	reminder *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "token":
		return handleToken(flags)
	case "status":
		return handleStatus(ctx, flags)
	case "migrate":
		return handleMigrate(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.device == "" {
		return errors.New("--device flag is required for token command")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	return runToken(os.Stdout, cfg, tokenOptions{
		DeviceID:  *flags.Token.device,
		ServerURL: *flags.Token.server,
		QRPath:    *flags.Token.qr,
	})
}

func handleStatus(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Status.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse status flags")
	}

	if *flags.Status.reminder == "" {
		return errors.New("--reminder flag is required for status command")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	return runStatus(ctx, os.Stdout, cfg, stderrLogger(), *flags.Status.reminder)
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	return runMigrate(ctx, cfg, stderrLogger())
}

func stderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func printUsage() {
	fmt.Println("Usage: georemindctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  token      Issue a device token, optionally as an enrollment QR code")
	fmt.Println("  status     Print the persisted status of a reminder")
	fmt.Println("  migrate    Create the reminder status tables")
	fmt.Println("")
	fmt.Println("Use 'georemindctl <command> -h' for more information about a command.")
}
