package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/laddercast-metadata/internal/domain/asset"
	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
	"github.com/KirkDiggler/laddercast-metadata/internal/images"
	"github.com/KirkDiggler/laddercast-metadata/internal/services/verify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		log.Printf("Verification failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("verify-exports", flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("dir", os.Getenv("OUTPUT_DIR"), "directory of generated records")
	catalogPath := fs.String("images", os.Getenv("IMAGE_CATALOG_PATH"), "image catalog override")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return generr.WrapWithCode(err, generr.CodeConfiguration, "parse flags")
	}
	if *dir == "" {
		return generr.Configurationf("an output directory is required (-dir or OUTPUT_DIR)")
	}

	catalog, err := images.Default()
	if *catalogPath != "" {
		catalog, err = images.LoadFile(*catalogPath)
	}
	if err != nil {
		return err
	}

	svc, err := verify.NewService(&verify.ServiceConfig{Images: catalog})
	if err != nil {
		return err
	}

	report, err := svc.Verify(ctx, *dir)
	if err != nil {
		return err
	}

	for _, p := range report.Problems {
		fmt.Fprintln(out, p)
	}
	for _, c := range asset.Categories() {
		fmt.Fprintf(out, "%-10s %d\n", c, report.Counts[c])
	}
	fmt.Fprintf(out, "checked %d files, %d problems\n", report.Checked, len(report.Problems))

	if !report.OK() {
		return generr.Newf(generr.CodeInvalidArgument, "%d of %d files failed verification", len(report.Problems), report.Checked)
	}
	return nil
}
