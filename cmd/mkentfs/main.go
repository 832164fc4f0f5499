package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/google/uuid"

	"github.com/quernstone/entos/internal/db"
	"github.com/quernstone/entos/internal/mkfs"
)

func main() {
	var (
		bootPath   = flag.String("b", mkfs.DefaultBootloader, "bootloader binary placed at sector 0")
		srcPath    = flag.String("s", mkfs.DefaultSource, "payload file embedded as the single entity")
		outPath    = flag.String("o", mkfs.DefaultOutput, "where to write the image")
		directBoot = flag.Bool("directboot", mkfs.DefaultDirectBoot, "mark the payload for direct boot when its name matches -target")
		bootTarget = flag.String("target", mkfs.DefaultDirectBootTarget, "entity name the direct-boot marker applies to")
		blockSize  = flag.Uint("block_size", uint(mkfs.DefaultBlockSize), "block size recorded in the superblock")
		ledgerPath = flag.String("ledger", "", "optional sqlite ledger recording successful builds")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	buildID, err := uuid.NewV7()
	if err != nil {
		fmt.Println("could not create build id: " + err.Error())
		os.Exit(1)
	}
	logger = logger.With("buildID", buildID.String())
	slog.SetDefault(logger)

	if *blockSize > math.MaxUint16 {
		fmt.Printf("block_size %d does not fit 16 bit\n", *blockSize)
		os.Exit(1)
	}

	cfg := mkfs.Config{
		Bootloader:       mkfs.FileTarget(*bootPath),
		Output:           mkfs.FileTarget(*outPath),
		Source:           mkfs.FileTarget(*srcPath),
		DirectBoot:       *directBoot,
		DirectBootTarget: *bootTarget,
		BlockSize:        uint16(*blockSize),
	}

	ctx := context.Background()
	report, err := mkfs.NewBuilder().Build(ctx, cfg)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	if *ledgerPath != "" {
		if err := recordBuild(ctx, *ledgerPath, report); err != nil {
			fmt.Printf("Recording build: %s\n", err)
			os.Exit(1)
		}
	}

	fmt.Println(report)
}

func recordBuild(ctx context.Context, path string, report *mkfs.Report) error {
	ledger, err := db.NewDB(path)
	if err != nil {
		return err
	}
	defer ledger.Close()

	if err := db.InitSchema(ctx, ledger); err != nil {
		return err
	}

	return db.InsertBuild(ctx, ledger, &db.Build{
		Output:     report.Output,
		Digest:     report.Digest.String(),
		SizeBytes:  int64(report.ImageSize),
		InodeCount: int64(report.InodeCount),
		DataCount:  int64(report.DataCount),
		DurationMS: report.BuildTime.Milliseconds(),
	})
}
