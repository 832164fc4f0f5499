package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/quernstone/entos/internal/db"
)

func main() {
	ledgerPath := flag.String("ledger", "", "sqlite ledger to read")
	flag.Parse()

	if *ledgerPath == "" {
		fmt.Println("-ledger not specified")
		os.Exit(1)
	}

	ledger, err := db.NewDB(*ledgerPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer ledger.Close()

	ctx := context.Background()
	if err := db.InitSchema(ctx, ledger); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	builds, err := db.ListBuilds(ctx, ledger)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for _, b := range builds {
		fmt.Printf("%s  %s  %d Bytes  inodes:%d data:%d  %dms  %s\n",
			b.CreatedAt.Format(time.RFC3339), b.Digest, b.SizeBytes,
			b.InodeCount, b.DataCount, b.DurationMS, b.Output)
	}
}
