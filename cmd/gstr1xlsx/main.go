// Command gstr1xlsx converts a raw extraction JSON payload into a GSTR-1
// workbook without a running server.
// Usage: go run ./cmd/gstr1xlsx <payload.json> [out.xlsx]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gstfiler/internal/export"
	"gstfiler/internal/gstr1"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println("Usage: gstr1xlsx <payload.json> [out.xlsx]")
		os.Exit(1)
	}

	inPath := os.Args[1]
	outPath := strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".xlsx"
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	payload, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	engine := gstr1.NewEngine(gstr1.DefaultConfig())
	report, err := engine.Process(context.Background(), payload)
	if err != nil {
		return fmt.Errorf("process payload: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	meta := export.WorkbookMeta{
		Period:      strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath)),
		Status:      "generated",
		GeneratedAt: time.Now().UTC(),
	}
	if err := export.WriteWorkbook(out, report, meta); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	log.Printf("Wrote %s (%d invoices, %d HSN rows)", outPath, report.Totals.InvoiceCount, len(report.HSN))
	return nil
}
