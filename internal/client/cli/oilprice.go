package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/client/services"
	"github.com/tjsl-project/tjslctl/internal/output"
)

// OilPrices dispatches the oil price subcommands.
func (a *App) OilPrices(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printer.Print("Usage: oilprice list [from] [to] | add | import <file.csv> | delete <id>")
		return nil
	}

	switch args[0] {
	case "list":
		return a.oilPriceList(ctx, args[1:])
	case "add":
		return a.oilPriceAdd(ctx)
	case "import":
		if len(args) < 2 {
			a.printer.Print("Usage: oilprice import <file.csv>")
			return nil
		}
		return a.oilPriceImport(ctx, args[1])
	case "delete":
		return a.withID(args[1:], "oilprice delete <id>", func(id int64) error { return a.oilPriceDelete(ctx, id) })
	default:
		a.printer.Print("Unknown oilprice command: %s", args[0])
		return nil
	}
}

func (a *App) oilPriceList(ctx context.Context, args []string) error {
	opts := services.OilPriceListOptions{}
	if len(args) > 0 {
		opts.From = args[0]
	}
	if len(args) > 1 {
		opts.To = args[1]
	}

	prices, err := a.oilPrices.List(ctx, opts)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	tbl := output.NewTable(os.Stdout, []string{"ID", "Date", "Benchmark", "USD"})
	for _, p := range prices {
		tbl.AddRow(strconv.FormatInt(p.ID, 10), p.Date, p.Benchmark,
			strconv.FormatFloat(p.PriceUSD, 'f', 2, 64))
	}
	tbl.Render()
	return nil
}

func (a *App) oilPriceAdd(ctx context.Context) error {
	date, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	benchmark, err := GetSimpleText(a.reader, "Benchmark (e.g. Brent, WTI, ICP)", os.Stdout)
	if err != nil {
		return err
	}
	price, err := GetFloat(a.reader, "Price (USD)", 0, os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.oilPrices.Create(ctx, models.OilPriceInput{Date: date, Benchmark: benchmark, PriceUSD: price})
	if err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("oil price #%d recorded (%s %s)", p.ID, p.Benchmark, p.Date)
	return nil
}

// oilPriceImport reads a CSV file with date,benchmark,price_usd rows and
// submits them as one bulk import. A header row is detected and skipped.
func (a *App) oilPriceImport(ctx context.Context, path string) error {
	rows, err := readOilPriceCSV(path)
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}
	if len(rows) == 0 {
		a.printer.Print("nothing to import")
		return nil
	}

	if err := a.oilPrices.BulkImport(ctx, rows); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("%d price points imported", len(rows))
	return nil
}

func readOilPriceCSV(path string) ([]models.OilPriceInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rows := make([]models.OilPriceInput, 0, len(records))
	for i, rec := range records {
		if i == 0 && rec[0] == "date" {
			continue
		}
		price, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad price %q", i+1, rec[2])
		}
		rows = append(rows, models.OilPriceInput{Date: rec[0], Benchmark: rec[1], PriceUSD: price})
	}
	return rows, nil
}

func (a *App) oilPriceDelete(ctx context.Context, id int64) error {
	if err := a.oilPrices.Delete(ctx, id); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("oil price #%d deleted", id)
	return nil
}
