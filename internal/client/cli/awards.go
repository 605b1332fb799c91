package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/client/services"
	"github.com/tjsl-project/tjslctl/internal/output"
)

// Awards dispatches the award subcommands.
func (a *App) Awards(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printer.Print("Usage: award list|add|delete [id]")
		return nil
	}

	switch args[0] {
	case "list":
		return a.awardList(ctx)
	case "add":
		return a.awardAdd(ctx)
	case "delete":
		return a.withID(args[1:], "award delete <id>", func(id int64) error { return a.awardDelete(ctx, id) })
	default:
		a.printer.Print("Unknown award command: %s", args[0])
		return nil
	}
}

func (a *App) awardList(ctx context.Context) error {
	page, err := a.awards.List(ctx, services.ListOptions{})
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	tbl := output.NewTable(os.Stdout, []string{"ID", "Title", "Issuer", "Year"})
	for _, aw := range page.Items {
		tbl.AddRow(strconv.FormatInt(aw.ID, 10), aw.Title, aw.Issuer, strconv.Itoa(aw.Year))
	}
	tbl.RenderPaged(page.PageMeta)
	return nil
}

func (a *App) awardAdd(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	issuer, err := GetSimpleText(a.reader, "Issuer", os.Stdout)
	if err != nil {
		return err
	}
	year, err := GetInt(a.reader, "Year", 0, os.Stdout)
	if err != nil {
		return err
	}
	image, err := a.coverUpload("Certificate image path")
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}

	aw, err := a.awards.Create(ctx, models.AwardInput{Title: title, Issuer: issuer, Year: year}, image)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("award #%d created", aw.ID)
	return nil
}

func (a *App) awardDelete(ctx context.Context, id int64) error {
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete award #%d? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		a.printer.Print("cancelled")
		return nil
	}

	if err := a.awards.Delete(ctx, id); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("award #%d deleted", id)
	return nil
}
