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

// Programs dispatches the TJSL program subcommands.
func (a *App) Programs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printer.Print("Usage: program list|show|add|update|delete [id]")
		return nil
	}

	switch args[0] {
	case "list":
		return a.programList(ctx, args[1:])
	case "show":
		return a.withID(args[1:], "program show <id>", func(id int64) error { return a.programShow(ctx, id) })
	case "add":
		return a.programAdd(ctx)
	case "update":
		return a.withID(args[1:], "program update <id>", func(id int64) error { return a.programUpdate(ctx, id) })
	case "delete":
		return a.withID(args[1:], "program delete <id>", func(id int64) error { return a.programDelete(ctx, id) })
	default:
		a.printer.Print("Unknown program command: %s", args[0])
		return nil
	}
}

func (a *App) programList(ctx context.Context, args []string) error {
	opts := services.ProgramListOptions{}
	if len(args) > 0 {
		// one optional filter: a pillar name
		opts.Pillar = args[0]
	}

	page, err := a.programs.List(ctx, opts)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	tbl := output.NewTable(os.Stdout, []string{"ID", "Name", "Pillar", "Year", "Status", "Location"})
	for _, p := range page.Items {
		tbl.AddRow(strconv.FormatInt(p.ID, 10), p.Name, p.Pillar,
			strconv.Itoa(p.Year), p.Status, p.Location)
	}
	tbl.RenderPaged(page.PageMeta)
	return nil
}

func (a *App) programShow(ctx context.Context, id int64) error {
	p, err := a.programs.Get(ctx, id)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	a.printer.Print("%s", a.printer.Bold(p.Name))
	a.printer.Print("pillar: %s  year: %d  status: %s", p.Pillar, p.Year, p.Status)
	if p.Location != "" {
		a.printer.Print("location: %s", p.Location)
	}
	if p.Budget > 0 {
		a.printer.Print("budget: Rp %d", p.Budget)
	}
	a.printer.Print("\n%s", p.Description)
	return nil
}

func (a *App) programInput(current *models.ProgramInput) (*models.ProgramInput, error) {
	cur := models.ProgramInput{}
	if current != nil {
		cur = *current
	}

	name, err := GetOptionalText(a.reader, "Name", cur.Name, os.Stdout)
	if err != nil {
		return nil, err
	}
	pillar, err := GetOptionalText(a.reader, "Pillar (lingkungan|sosial|ekonomi|hukum)", cur.Pillar, os.Stdout)
	if err != nil {
		return nil, err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = cur.Description
	}
	location, err := GetOptionalText(a.reader, "Location", cur.Location, os.Stdout)
	if err != nil {
		return nil, err
	}
	year, err := GetInt(a.reader, "Year", cur.Year, os.Stdout)
	if err != nil {
		return nil, err
	}
	budget, err := GetInt(a.reader, "Budget (Rp, 0 to skip)", int(cur.Budget), os.Stdout)
	if err != nil {
		return nil, err
	}
	status, err := GetOptionalText(a.reader, "Status (planned|running|finished)", cur.Status, os.Stdout)
	if err != nil {
		return nil, err
	}

	return &models.ProgramInput{
		Name:        name,
		Pillar:      pillar,
		Description: description,
		Location:    location,
		Year:        year,
		Budget:      int64(budget),
		Status:      status,
	}, nil
}

func (a *App) programAdd(ctx context.Context) error {
	in, err := a.programInput(nil)
	if err != nil {
		return err
	}

	p, err := a.programs.Create(ctx, *in)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("program #%d created", p.ID)
	return nil
}

func (a *App) programUpdate(ctx context.Context, id int64) error {
	existing, err := a.programs.Get(ctx, id)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	in, err := a.programInput(&models.ProgramInput{
		Name:        existing.Name,
		Pillar:      existing.Pillar,
		Description: existing.Description,
		Location:    existing.Location,
		Year:        existing.Year,
		Budget:      existing.Budget,
		Status:      existing.Status,
	})
	if err != nil {
		return err
	}

	if _, err := a.programs.Update(ctx, id, *in); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("program #%d updated", id)
	return nil
}

func (a *App) programDelete(ctx context.Context, id int64) error {
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete program #%d? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		a.printer.Print("cancelled")
		return nil
	}

	if err := a.programs.Delete(ctx, id); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("program #%d deleted", id)
	return nil
}
