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

// UMKM dispatches the partner micro-business subcommands.
func (a *App) UMKM(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printer.Print("Usage: umkm list|show|add|update|delete|feature|unfeature [id]")
		return nil
	}

	switch args[0] {
	case "list":
		return a.umkmList(ctx, args[1:])
	case "show":
		return a.withID(args[1:], "umkm show <id>", func(id int64) error { return a.umkmShow(ctx, id) })
	case "add":
		return a.umkmAdd(ctx)
	case "update":
		return a.withID(args[1:], "umkm update <id>", func(id int64) error { return a.umkmUpdate(ctx, id) })
	case "delete":
		return a.withID(args[1:], "umkm delete <id>", func(id int64) error { return a.umkmDelete(ctx, id) })
	case "feature":
		return a.withID(args[1:], "umkm feature <id>", func(id int64) error { return a.umkmFeature(ctx, id, true) })
	case "unfeature":
		return a.withID(args[1:], "umkm unfeature <id>", func(id int64) error { return a.umkmFeature(ctx, id, false) })
	default:
		a.printer.Print("Unknown umkm command: %s", args[0])
		return nil
	}
}

func (a *App) umkmList(ctx context.Context, args []string) error {
	opts := services.UMKMListOptions{}
	if len(args) > 0 {
		opts.Category = args[0]
	}

	page, err := a.umkm.List(ctx, opts)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	tbl := output.NewTable(os.Stdout, []string{"ID", "Name", "Owner", "Category", "Featured"})
	for _, u := range page.Items {
		tbl.AddRow(strconv.FormatInt(u.ID, 10), u.Name, u.Owner, u.Category,
			a.printer.StatusBadge(u.Featured, "featured"))
	}
	tbl.RenderPaged(page.PageMeta)
	return nil
}

func (a *App) umkmShow(ctx context.Context, id int64) error {
	u, err := a.umkm.Get(ctx, id)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	a.printer.Print("%s", a.printer.Bold(u.Name))
	a.printer.Print("owner: %s  category: %s", u.Owner, u.Category)
	if u.Phone != "" {
		a.printer.Print("phone: %s", u.Phone)
	}
	if u.Address != "" {
		a.printer.Print("address: %s", u.Address)
	}
	a.printer.Print("\n%s", u.Description)
	return nil
}

func (a *App) umkmInput(current *models.UMKMInput) (*models.UMKMInput, error) {
	cur := models.UMKMInput{}
	if current != nil {
		cur = *current
	}

	name, err := GetOptionalText(a.reader, "Name", cur.Name, os.Stdout)
	if err != nil {
		return nil, err
	}
	owner, err := GetOptionalText(a.reader, "Owner", cur.Owner, os.Stdout)
	if err != nil {
		return nil, err
	}
	category, err := GetOptionalText(a.reader, "Category", cur.Category, os.Stdout)
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
	phone, err := GetOptionalText(a.reader, "Phone", cur.Phone, os.Stdout)
	if err != nil {
		return nil, err
	}
	address, err := GetOptionalText(a.reader, "Address", cur.Address, os.Stdout)
	if err != nil {
		return nil, err
	}

	return &models.UMKMInput{
		Name:        name,
		Owner:       owner,
		Category:    category,
		Description: description,
		Phone:       phone,
		Address:     address,
	}, nil
}

func (a *App) umkmAdd(ctx context.Context) error {
	in, err := a.umkmInput(nil)
	if err != nil {
		return err
	}
	logo, err := a.coverUpload("Logo path")
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}

	u, err := a.umkm.Create(ctx, *in, logo)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("umkm #%d created", u.ID)
	return nil
}

func (a *App) umkmUpdate(ctx context.Context, id int64) error {
	existing, err := a.umkm.Get(ctx, id)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	in, err := a.umkmInput(&models.UMKMInput{
		Name:        existing.Name,
		Owner:       existing.Owner,
		Category:    existing.Category,
		Description: existing.Description,
		Phone:       existing.Phone,
		Address:     existing.Address,
	})
	if err != nil {
		return err
	}
	logo, err := a.coverUpload("New logo path")
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}

	if _, err := a.umkm.Update(ctx, id, *in, logo); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("umkm #%d updated", id)
	return nil
}

func (a *App) umkmDelete(ctx context.Context, id int64) error {
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete umkm #%d? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		a.printer.Print("cancelled")
		return nil
	}

	if err := a.umkm.Delete(ctx, id); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("umkm #%d deleted", id)
	return nil
}

func (a *App) umkmFeature(ctx context.Context, id int64, featured bool) error {
	if err := a.umkm.Feature(ctx, id, featured); err != nil {
		a.printer.RenderError(err)
		return err
	}
	if featured {
		a.printer.Success("umkm #%d featured", id)
	} else {
		a.printer.Success("umkm #%d unfeatured", id)
	}
	return nil
}
