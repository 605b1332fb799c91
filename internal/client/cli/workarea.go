package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/output"
)

// WorkAreas dispatches the operational area subcommands.
func (a *App) WorkAreas(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printer.Print("Usage: workarea list [type] | show|add|update|delete [id]")
		return nil
	}

	switch args[0] {
	case "list":
		areaType := ""
		if len(args) > 1 {
			areaType = args[1]
		}
		return a.workAreaList(ctx, areaType)
	case "show":
		return a.withID(args[1:], "workarea show <id>", func(id int64) error { return a.workAreaShow(ctx, id) })
	case "add":
		return a.workAreaAdd(ctx)
	case "update":
		return a.withID(args[1:], "workarea update <id>", func(id int64) error { return a.workAreaUpdate(ctx, id) })
	case "delete":
		return a.withID(args[1:], "workarea delete <id>", func(id int64) error { return a.workAreaDelete(ctx, id) })
	default:
		a.printer.Print("Unknown workarea command: %s", args[0])
		return nil
	}
}

func (a *App) workAreaList(ctx context.Context, areaType string) error {
	areas, err := a.workAreas.List(ctx, areaType)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	tbl := output.NewTable(os.Stdout, []string{"ID", "Name", "Type", "Lat", "Lng"})
	for _, w := range areas {
		tbl.AddRow(strconv.FormatInt(w.ID, 10), w.Name, w.Type,
			strconv.FormatFloat(w.Latitude, 'f', 5, 64),
			strconv.FormatFloat(w.Longitude, 'f', 5, 64))
	}
	tbl.Render()
	return nil
}

func (a *App) workAreaShow(ctx context.Context, id int64) error {
	w, err := a.workAreas.Get(ctx, id)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	a.printer.Print("%s", a.printer.Bold(w.Name))
	a.printer.Print("type: %s  lat: %f  lng: %f", w.Type, w.Latitude, w.Longitude)
	if w.Description != "" {
		a.printer.Print("%s", w.Description)
	}
	if len(w.Polygon) > 0 {
		a.printer.Print("polygon: %s", a.printer.Dim(string(w.Polygon)))
	}
	return nil
}

func (a *App) workAreaInput(current *models.WorkAreaInput) (*models.WorkAreaInput, error) {
	cur := models.WorkAreaInput{}
	if current != nil {
		cur = *current
	}

	name, err := GetOptionalText(a.reader, "Name", cur.Name, os.Stdout)
	if err != nil {
		return nil, err
	}
	areaType, err := GetOptionalText(a.reader, "Type (field|terminal|office)", cur.Type, os.Stdout)
	if err != nil {
		return nil, err
	}
	description, err := GetOptionalText(a.reader, "Description", cur.Description, os.Stdout)
	if err != nil {
		return nil, err
	}
	lat, err := GetFloat(a.reader, "Latitude", cur.Latitude, os.Stdout)
	if err != nil {
		return nil, err
	}
	lng, err := GetFloat(a.reader, "Longitude", cur.Longitude, os.Stdout)
	if err != nil {
		return nil, err
	}

	// the boundary is passed through opaquely; only syntax is checked here
	polygon := cur.Polygon
	path, err := GetSimpleText(a.reader, "GeoJSON polygon file (empty to keep)", os.Stdout)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("%s is not valid JSON", path)
		}
		polygon = data
	}

	return &models.WorkAreaInput{
		Name:        name,
		Type:        areaType,
		Description: description,
		Latitude:    lat,
		Longitude:   lng,
		Polygon:     polygon,
	}, nil
}

func (a *App) workAreaAdd(ctx context.Context) error {
	in, err := a.workAreaInput(nil)
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}

	w, err := a.workAreas.Create(ctx, *in)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("work area #%d created", w.ID)
	return nil
}

func (a *App) workAreaUpdate(ctx context.Context, id int64) error {
	existing, err := a.workAreas.Get(ctx, id)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	in, err := a.workAreaInput(&models.WorkAreaInput{
		Name:        existing.Name,
		Type:        existing.Type,
		Description: existing.Description,
		Latitude:    existing.Latitude,
		Longitude:   existing.Longitude,
		Polygon:     existing.Polygon,
	})
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}

	if _, err := a.workAreas.Update(ctx, id, *in); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("work area #%d updated", id)
	return nil
}

func (a *App) workAreaDelete(ctx context.Context, id int64) error {
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete work area #%d? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		a.printer.Print("cancelled")
		return nil
	}

	if err := a.workAreas.Delete(ctx, id); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("work area #%d deleted", id)
	return nil
}
