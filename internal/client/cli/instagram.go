package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/tjsl-project/tjslctl/internal/client/services"
	"github.com/tjsl-project/tjslctl/internal/output"
)

// Instagram dispatches the curated feed subcommands.
func (a *App) Instagram(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printer.Print("Usage: instagram list|sync|feature|unfeature|hide|unhide [id]")
		return nil
	}

	switch args[0] {
	case "list":
		return a.instagramList(ctx)
	case "sync":
		return a.instagramSync(ctx)
	case "feature":
		return a.withID(args[1:], "instagram feature <id>", func(id int64) error { return a.instagramFeature(ctx, id, true) })
	case "unfeature":
		return a.withID(args[1:], "instagram unfeature <id>", func(id int64) error { return a.instagramFeature(ctx, id, false) })
	case "hide":
		return a.withID(args[1:], "instagram hide <id>", func(id int64) error { return a.instagramHide(ctx, id, true) })
	case "unhide":
		return a.withID(args[1:], "instagram unhide <id>", func(id int64) error { return a.instagramHide(ctx, id, false) })
	default:
		a.printer.Print("Unknown instagram command: %s", args[0])
		return nil
	}
}

func (a *App) instagramList(ctx context.Context) error {
	page, err := a.instagram.List(ctx, services.ListOptions{})
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	tbl := output.NewTable(os.Stdout, []string{"ID", "Caption", "Featured", "Hidden", "URL"})
	for _, p := range page.Items {
		caption := p.Caption
		if len(caption) > 48 {
			caption = caption[:45] + "..."
		}
		tbl.AddRow(strconv.FormatInt(p.ID, 10), caption,
			a.printer.StatusBadge(p.Featured, "featured"),
			a.printer.StatusBadge(p.Hidden, "hidden"),
			p.PostURL)
	}
	tbl.RenderPaged(page.PageMeta)
	return nil
}

func (a *App) instagramSync(ctx context.Context) error {
	if err := a.instagram.Sync(ctx); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("feed sync requested")
	return nil
}

func (a *App) instagramFeature(ctx context.Context, id int64, featured bool) error {
	if err := a.instagram.Feature(ctx, id, featured); err != nil {
		a.printer.RenderError(err)
		return err
	}
	if featured {
		a.printer.Success("post #%d featured", id)
	} else {
		a.printer.Success("post #%d unfeatured", id)
	}
	return nil
}

func (a *App) instagramHide(ctx context.Context, id int64, hidden bool) error {
	if err := a.instagram.Hide(ctx, id, hidden); err != nil {
		a.printer.RenderError(err)
		return err
	}
	if hidden {
		a.printer.Success("post #%d hidden", id)
	} else {
		a.printer.Success("post #%d visible again", id)
	}
	return nil
}
