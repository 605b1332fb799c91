package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/client/services"
	"github.com/tjsl-project/tjslctl/internal/filex"
	"github.com/tjsl-project/tjslctl/internal/output"
)

// News dispatches the news subcommands.
func (a *App) News(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printer.Print("Usage: news list|show|add|update|delete|publish|unpublish [id]")
		return nil
	}

	switch args[0] {
	case "list":
		return a.newsList(ctx, args[1:])
	case "show":
		return a.withID(args[1:], "news show <id>", func(id int64) error { return a.newsShow(ctx, id) })
	case "add":
		return a.newsAdd(ctx)
	case "update":
		return a.withID(args[1:], "news update <id>", func(id int64) error { return a.newsUpdate(ctx, id) })
	case "delete":
		return a.withID(args[1:], "news delete <id>", func(id int64) error { return a.newsDelete(ctx, id) })
	case "publish":
		return a.withID(args[1:], "news publish <id>", func(id int64) error { return a.newsPublish(ctx, id, true) })
	case "unpublish":
		return a.withID(args[1:], "news unpublish <id>", func(id int64) error { return a.newsPublish(ctx, id, false) })
	default:
		a.printer.Print("Unknown news command: %s", args[0])
		return nil
	}
}

// withID parses the single id argument verbs like delete take, printing
// usage when it is missing or malformed.
func (a *App) withID(args []string, usage string, fn func(id int64) error) error {
	if len(args) == 0 {
		a.printer.Print("Usage: " + usage)
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		a.printer.Error("%s", err)
		return nil
	}
	return fn(id)
}

func (a *App) newsList(ctx context.Context, args []string) error {
	opts := services.NewsListOptions{}
	if len(args) > 0 {
		opts.Search = args[0]
	}

	page, err := a.news.List(ctx, opts)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	tbl := output.NewTable(os.Stdout, []string{"ID", "Title", "Category", "Status", "Published"})
	for _, n := range page.Items {
		status := "draft"
		published := ""
		if n.PublishedAt != nil {
			status = "published"
			published = n.PublishedAt.Format("2006-01-02")
		}
		tbl.AddRow(strconv.FormatInt(n.ID, 10), n.Title, n.Category, status, published)
	}
	tbl.RenderPaged(page.PageMeta)
	return nil
}

func (a *App) newsShow(ctx context.Context, id int64) error {
	n, err := a.news.Get(ctx, id)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Print("%s", a.printer.Bold(n.Title))
	a.printer.Print("category: %s  slug: %s", n.Category, n.Slug)
	if n.PublishedAt != nil {
		a.printer.Print("published: %s", n.PublishedAt.Format(time.RFC3339))
	}
	if n.ImageURL != "" {
		a.printer.Print("image: %s", n.ImageURL)
	}
	a.printer.Print("\n%s", n.Content)
	return nil
}

// newsInput interactively collects the scalar fields, prefilled with
// current values when updating.
func (a *App) newsInput(current *models.NewsInput) (*models.NewsInput, error) {
	cur := models.NewsInput{}
	if current != nil {
		cur = *current
	}

	title, err := GetOptionalText(a.reader, "Title", cur.Title, os.Stdout)
	if err != nil {
		return nil, err
	}
	category, err := GetOptionalText(a.reader, "Category", cur.Category, os.Stdout)
	if err != nil {
		return nil, err
	}
	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return nil, err
	}
	if content == "" {
		content = cur.Content
	}

	return &models.NewsInput{Title: title, Category: category, Content: content}, nil
}

// coverUpload asks for an optional cover image path and loads it.
func (a *App) coverUpload(prompt string) (*services.Upload, error) {
	path, err := GetSimpleText(a.reader, prompt+" (empty to skip)", os.Stdout)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	name, data, contentType, err := filex.ReadForUpload(path)
	if err != nil {
		return nil, err
	}
	return &services.Upload{Name: name, Data: data, ContentType: contentType}, nil
}

func (a *App) newsAdd(ctx context.Context) error {
	in, err := a.newsInput(nil)
	if err != nil {
		return err
	}
	cover, err := a.coverUpload("Cover image path")
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}

	n, err := a.news.Create(ctx, *in, cover)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("news #%d created", n.ID)
	return nil
}

func (a *App) newsUpdate(ctx context.Context, id int64) error {
	existing, err := a.news.Get(ctx, id)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	in, err := a.newsInput(&models.NewsInput{
		Title:    existing.Title,
		Category: existing.Category,
		Content:  existing.Content,
	})
	if err != nil {
		return err
	}
	cover, err := a.coverUpload("New cover image path")
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}

	if _, err := a.news.Update(ctx, id, *in, cover); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("news #%d updated", id)
	return nil
}

func (a *App) newsDelete(ctx context.Context, id int64) error {
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete news #%d? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "yes" {
		a.printer.Print("cancelled")
		return nil
	}

	if err := a.news.Delete(ctx, id); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("news #%d deleted", id)
	return nil
}

func (a *App) newsPublish(ctx context.Context, id int64, published bool) error {
	if err := a.news.Publish(ctx, id, published); err != nil {
		a.printer.RenderError(err)
		return err
	}
	if published {
		a.printer.Success("news #%d published", id)
	} else {
		a.printer.Success("news #%d unpublished", id)
	}
	return nil
}
