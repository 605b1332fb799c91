package cli

import (
	"context"
	"os"

	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/client/services"
	"github.com/tjsl-project/tjslctl/internal/filex"
)

// Settings dispatches the site settings subcommands.
func (a *App) Settings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printer.Print("Usage: settings show|edit|logo")
		return nil
	}

	switch args[0] {
	case "show":
		return a.settingsShow(ctx)
	case "edit":
		return a.settingsEdit(ctx)
	case "logo":
		return a.settingsLogo(ctx)
	default:
		a.printer.Print("Unknown settings command: %s", args[0])
		return nil
	}
}

func (a *App) settingsShow(ctx context.Context) error {
	s, err := a.settings.Get(ctx)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	a.printer.Print("%s", a.printer.Bold(s.SiteName))
	if s.Tagline != "" {
		a.printer.Print("%s", a.printer.Dim(s.Tagline))
	}
	a.printer.Print("email: %s  phone: %s", s.Email, s.Phone)
	if s.Address != "" {
		a.printer.Print("address: %s", s.Address)
	}
	if s.LogoURL != "" {
		a.printer.Print("logo: %s", s.LogoURL)
	}
	for _, link := range []struct{ label, url string }{
		{"instagram", s.InstagramURL},
		{"facebook", s.FacebookURL},
		{"youtube", s.YoutubeURL},
	} {
		if link.url != "" {
			a.printer.Print("%s: %s", link.label, link.url)
		}
	}
	return nil
}

func (a *App) settingsEdit(ctx context.Context) error {
	current, err := a.settings.Get(ctx)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	in := models.SiteSettingsInput{}
	fields := []struct {
		prompt  string
		current string
		dst     *string
	}{
		{"Site name", current.SiteName, &in.SiteName},
		{"Tagline", current.Tagline, &in.Tagline},
		{"Contact email", current.Email, &in.Email},
		{"Contact phone", current.Phone, &in.Phone},
		{"Address", current.Address, &in.Address},
		{"Instagram URL", current.InstagramURL, &in.InstagramURL},
		{"Facebook URL", current.FacebookURL, &in.FacebookURL},
		{"Youtube URL", current.YoutubeURL, &in.YoutubeURL},
	}
	for _, f := range fields {
		v, err := GetOptionalText(a.reader, f.prompt, f.current, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if _, err := a.settings.Update(ctx, in); err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("settings saved")
	return nil
}

func (a *App) settingsLogo(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Logo file path", os.Stdout)
	if err != nil {
		return err
	}

	name, data, contentType, err := filex.ReadForUpload(path)
	if err != nil {
		a.printer.Error("%s", err)
		return err
	}

	s, err := a.settings.UploadLogo(ctx, services.Upload{Name: name, Data: data, ContentType: contentType})
	if err != nil {
		a.printer.RenderError(err)
		return err
	}
	a.printer.Success("logo updated: %s", s.LogoURL)
	return nil
}

// Stats prints the admin dashboard counters.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.settings.Stats(ctx)
	if err != nil {
		a.printer.RenderError(err)
		return err
	}

	a.printer.Print("news: %d  programs: %d  umkm: %d  awards: %d  work areas: %d",
		stats.NewsCount, stats.ProgramCount, stats.UMKMCount, stats.AwardCount, stats.WorkAreaCount)
	return nil
}
