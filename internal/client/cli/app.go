package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/tjsl-project/tjslctl/internal/client/api"
	"github.com/tjsl-project/tjslctl/internal/client/config"
	"github.com/tjsl-project/tjslctl/internal/client/credentials"
	"github.com/tjsl-project/tjslctl/internal/client/models"
	"github.com/tjsl-project/tjslctl/internal/client/services"
	"github.com/tjsl-project/tjslctl/internal/client/session"
	"github.com/tjsl-project/tjslctl/internal/logging"
	"github.com/tjsl-project/tjslctl/internal/output"
	"github.com/tjsl-project/tjslctl/internal/validation"

	_ "modernc.org/sqlite"
)

// authSession is the slice of the auth session the console needs. The real
// session.Session satisfies it; tests can provide a stub.
type authSession interface {
	Login(ctx context.Context, email, password string) (*models.Profile, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.Profile, error)
	RefreshToken(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	StoredProfile(ctx context.Context) (*models.Profile, error)
}

type App struct {
	config  *config.Config
	log     logging.Logger
	printer *output.Printer
	reader  *bufio.Reader

	db      *sql.DB
	session authSession

	news      *services.NewsService
	programs  *services.ProgramService
	umkm      *services.UMKMService
	awards    *services.AwardService
	oilPrices *services.OilPriceService
	instagram *services.InstagramService
	workAreas *services.WorkAreaService
	settings  *services.SettingsService

	userEmail string
}

// NewApp assembles the console: opens the local credential database,
// builds the authenticated API client, and constructs one service per
// backend resource.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := credentials.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	store := credentials.NewSQLiteStore(db)

	app := &App{
		config:  c,
		log:     log,
		printer: output.NewPrinter(),
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}

	client := api.New(c.APIBaseURL, store, log,
		api.WithTimeout(c.RequestTimeout),
		api.WithAuthLostHandler(app.onAuthLost),
	)

	v := validation.New()

	app.session = session.New(client, store, log)
	app.news = services.NewNewsService(client, v)
	app.programs = services.NewProgramService(client, v)
	app.umkm = services.NewUMKMService(client, v)
	app.awards = services.NewAwardService(client, v)
	app.oilPrices = services.NewOilPriceService(client, v)
	app.instagram = services.NewInstagramService(client)
	app.workAreas = services.NewWorkAreaService(client, v)
	app.settings = services.NewSettingsService(client, v)

	return app, nil
}

// onAuthLost runs when the transport sees a 401 and purges the stored
// credentials. Nothing to do when the console already knows it is logged
// out.
func (a *App) onAuthLost() {
	if a.userEmail == "" {
		return
	}
	a.userEmail = ""
	a.printer.Warning("session expired, run 'login' to continue")
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the local database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}
