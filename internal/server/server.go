package server

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
	"github.com/sudostake/onboard/internal/config"
	"github.com/sudostake/onboard/internal/handlers"
	"github.com/sudostake/onboard/internal/logging"
	"github.com/sudostake/onboard/internal/pubsub"
	appsession "github.com/sudostake/onboard/internal/session"
	"github.com/sudostake/onboard/internal/wallet"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E     *echo.Echo
	Cfg   *config.Config
	Bus   *pubsub.Bus
	codec *appsession.Codec

	homeHandler      *handlers.HomeHandler
	connectHandler   *handlers.ConnectHandler
	dashboardHandler *handlers.DashboardHandler
}

// New creates a new Server instance with all dependencies wired.
func New() *Server {
	logging.New()
	cfg := config.New()

	// The dashboard session lives in a single key-value slot; the
	// backend decides whether it survives restarts.
	var store appsession.Store
	switch cfg.SessionBackend {
	case "file":
		store = appsession.NewFileStore(afero.NewOsFs(), cfg.StateDir)
	default:
		store = appsession.NewMemoryStore()
	}
	codec := appsession.NewCodec(store)

	// The real wallet capabilities live in the user's browser and on
	// their desk; the dev implementations let the whole flow run
	// locally, like the logging mail sender does for email.
	wallets := wallet.NewRegistry(map[appsession.WalletType]wallet.Connector{
		appsession.WalletKeplr:  wallet.NewKeplrConnector(&wallet.DevExtension{}),
		appsession.WalletLedger: wallet.NewLedgerConnector(&wallet.DevTransport{}),
	})

	bus := pubsub.NewBus()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Validator = handlers.NewValidator()

	// Cookie session for flash messages only; the dashboard session
	// itself goes through the codec.
	cookieStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	e.Use(session.Middleware(cookieStore))

	e.Static("/static", "web/static")

	return &Server{
		E:                e,
		Cfg:              cfg,
		Bus:              bus,
		codec:            codec,
		homeHandler:      handlers.NewHomeHandler(),
		connectHandler:   handlers.NewConnectHandler(wallets, codec, bus),
		dashboardHandler: handlers.NewDashboardHandler(codec),
	}
}

// Codec is a getter for the server's session codec, useful for testing.
func (s *Server) Codec() *appsession.Codec {
	return s.codec
}
