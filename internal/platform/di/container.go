// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"
	"net/http"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	httpapi "wingx/internal/adapters/in/http"
	adminHandler "wingx/internal/adapters/in/http/admin/handler"
	mallHandler "wingx/internal/adapters/in/http/mall/handler"
	"wingx/internal/adapters/in/http/middleware"
	outfs "wingx/internal/adapters/out/firestore"
	"wingx/internal/adapters/out/localstore"
	"wingx/internal/adapters/out/mail"
	"wingx/internal/adapters/out/ratesource"
	"wingx/internal/adapters/out/whatsapp"
	usecase "wingx/internal/application/usecase"
	"wingx/internal/infra/config"
	firestoreinfra "wingx/internal/infra/firestore"
)

// Container wires the whole storefront: infra clients, adapters, usecases,
// and the assembled HTTP handler.
type Container struct {
	Config    *config.Config
	Firestore *firestoreinfra.ClientWrapper

	RateUC *usecase.RateUsecase

	Handler http.Handler
}

// NewContainer builds everything. Failures in required infra (Firestore,
// local storage) abort; optional pieces (Firebase auth, SendGrid) degrade to
// nil with a log line.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	fsClient, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("di: firestore: %w", err)
	}

	store, err := localstore.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("di: localstore: %w", err)
	}

	authClient := newFirebaseAuth(ctx, cfg)

	// Outbound adapters.
	orderRepo := outfs.NewOrderRepositoryFS(fsClient.Client)
	orderWatcher := outfs.NewOrderWatcherFS(fsClient.Client)
	productRepo := outfs.NewProductRepositoryFS(fsClient.Client)
	rateFetcher := ratesource.New(cfg.RateAPIURL)
	rateCache := localstore.NewRateCache(store)
	cartStore := localstore.NewCartStore(store)
	wishlistStore := localstore.NewWishlistStore(store)
	notifier := whatsapp.NewNotifier(cfg.WhatsAppPhone, cfg.AdminPhone)

	var mailer usecase.Mailer
	if cfg.SendGridAPIKey != "" {
		mailer = mail.NewConfirmationMailer(mail.NewSendGridClient(cfg.SendGridAPIKey), cfg.MailFrom)
	} else {
		log.Printf("[di] SENDGRID_API_KEY not set; confirmation mail disabled")
	}

	// Usecases.
	rateUC := usecase.NewRateUsecase(rateFetcher, rateCache)
	cartUC := usecase.NewCartUsecase(cartStore)
	if err := cartUC.Hydrate(); err != nil {
		return nil, fmt.Errorf("di: cart hydrate: %w", err)
	}
	wishlistUC := usecase.NewWishlistUsecase(wishlistStore)
	if err := wishlistUC.Hydrate(); err != nil {
		return nil, fmt.Errorf("di: wishlist hydrate: %w", err)
	}

	destino := usecase.PagoMovilDestino{
		Banco:    cfg.PagoMovilBanco,
		Telefono: cfg.PagoMovilTelefono,
		Cedula:   cfg.PagoMovilCedula,
	}
	orderUC := usecase.NewOrderUsecase(orderRepo, rateUC, mailer, destino, cfg.StrictTransitions)
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, orderUC, notifier)
	statusSyncUC := usecase.NewStatusSyncUsecase(orderWatcher)

	// HTTP surface.
	handler := httpapi.NewRouter(httpapi.RouterDeps{
		Cart:     mallHandler.NewCartHandler(cartUC, productRepo),
		Wishlist: mallHandler.NewWishlistHandler(wishlistUC, productRepo),
		Rate:     mallHandler.NewRateHandler(rateUC),
		Checkout: mallHandler.NewCheckoutHandler(checkoutUC),
		Order:    mallHandler.NewOrderHandler(orderUC, statusSyncUC),

		Verification: adminHandler.NewVerificationHandler(orderUC),

		FirebaseAuth:   authClient,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	return &Container{
		Config:    cfg,
		Firestore: fsClient,
		RateUC:    rateUC,
		Handler:   handler,
	}, nil
}

// Close releases held infra clients.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Firestore != nil {
		if err := c.Firestore.Close(); err != nil {
			log.Printf("[di] firestore close: %v", err)
		}
	}
}

// newFirebaseAuth initializes the auth client; identity is optional, so any
// failure just disables token verification.
func newFirebaseAuth(ctx context.Context, cfg *config.Config) *middleware.FirebaseAuthClient {
	var opts []option.ClientOption
	if cfg.FirestoreCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirestoreCredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		log.Printf("[di] firebase app init failed; identity disabled: %v", err)
		return nil
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Printf("[di] firebase auth init failed; identity disabled: %v", err)
		return nil
	}
	log.Printf("[di] firebase auth ready (project: %s)", cfg.FirebaseProjectID)
	return authClient
}
