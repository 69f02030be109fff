package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/aoigroupbuy/storefront/lib/myhttpclient"
	"github.com/aoigroupbuy/storefront/lib/mypublisher"
	"github.com/aoigroupbuy/storefront/lib/mypubsub"
	"github.com/aoigroupbuy/storefront/lib/myqueue"
	"github.com/aoigroupbuy/storefront/lib/mystore"
	"github.com/aoigroupbuy/storefront/lib/mytime"
	"github.com/aoigroupbuy/storefront/lib/myuuid"
	"github.com/aoigroupbuy/storefront/lib/myvault"
	"github.com/aoigroupbuy/storefront/services/admin"
	"github.com/aoigroupbuy/storefront/services/cart"
	"github.com/aoigroupbuy/storefront/services/catalog"
	"github.com/aoigroupbuy/storefront/services/checkout"
	"github.com/aoigroupbuy/storefront/services/favorites"
	"github.com/aoigroupbuy/storefront/services/sheetsync"
	"github.com/aoigroupbuy/storefront/services/warmup"
)

func main() {
	c := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %s", err)
	}

	cfg := Config{}
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Error processing environment config: %s", err)
	}

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	vault, vaultCleanup, err := myvault.New(c)
	if err != nil {
		log.Fatalf("Error creating session vault: %s", err)
	}
	defer vaultCleanup()

	adminService := admin.NewService(
		admin.NewStaticAuthenticator(cfg.AdminUsername, cfg.AdminPassword),
		vault, nower, uuider)
	adminService.RegisterEndpoints(c, router)

	productStore, productStoreCleanup, err := mystore.New[catalog.Product](c)
	if err != nil {
		log.Fatalf("Error creating product store: %s", err)
	}
	defer productStoreCleanup()

	sheetClient := sheetsync.NewClient(cfg.SheetURL, myhttpclient.New())

	catalogService := catalog.NewService(productStore, sheetClient, adminService, nower, uuider, publisher)
	if err := catalogService.RegisterEndpoints(c, router); err != nil {
		log.Fatalf("Error initializing catalog service: %s", err)
	}

	cartStore, cartStoreCleanup, err := mystore.New[cart.Cart](c)
	if err != nil {
		log.Fatalf("Error creating cart store: %s", err)
	}
	defer cartStoreCleanup()

	cartService := cart.NewService(cartStore, catalogService, nower)
	cartService.RegisterEndpoints(c, router)

	checkoutService := checkout.NewService(cfg.LineAccountID, cartService, catalogService, publisher, uuider)
	if err := checkoutService.RegisterEndpoints(c, router); err != nil {
		log.Fatalf("Error initializing checkout service: %s", err)
	}

	sheetSyncService := sheetsync.NewService(sheetClient, pubsub)
	if err := sheetSyncService.RegisterEndpoints(c, router); err != nil {
		log.Fatalf("Error initializing sheetsync service: %s", err)
	}

	favoritesStore, favoritesStoreCleanup, err := mystore.New[favorites.Favorites](c)
	if err != nil {
		log.Fatalf("Error creating favorites store: %s", err)
	}
	defer favoritesStoreCleanup()

	favoritesService := favorites.NewService(favoritesStore, nower)
	favoritesService.RegisterEndpoints(c, router)

	warmupService := warmup.NewService(vault, productStore)
	warmupService.RegisterEndpoints(c, router)

	startWebServerBlocking(router, cfg.Port)
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
