package main

import (
	"log"
	"net/http"

	"online-ordering/config"
	httpapi "online-ordering/internal/api/http"
	"online-ordering/internal/service"
	"online-ordering/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("online-orders")
	defer kafkaWriter.Close()

	catalog := storage.NewCatalogRepository(db)
	baskets := storage.NewBasketRepository(db)
	orders := storage.NewOrderRepository(db)
	prefs := storage.NewPreferencesRepository(db)
	sessions := storage.NewRedisSessionStore(rdb)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	sessionService := service.NewSessionService(sessions, catalog, baskets)
	basketService := service.NewBasketService(baskets, catalog)
	checkoutService := service.NewCheckoutService(baskets, orders, orders, prefs, publisher, service.DefaultQRGenerator{})
	settingsService := service.NewSettingsService(orders, prefs)

	handler := httpapi.NewHandler(sessionService, basketService, checkoutService, settingsService)
	router := httpapi.NewRouter(handler)

	addr := ":" + config.Port()
	log.Printf("Online ordering service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
