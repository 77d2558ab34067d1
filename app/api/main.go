package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/log"
	bValidator "github.com/pixelbay/goapi/base/validator"
	"github.com/pixelbay/goapi/domain"
	"github.com/pixelbay/goapi/domain/coin"
	"github.com/pixelbay/goapi/domain/network"
	mmiddleware "github.com/pixelbay/goapi/middleware"
	"github.com/pixelbay/goapi/service/cache"
	"github.com/pixelbay/goapi/service/cache/provider/primitive"
	"github.com/pixelbay/goapi/service/localstore"
	"github.com/pixelbay/goapi/service/pricefeed"
	wallet_service "github.com/pixelbay/goapi/service/wallet"
	coin_delivery "github.com/pixelbay/goapi/stores/coin/delivery/http"
	coin_usecase "github.com/pixelbay/goapi/stores/coin/usecase"
	hc_delivery "github.com/pixelbay/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/pixelbay/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/pixelbay/goapi/stores/healthcheck/usecase"
	ledger_delivery "github.com/pixelbay/goapi/stores/ledger/delivery/http"
	ledger_repository "github.com/pixelbay/goapi/stores/ledger/repository"
	ledger_usecase "github.com/pixelbay/goapi/stores/ledger/usecase"
	listing_delivery "github.com/pixelbay/goapi/stores/listing/delivery/http"
	listing_repository "github.com/pixelbay/goapi/stores/listing/repository"
	listing_usecase "github.com/pixelbay/goapi/stores/listing/usecase"
	network_delivery "github.com/pixelbay/goapi/stores/network/delivery/http"
	network_usecase "github.com/pixelbay/goapi/stores/network/usecase"
	payment_delivery "github.com/pixelbay/goapi/stores/payment/delivery/http"
	payment_usecase "github.com/pixelbay/goapi/stores/payment/usecase"
	wallet_delivery "github.com/pixelbay/goapi/stores/wallet/delivery/http"
	wallet_usecase "github.com/pixelbay/goapi/stores/wallet/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init local document store
	context.Info("init local store")
	store := localstore.MustNew(viper.GetString("store.dir"))

	mmiddleware.SetupCache()

	// init network registry
	configNetworks := []*network.Network{}
	if err := viper.UnmarshalKey("networks", &configNetworks); err != nil {
		context.WithField("err", err).Panic("failed to parse networks config")
	}
	if len(configNetworks) == 0 {
		configNetworks = network.DefaultNetworks
	}
	registry, err := network_usecase.NewRegistry(configNetworks)
	if err != nil {
		context.WithField("err", err).Panic("failed to build network registry")
	}
	defaultNetwork, ok := registry.Lookup(domain.ChainId(viper.GetString("wallet.defaultChainId")))
	if !ok && len(registry.All()) > 0 {
		defaultNetwork = registry.All()[0]
	}

	// init wallet bridge
	context.Info("init wallet bridge")
	walletProvider, err := wallet_service.NewProvider(context, &wallet_service.ProviderCfg{
		Url:          viper.GetString("wallet.url"),
		PollInterval: viper.GetDuration("wallet.pollInterval"),
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init wallet bridge")
	}

	maxPrice := decimal.Zero
	if raw := viper.GetString("listing.maxPrice"); raw != "" {
		maxPrice, err = decimal.NewFromString(raw)
		if err != nil {
			context.WithField("err", err).Panic("invalid listing.maxPrice")
		}
	}

	pairs := []coin.Pair{}
	for _, p := range viper.GetStringSlice("coin.pairs") {
		pairs = append(pairs, coin.Pair(p))
	}
	coinCacheTtl := viper.GetDuration("coin.cacheTtl")
	if coinCacheTtl == 0 {
		coinCacheTtl = 30 * time.Second
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(store)
	listingRepo := listing_repository.NewListingRepo(store)
	ledgerRepo := ledger_repository.NewLedgerRepo(store)

	hc := hc_usecase.New(hcRepo)
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		ListingRepo: listingRepo,
		LedgerRepo:  ledgerRepo,
		MaxPrice:    maxPrice,
	})
	ledger := ledger_usecase.New(ledgerRepo)
	session := wallet_usecase.NewSession(&wallet_usecase.SessionCfg{
		Provider:       walletProvider,
		Registry:       registry,
		DefaultNetwork: defaultNetwork,
	})
	payment := payment_usecase.New(&payment_usecase.CheckoutUseCaseCfg{
		Session:   session,
		Provider:  walletProvider,
		ListingUC: listing,
		LedgerUC:  ledger,
	})
	coinUC := coin_usecase.New(&coin_usecase.CoinUseCaseCfg{
		Source: pricefeed.NewRandom(),
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   coinCacheTtl,
			Pfx:   "coin",
			Cache: primitive.NewPrimitive("coin", 1),
		}),
		Pairs: pairs,
	})

	hc_delivery.New(e, hc)
	network_delivery.New(e, registry)
	listing_delivery.New(e, listing)
	ledger_delivery.New(e, ledger, registry)
	wallet_delivery.New(e, session)
	payment_delivery.New(e, payment)
	coin_delivery.New(e, coinUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
