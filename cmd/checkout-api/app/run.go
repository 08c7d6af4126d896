package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/configs"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/adapter/cache"
	httpadapter "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/adapter/http"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/adapter/label"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/adapter/mail"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/adapter/payment"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/adapter/repo"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/logging"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init("checkout-api", "./logs/app.log")
	logger.Info("starting up", "env", cfg.App.Env)

	cleanups := []func(){}
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	// order store: MySQL when a DSN is configured, in-memory otherwise
	var orders usecase.OrderRepo
	if cfg.MySQL.DSN != "" {
		db, err := sql.Open("mysql", cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
		db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = db.PingContext(ctx)
		cancel()
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = db.Close() })
		orders = repo.NewMySQLOrderRepo(db)
	} else {
		logger.Warn("no mysql dsn configured, orders are lost on restart")
		orders = repo.NewMemoryOrderRepo()
	}

	// confirm guard: Redis when configured, single-process otherwise
	var guard usecase.ConfirmGuard
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = rdb.Close() })
		guard = cache.NewRedisConfirmGuard(rdb, cfg.Confirm.GuardTTL)
	} else {
		guard = cache.NewMemoryConfirmGuard()
	}

	gateway := payment.NewStripeGateway(cfg.StripeKey(), cfg.Frontend.BaseURL)
	mailer := mail.NewSendGridMailer(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, logging.New("mail"))
	labels := label.NewPDFRenderer(cfg.Label.LogoPath)

	checkoutUC := usecase.NewCreateCheckout(orders, gateway)
	confirmUC := usecase.NewConfirmPayment(orders, guard, gateway, mailer, labels, cfg.SendGrid.AdminEmail)

	h := httpadapter.NewCheckoutHandler(checkoutUC, confirmUC, orders)
	router := httpadapter.NewRouter(h, cfg.Frontend.BaseURL)

	return &App{Router: router}, cleanup, nil
}
