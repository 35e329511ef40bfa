package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "library-circulation/internal/adapter/http"
	appmw "library-circulation/internal/adapter/middleware"
	"library-circulation/internal/adapter/repository/mysql"
	"library-circulation/internal/config"
	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"
	"library-circulation/internal/infrastructure/cache"
	"library-circulation/internal/infrastructure/db"
	bookuc "library-circulation/internal/usecase/book"
	"library-circulation/internal/usecase/lending"
	memberuc "library-circulation/internal/usecase/member"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&book.Book{}, &member.Member{}, &loan.Loan{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	books := mysql.NewBookRepository(gdb)
	members := mysql.NewMemberRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	pol := lending.Policy{
		MaxOpenLoans:   cfg.MaxOpenLoans,
		LoanPeriodDays: cfg.LoanPeriodDays,
		PenaltyDays:    cfg.PenaltyDays,
	}
	lendingUC := lending.NewUsecase(guow, loans, pol)
	bookUC := bookuc.NewUsecase(books)
	memberUC := memberuc.NewUsecase(members, loans)

	h := httpadp.NewHandler()
	bh := httpadp.NewBookHandler(bookUC)
	mh := httpadp.NewMemberHandler(memberUC)
	lh := httpadp.NewLendingHandler(lendingUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")

	b := api.Group("/books")
	b.GET("", bh.List)
	b.GET("/:id", bh.Get)
	b.POST("", bh.Create)
	b.PUT("/:id", bh.Update)
	b.DELETE("/:id", bh.Delete)

	m := api.Group("/members")
	m.GET("", mh.List)
	m.GET("/:id", mh.Get)
	m.POST("", mh.Create)
	m.PUT("/:id", mh.Update)
	m.DELETE("/:id", mh.Delete)

	// borrow/return retries must not lend or restock twice
	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	l := api.Group("/loans", idemp)
	l.GET("", lh.ListOpen)
	l.GET("/:loan_id", lh.Get)
	l.POST("", lh.Borrow)
	l.PUT("/:loan_id/return", lh.Return)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
