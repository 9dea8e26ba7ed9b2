package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/wichananm65/shoe-shop-backend/internal/card"
	"github.com/wichananm65/shoe-shop-backend/internal/config"
	"github.com/wichananm65/shoe-shop-backend/internal/format"
	"github.com/wichananm65/shoe-shop-backend/internal/logger"
	"github.com/wichananm65/shoe-shop-backend/internal/shoe"
	"github.com/wichananm65/shoe-shop-backend/internal/user"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger.InitLogging(cfg.LogFilePath, cfg.LogLevel)

	app := fiber.New()
	setupCORS(app, cfg.CORSAllowOrigins)
	app.Use(logger.RequestLogger())

	shoeRepo, userRepo, closeDB := mustOpenRepositories(ctx, cfg)
	defer closeDB()

	cards := card.NewBuilder(format.NewRecency(cfg.RecencyWindow))
	shoeHandler := shoe.NewHandler(shoe.NewService(shoeRepo, cards), cfg.AllowResetShoes)
	userHandler := user.NewHandler(user.NewService(userRepo), cfg.JWTSecret, cfg.AllowSignUp)

	userHandler.RegisterPublicRoutes(app)
	shoeHandler.RegisterPublicRoutes(app)

	// product images referenced by imageSrc
	app.Static("/assets", "./public/assets")

	if cfg.JWTSecret == "" {
		logger.WarnLog(ctx, "JWT_SECRET is not set; editor tokens are signed with an empty key")
	}
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	shoeHandler.RegisterProtectedRoutes(app)

	logger.InfoLog(ctx, "starting server on %s (recency window %s)", cfg.Addr, cfg.RecencyWindow)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.ErrorLog(ctx, err, "server stopped")
	}
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// mustOpenRepositories uses Postgres when DATABASE_URL is set and falls back to the
// in-memory sample catalog otherwise.
func mustOpenRepositories(ctx context.Context, cfg config.Config) (shoe.Repository, user.Repository, func()) {
	if cfg.DatabaseURL == "" {
		logger.InfoLog(ctx, "DATABASE_URL is not set; serving the sample catalog from memory")
		sample, err := shoe.SampleShoes(time.Now())
		if err != nil {
			panic(err)
		}
		return shoe.NewInMemoryRepository(sample), user.NewInMemoryRepository(nil), func() {}
	}

	db := mustOpenDB(cfg.DatabaseURL)

	shoeRepo := shoe.NewPostgresRepository(db)
	if err := shoeRepo.EnsureSchema(); err != nil {
		panic(err)
	}
	userRepo := user.NewPostgresRepository(db)
	if err := userRepo.EnsureSchema(); err != nil {
		panic(err)
	}

	// seed an empty catalog so a fresh database shows cards
	if len(shoeRepo.List()) == 0 {
		sample, err := shoe.SampleShoes(time.Now())
		if err != nil {
			panic(err)
		}
		if err := shoeRepo.Reset(sample); err != nil {
			logger.WarnLog(ctx, "seeding shoes failed: %v", err)
		} else {
			logger.InfoLog(ctx, "seeded %d shoes", len(sample))
		}
	}

	return shoeRepo, userRepo, func() { _ = db.Close() }
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}
