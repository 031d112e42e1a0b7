package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"jobpath_backend/internal/app/router"
	authadapters "jobpath_backend/internal/feature/auth/adapters"
	authhandler "jobpath_backend/internal/feature/auth/transport/handler"
	authusecase "jobpath_backend/internal/feature/auth/usecase"
	infradb "jobpath_backend/internal/platform/db"
	platformhttp "jobpath_backend/internal/platform/http"
	jwtmw "jobpath_backend/internal/platform/jwt"
	infraredis "jobpath_backend/internal/platform/redis"
	"jobpath_backend/internal/platform/sms/limosms"
)

const accessTokenTTL = 24 * time.Hour

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis (holds the live OTP codes, so it is not optional)
	rdb, err := infraredis.NewRedisClient()
	if err != nil {
		log.Fatal("Redis is required for the OTP ledger: ", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	otpRepo := authadapters.NewOTPRedis(rdb, "otp", 5*time.Minute)

	// SMS gateway
	smsCfg := limosms.LoadConfig()
	smsGateway := limosms.NewSMSGateway(smsCfg, platformhttp.NewHTTPClient(smsCfg.Timeout))

	// JWT_SECRET check (also guards the /api/me middleware)
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokenGen := jwtmw.NewGenerator(secret, accessTokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, otpRepo, smsGateway, tokenGen)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// Router
	router := router.NewRouter(authH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
