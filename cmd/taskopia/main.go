package main

import (
	"github.com/Amanchaubey026/Taskopia-FluidAI/internal/config"
	"github.com/Amanchaubey026/Taskopia-FluidAI/internal/logger"
	"github.com/Amanchaubey026/Taskopia-FluidAI/internal/mongo"
	"github.com/Amanchaubey026/Taskopia-FluidAI/internal/mysql"
	"github.com/Amanchaubey026/Taskopia-FluidAI/internal/routing"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/middleware"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/token"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	db := mysql.LoadDB(cfg.MySQLDSN)
	defer db.Close()

	mongoDB := mongo.LoadDB(cfg.MongoURI, cfg.MongoDBName)

	logger := logger.Load()
	tokens := token.NewService([]byte(cfg.JWTSecret))

	r := mux.NewRouter()
	routing.ServeHealth(r)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic(logger))
	routing.InitRoutes(api, db, mongoDB, tokens, logger)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	routing.StartServer(corsHandler.Handler(r), cfg.Port)
}
