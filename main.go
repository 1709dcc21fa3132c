package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ShopLedger/FiberConfig"
	"ShopLedger/Models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	db, err := Models.Connect()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	app := FiberConfig.NewApp(db)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		if err := app.Shutdown(); err != nil {
			log.Println("Shutdown error:", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("Shop ledger API listening on port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Println(err)
	}

	// Release the connection pool once the listener has drained.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
