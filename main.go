package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	db "meditrack/config/db"
	"meditrack/jobs"
	"meditrack/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	startServer = func(r *gin.Engine, addr string) error { return r.Run(addr) }
	connectDB   = db.Connect
	isTest      = false
)

func main() {
	seed := flag.Bool("seed", false, "insert the demo accounts and exit")
	reset := flag.Bool("reset", false, "drop all collections and exit")
	flag.Parse()
	run(*seed, *reset)
}

func run(seed bool, reset bool) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if err := connectDB(); err != nil {
		log.Fatalln("MongoDB connection failed:", err)
	}
	defer db.Disconnect(context.Background())

	if reset {
		jobs.ResetDatabase()
		return
	}
	if seed {
		jobs.SeedDemoData()
		return
	}

	if !isTest {
		if err := db.EnsureIndexes(context.Background()); err != nil {
			log.Println("Error ensuring indexes:", err)
		}
		jobs.SeedDemoData()
		jobs.StartDailyScheduler()
	}

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	routes.Routes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("Server listening on port " + port)
	if err := startServer(r, ":"+port); err != nil {
		log.Fatalln("Server stopped:", err)
	}
}

func corsConfig() cors.Config {
	origins := []string{
		"http://localhost:5173",
		"http://localhost:8080",
		"http://localhost:8081",
	}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
}
