package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MGmadhavan/medication-reminder-app/internal/logger"
	"github.com/MGmadhavan/medication-reminder-app/internal/models"
	"github.com/MGmadhavan/medication-reminder-app/services/mail-server/internal/relay"
)

const defaultFrom = "noreply@medicationreminder.app"

func main() {
	log, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	r := relay.New(
		os.Getenv("SMTP_HOST"),
		envDefault("SMTP_PORT", "587"),
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
		log,
	)
	if r.DevMode() {
		log.Info("SMTP_HOST not set, running in dev mode (emails are logged, not sent)")
	}

	router := newRouter(r, log)

	addr := fmt.Sprintf(":%s", port)
	log.Info("starting mail server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func newRouter(r *relay.Relay, log *zap.Logger) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/send", func(c *gin.Context) {
		var msg models.EmailMessage
		if err := c.ShouldBindJSON(&msg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if msg.To == "" || msg.Subject == "" || msg.HTML == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to, subject and html are required"})
			return
		}
		if msg.From == "" {
			msg.From = defaultFrom
		}

		if err := r.Deliver(msg); err != nil {
			log.Error("failed to deliver email", zap.String("to", msg.To), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		log.Info("email delivered", zap.String("to", msg.To), zap.String("subject", msg.Subject))
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	return router
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
