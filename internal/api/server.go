package api

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/adampetrovic/ttpcount/internal/api/handlers"
	"github.com/adampetrovic/ttpcount/internal/api/middleware"
	"github.com/adampetrovic/ttpcount/internal/api/websocket"
	"github.com/adampetrovic/ttpcount/internal/coordinator"
	"github.com/adampetrovic/ttpcount/internal/storage/sqlite"
)

// Server wires storage, the coordinator service, and the HTTP/WebSocket
// surface together.
type Server struct {
	router  *gin.Engine
	db      *sql.DB
	repos   *sqlite.Repositories
	validate *validator.Validate
	service *coordinator.Service
	wsHub   *websocket.Hub
}

// NewServer builds a Server backed by db.
func NewServer(db *sql.DB) *Server {
	repos := sqlite.NewRepositories(db)
	validate := validator.New()

	wsHub := websocket.NewHub()
	broadcaster := coordinator.NewJobBroadcaster(wsHub)
	service := coordinator.NewService(repos.Jobs(), broadcaster)

	server := &Server{
		router:   gin.New(),
		db:       db,
		repos:    repos,
		validate: validate,
		service:  service,
		wsHub:    wsHub,
	}

	go wsHub.Run()

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.Next()
	})
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
	s.router.Use(middleware.ErrorHandler())
	s.router.Use(middleware.RequestValidator(s.validate))
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")

	jobHandler := handlers.NewJobHandler(s.service)
	jobHandler.RegisterRoutes(api)

	s.router.GET("/ws", func(c *gin.Context) {
		s.wsHub.ServeWS(c.Writer, c.Request)
	})

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Run starts the HTTP server listening on addr.
func (s *Server) Run(addr string) error {
	log.Printf("starting server on %s", addr)
	return s.router.Run(addr)
}

// GetRouter returns the underlying gin engine, useful for tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// GetWebSocketHub returns the hub backing live job-progress events.
func (s *Server) GetWebSocketHub() *websocket.Hub {
	return s.wsHub
}
