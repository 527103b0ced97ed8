package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v7"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campuslink/peerhelp-api/background"
	"github.com/campuslink/peerhelp-api/feed"
	"github.com/campuslink/peerhelp-api/lifecycle"
	"github.com/campuslink/peerhelp-api/logmodule"
	"github.com/campuslink/peerhelp-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.PeerHelpStore

	// Core services
	controller *lifecycle.Controller
	feed       *feed.Service

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(
	mongoClient *mongo.Client,
	redisClient *redis.Client,
	taskServer *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {

	peerHelpStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	var cache *store.FeedCache
	if redisClient != nil {
		cache = store.NewFeedCache(redisClient, viper.GetDuration("cache.feed_ttl"))
	}

	var notifier lifecycle.Notifier
	if taskServer != nil {
		notifier = background.NewMachineryNotifier(taskServer)
	}

	return &Server{
		store:         peerHelpStore,
		controller:    lifecycle.NewController(peerHelpStore, notifier),
		feed:          feed.NewService(peerHelpStore, cache),
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	// the auth collaborator exchanges a verified member reference for
	// a JWT through this gateway; raw credentials never reach us
	authRoute := apiRoute.Group("/auth")
	authRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.auth")))
	{
		authRoute.POST("", s.requestJWT)
	}

	// everything below carries a member JWT
	apiRoute.Use(s.authMiddleware())

	requestRoute := apiRoute.Group("/help-requests")
	{
		requestRoute.POST("", s.createHelpRequest)
		requestRoute.GET("/:requestID", s.getHelpRequest)
		requestRoute.POST("/:requestID/responses", s.respondToHelpRequest)
		requestRoute.PATCH("/:requestID/accept", s.acceptResponse)
		requestRoute.PATCH("/:requestID/resolve", s.resolveHelpRequest)
		requestRoute.PATCH("/:requestID/cancel", s.cancelHelpRequest)
	}

	feedRoute := apiRoute.Group("/feed")
	feedRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		feedRoute.GET("", s.queryFeed)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "PeerHelp 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
