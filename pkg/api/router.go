// Package api serves the shareable public profile page: a read-only
// projection of a user's profile and ordered links, fetched per request
// through the secret-keyed GraphQL lookup.
package api

import (
	"devlinks-go/pkg/api/handlers"
	"devlinks-go/pkg/api/middleware"
	"devlinks-go/pkg/graphql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(gql *graphql.Client, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/u/:userId", handlers.GetPublicProfile(gql))

	return router
}
