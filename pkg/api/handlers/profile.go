package handlers

import (
	"errors"
	"net/http"

	"devlinks-go/pkg/graphql"
	"devlinks-go/pkg/models"

	"github.com/gin-gonic/gin"
)

// publicLink is a link plus its platform presentation, so visitors get the
// display name and brand color without knowing the enumeration.
type publicLink struct {
	ID           string `json:"id"`
	Platform     string `json:"platform"`
	PlatformName string `json:"platform_name"`
	Color        string `json:"color"`
	URL          string `json:"url"`
}

type publicProfileResponse struct {
	ID        string       `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	Image     string       `json:"image"`
	Links     []publicLink `json:"links"`
}

// GetPublicProfile fetches one user's profile and ordered links through the
// secret-keyed lookup. Exactly one fetch per request; no caching.
func GetPublicProfile(gql *graphql.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		profile, err := gql.GetPublicProfile(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, graphql.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch profile"})
			return
		}

		links := make([]publicLink, 0, len(profile.Links))
		for _, l := range profile.Links {
			p := models.PlatformByKey(l.Platform)
			links = append(links, publicLink{
				ID:           l.ID,
				Platform:     l.Platform,
				PlatformName: p.Name,
				Color:        p.Color,
				URL:          l.URL,
			})
		}

		c.JSON(http.StatusOK, publicProfileResponse{
			ID:        profile.ID,
			FirstName: profile.FirstName,
			LastName:  profile.LastName,
			Email:     profile.Email,
			Image:     profile.Image,
			Links:     links,
		})
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
