package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/peerhelp-api/schema"
	"github.com/campuslink/peerhelp-api/store"
)

// queryFeed is the API for browsing open help requests. Recognized
// query options: `skills` (comma separated, OR-matched), `urgency`,
// `remote`, `max_age_hours`, plus `my_skills` for personalized
// ordering. Malformed values are rejected rather than silently ignored.
func (s *Server) queryFeed(c *gin.Context) {
	filter := store.FeedFilter{}

	if skills := c.Query("skills"); skills != "" {
		filter.Skills = splitSkills(skills)
	}

	if urgency := c.Query("urgency"); urgency != "" {
		level := schema.UrgencyLevel(strings.ToUpper(urgency))
		if !schema.ValidUrgencyLevel(level) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		filter.Urgency = level
	}

	if remote := c.Query("remote"); remote != "" {
		isRemote, err := strconv.ParseBool(remote)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		filter.IsRemote = &isRemote
	}

	if maxAge := c.Query("max_age_hours"); maxAge != "" {
		hours, err := strconv.Atoi(maxAge)
		if err != nil || hours < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		filter.MaxAgeHours = hours
	}

	var helperSkills []string
	if mySkills := c.Query("my_skills"); mySkills != "" {
		helperSkills = splitSkills(mySkills)
	}

	requests, err := s.feed.QueryFeed(filter, helperSkills)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
