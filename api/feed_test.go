package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/campuslink/peerhelp-api/mocks"
	"github.com/campuslink/peerhelp-api/schema"
	"github.com/campuslink/peerhelp-api/store"
)

func openRequests() []schema.HelpRequest {
	now := time.Now().UTC()
	return []schema.HelpRequest{
		{
			ID:           "req-low",
			RequesterRef: "member-one",
			Requester:    schema.CloakedIdentity{Label: "Calm Heron #4"},
			Title:        "proofread my essay",
			SkillsNeeded: []string{"writing"},
			UrgencyLevel: schema.UrgencyLow,
			Status:       schema.RequestOpen,
			CreatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:           "req-critical",
			RequesterRef: "member-two",
			Requester:    schema.CloakedIdentity{Label: "Swift Badger #9"},
			Title:        "exam tomorrow, linear algebra",
			SkillsNeeded: []string{"math"},
			UrgencyLevel: schema.UrgencyCritical,
			Status:       schema.RequestOpen,
			CreatedAt:    now.Add(-1 * time.Hour),
		},
	}
}

func TestQueryFeed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().ListOpenRequests(gomock.Eq(store.FeedFilter{})).Return(openRequests(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testHelper))
	router.GET("/", s.queryFeed)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Requests []schema.HelpRequest `json:"requests"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.NoError(t, err)
	assert.Len(t, jResp.Requests, 2)
	assert.Equal(t, "req-critical", jResp.Requests[0].ID, "critical request should rank first")

	assert.NotContains(t, w.Body.String(), "member-one")
	assert.NotContains(t, w.Body.String(), "member-two")
}

func TestQueryFeedWithFilters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	isRemote := true
	m.EXPECT().ListOpenRequests(gomock.Eq(store.FeedFilter{
		Skills:      []string{"math", "writing"},
		Urgency:     schema.UrgencyCritical,
		IsRemote:    &isRemote,
		MaxAgeHours: 24,
	})).Return([]schema.HelpRequest{openRequests()[1]}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testHelper))
	router.GET("/", s.queryFeed)

	req := httptest.NewRequest("GET", "/?skills=math,%20writing&urgency=critical&remote=true&max_age_hours=24", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestQueryFeedPersonalized(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().ListOpenRequests(gomock.Eq(store.FeedFilter{})).Return(openRequests(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testHelper))
	router.GET("/", s.queryFeed)

	req := httptest.NewRequest("GET", "/?my_skills=writing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Requests []schema.HelpRequest `json:"requests"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.NoError(t, err)
	assert.Len(t, jResp.Requests, 2)
	assert.Equal(t, 100, jResp.Requests[0].MatchScore)
	assert.Equal(t, "req-low", jResp.Requests[0].ID, "full skill match should outrank urgency")
}

func TestQueryFeedBadUrgency(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testHelper))
	router.GET("/", s.queryFeed)

	req := httptest.NewRequest("GET", "/?urgency=panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestQueryFeedStoreUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().ListOpenRequests(gomock.Any()).Return(nil, store.ErrStoreUnavailable).Times(3)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testHelper))
	router.GET("/", s.queryFeed)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
}
