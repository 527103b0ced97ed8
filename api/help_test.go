package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/campuslink/peerhelp-api/feed"
	"github.com/campuslink/peerhelp-api/lifecycle"
	"github.com/campuslink/peerhelp-api/mocks"
	"github.com/campuslink/peerhelp-api/schema"
	"github.com/campuslink/peerhelp-api/store"
)

const (
	testRequester = "member-alpha"
	testHelper    = "member-beta"
)

func newTestServer(peerHelpStore store.PeerHelpStore) *Server {
	return &Server{
		store:      peerHelpStore,
		controller: lifecycle.NewController(peerHelpStore, nil),
		feed:       feed.NewService(peerHelpStore, nil),
	}
}

func fakeAuth(memberRef string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", memberRef)
		c.Next()
	}
}

func respondedRequest() *schema.HelpRequest {
	now := time.Now().UTC()
	return &schema.HelpRequest{
		ID:           "req-1",
		RequesterRef: testRequester,
		Requester:    schema.CloakedIdentity{Label: "Quiet Falcon #7"},
		Title:        "need a hand with thermodynamics",
		SkillsNeeded: []string{"physics"},
		UrgencyLevel: schema.UrgencyHigh,
		Status:       schema.RequestResponded,
		Responses: []schema.Response{
			{
				ID:        "resp-1",
				RequestID: "req-1",
				HelperRef: testHelper,
				Helper:    schema.CloakedIdentity{Label: "Bright Otter #3"},
				Message:   "I can help tonight",
				Status:    schema.ResponsePending,
				CreatedAt: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().CreateHelpRequest(gomock.Any()).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testRequester))
	router.POST("/", s.createHelpRequest)

	body := `{
		"title": "need a hand with thermodynamics",
		"description": "problem set 4, question 2",
		"skills_needed": ["physics"],
		"urgency_level": "HIGH",
		"estimated_time": "1_HOUR",
		"is_remote": true
	}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var created schema.HelpRequest
	err := json.Unmarshal(w.Body.Bytes(), &created)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, schema.RequestOpen, created.Status)
	assert.NotEmpty(t, created.Requester.Label)

	// the real member reference must never serialize outward
	assert.NotContains(t, w.Body.String(), testRequester)
}

func TestCreateHelpRequestWithoutSkills(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testRequester))
	router.POST("/", s.createHelpRequest)

	body := `{
		"title": "need a hand",
		"skills_needed": [],
		"urgency_level": "HIGH",
		"estimated_time": "1_HOUR"
	}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestGetHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().GetHelpRequest(gomock.Eq("req-1")).Return(respondedRequest(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testHelper))
	router.GET("/:requestID", s.getHelpRequest)

	req := httptest.NewRequest("GET", "/req-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
	assert.NotContains(t, w.Body.String(), testRequester)
	assert.NotContains(t, w.Body.String(), testHelper)
}

func TestGetHelpRequestNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().GetHelpRequest(gomock.Any()).Return(nil, store.ErrRequestNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testHelper))
	router.GET("/:requestID", s.getHelpRequest)

	req := httptest.NewRequest("GET", "/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestRespondToHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().GetHelpRequest(gomock.Eq("req-1")).Return(respondedRequest(), nil).Times(1)
	m.EXPECT().AppendResponse(gomock.Eq("req-1"), gomock.Any()).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth("member-gamma"))
	router.POST("/:requestID/responses", s.respondToHelpRequest)

	req := httptest.NewRequest("POST", "/req-1/responses", strings.NewReader(`{"message": "happy to help"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var response schema.Response
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, schema.ResponsePending, response.Status)
	assert.NotEmpty(t, response.Helper.Label)
	assert.NotContains(t, w.Body.String(), "member-gamma")
}

func TestRespondToOwnHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().GetHelpRequest(gomock.Eq("req-1")).Return(respondedRequest(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testRequester))
	router.POST("/:requestID/responses", s.respondToHelpRequest)

	req := httptest.NewRequest("POST", "/req-1/responses", strings.NewReader(`{"message": "me again"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestAcceptResponse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().GetHelpRequest(gomock.Eq("req-1")).Return(respondedRequest(), nil).Times(1)
	m.EXPECT().AcceptResponse(gomock.Eq("req-1"), gomock.Eq("resp-1")).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testRequester))
	router.PATCH("/:requestID/accept", s.acceptResponse)

	req := httptest.NewRequest("PATCH", "/req-1/accept", strings.NewReader(`{"response_id": "resp-1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestAcceptResponseLostRace(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().GetHelpRequest(gomock.Eq("req-1")).Return(respondedRequest(), nil).Times(1)
	m.EXPECT().AcceptResponse(gomock.Eq("req-1"), gomock.Eq("resp-1")).Return(store.ErrStatusConflict).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testRequester))
	router.PATCH("/:requestID/accept", s.acceptResponse)

	req := httptest.NewRequest("PATCH", "/req-1/accept", strings.NewReader(`{"response_id": "resp-1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}

func TestAcceptResponseByNonRequester(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	m.EXPECT().GetHelpRequest(gomock.Eq("req-1")).Return(respondedRequest(), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testHelper))
	router.PATCH("/:requestID/accept", s.acceptResponse)

	req := httptest.NewRequest("PATCH", "/req-1/accept", strings.NewReader(`{"response_id": "resp-1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestResolveHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	accepted := respondedRequest()
	accepted.Status = schema.RequestAccepted
	m.EXPECT().GetHelpRequest(gomock.Eq("req-1")).Return(accepted, nil).Times(1)
	m.EXPECT().TransitionStatus(gomock.Eq("req-1"), gomock.Eq(schema.RequestAccepted), gomock.Eq(schema.RequestResolved)).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testRequester))
	router.PATCH("/:requestID/resolve", s.resolveHelpRequest)

	req := httptest.NewRequest("PATCH", "/req-1/resolve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestCancelHelpRequestAfterAccept(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockPeerHelpStore(ctl)
	s := newTestServer(m)

	accepted := respondedRequest()
	accepted.Status = schema.RequestAccepted
	m.EXPECT().GetHelpRequest(gomock.Eq("req-1")).Return(accepted, nil).Times(1)
	m.EXPECT().TransitionStatus(gomock.Eq("req-1"), gomock.Eq(schema.RequestOpen), gomock.Eq(schema.RequestCancelled)).Return(store.ErrStatusConflict).Times(1)
	m.EXPECT().TransitionStatus(gomock.Eq("req-1"), gomock.Eq(schema.RequestResponded), gomock.Eq(schema.RequestCancelled)).Return(store.ErrStatusConflict).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(fakeAuth(testRequester))
	router.PATCH("/:requestID/cancel", s.cancelHelpRequest)

	req := httptest.NewRequest("PATCH", "/req-1/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}
