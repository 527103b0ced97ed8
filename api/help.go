package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslink/peerhelp-api/lifecycle"
	"github.com/campuslink/peerhelp-api/store"
)

// abortWithCoreError translates core errors into the API's error
// envelope. A lost accept race must stay distinguishable from every
// other failure, so it keeps a dedicated code.
func abortWithCoreError(c *gin.Context, err error) {
	if vErr, ok := err.(*lifecycle.ValidationError); ok {
		abortWithEncoding(c, http.StatusBadRequest, validationError(vErr), err)
		return
	}

	switch err {
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
	case lifecycle.ErrResponseNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorResponseNotFound, err)
	case lifecycle.ErrForbidden:
		abortWithEncoding(c, http.StatusForbidden, errorForbidden, err)
	case lifecycle.ErrAlreadyAccepted:
		abortWithEncoding(c, http.StatusConflict, errorAlreadyAccepted, err)
	case store.ErrInvalidRequestState:
		abortWithEncoding(c, http.StatusConflict, errorInvalidRequestState, err)
	case store.ErrStoreUnavailable:
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStoreUnavailable, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

// createHelpRequest is the API for asking help from others
func (s *Server) createHelpRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params lifecycle.CreateParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.controller.CreateRequest(requester, params)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}

	s.feed.InvalidateCache()

	c.JSON(http.StatusOK, request)
}

// getHelpRequest returns one help request. Only the requester sees it
// with its own id attached; the identities inside are cloaked either
// way by serialization.
func (s *Server) getHelpRequest(c *gin.Context) {
	request, err := s.controller.GetRequest(c.Param("requestID"))
	if err != nil {
		abortWithCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// respondToHelpRequest is the API for a helper to offer assistance
func (s *Server) respondToHelpRequest(c *gin.Context) {
	helper := c.GetString("requester")

	var params struct {
		Message string `json:"message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	response, err := s.controller.Respond(c.Param("requestID"), helper, params.Message)
	if err != nil {
		abortWithCoreError(c, err)
		return
	}

	s.feed.InvalidateCache()

	c.JSON(http.StatusOK, response)
}

// acceptResponse is the API for the requester to settle on one helper
func (s *Server) acceptResponse(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		ResponseID string `json:"response_id" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.controller.Accept(c.Param("requestID"), params.ResponseID, requester); err != nil {
		abortWithCoreError(c, err)
		return
	}

	s.feed.InvalidateCache()

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// resolveHelpRequest closes an accepted request
func (s *Server) resolveHelpRequest(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.controller.Resolve(c.Param("requestID"), requester); err != nil {
		abortWithCoreError(c, err)
		return
	}

	s.feed.InvalidateCache()

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// cancelHelpRequest withdraws a request that is not yet settled
func (s *Server) cancelHelpRequest(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.controller.Cancel(c.Param("requestID"), requester); err != nil {
		abortWithCoreError(c, err)
		return
	}

	s.feed.InvalidateCache()

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
