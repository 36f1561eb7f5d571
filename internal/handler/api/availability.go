package api

import (
	"net/http"

	reqdto "stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary List calendar
// @Description Owner reads stored calendar days in [from, to], at most 366 days
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	listingID, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.ListAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return
	}
	from, to, err := query.Range()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	days, err := h.q.List(c.Request.Context(), listingID, ownerID, from, to)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayViews(listingID, days))
}

// @Summary Upsert calendar
// @Description Owner sets availability and price overrides for up to 366 days in one transaction
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpsertAvailabilityRequest true "Calendar items"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/availability [put]
func (h *AvailabilityHandler) Upsert(c *gin.Context) {
	ownerID, ok := actorID(c)
	if !ok {
		return
	}
	listingID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	patches, err := req.ToPatches()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	days, err := h.cmds.Upsert(c.Request.Context(), listingID, ownerID, patches)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayViews(listingID, queries.ToDayViews(days)))
}
