package api

import (
	"net/http"

	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuotaHandler struct {
	cmds commands.QuotaCommands
	q    queries.QuotaQueries
}

func NewQuotaHandler(cmds commands.QuotaCommands, q queries.QuotaQueries) *QuotaHandler {
	return &QuotaHandler{cmds: cmds, q: q}
}

// @Summary Reserve listing slot
// @Description Atomically consume one listing slot; a denial reports usedBefore == usedAfter
// @Tags quota
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QuotaReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /quota/reserve [post]
func (h *QuotaHandler) Reserve(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	r, err := h.cmds.Reserve(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(*r))
}

// @Summary Get quota
// @Description Read the caller's listing quota counter
// @Tags quota
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.QuotaResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quota [get]
func (h *QuotaHandler) Get(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotaView(view))
}
