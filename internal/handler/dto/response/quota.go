package response

import (
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuotaResponse struct {
	UserID uuid.UUID `json:"userId"`
	Used   int       `json:"used"`
	Limit  int       `json:"limit"`
}

func FromQuotaView(v *queries.QuotaView) *QuotaResponse {
	return &QuotaResponse{UserID: v.UserID, Used: v.Used, Limit: v.Limit}
}
