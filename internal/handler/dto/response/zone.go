package response

import (
	"github.com/Jes6241/parquimetros-api/internal/usecase/queries"
)

type ZoneListResponse struct {
	Success bool                `json:"success"`
	Total   int                 `json:"total"`
	Zones   []*queries.ZoneView `json:"zones"`
}

func FromZoneViews(zones []*queries.ZoneView) *ZoneListResponse {
	return &ZoneListResponse{Success: true, Total: len(zones), Zones: zones}
}
