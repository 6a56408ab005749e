package handler

import (
	"net/http"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/feed"
	"github.com/funckode/funckode/internal/logger"
)

// validActivityTypes drives the type query parameter filter on the feed
var validActivityTypes = map[domain.ActivityType]bool{
	domain.ActivityBadgeAwarded:     true,
	domain.ActivityLevelUp:          true,
	domain.ActivityStreakMilestone:  true,
	domain.ActivityProjectSubmitted: true,
}

// HandleGetFeed returns the community activity feed
// @Summary Activity feed
// @Description Returns recent community activity, newest first
// @Tags feed
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Page offset"
// @Param type query string false "Filter to one activity type"
// @Success 200 {object} feed.Result
// @Failure 400 {object} ErrorResponse
// @Router /feed [get]
func HandleGetFeed(feedService feed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		opts := feed.Options{
			Limit:  GetIntQueryParam(r, "limit", 0),
			Offset: GetIntQueryParam(r, "offset", 0),
		}

		if rawType := r.URL.Query().Get("type"); rawType != "" {
			activityType := domain.ActivityType(rawType)
			if !validActivityTypes[activityType] {
				log.Warn("Unknown activity type filter", "type", rawType)
				respondError(w, http.StatusBadRequest, "Unknown activity type")
				return
			}
			opts.Type = activityType
		}

		result, err := feedService.GetFeed(r.Context(), opts)
		if err != nil {
			respondServiceError(w, r, "Get feed", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
