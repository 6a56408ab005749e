package handler

import (
	"errors"
	"net/http"

	"github.com/funckode/funckode/internal/catalog"
	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/feed"
	"github.com/funckode/funckode/internal/gamification"
	"github.com/funckode/funckode/internal/logger"
)

// BadgeSnapshotResponse is the full badge listing plus the level table
type BadgeSnapshotResponse struct {
	Contributors []domain.Contributor     `json:"contributors"`
	Stats        domain.SnapshotStats     `json:"stats"`
	LevelSystem  []domain.LevelDefinition `json:"levelSystem"`
}

// AwardBadgeRequest represents a manual badge award
type AwardBadgeRequest struct {
	BadgeType   string `json:"badge_type" validate:"required,badgetype"`
	Username    string `json:"username" validate:"required,max=100"`
	PRNumber    int    `json:"pr_number,omitempty"`
	IssueNumber int    `json:"issue_number,omitempty"`
	EventName   string `json:"event_name,omitempty"`
}

// HandleGetBadges returns every contributor's badges, XP, and level
// @Summary Badge snapshot
// @Description Returns all contributors with their badges, XP, levels, and the level table
// @Tags badges
// @Produce json
// @Success 200 {object} BadgeSnapshotResponse
// @Router /badges [get]
func HandleGetBadges(feedService feed.Service, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := feedService.GetSnapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get badges", err)
			return
		}

		respondJSON(w, http.StatusOK, BadgeSnapshotResponse{
			Contributors: snapshot.Contributors,
			Stats:        snapshot.Stats,
			LevelSystem:  cat.Levels(),
		})
	}
}

// HandleGetContributor returns one contributor's record
// @Summary Contributor record
// @Description Returns one contributor's badges, XP, level, and streak
// @Tags badges
// @Produce json
// @Param username query string true "Contributor username"
// @Success 200 {object} domain.Contributor
// @Failure 404 {object} ErrorResponse
// @Router /badges/contributor [get]
func HandleGetContributor(gamifService gamification.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}

		contributor, err := gamifService.GetContributor(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, "Get contributor", err)
			return
		}

		respondJSON(w, http.StatusOK, contributor)
	}
}

// HandleAwardBadge awards a badge to a contributor
// @Summary Award a badge
// @Description Awards a badge, recomputing XP, level, streak, and milestones. Awarding a non-repeatable badge twice is a successful no-op.
// @Tags badges
// @Accept json
// @Produce json
// @Param request body AwardBadgeRequest true "Award request"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /badges/award [post]
func HandleAwardBadge(gamifService gamification.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AwardBadgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Award badge"); err != nil {
			return
		}

		evidence := map[string]interface{}{}
		if req.PRNumber > 0 {
			evidence[domain.EvidencePRNumber] = req.PRNumber
		}
		if req.IssueNumber > 0 {
			evidence[domain.EvidenceIssueNumber] = req.IssueNumber
		}
		if req.EventName != "" {
			evidence[domain.EvidenceEventName] = req.EventName
		}
		if len(evidence) == 0 {
			evidence = nil
		}

		result, err := gamifService.AwardBadge(r.Context(), req.Username, domain.BadgeType(req.BadgeType), evidence)
		if err != nil {
			// A repeat award of a non-repeatable badge is settled, not an error
			if errors.Is(err, domain.ErrDuplicateBadge) {
				log.Info(LogMsgDuplicateAward, "username", req.Username, "badge", req.BadgeType)
				respondJSON(w, http.StatusOK, DataResponse{Message: "Badge already awarded", Data: result})
				return
			}
			respondServiceError(w, r, "Award badge", err)
			return
		}

		log.Info(LogMsgBadgeAwarded, "username", req.Username, "badge", req.BadgeType, "xp", result.XPAwarded)
		respondJSON(w, http.StatusOK, DataResponse{Message: "Badge awarded", Data: result})
	}
}

// HandleGetLevels returns the level table
// @Summary Level table
// @Description Returns the static level definitions in ascending order
// @Tags badges
// @Produce json
// @Success 200 {array} domain.LevelDefinition
// @Router /levels [get]
func HandleGetLevels(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cat.Levels())
	}
}
