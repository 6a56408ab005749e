package handler

import (
	"net/http"

	"github.com/funckode/funckode/internal/domain"
	"github.com/funckode/funckode/internal/logger"
	"github.com/funckode/funckode/internal/project"
)

// SubmitProjectRequest represents a community project submission
type SubmitProjectRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=4000"`
	RepoURL     string   `json:"repo_url" validate:"required,url"`
	Tags        []string `json:"tags" validate:"max=10"`
	Author      string   `json:"author" validate:"required,max=100"`
}

// ModerateProjectRequest approves or rejects a pending project
type ModerateProjectRequest struct {
	ProjectID int64 `json:"project_id" validate:"required,gt=0"`
	Approve   bool  `json:"approve"`
}

// validProjectStatuses drives the status query parameter on project listings
var validProjectStatuses = map[domain.ProjectStatus]bool{
	domain.ProjectPending:  true,
	domain.ProjectApproved: true,
	domain.ProjectRejected: true,
}

// HandleSubmitProject accepts a new project submission
// @Summary Submit a project
// @Description Submits a community project for moderation; it enters the pending state
// @Tags projects
// @Accept json
// @Produce json
// @Param request body SubmitProjectRequest true "Project submission"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /projects [post]
func HandleSubmitProject(projectService project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SubmitProjectRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit project"); err != nil {
			return
		}

		created, err := projectService.Submit(r.Context(), project.SubmitInput{
			Title:       req.Title,
			Description: req.Description,
			RepoURL:     req.RepoURL,
			Tags:        req.Tags,
			Author:      req.Author,
		})
		if err != nil {
			respondServiceError(w, r, "Submit project", err)
			return
		}

		log.Info(LogMsgProjectSubmitted, "projectId", created.ID, "author", created.Author)
		respondJSON(w, http.StatusCreated, DataResponse{Message: "Project submitted", Data: created})
	}
}

// HandleGetProjects lists projects by moderation state or author
// @Summary List projects
// @Description Lists projects; defaults to approved, filterable by status or author
// @Tags projects
// @Produce json
// @Param status query string false "Moderation state (pending, approved, rejected)"
// @Param author query string false "Filter by author"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /projects [get]
func HandleGetProjects(projectService project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if author := r.URL.Query().Get("author"); author != "" {
			projects, err := projectService.ListByAuthor(r.Context(), author)
			if err != nil {
				respondServiceError(w, r, "List projects", err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Data: projects})
			return
		}

		status := domain.ProjectStatus(r.URL.Query().Get("status"))
		if status != "" && !validProjectStatuses[status] {
			respondError(w, http.StatusBadRequest, "Unknown project status")
			return
		}

		projects, err := projectService.List(r.Context(), status)
		if err != nil {
			respondServiceError(w, r, "List projects", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: projects})
	}
}

// HandleModerateProject approves or rejects a pending project
// @Summary Moderate a project
// @Description Approves or rejects a pending project; approval awards the author the project badge
// @Tags projects
// @Accept json
// @Produce json
// @Param request body ModerateProjectRequest true "Moderation decision"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /projects/moderate [post]
func HandleModerateProject(projectService project.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModerateProjectRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Moderate project"); err != nil {
			return
		}

		moderated, err := projectService.Moderate(r.Context(), req.ProjectID, req.Approve)
		if err != nil {
			respondServiceError(w, r, "Moderate project", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: "Project moderated", Data: moderated})
	}
}
