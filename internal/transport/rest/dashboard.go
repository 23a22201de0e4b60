package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/service/profile"
	"github.com/heartmarshall/creatorhub-backend/internal/service/workflow"
)

type profileService interface {
	GetMyProfile(ctx context.Context) (domain.Creator, error)
	UpdateMyProfile(ctx context.Context, input profile.UpdateProfileInput) (domain.Creator, error)
	UploadAvatar(ctx context.Context, input profile.AvatarInput) (domain.Creator, error)
}

type workflowService interface {
	ListMine(ctx context.Context) ([]domain.Workflow, error)
	GetMine(ctx context.Context, id uuid.UUID) (domain.Workflow, error)
	Create(ctx context.Context, input workflow.CreateWorkflowInput) (domain.Workflow, error)
	Update(ctx context.Context, input workflow.UpdateWorkflowInput) (domain.Workflow, error)
	Delete(ctx context.Context, input workflow.DeleteWorkflowInput) error
}

// multipart overhead allowed on top of the avatar itself.
const multipartSlack = 64 << 10

// DashboardHandler serves the signed-in creator's own profile and
// workflows. All routes sit behind RequireAuth.
type DashboardHandler struct {
	profiles       profileService
	workflows      workflowService
	maxAvatarBytes int64
	log            *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(profiles profileService, workflows workflowService, maxAvatarBytes int64, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		profiles:       profiles,
		workflows:      workflows,
		maxAvatarBytes: maxAvatarBytes,
		log:            logger.With("handler", "dashboard"),
	}
}

type updateProfileRequest struct {
	Name            string   `json:"name"`
	Bio             string   `json:"bio"`
	Location        string   `json:"location"`
	Province        string   `json:"province"`
	City            string   `json:"city"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	Availability    string   `json:"availability"`
	HourlyRate      *float64 `json:"hourly_rate"`
	Website         string   `json:"website"`
	LinkedIn        string   `json:"linkedin"`
	Twitter         string   `json:"twitter"`
	GitHub          string   `json:"github"`
	Instagram       string   `json:"instagram"`
	YouTube         string   `json:"youtube"`
	Discord         string   `json:"discord"`
	Threads         string   `json:"threads"`
}

type createWorkflowRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Tags          string `json:"tags"`
	Category      string `json:"category"`
	ScreenshotURL string `json:"screenshot_url"`
	VideoURL      string `json:"video_url"`
	Complexity    string `json:"complexity"`
	JSONN8N       string `json:"json_n8n"`
}

type updateWorkflowRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Tags          []string `json:"tags"`
	Category      *string  `json:"category"`
	ScreenshotURL *string  `json:"screenshot_url"`
	VideoURL      *string  `json:"video_url"`
	Complexity    *string  `json:"complexity"`
	JSONN8N       *string  `json:"json_n8n"`
}

// GetProfile handles GET /api/me/profile.
func (h *DashboardHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.GetMyProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCreator(p, true))
}

// UpdateProfile handles PUT /api/me/profile.
func (h *DashboardHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.profiles.UpdateMyProfile(r.Context(), profile.UpdateProfileInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCreator(p, true))
}

// UploadAvatar handles POST /api/me/avatar with a multipart "file" field.
func (h *DashboardHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxAvatarBytes+multipartSlack)
	if err := r.ParseMultipartForm(h.maxAvatarBytes + multipartSlack); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(h.log, w, r, domain.NewValidationError("file", "file too large"))
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("file", "multipart form expected"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	p, err := h.profiles.UploadAvatar(r.Context(), profile.AvatarInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCreator(p, true))
}

// ListWorkflows handles GET /api/me/workflows.
func (h *DashboardHandler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	items, err := h.workflows.ListMine(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": toWorkflows(items, true)})
}

// GetWorkflow handles GET /api/me/workflows/{id}.
func (h *DashboardHandler) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	wf, err := h.workflows.GetMine(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkflow(wf, true))
}

// CreateWorkflow handles POST /api/me/workflows.
func (h *DashboardHandler) CreateWorkflow(w http.ResponseWriter, r *http.Request) {
	var req createWorkflowRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	wf, err := h.workflows.Create(r.Context(), workflow.CreateWorkflowInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkflow(wf, true))
}

// UpdateWorkflow handles PUT /api/me/workflows/{id}.
func (h *DashboardHandler) UpdateWorkflow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateWorkflowRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	wf, err := h.workflows.Update(r.Context(), workflow.UpdateWorkflowInput{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Tags:          req.Tags,
		Category:      req.Category,
		ScreenshotURL: req.ScreenshotURL,
		VideoURL:      req.VideoURL,
		Complexity:    req.Complexity,
		JSONN8N:       req.JSONN8N,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkflow(wf, true))
}

// DeleteWorkflow handles DELETE /api/me/workflows/{id}.
func (h *DashboardHandler) DeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.workflows.Delete(r.Context(), workflow.DeleteWorkflowInput{ID: id}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
