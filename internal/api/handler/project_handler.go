package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linguahub/translation-dashboard/internal/api/metrics"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /projects.
//
// @Summary      List projects visible to the caller
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProjectsResponse
// @Failure      401  {object}  errorResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), profile)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListProjectsResponse(projects))
}

// Create handles POST /projects.
//
// @Summary      Create a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), profile, ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, projectEnvelope{Project: project})
}

// Update handles PATCH /projects. The target id travels in the body, and
// only the keys present in the body are written.
//
// @Summary      Update a project's title, description, or deadline
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProjectRequest  true  "Project patch"
// @Success      200   {object}  projectEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := ctxProfile(c)
	if err != nil {
		return err
	}

	project, err := h.service.Update(c.Request().Context(), profile, req.ProjectID, toProjectPatch(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectEnvelope{Project: project})
}
