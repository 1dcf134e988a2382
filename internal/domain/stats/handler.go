package stats

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthboard/healthboard/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/stats", auth.RequireRole(auth.RoleHospital, auth.RoleNational))
	g.GET("/summary", h.Summary)
	g.GET("/diseases", h.DiseaseChart)
	g.GET("/resources", h.ResourceStock)
	g.GET("/staff", h.StaffHeadcount)
	g.GET("/patients", h.PatientStatuses)
}

// resolveScope works out the aggregation scope for the request. Hospital
// principals are always scoped to their own facility; national principals
// default to national and may narrow to any hospital via query params.
func resolveScope(c echo.Context) (Scope, string, error) {
	if auth.RoleFromContext(c) == auth.RoleHospital {
		return ScopeHospital, auth.HospitalIDFromContext(c), nil
	}

	scope := Scope(c.QueryParam("scope"))
	switch scope {
	case "", ScopeNational:
		return ScopeNational, "", nil
	case ScopeHospital:
		hospitalID := c.QueryParam("hospital_id")
		if hospitalID == "" {
			return "", "", echo.NewHTTPError(http.StatusBadRequest, "hospital_id is required for hospital scope")
		}
		return ScopeHospital, hospitalID, nil
	default:
		return "", "", echo.NewHTTPError(http.StatusBadRequest, "scope must be hospital or national")
	}
}

func (h *Handler) Summary(c echo.Context) error {
	scope, hospitalID, err := resolveScope(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.Summary(scope, hospitalID))
}

func (h *Handler) DiseaseChart(c echo.Context) error {
	scope, hospitalID, err := resolveScope(c)
	if err != nil {
		return err
	}
	points := h.svc.DiseaseChart(scope, hospitalID)
	// Ranked ordering is a display choice layered on top of the engine's
	// insertion-ordered grouping.
	if c.QueryParam("sort") == "value" {
		SortByValueDesc(points)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *Handler) ResourceStock(c echo.Context) error {
	scope, hospitalID, err := resolveScope(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.ResourceStock(scope, hospitalID))
}

func (h *Handler) StaffHeadcount(c echo.Context) error {
	scope, hospitalID, err := resolveScope(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.StaffHeadcount(scope, hospitalID))
}

func (h *Handler) PatientStatuses(c echo.Context) error {
	scope, hospitalID, err := resolveScope(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.PatientStatuses(scope, hospitalID))
}
