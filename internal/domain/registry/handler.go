package registry

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthboard/healthboard/internal/platform/auth"
	"github.com/healthboard/healthboard/internal/platform/telemetry"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Read endpoints – any authenticated principal
	read := api.Group("", auth.RequireRole(auth.RoleHospital, auth.RoleNational))
	read.GET("/diseases", h.ListDiseases)
	read.GET("/hospitals", h.ListHospitals)
	read.GET("/hospitals/:id", h.GetHospital)
	read.GET("/hospitals/:id/diseases", h.ListDiseasesByHospital)
	read.GET("/hospitals/:id/patients", h.ListPatientsByHospital)
	read.GET("/hospitals/:id/staff", h.ListStaffByHospital)
	read.GET("/hospitals/:id/resources", h.ListResourcesByHospital)
	read.GET("/patients", h.ListPatients)
	read.GET("/staff", h.ListStaff)
	read.GET("/resources", h.ListResources)

	// Entity write endpoints – hospital managers and national admins
	write := api.Group("", auth.RequireRole(auth.RoleHospital, auth.RoleNational))
	write.POST("/diseases", h.CreateDisease)
	write.PUT("/diseases/:id", h.UpdateDisease)
	write.DELETE("/diseases/:id", h.DeleteDisease)
	write.POST("/patients", h.CreatePatient)
	write.PUT("/patients/:id", h.UpdatePatient)
	write.DELETE("/patients/:id", h.DeletePatient)
	write.POST("/staff", h.CreateStaff)
	write.PUT("/staff/:id", h.UpdateStaff)
	write.DELETE("/staff/:id", h.DeleteStaff)
	write.POST("/resources", h.CreateResource)
	write.PUT("/resources/:id", h.UpdateResource)
	write.DELETE("/resources/:id", h.DeleteResource)

	// Facility registration – national role only
	national := api.Group("", auth.RequireRole(auth.RoleNational))
	national.POST("/hospitals", h.CreateHospital)
	national.PUT("/hospitals/:id", h.UpdateHospital)
	national.DELETE("/hospitals/:id", h.DeleteHospital)
}

// httpError maps domain errors onto HTTP status codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// -- Disease handlers --

func (h *Handler) CreateDisease(c echo.Context) error {
	var d Disease
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateDisease(d)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("disease", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateDisease(c echo.Context) error {
	var u DiseaseUpdate
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateDisease(c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("disease", "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteDisease(c echo.Context) error {
	if err := h.svc.RemoveDisease(c.Param("id")); err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("disease", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListDiseases(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.Diseases()))
}

func (h *Handler) ListDiseasesByHospital(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.DiseasesByHospital(c.Param("id"))))
}

// -- Hospital handlers --

func (h *Handler) CreateHospital(c echo.Context) error {
	var hosp Hospital
	if err := c.Bind(&hosp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateHospital(hosp)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("hospital", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateHospital(c echo.Context) error {
	var u HospitalUpdate
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateHospital(c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("hospital", "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteHospital(c echo.Context) error {
	if err := h.svc.RemoveHospital(c.Param("id")); err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("hospital", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetHospital(c echo.Context) error {
	hosp, err := h.svc.Hospital(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, hosp)
}

func (h *Handler) ListHospitals(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.Hospitals()))
}

// -- Patient handlers --

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreatePatient(p)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("patient", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	var u PatientUpdate
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdatePatient(c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("patient", "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	if err := h.svc.RemovePatient(c.Param("id")); err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("patient", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListPatients(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.Patients()))
}

func (h *Handler) ListPatientsByHospital(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.PatientsByHospital(c.Param("id"))))
}

// -- Staff handlers --

func (h *Handler) CreateStaff(c echo.Context) error {
	var m Staff
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateStaff(m)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("staff", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateStaff(c echo.Context) error {
	var u StaffUpdate
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateStaff(c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("staff", "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteStaff(c echo.Context) error {
	if err := h.svc.RemoveStaff(c.Param("id")); err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("staff", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListStaff(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.StaffMembers()))
}

func (h *Handler) ListStaffByHospital(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.StaffByHospital(c.Param("id"))))
}

// -- Resource handlers --

func (h *Handler) CreateResource(c echo.Context) error {
	var res Resource
	if err := c.Bind(&res); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.CreateResource(res)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("resource", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateResource(c echo.Context) error {
	var u ResourceUpdate
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	updated, err := h.svc.UpdateResource(c.Param("id"), u)
	if err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("resource", "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteResource(c echo.Context) error {
	if err := h.svc.RemoveResource(c.Param("id")); err != nil {
		return httpError(err)
	}
	telemetry.EntityMutations.WithLabelValues("resource", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListResources(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.Resources()))
}

func (h *Handler) ListResourcesByHospital(c echo.Context) error {
	return c.JSON(http.StatusOK, emptyAsList(h.svc.ResourcesByHospital(c.Param("id"))))
}

// emptyAsList keeps empty collections rendering as [] instead of null.
func emptyAsList[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
