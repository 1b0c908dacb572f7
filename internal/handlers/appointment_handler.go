package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/cannaconscious/booking-api/internal/domain/appointment"
	"github.com/cannaconscious/booking-api/internal/httperr"
	"github.com/cannaconscious/booking-api/internal/httpresp"
	ucAppointment "github.com/cannaconscious/booking-api/internal/usecase/appointment"
	"github.com/cannaconscious/booking-api/internal/validation"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo           domain.Repository
	bookUC         *ucAppointment.BookAppointment
	cancelUC       *ucAppointment.CancelAppointment
	availabilityUC *ucAppointment.GetAvailability
	log            *logrus.Logger
}

func NewAppointmentHandler(
	repo domain.Repository,
	bookUC *ucAppointment.BookAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	availabilityUC *ucAppointment.GetAvailability,
	log *logrus.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:           repo,
		bookUC:         bookUC,
		cancelUC:       cancelUC,
		availabilityUC: availabilityUC,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateAppointmentRequest struct {
	ClientName      *string `json:"clientName"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	BusinessName    *string `json:"businessName"`
	ServiceType     *string `json:"serviceType"`
	AppointmentDate *string `json:"appointmentDate"`
	TimeSlot        *string `json:"timeSlot"`
	Message         *string `json:"message"`
	Status          *string `json:"status"`
}

// validated after the partial fields are applied; same rules as booking
type appointmentCheck struct {
	ClientName  string `json:"clientName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	ServiceType string `json:"serviceType" validate:"required,servicetype"`
	TimeSlot    string `json:"timeSlot" validate:"required,timeslot"`
	Status      string `json:"status" validate:"required,appointmentstatus"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in ucAppointment.BookAppointmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	result, err := h.bookUC.Execute(c.Request.Context(), in)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			httperr.Validation(c, verr.Fields)
			return
		}
		if httperr.IsBusiness(err, "slot_taken") {
			httperr.Conflict(c, "slot_taken", "The requested time slot is no longer available")
			return
		}

		h.log.WithError(err).Error("failed to create appointment")
		httperr.Internal(c, "failed_to_create_appointment", "Server Error")
		return
	}

	httpresp.Created(c, result.Appointment)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list appointments")
		httperr.Internal(c, "failed_to_list_appointments", "Server Error")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found")
			return
		}

		h.log.WithError(err).Error("failed to load appointment")
		httperr.Internal(c, "failed_to_get_appointment", "Server Error")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	ap, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found")
			return
		}

		h.log.WithError(err).Error("failed to load appointment")
		httperr.Internal(c, "failed_to_update_appointment", "Server Error")
		return
	}

	// identifier and creation timestamp are never writable
	if req.ClientName != nil {
		ap.ClientName = *req.ClientName
	}
	if req.Email != nil {
		ap.Email = *req.Email
	}
	if req.Phone != nil {
		ap.Phone = *req.Phone
	}
	if req.BusinessName != nil {
		ap.BusinessName = *req.BusinessName
	}
	if req.ServiceType != nil {
		ap.ServiceType = *req.ServiceType
	}
	if req.TimeSlot != nil {
		ap.TimeSlot = *req.TimeSlot
	}
	if req.Message != nil {
		ap.Message = *req.Message
	}
	if req.Status != nil {
		ap.Status = *req.Status
	}
	if req.AppointmentDate != nil {
		date, err := time.Parse("2006-01-02", *req.AppointmentDate)
		if err != nil {
			httperr.Validation(c, map[string]string{
				"appointmentDate": "must be a date in YYYY-MM-DD format",
			})
			return
		}
		ap.AppointmentDate = date
	}

	check := appointmentCheck{
		ClientName:  ap.ClientName,
		Email:       ap.Email,
		Phone:       ap.Phone,
		ServiceType: ap.ServiceType,
		TimeSlot:    ap.TimeSlot,
		Status:      ap.Status,
	}
	if err := validation.Struct(check); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			httperr.Validation(c, verr.Fields)
			return
		}

		httperr.Internal(c, "failed_to_update_appointment", "Server Error")
		return
	}

	// moving into an occupied slot is rejected the same way a booking is
	if ap.Status != string(domain.StatusCanceled) {
		day := ap.AppointmentDate
		sameDay, err := h.repo.ListForDay(c.Request.Context(), day, day.Add(24*time.Hour))
		if err != nil {
			h.log.WithError(err).Error("failed to update appointment")
			httperr.Internal(c, "failed_to_update_appointment", "Server Error")
			return
		}
		for _, other := range sameDay {
			if other.ID != ap.ID && other.TimeSlot == ap.TimeSlot {
				httperr.Conflict(c, "slot_taken", "The requested time slot is no longer available")
				return
			}
		}
	}

	if err := h.repo.Update(c.Request.Context(), ap); err != nil {
		h.log.WithError(err).Error("failed to update appointment")
		httperr.Internal(c, "failed_to_update_appointment", "Server Error")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	result, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Appointment is already canceled")
			return
		}

		h.log.WithError(err).Error("failed to cancel appointment")
		httperr.Internal(c, "failed_to_cancel_appointment", "Server Error")
		return
	}

	httpresp.OK(c, result.Appointment)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	day, err := h.availabilityUC.Execute(c.Request.Context(), c.Param("date"))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date must be in YYYY-MM-DD format")
			return
		}

		h.log.WithError(err).Error("failed to compute availability")
		httperr.Internal(c, "availability_failed", "Server Error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"date":      day.Date,
		"available": day.Available,
		"booked":    day.Booked,
	})
}
