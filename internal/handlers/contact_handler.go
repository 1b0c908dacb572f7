package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/cannaconscious/booking-api/internal/domain/contact"
	"github.com/cannaconscious/booking-api/internal/httperr"
	"github.com/cannaconscious/booking-api/internal/httpresp"
	ucContact "github.com/cannaconscious/booking-api/internal/usecase/contact"
	"github.com/cannaconscious/booking-api/internal/validation"
)

type ContactHandler struct {
	repo     domain.Repository
	submitUC *ucContact.SubmitContact
	log      *logrus.Logger
}

func NewContactHandler(
	repo domain.Repository,
	submitUC *ucContact.SubmitContact,
	log *logrus.Logger,
) *ContactHandler {
	return &ContactHandler{
		repo:     repo,
		submitUC: submitUC,
		log:      log,
	}
}

type UpdateContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

type contactCheck struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
	Status  string `json:"status" validate:"required,contactstatus"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var in ucContact.SubmitContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), in)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			httperr.Validation(c, verr.Fields)
			return
		}

		h.log.WithError(err).Error("failed to create contact message")
		httperr.Internal(c, "failed_to_create_contact", "Server Error")
		return
	}

	httpresp.Created(c, result.Contact)
}

func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list contact messages")
		httperr.Internal(c, "failed_to_list_contacts", "Server Error")
		return
	}

	httpresp.List(c, msgs)
}

func (h *ContactHandler) Get(c *gin.Context) {
	msg, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "contact_not_found") {
			httperr.NotFound(c, "contact_not_found", "Contact not found")
			return
		}

		h.log.WithError(err).Error("failed to load contact message")
		httperr.Internal(c, "failed_to_get_contact", "Server Error")
		return
	}

	httpresp.OK(c, msg)
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	msg, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if httperr.IsBusiness(err, "contact_not_found") {
			httperr.NotFound(c, "contact_not_found", "Contact not found")
			return
		}

		h.log.WithError(err).Error("failed to load contact message")
		httperr.Internal(c, "failed_to_update_contact", "Server Error")
		return
	}

	if req.Name != nil {
		msg.Name = *req.Name
	}
	if req.Email != nil {
		msg.Email = *req.Email
	}
	if req.Phone != nil {
		msg.Phone = *req.Phone
	}
	if req.Message != nil {
		msg.Message = *req.Message
	}
	if req.Status != nil {
		msg.Status = *req.Status
	}

	check := contactCheck{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
		Status:  msg.Status,
	}
	if err := validation.Struct(check); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			httperr.Validation(c, verr.Fields)
			return
		}

		httperr.Internal(c, "failed_to_update_contact", "Server Error")
		return
	}

	if err := h.repo.Update(c.Request.Context(), msg); err != nil {
		h.log.WithError(err).Error("failed to update contact message")
		httperr.Internal(c, "failed_to_update_contact", "Server Error")
		return
	}

	httpresp.OK(c, msg)
}
