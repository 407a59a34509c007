package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbearia-cta/agenda-api/internal/cache"
	domain "github.com/barbearia-cta/agenda-api/internal/domain/booking"
	"github.com/barbearia-cta/agenda-api/internal/dto"
	"github.com/barbearia-cta/agenda-api/internal/httperr"
	"github.com/barbearia-cta/agenda-api/internal/httpresp"
	ucBooking "github.com/barbearia-cta/agenda-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo  domain.Repository
	cache *cache.BookedTimesCache

	createUC *ucBooking.CreateBooking
	updateUC *ucBooking.UpdateBooking
	deleteUC *ucBooking.DeleteBooking
}

func NewAppointmentHandler(
	repo domain.Repository,
	cache *cache.BookedTimesCache,
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		cache:    cache,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
}

type UpdateAppointmentRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.repo.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "ID inválido.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}

// ======================================================
// BOOKED TIMES
// ======================================================

func (h *AppointmentHandler) BookedTimes(c *gin.Context) {
	date := c.Param("date")

	if times, ok := h.cache.Get(c.Request.Context(), date); ok {
		httpresp.OK(c, times)
		return
	}

	times, err := h.repo.ListBookedTimes(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	h.cache.Set(c.Request.Context(), date, times)

	httpresp.OK(c, times)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerName: req.CustomerName,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeSlotConflict):
			httperr.Conflict(c, "Este horário já está reservado. Por favor, escolha outro.")
		case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
			httperr.NotFound(c, "Serviço não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime):
			httperr.BadRequest(c, "Data ou hora inválida.")
		default:
			httperr.Internal(c, err.Error())
		}
		return
	}

	httpresp.Created(c, gin.H{"id": ap.ID})
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "ID inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		ID:           id,
		CustomerName: req.CustomerName,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeAppointmentNotFound):
			httperr.NotFound(c, "Agendamento não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
			httperr.NotFound(c, "Serviço não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeSlotConflict):
			httperr.Conflict(c, "Este horário já está reservado. Por favor, escolha outro.")
		case httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime):
			httperr.BadRequest(c, "Data ou hora inválida.")
		default:
			httperr.Internal(c, err.Error())
		}
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "ID inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			httperr.NotFound(c, "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OKMessage(c, "Agendamento excluído com sucesso.")
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
