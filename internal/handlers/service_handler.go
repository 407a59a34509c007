package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/barbearia-cta/agenda-api/internal/domain/booking"
	"github.com/barbearia-cta/agenda-api/internal/httperr"
	"github.com/barbearia-cta/agenda-api/internal/httpresp"
)

type ServiceHandler struct {
	repo domain.Repository
}

func NewServiceHandler(repo domain.Repository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// List devolve o catálogo ordenado por preço crescente.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, err.Error())
		return
	}

	httpresp.OK(c, services)
}
