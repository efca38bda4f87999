package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeworks/pipeadmin/internal/domain/staff"
)

func (h *Handler) ListStaff(c *gin.Context) {
	var f staff.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Message: err.Error()})
		return
	}
	list := staff.Apply(h.staff.List(), f)
	c.JSON(http.StatusOK, gin.H{"staff": list, "total": len(list)})
}

func (h *Handler) StaffStats(c *gin.Context) {
	now := nowUTC()
	stats := staff.ComputeStats(h.staff.List(), h.staff.TodayAttendance(now), now.Format("2006-01"))
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": h.staff.Roles()})
}

func (h *Handler) GetStaff(c *gin.Context) {
	m, err := h.staff.Get(c.Param("staff_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// StaffAttendanceSummary returns the per-member rollup over an optional
// date range.
func (h *Handler) StaffAttendanceSummary(c *gin.Context) {
	staffID := c.Param("staff_id")
	if _, err := h.staff.Get(staffID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found", Message: err.Error()})
		return
	}
	records := h.staff.ListAttendance(staff.AttendanceFilter{
		StaffIDs: []string{staffID},
		DateFrom: c.Query("dateFrom"),
		DateTo:   c.Query("dateTo"),
	})
	c.JSON(http.StatusOK, staff.Summarize(staffID, records))
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var data staff.FormData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff payload", Message: err.Error()})
		return
	}
	m := h.staff.Create(data, actor(c))
	h.log.Info("staff member created", "employeeId", m.EmployeeID)
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	var data staff.FormData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff payload", Message: err.Error()})
		return
	}
	m, err := h.staff.Update(c.Param("staff_id"), data)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateStaffStatus(c *gin.Context) {
	var req struct {
		Status staff.EmploymentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status payload", Message: err.Error()})
		return
	}
	m, err := h.staff.UpdateStatus(c.Param("staff_id"), req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) AssignStaffRoles(c *gin.Context) {
	var req struct {
		RoleIDs []string `json:"roles" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid roles payload", Message: err.Error()})
		return
	}
	m, err := h.staff.AssignRoles(c.Param("staff_id"), req.RoleIDs)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteStaff(c *gin.Context) {
	if err := h.staff.Delete(c.Param("staff_id")); err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete staff member", Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type bulkStaffRequest struct {
	Type     string   `json:"type" binding:"required,oneof=update_status assign_role"`
	Value    string   `json:"value" binding:"required"`
	StaffIDs []string `json:"staffIds" binding:"required,min=1"`
}

func (h *Handler) BulkStaffAction(c *gin.Context) {
	var req bulkStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid bulk action payload", Message: err.Error()})
		return
	}
	var updated []staff.Member
	switch req.Type {
	case "update_status":
		updated = h.staff.BulkUpdateStatus(req.StaffIDs, staff.EmploymentStatus(req.Value))
	case "assign_role":
		for _, id := range req.StaffIDs {
			if m, err := h.staff.AssignRoles(id, []string{req.Value}); err == nil {
				updated = append(updated, m)
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"staff": updated, "updated": len(updated)})
}
