package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pipeworks/pipeadmin/internal/domain/staff"
)

func (h *Handler) ListAttendance(c *gin.Context) {
	var f staff.AttendanceFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters", Message: err.Error()})
		return
	}
	records := h.staff.ListAttendance(f)
	c.JSON(http.StatusOK, gin.H{"records": records, "total": len(records)})
}

func (h *Handler) AddAttendanceRecord(c *gin.Context) {
	var rec staff.AttendanceRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid attendance payload", Message: err.Error()})
		return
	}
	if rec.StaffID == "" || rec.Date == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid attendance payload", Message: "staffId and date are required"})
		return
	}
	if _, err := h.staff.Get(rec.StaffID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.staff.AddRecord(rec))
}

func (h *Handler) UpdateAttendanceRecord(c *gin.Context) {
	var patch staff.RecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid attendance payload", Message: err.Error()})
		return
	}
	rec, err := h.staff.UpdateRecord(c.Param("record_id"), patch)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Attendance record not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

type clockRequest struct {
	StaffID  string `json:"staffId" binding:"required"`
	Location string `json:"location,omitempty"`
}

func (h *Handler) ClockIn(c *gin.Context) {
	var req clockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clock-in payload", Message: err.Error()})
		return
	}
	rec, err := h.staff.ClockIn(req.StaffID, req.Location, nowUTC())
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Staff member not found", Message: err.Error()})
		case errors.Is(err, staff.ErrAlreadyOpen):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Already clocked in", Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Clock-in failed", Message: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ClockOut(c *gin.Context) {
	var req clockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid clock-out payload", Message: err.Error()})
		return
	}
	rec, err := h.staff.ClockOut(req.StaffID, nowUTC())
	if err != nil {
		if errors.Is(err, staff.ErrNoOpenRecord) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "No open attendance record", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Clock-out failed", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
