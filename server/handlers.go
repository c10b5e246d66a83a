/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/export"
	"github.com/mikeb26/teetimes/internal"
	"github.com/mikeb26/teetimes/roster"
	"github.com/mikeb26/teetimes/teetime"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ScheduleRequest struct {
	Settings teetime.Settings `json:"settings"`
	// Roster is optional; without it the schedule shows placeholder numbers.
	Roster *teetime.Roster `json:"roster,omitempty"`
	Title  string          `json:"title,omitempty"`
}

type ScheduleResponse struct {
	Config       teetime.Config `json:"config"`
	Table        [][]string     `json:"table"`
	Lines        []teetime.Line `json:"lines"`
	CrossingTime teetime.Clock  `json:"crossing_time"`
	Text         string         `json:"text"`
	Warnings     []string       `json:"warnings,omitempty"`
}

type RosterResponse struct {
	Roster   teetime.Roster `json:"roster"`
	Fallback bool           `json:"fallback"`
	Error    string         `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// schedule handles POST /api/v1/schedule
func (s *Server) schedule(c *gin.Context) {
	var req ScheduleRequest
	sched, warnings, ok := s.computeInto(c, &req)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{
		Config:       sched.Config,
		Table:        sched.Table(),
		Lines:        sched.Lines,
		CrossingTime: sched.CrossingTime,
		Text:         teetime.BuildScheduleOutput(sched),
		Warnings:     warnings,
	})
}

// scheduleXLSX handles POST /api/v1/schedule/xlsx
func (s *Server) scheduleXLSX(c *gin.Context) {
	var req ScheduleRequest
	sched, _, ok := s.computeInto(c, &req)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, sched, req.Title); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError,
			errorResponse{Error: "failed to build spreadsheet"})
		return
	}

	filename := fmt.Sprintf("teetimes-round-%v.xlsx", sched.Config.Round)
	c.Header("Content-Disposition",
		"attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// computeInto binds the request body, resolves and computes the schedule.
// On failure it has already written the response.
func (s *Server) computeInto(c *gin.Context,
	req *ScheduleRequest) (*teetime.Schedule, []string, bool) {

	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest,
			errorResponse{Error: "malformed request: " + err.Error()})
		return nil, nil, false
	}

	cfg, err := teetime.Resolve(req.Settings)
	if err != nil {
		s.configError(c, err)
		return nil, nil, false
	}

	var warnings []string
	r := teetime.Roster{}
	if req.Roster != nil {
		r = *req.Roster
		if cfg.Display == teetime.DisplayNamed &&
			!r.Fits(cfg.MenCount, cfg.WomenCount) {

			w := fmt.Sprintf("roster has %d men and %d women; fitted to %d and %d",
				len(r.Men), len(r.Women), cfg.MenCount, cfg.WomenCount)
			warnings = append(warnings, w)
			s.logger.Warn("server.schedule: roster does not match counts",
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.Int("men", len(r.Men)), zap.Int("women", len(r.Women)),
				zap.Int("men_count", cfg.MenCount),
				zap.Int("women_count", cfg.WomenCount))
		}
	}

	sched, err := teetime.Compute(cfg, r)
	if err != nil {
		s.configError(c, err)
		return nil, nil, false
	}
	return sched, warnings, true
}

func (s *Server) configError(c *gin.Context, err error) {
	var cfgErr *teetime.ConfigError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusBadRequest,
			errorResponse{Error: cfgErr.Error(), Field: cfgErr.Field})
		return
	}
	if errors.Is(err, teetime.ErrInvalidConfig) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.Error(err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

// roster handles POST /api/v1/roster
func (s *Server) roster(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge,
				errorResponse{Error: "upload too large", Field: "file"})
			return
		}
		c.JSON(http.StatusBadRequest,
			errorResponse{Error: "missing upload", Field: "file"})
		return
	}
	fp, err := fh.Open()
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	defer fp.Close()

	r, err := roster.Load(fp)
	if err != nil {
		s.logger.Warn("server.roster: unreadable upload; using placeholders",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("filename", fh.Filename), zap.Error(err))
		c.JSON(http.StatusOK, RosterResponse{
			Roster:   teetime.Roster{Men: []string{}, Women: []string{}},
			Fallback: true,
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, RosterResponse{Roster: r})
}

// ephemeris handles GET /api/v1/ephemeris?area=RM&date=2026-06-01
func (s *Server) ephemeris(c *gin.Context) {
	area := c.DefaultQuery("area", s.defaultArea)
	if area == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "missing area",
			Field: "area"})
		return
	}
	date, err := internal.ParseDateOr(c.Query("date"), s.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(),
			Field: "date"})
		return
	}

	c.JSON(http.StatusOK, s.sun.LookupOrDefault(c.Request.Context(), area, date))
}
