/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package server exposes the tee time engine over HTTP.
package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mikeb26/teetimes/ephemeris"
	"github.com/mikeb26/teetimes/internal"
)

const defaultMaxUpload = 8 << 20

// SunLookup is the part of the ephemeris client the server needs.
type SunLookup interface {
	LookupOrDefault(ctx context.Context, area string,
		date time.Time) ephemeris.SunTimes
}

type Options struct {
	Logger *zap.Logger
	// Sun answers ephemeris requests; nil disables the endpoint.
	Sun            SunLookup
	DefaultArea    string
	MaxUploadBytes int64
	// Now is the clock used for "today"; nil means time.Now.
	Now func() time.Time
}

type Server struct {
	logger      *zap.Logger
	sun         SunLookup
	defaultArea string
	maxUpload   int64
	now         func() time.Time
}

func New(opts Options) *Server {
	s := &Server{
		logger:      internal.OrNop(opts.Logger),
		sun:         opts.Sun,
		defaultArea: opts.DefaultArea,
		maxUpload:   opts.MaxUploadBytes,
		now:         opts.Now,
	}
	if s.maxUpload <= 0 {
		s.maxUpload = defaultMaxUpload
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Router builds the gin engine serving every route.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(Logger(s.logger))
	r.Use(Recovery(s.logger))

	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/schedule", s.schedule)
		v1.POST("/schedule/xlsx", s.scheduleXLSX)
		v1.POST("/roster", s.roster)
		if s.sun != nil {
			v1.GET("/ephemeris", s.ephemeris)
		}
	}

	return r
}
