package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryotarai/ec2fleet/status"
)

type Server struct {
	store status.Store
}

func NewServer(store status.Store) *Server {
	return &Server{
		store: store,
	}
}

func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/status", s.getStatusHandler)
	r.GET("/metrics", s.getMetricsHandler)
	return r
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) getStatusHandler(c *gin.Context) {
	snapshot, err := s.store.Latest()
	if err != nil {
		c.String(500, "%s", err)
		return
	}
	if snapshot == nil {
		c.String(404, "no status yet")
		return
	}
	c.JSON(200, snapshot)
}

func (s *Server) getMetricsHandler(c *gin.Context) {
	snapshot, err := s.store.Latest()
	if err != nil {
		c.String(500, "%s", err)
		return
	}

	b := &strings.Builder{}
	if snapshot != nil {
		for _, f := range snapshot.Fleets {
			fmt.Fprintf(b, "ec2fleet_active_instances{fleet=%q} %d\n", f.Fleet, f.NumActive)
			fmt.Fprintf(b, "ec2fleet_desired_capacity{fleet=%q} %d\n", f.Fleet, f.NumDesired)
		}
	}
	c.String(200, "%s", b.String())
}
