package monitoring

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"

	"github.com/Riviera71/ephemeris-compute-de430/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	Port             int
	URLPrefix        string
	ProfilingEnabled bool
	MetricEnabled    bool
}

type Monitoring struct {
	conf   Config
	tag    string
	server *http.Server
	log    *logger.Logger
}

// New creates a new monitoring service.
// The tag param specifies owner label for logs.
func New(conf Config, tag string, log *logger.Logger) *Monitoring {
	h := http.NewServeMux()

	if conf.ProfilingEnabled {
		prefix := conf.URLPrefix + "/debug/pprof"
		log.Info().Msgf("[%v] profiling is enabled at :%d%s", tag, conf.Port, prefix)
		h.HandleFunc(prefix+"/", pprof.Index)
		h.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
		h.HandleFunc(prefix+"/profile", pprof.Profile)
		h.HandleFunc(prefix+"/symbol", pprof.Symbol)
		h.HandleFunc(prefix+"/trace", pprof.Trace)
	}

	if conf.MetricEnabled {
		metricPath := conf.URLPrefix + "/metrics"
		log.Info().Msgf("[%v] prometheus metrics are enabled at :%d%s", tag, conf.Port, metricPath)
		h.Handle(metricPath, promhttp.Handler())
	}

	return &Monitoring{
		conf:   conf,
		tag:    tag,
		server: &http.Server{Addr: fmt.Sprintf(":%d", conf.Port), Handler: h},
		log:    log,
	}
}

func (m *Monitoring) Run() {
	m.log.Info().Msgf("[%v] starting monitoring server at %v", m.tag, m.server.Addr)
	if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		m.log.Error().Err(err).Msgf("[%v] monitoring server failed", m.tag)
	}
}

func (m *Monitoring) Shutdown(ctx context.Context) error {
	m.log.Info().Msgf("[%v] shutting down monitoring server", m.tag)
	return m.server.Shutdown(ctx)
}

func (m *Monitoring) String() string {
	return fmt.Sprintf("monitoring::%s:%d", m.conf.URLPrefix, m.conf.Port)
}
