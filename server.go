package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/franciscofloresen/cloudops-portfolio/internal/config"
	"github.com/franciscofloresen/cloudops-portfolio/internal/lookup"
	"github.com/franciscofloresen/cloudops-portfolio/internal/store"
	"github.com/franciscofloresen/cloudops-portfolio/internal/terminal"
)

const terminalTitle = "francisco@cloud-ops:~"

type app struct {
	cfg    config.Config
	log    *zap.Logger
	store  *store.Store
	script terminal.Script
	clock  terminal.Clock
	delays terminal.DelayFunc
	ipify  terminal.Resolver
	now    func() time.Time

	adminToken  string
	hashingSalt string
}

func newApp(cfg config.Config, log *zap.Logger, st *store.Store) *app {
	return &app{
		cfg:         cfg,
		log:         log,
		store:       st,
		script:      terminal.CloudProfile(),
		clock:       terminal.RealClock{},
		delays:      terminal.Jitter(cfg.Terminal.JitterMax),
		ipify:       lookup.NewIpify(cfg.Lookup.URL, cfg.Lookup.Timeout),
		now:         time.Now,
		adminToken:  generateToken(),
		hashingSalt: generateToken(),
	}
}

func (a *app) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(a.log), a.visitorTracking())
	r.LoadHTMLGlob("templates/*")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"profile":        AboutMe,
			"skillGroups":    SkillGroups,
			"experience":     Experience,
			"projects":       Projects,
			"certifications": Certifications,
			"terminalTitle":  terminalTitle,
		})
	})

	// One terminal widget per connection, streamed as server-sent events
	r.GET("/terminal/stream", a.streamTerminal)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	a.setupAdminRoutes(r)
	return r
}

// resolverFor picks the address lookup for a widget mounted by c.
func (a *app) resolverFor(c *gin.Context) terminal.Resolver {
	if a.cfg.Lookup.Mode == config.LookupIpify {
		return a.ipify
	}
	return lookup.Static(c.ClientIP())
}

// streamTerminal plays one session and forwards its state: each committed
// line once and in order, the typing state and phase whenever they change.
// A closed connection cancels the request context and tears the session down.
func (a *app) streamTerminal(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Session records outlive the connection.
	dbCtx := context.WithoutCancel(ctx)
	id := uuid.NewString()
	log := a.log.With(zap.String("session", id))
	if err := a.store.StartSession(dbCtx, id, a.hashIP(c.ClientIP()), a.now()); err != nil {
		log.Warn("Error recording terminal session", zap.Error(err))
	}

	changes := terminal.NewSignal()
	sess := terminal.NewSession(a.script,
		terminal.WithClock(a.clock),
		terminal.WithDelays(a.delays),
		terminal.WithTimings(a.cfg.Terminal.SettleDelay, a.cfg.Terminal.EnterDelay),
		terminal.WithResolver(a.resolverFor(c)),
		terminal.WithLogger(log),
		terminal.WithObserver(changes),
	)
	go func() {
		defer changes.Close()
		sess.Run(ctx)
	}()

	c.Header("X-Accel-Buffering", "no")
	var (
		snap   terminal.Snapshot
		sent   int
		typing string
		phase  = terminal.PhaseIdle
	)
	for {
		_, open := <-changes.C()
		snap = sess.Snapshot()
		if snap.Phase != phase {
			phase = snap.Phase
			c.SSEvent("phase", phase.String())
		}
		for _, line := range snap.Lines[sent:] {
			c.SSEvent("line", line)
		}
		sent = len(snap.Lines)
		if snap.Typing != typing {
			typing = snap.Typing
			c.SSEvent("typing", typing)
		}
		if !open {
			break
		}
		c.Writer.Flush()
	}
	if phase == terminal.PhaseDone {
		c.SSEvent("done", phase.String())
	}
	c.Writer.Flush()

	err := a.store.FinishSession(dbCtx, id, phase.String(), snap.Fallback, len(snap.Lines), a.now())
	if err != nil {
		log.Warn("Error finishing terminal session", zap.Error(err))
	}
	log.Info("Terminal session finished",
		zap.Stringer("phase", phase),
		zap.Int("lines", len(snap.Lines)),
		zap.Bool("fallback", snap.Fallback))
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
