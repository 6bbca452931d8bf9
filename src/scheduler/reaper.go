package scheduler

import (
	"time"

	"github.com/sirupsen/logrus"
)

// IdleCloser closes connection pools unused since before now minus their
// idle timeout and returns the customer codes it closed.
type IdleCloser interface {
	CloseIdle(now time.Time) []string
}

// Purger drops expired entries and returns how many were removed.
type Purger interface {
	Purge() int
}

type PurgerFunc func() int

func (f PurgerFunc) Purge() int {
	return f()
}

type namedPurger struct {
	name   string
	purger Purger
}

// Reaper releases tenant pools and expired in-memory state.
type Reaper struct {
	tenants IdleCloser
	purgers []namedPurger
	logger  *logrus.Logger
	now     func() time.Time
}

func NewReaper(tenants IdleCloser, logger *logrus.Logger) *Reaper {
	return &Reaper{
		tenants: tenants,
		logger:  logger,
		now:     time.Now,
	}
}

func (r *Reaper) AddPurger(name string, purger Purger) {
	r.purgers = append(r.purgers, namedPurger{name: name, purger: purger})
}

func (r *Reaper) Run() {
	closed := r.tenants.CloseIdle(r.now())
	if len(closed) > 0 {
		r.logger.WithField("customers", closed).Info("closed idle tenant pools")
	}
	for _, p := range r.purgers {
		if removed := p.purger.Purge(); removed > 0 {
			r.logger.WithFields(logrus.Fields{
				"cache":   p.name,
				"removed": removed,
			}).Debug("purged expired entries")
		}
	}
}
