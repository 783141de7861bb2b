package retry

import (
	"fmt"
	"strings"

	"github.com/aponysus/reprise/classify"
	"github.com/aponysus/reprise/policy"
)

var builtinClassifiers = func() *classify.Registry {
	r := classify.NewRegistry()
	classify.RegisterBuiltins(r)
	return r
}()

// WithPolicy applies a declarative policy document: schedule, stop
// conditions, jitter, and classifier (resolved against the built-in
// classifier registry). An invalid document fails the wrap.
func WithPolicy(p policy.Policy) Option {
	return WithPolicyRegistry(p, builtinClassifiers)
}

// WithPolicyRegistry is WithPolicy with classifier names resolved against
// reg instead of the built-ins.
func WithPolicyRegistry(p policy.Policy, reg *classify.Registry) Option {
	return func(c *config) {
		p, err := p.Normalize()
		if err != nil {
			c.fail(err)
			return
		}

		s, err := p.Schedule.BuildSchedule()
		if err != nil {
			c.fail(err)
			return
		}
		c.schedule = s

		c.jitter = p.BuildJitter()
		c.jitterSet = true

		WithMaxTries(p.MaxTries)(c)
		WithMaxTime(p.MaxTime.Std())(c)

		if p.Classifier != "" {
			cl, ok := reg.Get(p.Classifier)
			if !ok {
				c.fail(fmt.Errorf("reprise: classifier %q not registered (have: %s)",
					p.Classifier, strings.Join(reg.Names(), ", ")))
				return
			}
			c.classifier = cl
		}
	}
}
