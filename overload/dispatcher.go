package overload

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/toolkit_ive_go/shared/logging"
	"github.com/on-the-ground/toolkit_ive_go/shared/options"
)

// Dispatcher is a public entry point shared by several candidates.
// It is immutable after Register and safe for concurrent use.
type Dispatcher struct {
	id       string
	name     string
	registry *Registry
	logger   *zap.Logger
	strict   bool
}

// Option configures a Dispatcher at registration time.
type Option = options.Option[Dispatcher]

// WithName sets the name used in log fields.
func WithName(name string) Option {
	return func(d *Dispatcher) {
		d.name = name
	}
}

// WithLogger sets the logger used to trace selections. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logging.OrNop(logger)
	}
}

// WithStrictArity makes the dispatcher skip candidates that would be left
// with an unbound required parameter. See ResolveStrict.
func WithStrictArity() Option {
	return func(d *Dispatcher) {
		d.strict = true
	}
}

// Register builds a Dispatcher over candidates, in declaration order, and a
// fallback invoked when no candidate matches a call.
// The only possible failure is an invalid signature.
func Register(candidates []Candidate, fallback Func, opts ...Option) (*Dispatcher, error) {
	registry, err := NewRegistry(candidates, fallback)
	if err != nil {
		return nil, err
	}
	d := options.Apply(&Dispatcher{
		id:       uuid.New().String(),
		registry: registry,
		logger:   zap.NewNop(),
	}, opts...)
	d.logger = d.logger.With(zap.String("dispatcher", d.name), zap.String("dispatcherId", d.id))
	d.logger.Debug("registered dispatcher", zap.Int("candidates", registry.Len()))
	return d, nil
}

// MustRegister is the panic-on-failure variant of Register.
// Use it for package-level dispatchers whose signatures are fixed.
func MustRegister(candidates []Candidate, fallback Func, opts ...Option) *Dispatcher {
	d, err := Register(candidates, fallback, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// ID uniquely identifies the dispatcher in logs.
func (d *Dispatcher) ID() string { return d.id }

// Name is the name given with WithName.
func (d *Dispatcher) Name() string { return d.name }

// Registry exposes the dispatcher's read-only candidate list.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Resolve selects the candidate for args without invoking it.
func (d *Dispatcher) Resolve(args Args) (int, bool) {
	return resolve(d.registry, args, d.strict)
}

// Call invokes the candidate selected for args, or the fallback when none
// matches. Whatever the invoked function returns is returned unchanged.
func (d *Dispatcher) Call(args Args) (any, error) {
	idx, ok := d.Resolve(args)
	if !ok {
		d.logger.Debug("no candidate matched, using fallback",
			zap.Int("positional", len(args.Positional)),
			zap.Int("named", len(args.Named)),
		)
		return d.registry.fallback(args)
	}
	c := d.registry.candidates[idx]
	d.logger.Debug("dispatching", zap.Int("candidate", idx), zap.String("candidateName", c.Name))
	return c.Impl(args)
}

// Invoke is Call with positional arguments only.
func (d *Dispatcher) Invoke(positional ...any) (any, error) {
	return d.Call(Pos(positional...))
}
