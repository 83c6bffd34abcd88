package service

import (
	"context"
	"sync"

	"covid19-tracker-service/internal/diseaseapi"
	"covid19-tracker-service/internal/metrics"
	"covid19-tracker-service/internal/model"

	"emperror.dev/errors"
	"golang.org/x/sync/errgroup"
)

// ErrStaleResponse is returned when a summary arrives after a newer one has
// already been applied. The older response is dropped.
const ErrStaleResponse = errors.Sentinel("stale response")

// ViewStateController owns the ViewState of a single dashboard session.
//
// Summary requests (the worldwide load and every SelectCountry) get an
// increasing generation number. A response is applied only if nothing newer
// has been applied yet, so out of order completions can't roll the
// selection back.
//
// Notifications are queued under the state lock and delivered one at a time
// in commit order, so an observer's latest snapshot is the controller's.
type ViewStateController struct {
	fetcher diseaseapi.Fetcher

	mu           sync.Mutex
	state        model.ViewState
	summaryErr   error
	countriesErr error
	requested    uint64
	applied      uint64
	observers    []Observer
	pending      []notification

	// held while draining pending
	notifyMu sync.Mutex
}

// notification is either a committed state (event set) or a fetch failure.
type notification struct {
	observers []Observer
	state     model.ViewState
	event     Event
	err       error
}

func NewViewStateController(fetcher diseaseapi.Fetcher) *ViewStateController {
	return &ViewStateController{
		fetcher: fetcher,
		state:   model.InitialViewState(),
	}
}

func (c *ViewStateController) Subscribe(o Observer) {
	c.mu.Lock()
	c.observers = append(c.observers, o)
	c.mu.Unlock()
}

func (c *ViewStateController) State() model.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError is the display-only error indicator. The summary and the country
// list keep their own failure, each cleared only when that slice of the state
// is next applied.
func (c *ViewStateController) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return errors.Combine(c.summaryErr, c.countriesErr)
}

// LoadInitial fetches the worldwide summary and the country list concurrently.
// Each result is applied as soon as it arrives; a failure in one does not
// hold back the other. The returned error combines both failures, if any.
func (c *ViewStateController) LoadInitial(ctx context.Context) (model.ViewState, error) {
	gen := c.nextGeneration()

	var (
		g            errgroup.Group
		worldwideErr error
		countriesErr error
	)

	g.Go(func() error {
		summary, err := c.fetcher.Worldwide(ctx)
		if err != nil {
			worldwideErr = errors.WithMessage(err, "loading worldwide summary")
			c.failSummary(gen, worldwideErr)
			return worldwideErr
		}
		_, err = c.applySummary(gen, WorldwideLoaded{Summary: summary})
		if err != nil && !errors.Is(err, ErrStaleResponse) {
			worldwideErr = err
		}
		return worldwideErr
	})

	g.Go(func() error {
		countries, err := c.fetcher.Countries(ctx)
		if err != nil {
			countriesErr = errors.WithMessage(err, "loading countries")
			c.failCountries(countriesErr)
			return countriesErr
		}
		c.apply(CountriesLoaded{Countries: countries})
		return nil
	})

	_ = g.Wait()
	return c.State(), errors.Combine(worldwideErr, countriesErr)
}

// SelectCountry switches the dashboard to the given ISO2 code, or to the
// worldwide aggregate. On failure the state is left untouched.
func (c *ViewStateController) SelectCountry(ctx context.Context, code string) (model.ViewState, error) {
	gen := c.nextGeneration()

	var summary model.Summary
	if code == model.Worldwide {
		worldwide, err := c.fetcher.Worldwide(ctx)
		if err != nil {
			err = errors.WithMessage(err, "loading worldwide summary")
			c.failSummary(gen, err)
			return c.State(), err
		}
		summary = worldwide.Summary()
	} else {
		country, err := c.fetcher.Country(ctx, code)
		if err != nil {
			err = errors.WithMessagef(err, "loading country %q", code)
			c.failSummary(gen, err)
			return c.State(), err
		}
		summary = country.Summary()
	}

	return c.applySummary(gen, CountrySelected{Code: code, Summary: summary})
}

// SelectCasesType changes the highlighted statistic. It never touches the network.
func (c *ViewStateController) SelectCasesType(t model.CasesType) (model.ViewState, error) {
	if !t.Valid() {
		return c.State(), errors.WithDetails(model.ErrUnknownCasesType, "type", string(t))
	}
	return c.apply(CasesTypeSelected{Type: t}), nil
}

func (c *ViewStateController) nextGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requested++
	return c.requested
}

func (c *ViewStateController) applySummary(gen uint64, e Event) (model.ViewState, error) {
	c.mu.Lock()
	if gen < c.applied {
		state := c.state
		c.mu.Unlock()
		return state, errors.WithDetails(ErrStaleResponse, "event", e.Name(), "generation", gen)
	}
	c.applied = gen
	c.summaryErr = nil
	return c.commit(e), nil
}

func (c *ViewStateController) apply(e Event) model.ViewState {
	c.mu.Lock()
	if _, ok := e.(CountriesLoaded); ok {
		c.countriesErr = nil
	}
	return c.commit(e)
}

// commit must be called with c.mu held; it releases it before notifying.
func (c *ViewStateController) commit(e Event) model.ViewState {
	c.state = Transition(c.state, e)
	state := c.state
	c.enqueue(notification{state: state, event: e})
	c.mu.Unlock()

	metrics.ViewTransitions.WithLabelValues(e.Name()).Inc()
	c.deliver()
	return state
}

// failSummary records a failed summary fetch unless a newer summary has
// already been applied.
func (c *ViewStateController) failSummary(gen uint64, err error) {
	c.mu.Lock()
	if gen >= c.applied {
		c.summaryErr = err
	}
	c.enqueue(notification{err: err})
	c.mu.Unlock()
	c.deliver()
}

func (c *ViewStateController) failCountries(err error) {
	c.mu.Lock()
	c.countriesErr = err
	c.enqueue(notification{err: err})
	c.mu.Unlock()
	c.deliver()
}

// enqueue must be called with c.mu held.
func (c *ViewStateController) enqueue(n notification) {
	n.observers = append([]Observer(nil), c.observers...)
	c.pending = append(c.pending, n)
}

// deliver drains the queue. On return, everything queued before the call has
// reached the observers.
func (c *ViewStateController) deliver() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	for {
		c.mu.Lock()
		batch := c.pending
		c.pending = nil
		c.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, n := range batch {
			for _, o := range n.observers {
				if n.event != nil {
					o.StateChanged(n.state, n.event)
				} else {
					o.FetchFailed(n.err)
				}
			}
		}
	}
}
