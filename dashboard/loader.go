// Package dashboard assembles the data behind the main screen: the backend
// status, the logged-in user, the employee list grouped by today's
// location, and the user's extended profile.
package dashboard

import (
	"context"

	"github.com/jrsteele09/employee-tracker/employee"
	"github.com/jrsteele09/employee-tracker/gateway"
	"github.com/jrsteele09/employee-tracker/identity"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Gateway is the subset of the API gateway client the loader depends on.
type Gateway interface {
	Status(ctx context.Context) (*gateway.StatusResponse, error)
	CurrentUser(ctx context.Context) (*identity.User, error)
	Employees(ctx context.Context) ([]employee.Employee, error)
	CurrentUserDetails(ctx context.Context) (*employee.Details, error)
}

// Dashboard is the fully loaded dashboard state.
type Dashboard struct {
	Status    *gateway.StatusResponse
	Me        *identity.User
	MyDetails *employee.Details
	Employees []employee.Employee
	Groups    employee.Groups
}

type Loader struct {
	gateway Gateway
}

func NewLoader(gw Gateway) *Loader {
	return &Loader{gateway: gw}
}

// Load issues the four independent dashboard reads concurrently and joins
// them all-or-nothing: if any one fails, the whole load fails and no
// partial result is returned.
func (l *Loader) Load(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		status, err := l.gateway.Status(ctx)
		if err != nil {
			return errors.Wrap(err, "[Loader.Load] status")
		}
		dash.Status = status
		return nil
	})

	group.Go(func() error {
		me, err := l.gateway.CurrentUser(ctx)
		if err != nil {
			return errors.Wrap(err, "[Loader.Load] current user")
		}
		dash.Me = me
		return nil
	})

	group.Go(func() error {
		employees, err := l.gateway.Employees(ctx)
		if err != nil {
			return errors.Wrap(err, "[Loader.Load] employees")
		}
		dash.Employees = employees
		return nil
	})

	group.Go(func() error {
		details, err := l.gateway.CurrentUserDetails(ctx)
		if err != nil {
			return errors.Wrap(err, "[Loader.Load] current user details")
		}
		dash.MyDetails = details
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	dash.Groups = employee.GroupByLocation(dash.Employees)
	return &dash, nil
}
