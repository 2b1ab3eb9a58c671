package userstest

import (
	iradix "github.com/hashicorp/go-immutable-radix"
	"github.com/on-the-ground/tagless_go/users"
)

// Fixture is the world the pure interpreter threads through a computation:
// known profiles, the orders of each user and every error logged so far.
//
// A Fixture is never modified. Each With and LogError call returns a new one that
// shares structure with its receiver, so any earlier snapshot stays valid.
// The zero value is an empty fixture.
type Fixture struct {
	profiles *iradix.Tree
	orders   *iradix.Tree
	logged   *errorNode
	nLogged  int
}

// errorNode is a cons cell; logging prepends without touching older snapshots.
type errorNode struct {
	err  error
	next *errorNode
}

func EmptyFixture() Fixture {
	return Fixture{profiles: iradix.New(), orders: iradix.New()}
}

func orEmpty(t *iradix.Tree) *iradix.Tree {
	if t == nil {
		return iradix.New()
	}
	return t
}

// WithProfile returns a fixture that knows p, replacing any profile with the same UserID.
func (f Fixture) WithProfile(p users.UserProfile) Fixture {
	profiles, _, _ := orEmpty(f.profiles).Insert([]byte(p.UserID), p)
	f.profiles = profiles
	return f
}

// WithOrder returns a fixture where o is the first order of its owner.
func (f Fixture) WithOrder(o users.Order) Fixture {
	prev := f.UserOrders(o.Owner)
	orders, _, _ := orEmpty(f.orders).Insert([]byte(o.Owner), append([]users.Order{o}, prev...))
	f.orders = orders
	return f
}

// LogError returns a fixture with e at the head of its logged errors.
func (f Fixture) LogError(e error) Fixture {
	f.logged = &errorNode{err: e, next: f.logged}
	f.nLogged++
	return f
}

func (f Fixture) Profile(id users.UserID) (users.UserProfile, bool) {
	v, ok := orEmpty(f.profiles).Get([]byte(id))
	if !ok {
		return users.UserProfile{}, false
	}
	return v.(users.UserProfile), true
}

// UserOrders returns a copy of id's orders, newest first; empty, not nil, when there are none.
func (f Fixture) UserOrders(id users.UserID) []users.Order {
	v, ok := orEmpty(f.orders).Get([]byte(id))
	if !ok {
		return []users.Order{}
	}
	stored := v.([]users.Order)
	cp := make([]users.Order, len(stored))
	copy(cp, stored)
	return cp
}

// LoggedErrors returns the logged errors, most recent first.
func (f Fixture) LoggedErrors() []error {
	out := make([]error, 0, f.nLogged)
	for n := f.logged; n != nil; n = n.next {
		out = append(out, n.err)
	}
	return out
}

// Profiles returns every known profile ordered by UserID.
func (f Fixture) Profiles() []users.UserProfile {
	out := []users.UserProfile{}
	orEmpty(f.profiles).Root().Walk(func(_ []byte, v interface{}) bool {
		out = append(out, v.(users.UserProfile))
		return false
	})
	return out
}
