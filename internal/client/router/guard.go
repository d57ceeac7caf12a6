package router

import "github.com/dmitrijs2005/skillfit/internal/client/auth"

type Outcome int

const (
	Authorized Outcome = iota
	NoSession
	WrongRole
)

func (o Outcome) String() string {
	switch o {
	case Authorized:
		return "authorized"
	case NoSession:
		return "no_session"
	case WrongRole:
		return "wrong_role"
	}
	return "unknown"
}

// Decision is the guard verdict for one navigation. Redirect is set unless
// the outcome is Authorized.
type Decision struct {
	Outcome  Outcome
	Redirect Path
}

// Check evaluates route against the (possibly absent) claims. Absence is
// checked before role, so a signed-out visitor is never told "wrong role".
func Check(route Route, claims auth.Claims, present bool) Decision {
	if !route.Protected() {
		return Decision{Outcome: Authorized}
	}
	if !present {
		return Decision{Outcome: NoSession, Redirect: PathSignIn}
	}
	if !route.Allows(claims.Role) {
		return Decision{Outcome: WrongRole, Redirect: LandingFor(claims.Role)}
	}
	return Decision{Outcome: Authorized}
}

// ClaimsSource is the read side of the session store.
type ClaimsSource interface {
	CurrentClaims() (auth.Claims, bool)
}

type Guard struct {
	session ClaimsSource
}

func NewGuard(s ClaimsSource) *Guard {
	return &Guard{session: s}
}

func (g *Guard) Evaluate(route Route) Decision {
	c, ok := g.session.CurrentClaims()
	return Check(route, c, ok)
}
