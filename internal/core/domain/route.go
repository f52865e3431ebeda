package domain

// Route identifies an app screen. The app owns navigation; the service only names destinations.
type Route string

const (
	RouteWelcome    Route = "welcome"
	RouteHome       Route = "home"
	RouteMembership Route = "membership"
	RoutePayment    Route = "payment"
)

func (r Route) IsValid() bool {
	return r == RouteWelcome || r == RouteHome || r == RouteMembership || r == RoutePayment
}

type CheckoutOutcome string

const (
	CheckoutSucceeded CheckoutOutcome = "succeeded"
	CheckoutCanceled  CheckoutOutcome = "canceled"
)

// NextRoute is where the app goes once the payment screen is left. Both outcomes end at home.
func (o CheckoutOutcome) NextRoute() Route {
	return RouteHome
}
