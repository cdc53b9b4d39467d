/*
Package router routes requests to the handlers registered with it.

[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [*Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
An implementation of [http.Handler] is the function called when a request matches a Route.
Before a request gets to a handler, though,
any middlewares added to the Route are called in the order they appear.

It is often the case that many routes for a web server share identical middleware stacks,
which aid in directing, redirecting, or adding contextual information to a request.
Thus, a [*Router] provides conveniences for making a single call to register many logically associated Routes.

Handlers working with request parameters are best written as an [ActionFunc] and adapted with [Action]:

	rt.Handle(router.Route{
		Path:   "/trails",
		Method: http.MethodGet,
		Handler: router.Action(func(w http.ResponseWriter, r *http.Request, p *params.Params) error {
			id, err := p.GetAs("id", cast.AsInteger)
			if err != nil {
				return err
			}
			...
		}, log),
	})

A request missing "id", or whose "id" is not an integer, receives a 404.
*/
package router
