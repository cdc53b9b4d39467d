/*
Package req provides ergonomics for handling an HTTP request.

A Parser binds the values an HTTP request carries to a *params.Params.
Those values come, in order, from the query string and then from the body,
which may be URL-encoded, multipart or a JSON object.
Values from the body override those from the query string.
The request's declared charset configures the *cast.Caster the *params.Params casts with.

A Parser also decodes payloads into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the payload to fields on the struct.
Second, for validating the payload's data meets requirements.

Notably, the parade of errors that may propagate from such a task
are translated to trailhead sentinel errors in order to provide a consistent interface
for issues that arise across encoding types.
*/
package req
