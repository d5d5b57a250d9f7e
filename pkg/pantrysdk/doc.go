/*
Package pantrysdk is a Go client for the pantry service.

# Client vs Session

Client covers the public endpoints: health probes, signup, login and
invitation previews. Logging in returns a Session that carries the bearer
token and exposes everything scoped to the user's family:

	client := pantrysdk.NewClient("http://localhost:8080")

	_, err := client.Signup(ctx, pantrysdk.SignupRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	session, err := client.Login(ctx, "alice@example.com", "correct horse")

	loc, err := session.CreateLocation(ctx, "Fridge")
	entries, err := session.ListInventory(ctx, loc.ID)

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the service's error code:

	_, err := session.CreateLocation(ctx, "Fridge")
	if pantrysdk.IsCode(err, pantrysdk.ErrorCodeConflict) {
		// already exists
	}

The types in this package are also the wire types of the server handlers.
*/
package pantrysdk
