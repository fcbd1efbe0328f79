// Package sentry provides a native Go client for the Sentry web API.
//
// # Features
//
//   - Service-based architecture for expandability
//   - Dynamic document access to every response attribute, modeled or not
//   - Modern Go 1.25+ iterators for cursor-based pagination
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//
// # Quick Start
//
//	client, err := sentry.NewClient(
//	    sentry.WithToken(os.Getenv("SENTRY_TOKEN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	project, err := client.Projects.Get(ctx, "my-org", "my-project")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for issue, err := range project.Issues(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    title, _ := issue.GetString("title")
//	    fmt.Println(title)
//	}
//
// # Document Access
//
// Every model wraps the raw JSON object it was built from. Attributes
// are read through Get and its typed variants, so even fields without a
// dedicated accessor stay reachable:
//
//	count, err := issue.GetString("count")
//	var missing *sentry.MissingAttributeError
//	if errors.As(err, &missing) {
//	    // Key absent from the response document
//	}
//
// # Error Handling
//
// The package uses typed errors that can be inspected with errors.As:
//
//	team, err := client.Teams.Get(ctx, "my-org", "no-such-team")
//	if err != nil {
//	    var notFound *sentry.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle not found
//	    }
//	}
//
// # Pagination
//
// Paginated endpoints return lazy iterators that follow Sentry's cursor
// Link headers page by page as you consume them:
//
//	// Iterate over all results
//	for project, err := range client.Projects.List(ctx) {
//	    // ...
//	}
//
//	// Collect all results into a slice
//	projects, err := sentry.Collect(client.Projects.List(ctx))
package sentry
