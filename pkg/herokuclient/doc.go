// Package herokuclient provides the primary entry point for constructing a
// Heroku Platform API client that implements the heroku.Client interface.
//
// It layers configuration, HTTP transport and credential resolution on top of
// the endpoint descriptors and types defined in the heroku package. Build a
// client here, then pass it to heroku.Execute with any descriptor.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/hapi/pkg/heroku"
//	  "github.com/fivetwenty-io/hapi/pkg/herokuclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Token taken from HEROKU_API_KEY.
//	  cli, err := herokuclient.NewFromEnvironment(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration.
//	  cli, err = herokuclient.New(ctx, &heroku.Config{
//	    Token:    "01234567-89ab-cdef-0123-456789abcdef",
//	    RetryMax: 3,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  builds, err := heroku.Execute(ctx, cli, heroku.NewBuildList("my-app"))
//	  if err != nil { log.Fatal(err) }
//	  _ = builds
//	}
//
// # Credentials
//
// Config.Credentials wins over Config.Token. When neither is set, New reads
// HEROKU_API_KEY; if that is empty too, the client sends unauthenticated
// requests. NewFromEnvironment instead fails with ErrNoCredentials.
//
// # Endpoint
//
// Config.APIEndpoint defaults to https://api.heroku.com. A bare host is
// given an https:// scheme and trailing slashes are dropped.
package herokuclient
