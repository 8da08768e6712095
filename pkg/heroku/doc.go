// Package heroku provides types, endpoint descriptors, and the request
// executor for the Heroku Platform API.
//
// # Overview
//
// Every API operation is a small descriptor value, e.g. AppDetails or
// AddonCreate, that declares its HTTP verb, its relative path and, where the
// operation takes one, its JSON body. Descriptors embed Returns[T] to declare
// the success payload. Execute sends a descriptor through a Sender and
// decodes the payload:
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
//	  cli, err := herokuclient.NewWithToken(ctx, "my-api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  app, err := heroku.Execute(ctx, cli, heroku.NewAppDetails("my-app"))
//	  if err != nil { log.Fatal(err) }
//	  _ = app
//
//	  addon, err := heroku.Execute(ctx, cli,
//	    heroku.NewAddonCreate("my-app", "heroku-postgresql:dev").
//	      WithName("my-db").
//	      WithConfig(map[string]string{"version": "16"}))
//	  if err != nil { log.Fatal(err) }
//	  _ = addon
//	}
//
// Required parameters are arguments of the New… constructor; optional ones
// are set with With… methods, and unset optional fields are left out of the
// request body.
//
// # Errors
//
// A failed call returns one of two error types:
//
//   - *ResponseError for any non-2xx status. It carries the status code and
//     the APIError envelope ({"id", "message", "url"}) parsed from the body.
//     When the body is not a valid envelope the APIError is zero.
//   - *InvalidResponseError when no usable payload was produced: the request
//     could not be sent, or a 2xx body did not decode. errors.Is(err,
//     ErrInvalidResponse) matches it.
//
// IsNotFound, IsUnauthorized, IsForbidden and IsRateLimited classify the
// common cases.
//
// # Empty payloads
//
// Operations with nothing to return use Empty, which accepts {}, [], null
// and an empty body.
package heroku
