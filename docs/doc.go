// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package docs registers the OpenAPI 2.0 description of the HTTP API with
the swag registry so http-swagger can serve it at /swagger/doc.json.

Import it for its side effect:

	import _ "github.com/danielhkuo/quickly-plan/docs"

docs.go is generated by swag from the @Summary/@Param/@Router annotations
on the handlers and the general API info in main.go. Regenerate it after
changing a route or a request/response model:

	go generate ./...

SwaggerInfo.Host and SwaggerInfo.Schemes can be set at startup to point
the UI at a deployed server.
*/
package docs
