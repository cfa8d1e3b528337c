package services

import "github.com/candlewick/storefront/core"

// BaseEndpoints returns the framework-agnostic route table.
//
// The Public flag is the route metadata the authorization gate consults:
// adapters register every endpoint from this list and guard exactly those
// not marked public. Handlers are attached by adapters via OperationID.
func BaseEndpoints() []core.Endpoint {
	return []core.Endpoint{
		{
			Path:   "/health",
			Method: "GET",
			Public: true,
			Metadata: core.EndpointMetadata{
				OperationID: "health",
				Description: "Liveness probe",
			},
		},
		{
			Path:   "/auth/register",
			Method: "POST",
			Public: true,
			Metadata: core.EndpointMetadata{
				OperationID: "register",
				Description: "Register a user with email and password",
			},
		},
		{
			Path:   "/auth/login",
			Method: "POST",
			Public: true,
			Metadata: core.EndpointMetadata{
				OperationID: "login",
				Description: "Sign in a user with email and password",
			},
		},
		{
			Path:   "/auth/profile",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "profile",
				Description: "Get the authenticated user's profile",
			},
		},
		{
			Path:   "/auth/refresh",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "refresh",
				Description: "Issue a fresh token for the authenticated user",
			},
		},
		{
			Path:   "/auth/logout",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "logout",
				Description: "Acknowledge logout; the token stays valid until expiry",
			},
		},
		{
			Path:   "/users",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "listUsers",
				Description: "List active users",
			},
		},
		{
			Path:   "/users/me",
			Method: "PATCH",
			Metadata: core.EndpointMetadata{
				OperationID: "updateMe",
				Description: "Update the authenticated user's profile",
			},
		},
		{
			Path:   "/users/me",
			Method: "DELETE",
			Metadata: core.EndpointMetadata{
				OperationID: "deactivateMe",
				Description: "Soft-delete the authenticated user's account",
			},
		},
		{
			Path:   "/products",
			Method: "POST",
			Metadata: core.EndpointMetadata{
				OperationID: "createProduct",
				Description: "Create a product",
			},
		},
		{
			Path:   "/products",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "listProducts",
				Description: "List products with pagination and filters",
			},
		},
		{
			Path:   "/products/:id",
			Method: "GET",
			Metadata: core.EndpointMetadata{
				OperationID: "getProduct",
				Description: "Get a product by ID",
			},
		},
		{
			Path:   "/products/:id",
			Method: "PATCH",
			Metadata: core.EndpointMetadata{
				OperationID: "updateProduct",
				Description: "Partially update a product",
			},
		},
		{
			Path:   "/products/:id",
			Method: "DELETE",
			Metadata: core.EndpointMetadata{
				OperationID: "deleteProduct",
				Description: "Delete a product",
			},
		},
	}
}
