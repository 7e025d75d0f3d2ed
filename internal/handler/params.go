package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// pathID binds the {id} path parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return uuid.Nil, badRequest("invalid id: " + err.Error())
	}
	return id, nil
}

// queryParam binds an optional form-style query parameter into dst, which
// must be a pointer to a pointer (left nil when the parameter is absent).
func queryParam(r *http.Request, name string, dst any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dst); err != nil {
		return badRequest("invalid query parameter " + name + ": " + err.Error())
	}
	return nil
}

// queryBind pairs a query parameter name with its destination.
type queryBind struct {
	name string
	dst  any
}

// queryParams binds several optional parameters in order, stopping at the
// first error.
func queryParams(r *http.Request, binds ...queryBind) error {
	for _, b := range binds {
		if err := queryParam(r, b.name, b.dst); err != nil {
			return err
		}
	}
	return nil
}
