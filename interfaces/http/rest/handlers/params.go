package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"
	"github.com/rodrigogurgel/catalog-sub001/pkg/common"
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
	"github.com/rodrigogurgel/catalog-sub001/pkg/utils"
)

// pathID parses a UUID path parameter
func pathID(r *http.Request, param string) (valueobjects.ID, error) {
	raw := chi.URLParam(r, param)
	id, err := valueobjects.ParseID(raw)
	if err != nil {
		return valueobjects.ID{}, pkgerrors.NewInvalidID(param, raw).WithCause(err)
	}
	return id, nil
}

// pathIDs parses several path parameters in order, stopping at the first failure
func pathIDs(r *http.Request, params ...string) ([]valueobjects.ID, error) {
	ids := make([]valueobjects.ID, len(params))
	for i, p := range params {
		id, err := pathID(r, p)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// queryInt reads a non-required integer query parameter
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.NewInvalidPagination(name, "must be an integer")
	}
	return v, nil
}

// pageParams reads the limit and cursor of list calls
func pageParams(r *http.Request) (int, string, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return 0, "", err
	}
	return limit, r.URL.Query().Get("cursor"), nil
}

// decodeBody parses and validates a JSON request body
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := common.ParseJSONBody(w, r, v, common.MaxBodyBytes); err != nil {
		return pkgerrors.NewValidationError("Invalid request body: " + err.Error())
	}
	if err := utils.ValidateStruct(v); err != nil {
		return pkgerrors.NewValidationError("Validation error: " + err.Error())
	}
	return nil
}

// matchID fills an empty body ID from the path and rejects a different one
func matchID(bodyID *string, pathID valueobjects.ID) error {
	if *bodyID == "" {
		*bodyID = pathID.String()
		return nil
	}
	if *bodyID != pathID.String() {
		return pkgerrors.NewValidationError("Body id does not match the path")
	}
	return nil
}

func pageMeta(r *http.Request, nextCursor string) *common.MetaInfo {
	return &common.MetaInfo{
		RequestID:  chimiddleware.GetReqID(r.Context()),
		NextCursor: nextCursor,
	}
}
