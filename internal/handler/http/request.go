package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/thingsfree/internal/utils"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	userIDParam = "userID"
	meUserID    = "me"

	maxRequestBodySize = 1 << 20

	// maxPageLimit caps the limit query parameter. Larger values are
	// served as maxPageLimit.
	maxPageLimit  = 1000
	maxPageOffset = math.MaxInt64
)

// decodeJSON reads the request body into v. An empty body leaves v
// untouched so that validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}

// targetUserID resolves the {userID} URL parameter. "me" is the
// authenticated user and requires a token. An id that cannot exist is
// reported as not found.
func targetUserID(r *http.Request) (uuid.UUID, error) {
	param := chi.URLParam(r, userIDParam)
	if param == meUserID {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			return uuid.Nil, ErrNotAuthenticated
		}
		return userID, nil
	}

	userID, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return userID, nil
}

// pageFromQuery reads the limit and offset query parameters. Missing,
// negative or non-numeric values fall back to "no limit" and offset 0.
// Out of range values are clamped.
func pageFromQuery(query url.Values) models.Page {
	var page models.Page

	rawLimit := query.Get("limit")
	limit, err := strconv.ParseUint(rawLimit, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		limit, err = maxPageLimit, nil
	}
	if err != nil || limit == 0 {
		return page
	}
	page.Limit = min(limit, maxPageLimit)

	offset, err := strconv.ParseUint(query.Get("offset"), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		offset, err = maxPageOffset, nil
	}
	if err == nil {
		page.Offset = min(offset, maxPageOffset)
	}
	return page
}

// pageLinks builds the absolute next and previous URLs of a limit/offset
// window over count items. Both are nil when the listing is not paginated.
func pageLinks(r *http.Request, page models.Page, count int) (next, previous *string) {
	if page.Limit == 0 {
		return nil, nil
	}

	total := uint64(count)
	if page.Offset+page.Limit < total {
		link := pageURL(r, page.Limit, page.Offset+page.Limit)
		next = &link
	}

	if page.Offset > 0 {
		var link string
		if page.Offset <= page.Limit {
			link = pageURL(r, page.Limit, 0)
		} else {
			link = pageURL(r, page.Limit, page.Offset-page.Limit)
		}
		previous = &link
	}

	return next, previous
}

func pageURL(r *http.Request, limit, offset uint64) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	query := r.URL.Query()
	query.Set("limit", strconv.FormatUint(limit, 10))
	if offset == 0 {
		query.Del("offset")
	} else {
		query.Set("offset", strconv.FormatUint(offset, 10))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: query.Encode(),
	}
	return u.String()
}
