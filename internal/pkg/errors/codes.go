package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidCategory = New(
		"INVALID_CATEGORY",
		"Unknown category id",
		http.StatusBadRequest,
	)

	ErrInvalidZoom = New(
		"INVALID_ZOOM",
		"Invalid zoom level",
		http.StatusBadRequest,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"No route between the requested points",
		http.StatusNotFound,
	)

	ErrGeocodeUnavailable = New(
		"GEOCODE_UNAVAILABLE",
		"Reverse geocoding service unavailable",
		http.StatusBadGateway,
	)

	ErrGeolocationDenied = New(
		"GEOLOCATION_DENIED",
		"Location permission denied",
		http.StatusForbidden,
	)

	ErrGeolocationUnavailable = New(
		"GEOLOCATION_UNAVAILABLE",
		"Location unavailable",
		http.StatusServiceUnavailable,
	)

	ErrGeolocationTimeout = New(
		"GEOLOCATION_TIMEOUT",
		"Location request timed out",
		http.StatusGatewayTimeout,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
