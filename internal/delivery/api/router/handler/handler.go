// Package handler holds the echo handlers of the public API.
package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// stationParam reads the :idEESS path parameter.
func stationParam(c echo.Context) (string, bool) {
	idEESS := strings.TrimSpace(c.Param("idEESS"))

	return idEESS, idEESS != ""
}
