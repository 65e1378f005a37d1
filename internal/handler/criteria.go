package handler

import (
	"github.com/Eursukkul/aquaagro-admin/internal/filter"
	"github.com/labstack/echo/v4"
)

// criteriaFrom reads ?q= plus the named selector parameters.
func criteriaFrom(c echo.Context, selectors ...string) filter.Criteria {
	cr := filter.Criteria{
		Query:     c.QueryParam("q"),
		Selectors: make(map[string]string, len(selectors)),
	}
	for _, name := range selectors {
		if v := c.QueryParam(name); v != "" {
			cr.Selectors[name] = v
		}
	}
	return cr
}
