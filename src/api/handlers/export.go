package handlers

import (
	"fmt"
	"net/http"
	"time"

	"backoffice/src/schemas"
	"backoffice/src/utils"
)

func (h *Handler) ExportDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	c, _, err := h.controller(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	f, err := c.ExportDrivers(ctx, schemas.ListQueryFromValues(r.URL.Query()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("drivers-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(w); err != nil {
		utils.LoggerFromContext(ctx).WithError(err).Error("writing driver workbook")
	}
}
