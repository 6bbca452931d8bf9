package controllers

import (
	"context"
	"regexp"

	"backoffice/src/models"
	"backoffice/src/schemas"
	"backoffice/src/utils"
)

var lookupName = regexp.MustCompile(`^[a-z][a-z0-9_]{0,39}$`)

func (c *Controller) Lookup(ctx context.Context, name string) ([]models.LookupItem, error) {
	if !lookupName.MatchString(name) {
		return nil, utils.BadRequest("Unknown list " + name)
	}
	items, err := c.Lookups.Lookup(ctx, name)
	return items, translate(err, "")
}

// FillOptions loads the dropdown options of every field that names a lookup.
// Each list is fetched once even when several fields share it.
func (c *Controller) FillOptions(ctx context.Context, fields []schemas.FormField) ([]schemas.FormField, error) {
	loaded := make(map[string][]schemas.FieldOption)
	for i := range fields {
		name := fields[i].Lookup
		if name == "" {
			continue
		}
		options, ok := loaded[name]
		if !ok {
			items, err := c.Lookup(ctx, name)
			if err != nil {
				return nil, err
			}
			options = make([]schemas.FieldOption, 0, len(items))
			for _, item := range items {
				options = append(options, schemas.FieldOption{Value: item.Value, Text: item.Text})
			}
			loaded[name] = options
		}
		fields[i].Options = options
	}
	return fields, nil
}
