package service

import (
	"encoding/json"

	"github.com/MKhiriev/go-field-inspections/models"
	"github.com/tidwall/gjson"
)

// ParseSyncRequest splits a bulk reconciliation body into undecoded items.
//
// The body must be a JSON object whose "inspecciones" field is an array,
// otherwise ErrInvalidPayload is returned. Elements are not decoded here, so
// one malformed element does not reject its neighbours; the local id is
// read from each element's numeric "id" field and left zero otherwise.
func ParseSyncRequest(body []byte) ([]models.SyncItem, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidPayload
	}

	list := gjson.GetBytes(body, "inspecciones")
	if !list.IsArray() {
		return nil, ErrInvalidPayload
	}

	items := make([]models.SyncItem, 0)
	list.ForEach(func(_, element gjson.Result) bool {
		item := models.SyncItem{Raw: json.RawMessage(element.Raw)}
		if id := element.Get("id"); id.Type == gjson.Number {
			item.LocalID = id.Int()
		}
		items = append(items, item)
		return true
	})

	return items, nil
}
