package main

import (
	"bytes"
	"encoding/json"

	"github.com/use-agent/routescrape/models"
)

// encode renders rec as compact JSON without HTML escaping.
func encode(rec *models.TripRouting) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
